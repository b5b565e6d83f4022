package sim

import (
	"math/rand"
	"strings"
)

// hintRule maps a feature of the target formula to a hint line.
// Trig names are checked against their hyperbolic variants so "sin"
// inside "sinh" does not produce a sine hint.
type hintRule struct {
	matches func(formula string) bool
	text    string
}

func containsPlain(formula, name, hyperbolic string) bool {
	return strings.Contains(formula, name) && !strings.Contains(formula, hyperbolic)
}

var hintRules = []hintRule{
	{func(f string) bool { return containsPlain(f, "sin", "sinh") }, "Uses the sine function"},
	{func(f string) bool { return containsPlain(f, "cos", "cosh") }, "Uses the cosine function"},
	{func(f string) bool { return containsPlain(f, "tan", "tanh") }, "Uses the tangent function"},
	{func(f string) bool { return strings.Contains(f, "sinh") }, "Uses the hyperbolic sine"},
	{func(f string) bool { return strings.Contains(f, "cosh") }, "Uses the hyperbolic cosine"},
	{func(f string) bool { return strings.Contains(f, "tanh") }, "Uses the hyperbolic tangent"},
	{func(f string) bool { return strings.Contains(f, "sqrt") }, "Uses a square root"},
	{func(f string) bool { return strings.Contains(f, "log") }, "Uses a logarithm"},
	{func(f string) bool { return strings.Contains(f, "exp") }, "Uses an exponential"},
	{func(f string) bool { return strings.Contains(f, "^") || strings.Contains(f, "**") || strings.Contains(f, "pow") }, "Uses a power"},
	{func(f string) bool {
		return strings.Contains(f, "*") && !strings.Contains(f, "**")
	}, "Uses multiplication"},
}

// hintFor derives a hint from the target formula, revealing one of its
// ingredients. The fallback covers formulas with no notable feature,
// like a bare "x".
func hintFor(formula string, rng *rand.Rand) string {
	var hints []string
	for _, rule := range hintRules {
		if rule.matches(formula) {
			hints = append(hints, rule.text)
		}
	}
	if len(hints) == 0 {
		return "Try basic functions like sin, cos, or polynomials"
	}
	return hints[rng.Intn(len(hints))]
}
