package expr

import (
	"math"
	"sort"
)

// builtin is an allow-listed function callable from expressions.
type builtin struct {
	name  string
	arity int
	fn1   func(float64) float64
	fn2   func(float64, float64) float64
}

// builtins is the complete function allow-list. Identifiers outside
// this table (and the constants below) are compile errors, never
// resolved dynamically.
var builtins = map[string]*builtin{
	// Trigonometric
	"sin":  {name: "sin", arity: 1, fn1: math.Sin},
	"cos":  {name: "cos", arity: 1, fn1: math.Cos},
	"tan":  {name: "tan", arity: 1, fn1: math.Tan},
	"asin": {name: "asin", arity: 1, fn1: math.Asin},
	"acos": {name: "acos", arity: 1, fn1: math.Acos},
	"atan": {name: "atan", arity: 1, fn1: math.Atan},

	// Hyperbolic
	"sinh": {name: "sinh", arity: 1, fn1: math.Sinh},
	"cosh": {name: "cosh", arity: 1, fn1: math.Cosh},
	"tanh": {name: "tanh", arity: 1, fn1: math.Tanh},

	// Exponential and logarithmic
	"sqrt":  {name: "sqrt", arity: 1, fn1: math.Sqrt},
	"log":   {name: "log", arity: 1, fn1: math.Log},
	"log10": {name: "log10", arity: 1, fn1: math.Log10},
	"exp":   {name: "exp", arity: 1, fn1: math.Exp},

	// Rounding and absolute value
	"abs":   {name: "abs", arity: 1, fn1: math.Abs},
	"floor": {name: "floor", arity: 1, fn1: math.Floor},
	"ceil":  {name: "ceil", arity: 1, fn1: math.Ceil},
	"round": {name: "round", arity: 1, fn1: math.Round},

	// Power
	"pow": {name: "pow", arity: 2, fn2: math.Pow},
}

// constants are the allow-listed named constants.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// FunctionNames returns the allow-listed function names in sorted
// order, for help screens and hints.
func FunctionNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownName reports whether name is the variable, a constant, or an
// allow-listed function.
func IsKnownName(name string) bool {
	if name == "x" {
		return true
	}
	if _, ok := constants[name]; ok {
		return true
	}
	_, ok := builtins[name]
	return ok
}
