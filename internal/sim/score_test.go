package sim

import (
	"math"
	"testing"
)

func TestScoreExactMatch(t *testing.T) {
	target := Sample(mustCompile(t, "sin(x)"), testDomain)
	player := Sample(mustCompile(t, "sin(x)"), testDomain)

	res := Score(target, player, 0.05)
	if !res.Matched {
		t.Error("identical curves did not match")
	}
	if res.Error > 1e-12 {
		t.Errorf("Error = %v, want ~0", res.Error)
	}
	if res.Contributing != testDomain.Len() {
		t.Errorf("Contributing = %d, want %d", res.Contributing, testDomain.Len())
	}
}

func TestScoreMismatch(t *testing.T) {
	target := Sample(mustCompile(t, "x"), testDomain)
	player := Sample(mustCompile(t, "x + 10"), testDomain)

	res := Score(target, player, 0.05)
	if res.Matched {
		t.Error("offset curves matched")
	}
	// Constant offset 10 over a target span of 10 normalizes to 1.0.
	if math.Abs(res.Error-1.0) > 1e-9 {
		t.Errorf("Error = %v, want 1.0", res.Error)
	}
}

func TestScoreExcludesUndefinedPoints(t *testing.T) {
	// log(x) is undefined at x=0; that point must not poison the rest.
	target := Sample(mustCompile(t, "log(x + 1)"), testDomain)
	player := Sample(mustCompile(t, "log(x)"), testDomain)

	res := Score(target, player, 0.05)
	if res.Contributing != testDomain.Len()-1 {
		t.Errorf("Contributing = %d, want %d", res.Contributing, testDomain.Len()-1)
	}
	if math.IsInf(res.Error, 0) || math.IsNaN(res.Error) {
		t.Errorf("Error = %v, want finite", res.Error)
	}
}

func TestScoreNoContributingPoints(t *testing.T) {
	undefined := Sample(mustCompile(t, "sqrt(-1 - x ^ 2)"), testDomain)
	defined := Sample(mustCompile(t, "x"), testDomain)

	tests := []struct {
		name           string
		target, player SampleSet
	}{
		{name: "both undefined", target: undefined, player: undefined},
		{name: "target undefined", target: undefined, player: defined},
		{name: "player undefined", target: defined, player: undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.target, tt.player, 1000) // Even a huge tolerance must not match
			if res.Matched {
				t.Error("matched with zero contributing points")
			}
			if !math.IsInf(res.Error, 1) {
				t.Errorf("Error = %v, want +Inf", res.Error)
			}
			if res.Contributing != 0 {
				t.Errorf("Contributing = %d, want 0", res.Contributing)
			}
		})
	}
}

func TestScoreBoundaryIsMatch(t *testing.T) {
	target := SampleSet{{X: 0, Y: 0, Defined: true}, {X: 1, Y: 10, Defined: true}}
	// Uniform offset of 0.5 over span 10 gives exactly 0.05.
	player := SampleSet{{X: 0, Y: 0.5, Defined: true}, {X: 1, Y: 10.5, Defined: true}}

	res := Score(target, player, 0.05)
	if math.Abs(res.Error-0.05) > 1e-12 {
		t.Fatalf("Error = %v, want 0.05", res.Error)
	}
	if !res.Matched {
		t.Error("error exactly at tolerance should match")
	}
}

func TestScoreLengthMismatchUsesShorter(t *testing.T) {
	target := Sample(mustCompile(t, "x"), testDomain)
	player := Sample(mustCompile(t, "x"), Domain{XMin: 0, XMax: 10, Intervals: 200})

	res := Score(target, player, 0.5)
	if res.Contributing != 201 {
		t.Errorf("Contributing = %d, want 201", res.Contributing)
	}
}

func TestAward(t *testing.T) {
	tests := []struct {
		name   string
		points int
		err    float64
		tol    float64
		factor float64
		want   int
	}{
		{name: "no bonus factor", points: 100, err: 0, tol: 0.05, factor: 0, want: 100},
		{name: "perfect match full bonus", points: 100, err: 0, tol: 0.05, factor: 0.5, want: 150},
		{name: "at tolerance no bonus", points: 100, err: 0.05, tol: 0.05, factor: 0.5, want: 100},
		{name: "halfway", points: 200, err: 0.025, tol: 0.05, factor: 0.5, want: 250},
		{name: "points are the floor", points: 500, err: 0.05, tol: 0.05, factor: 1.0, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Award(tt.points, tt.err, tt.tol, tt.factor); got != tt.want {
				t.Errorf("Award(%d, %v, %v, %v) = %d, want %d",
					tt.points, tt.err, tt.tol, tt.factor, got, tt.want)
			}
		})
	}
}
