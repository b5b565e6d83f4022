package sim

import "math"

// Result is the outcome of comparing a player curve to a target curve.
type Result struct {
	Error        float64 // Mean absolute difference, normalized by the target y-span; +Inf if incomparable
	Contributing int     // Points defined in both curves
	Matched      bool
}

// spanFloor keeps the normalization stable for near-flat targets.
const spanFloor = 1e-6

// Score compares the two curves point by point and tests the aggregate
// error against the tier tolerance.
//
// Only indices defined in both curves contribute; a point undefined in
// either is excluded, neither a hit nor a miss. The aggregate is the
// mean absolute difference over contributing points, divided by the
// target curve's y-span so one tolerance scale works across tiers.
// With zero contributing points the error is +Inf and the verdict is
// always "not matched".
func Score(target, player SampleSet, tolerance float64) Result {
	n := len(target)
	if len(player) < n {
		n = len(player)
	}

	yMin, yMax, ok := target.YRange()
	span := spanFloor
	if ok && yMax-yMin > spanFloor {
		span = yMax - yMin
	}

	total := 0.0
	contributing := 0
	for i := 0; i < n; i++ {
		if !target[i].Defined || !player[i].Defined {
			continue
		}
		total += math.Abs(player[i].Y - target[i].Y)
		contributing++
	}

	if contributing == 0 {
		return Result{Error: math.Inf(1), Contributing: 0, Matched: false}
	}

	avg := total / float64(contributing) / span
	return Result{
		Error:        avg,
		Contributing: contributing,
		Matched:      avg <= tolerance,
	}
}

// Award computes the points for a match: the tier's point value as the
// floor, plus a precision bonus scaling with how far under tolerance
// the error landed. bonusFactor 0 disables the bonus.
func Award(points int, errVal, tolerance, bonusFactor float64) int {
	if tolerance <= 0 || bonusFactor <= 0 {
		return points
	}
	margin := (tolerance - errVal) / tolerance
	if margin < 0 {
		margin = 0
	}
	if margin > 1 {
		margin = 1
	}
	return points + int(margin*bonusFactor*float64(points))
}
