// Package thresholds provides the pure progress ladders that throttle how
// often improvement, backtest and review work is allowed to run.
package thresholds

// Initial ladder rungs before the every-1000 tail.
var (
	improvementLadder = []int{50, 100, 200, 500, 1000}
	reviewLadder      = []int{10, 50, 100, 200, 500, 1000}
)

// NextImprovement returns the next gating threshold for prompt tuning and
// model backtesting given the current scored-span count.
// Sequence: 50, 100, 200, 500, 1000, then every 1000.
func NextImprovement(current int) int {
	return next(improvementLadder, current)
}

// NextReview returns the next review-badge threshold given the current span
// count. Sequence: 10, 50, 100, 200, 500, 1000, then every 1000.
func NextReview(current int) int {
	return next(reviewLadder, current)
}

// PreviousImprovement returns the ladder step before last, or 0. Criteria
// invalidation rolls last_improvement_span_count back by exactly one step so
// the next tuning attempt is immediately eligible:
// NextImprovement(PreviousImprovement(x)) <= x for every x >= 50.
func PreviousImprovement(last int) int {
	return previous(improvementLadder, last)
}

func next(ladder []int, current int) int {
	for _, t := range ladder {
		if t > current {
			return t
		}
	}
	return (current/1000 + 1) * 1000
}

func previous(ladder []int, last int) int {
	if last <= 0 {
		return 0
	}

	// All rungs <= last, in order: 0, the initial ladder, then every 1000.
	steps := []int{0}
	for _, t := range ladder {
		if t <= last {
			steps = append(steps, t)
		}
	}
	for t := 2000; t <= last; t += 1000 {
		steps = append(steps, t)
	}

	if len(steps) < 2 {
		return 0
	}
	return steps[len(steps)-2]
}
