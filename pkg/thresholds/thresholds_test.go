package thresholds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextImprovement(t *testing.T) {
	cases := map[int]int{
		0:    50,
		1:    50,
		49:   50,
		50:   100,
		99:   100,
		100:  200,
		200:  500,
		499:  500,
		500:  1000,
		999:  1000,
		1000: 2000,
		1500: 2000,
		2000: 3000,
		2999: 3000,
		5400: 6000,
	}
	for current, want := range cases {
		assert.Equal(t, want, NextImprovement(current), "current=%d", current)
	}
}

func TestNextReview(t *testing.T) {
	cases := map[int]int{
		0:    10,
		9:    10,
		10:   50,
		50:   100,
		100:  200,
		200:  500,
		500:  1000,
		1000: 2000,
		2500: 3000,
	}
	for current, want := range cases {
		assert.Equal(t, want, NextReview(current), "current=%d", current)
	}
}

func TestPreviousImprovement(t *testing.T) {
	cases := map[int]int{
		0:    0,
		-5:   0,
		10:   0,
		50:   0,
		60:   0,
		100:  50,
		150:  50,
		200:  100,
		500:  200,
		1000: 500,
		1500: 500,
		2000: 1000,
		3000: 2000,
		3500: 2000,
	}
	for last, want := range cases {
		assert.Equal(t, want, PreviousImprovement(last), "last=%d", last)
	}
}

// Rolling back by one step must make the prompt immediately eligible again:
// the next threshold computed from the rolled-back count never exceeds the
// count the prompt already reached.
func TestRollbackRestoresEligibility(t *testing.T) {
	for x := 50; x <= 6000; x++ {
		assert.LessOrEqual(t, NextImprovement(PreviousImprovement(x)), x, "x=%d", x)
	}
}
