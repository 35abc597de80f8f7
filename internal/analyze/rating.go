package analyze

import (
	"math"

	"github.com/jambolo/sudoku/internal/board"
)

// UnsolvableRating is reported when the pipeline cannot finish a puzzle.
const UnsolvableRating = 9001.0

// TechniqueDifficulty returns the fixed difficulty tier of a technique
// name, or 0 for "none" and unknown names.
func TechniqueDifficulty(technique string) int {
	return difficultyTier[technique]
}

// Rate runs a fresh Analyzer over b to completion and scores the
// difficulty of the techniques it needed.
func Rate(b board.Board) (float64, error) {
	a, err := New(b)
	if err != nil {
		return 0, err
	}
	var steps []Step
	for !a.Done() {
		steps = append(steps, a.Next())
	}
	return RateSteps(steps, a.Stuck()), nil
}

// RateSteps scores a recorded run of the pipeline. The result is the
// highest difficulty used, plus up to 0.5 for additional steps at that
// difficulty, plus up to 0.5 for steps at lower difficulties. A stuck
// run rates UnsolvableRating.
func RateSteps(steps []Step, stuck bool) float64 {
	if stuck {
		return UnsolvableRating
	}

	counts := make(map[int]int)
	highest := 0
	for _, s := range steps {
		d := TechniqueDifficulty(s.Technique)
		if d == 0 {
			continue
		}
		counts[d]++
		if d > highest {
			highest = d
		}
	}
	if highest == 0 {
		// No technique steps at all: the board arrived solved.
		return 0
	}

	rating := float64(highest)
	rating -= 0.5 / float64(counts[highest]+1)
	for d := 1; d <= highest; d++ {
		n := counts[d]
		if n == 0 {
			continue
		}
		rating += float64(n) / float64(n+1) * math.Pow(2, float64(d-highest-1))
	}
	return rating
}
