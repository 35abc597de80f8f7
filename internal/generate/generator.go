// Package generate produces random puzzles: a random solved grid is
// carved by removing cells in a random order while a unique solution
// remains.
package generate

import (
	"math/rand/v2"

	"github.com/jambolo/sudoku/internal/backtrack"
	"github.com/jambolo/sudoku/internal/board"
)

// Generate returns a consistent puzzle with exactly one completion.
// budget caps the number of cells removed from the solved grid; a budget
// <= 0 removes as many as possible. The caller supplies the random
// source so that seeding stays an application-level decision.
func Generate(rng *rand.Rand, budget int) board.Board {
	if budget <= 0 {
		budget = board.Size * board.Size
	}

	var b board.Board
	fill(&b, rng)

	for _, i := range rng.Perm(board.Size * board.Size) {
		x := b.Get(i)
		b.Set(i, board.Empty)
		if backtrack.HasUniqueSolution(b) {
			budget--
			if budget <= 0 {
				return b
			}
		} else {
			b.Set(i, x)
		}
	}
	return b
}

// fill solves the (partially) empty board by depth-first assignment,
// trying the possible digits at each empty cell in a freshly shuffled
// order so the result is a uniformly scrambled solved grid.
func fill(b *board.Board, rng *rand.Rand) bool {
	i, ok := b.FirstEmpty()
	if !ok {
		return true
	}
	possible := b.AllPossible(i)
	rng.Shuffle(len(possible), func(x, y int) {
		possible[x], possible[y] = possible[y], possible[x]
	})
	for _, v := range possible {
		b.Set(i, v)
		if fill(b, rng) {
			return true
		}
	}
	b.Set(i, board.Empty)
	return false
}
