// Package backtrack implements the brute-force depth-first solver. It is
// used for uniqueness checking and as a debug oracle; the human-style
// deduction lives in the analyze package.
package backtrack

import "github.com/jambolo/sudoku/internal/board"

// Solve fills b in place by depth-first search, trying the still-possible
// digits at each empty cell in ascending order. It returns true and
// leaves the board solved on success, or returns false and restores the
// board on failure. Possible digits are computed from the board directly,
// not from any candidate bookkeeping.
func Solve(b *board.Board) bool {
	i, ok := b.FirstEmpty()
	if !ok {
		return true
	}
	for _, v := range b.AllPossible(i) {
		b.Set(i, v)
		if Solve(b) {
			return true
		}
	}
	b.Set(i, board.Empty)
	return false
}

// AllSolutions enumerates the solutions of b, stopping as soon as limit
// solutions are found. A limit <= 0 enumerates every solution. The input
// board is not modified.
func AllSolutions(b board.Board, limit int) []board.Board {
	var solutions []board.Board
	searchAll(&b, limit, &solutions)
	return solutions
}

func searchAll(b *board.Board, limit int, solutions *[]board.Board) {
	if limit > 0 && len(*solutions) >= limit {
		return
	}
	i, ok := b.FirstEmpty()
	if !ok {
		*solutions = append(*solutions, *b)
		return
	}
	for _, v := range b.AllPossible(i) {
		b.Set(i, v)
		searchAll(b, limit, solutions)
		if limit > 0 && len(*solutions) >= limit {
			break
		}
	}
	b.Set(i, board.Empty)
}

// HasUniqueSolution reports whether b has exactly one completion.
func HasUniqueSolution(b board.Board) bool {
	return len(AllSolutions(b, 2)) == 1
}
