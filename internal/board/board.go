// Package board implements the fixed 81-cell Sudoku grid: geometry,
// parsing/serialization, consistency checks, and the bit-set candidate
// algebra used throughout the engine.
package board

import "fmt"

// Board is an ordered sequence of 81 cell values, each in 0..9 where 0
// denotes an empty cell.
type Board struct {
	cells [Size * Size]int
}

// New returns an empty board.
func New() Board {
	return Board{}
}

// Parse reads a board from an 81-character string of digits '0'-'9',
// row-major, '0' denoting empty. It fails for any other length or any
// non-digit character.
func Parse(s string) (Board, error) {
	if len(s) != Size*Size {
		return Board{}, fmt.Errorf("board: expected %d characters, got %d", Size*Size, len(s))
	}
	var b Board
	for i := 0; i < Size*Size; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return Board{}, fmt.Errorf("board: invalid character %q at position %d", ch, i)
		}
		b.cells[i] = int(ch - '0')
	}
	return b, nil
}

// Serialize renders the board as an 81-character row-major digit string.
func (b Board) Serialize() string {
	buf := make([]byte, Size*Size)
	for i, v := range b.cells {
		buf[i] = byte('0' + v)
	}
	return string(buf)
}

// Get returns the value at index i (0 means empty).
func (b Board) Get(i int) int {
	return b.cells[i]
}

// Set places value v (0..9) at index i.
func (b *Board) Set(i, v int) {
	b.cells[i] = v
}

// IsEmpty reports whether index i is unfilled.
func (b Board) IsEmpty(i int) bool {
	return b.cells[i] == Empty
}

// Completed reports whether the board has no empty cells.
func (b Board) Completed() bool {
	for _, v := range b.cells {
		if v == Empty {
			return false
		}
	}
	return true
}

// Consistent reports whether no digit 1-9 repeats in any row, column, or box.
func (b Board) Consistent() bool {
	for u := 0; u < Size; u++ {
		if !unitConsistent(b, Row(u)) || !unitConsistent(b, Column(u)) || !unitConsistent(b, Box(u)) {
			return false
		}
	}
	return true
}

func unitConsistent(b Board, unit []int) bool {
	var seen Candidates
	for _, i := range unit {
		v := b.cells[i]
		if v == Empty {
			continue
		}
		if seen.Has(v) {
			return false
		}
		seen = seen.Set(v)
	}
	return true
}

// Solved reports whether the board is completed and consistent.
func (b Board) Solved() bool {
	return b.Completed() && b.Consistent()
}

// AllPossible returns the digits 1-9 not already present among i's
// dependents, computed directly from cell values rather than any
// Analyzer candidate array.
func (b Board) AllPossible(i int) []int {
	var present Candidates
	for _, j := range Dependents(i) {
		if v := b.cells[j]; v != Empty {
			present = present.Set(v)
		}
	}
	return AllCandidates.Subtract(present).Values()
}

// FirstEmpty returns the index of the first empty cell in row-major
// order, or (-1, false) if the board is completed.
func (b Board) FirstEmpty() (int, bool) {
	for i, v := range b.cells {
		if v == Empty {
			return i, true
		}
	}
	return -1, false
}
