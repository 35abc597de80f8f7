package backtrack

import (
	"testing"

	"github.com/jambolo/sudoku/internal/board"
)

const (
	solvedBoard   = "524189637361547289879623145653498712987251364142376958238914576415762893796835421"
	solvableBoard = "024189637361547289879623145653498712987251364142376958238914576415762893796835421"
)

func TestSolveFillsTheOnlyCompletion(t *testing.T) {
	b, err := board.Parse(solvableBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Solve(&b) {
		t.Fatal("Solve should succeed on a solvable board")
	}
	if got := b.Serialize(); got != solvedBoard {
		t.Errorf("Solve produced %q, want %q", got, solvedBoard)
	}
}

func TestSolveRestoresOnFailure(t *testing.T) {
	// Row A holds 1-8 with A1 empty, and 9 sits below A1 in column 1, so
	// A1 has no possible value. The board is consistent but unsolvable.
	var b board.Board
	for c := 0; c < 8; c++ {
		b.Set(board.Index(0, c+1), c+1)
	}
	b.Set(board.Index(1, 0), 9)
	if !b.Consistent() {
		t.Fatal("test board should be consistent")
	}
	before := b.Serialize()
	if Solve(&b) {
		t.Fatal("Solve should fail when a cell has no possible value")
	}
	if got := b.Serialize(); got != before {
		t.Errorf("Solve did not restore the board on failure: got %q, want %q", got, before)
	}
}

func TestAllSolutionsDoesNotMutateInput(t *testing.T) {
	b, err := board.Parse(solvableBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	AllSolutions(b, 0)
	if got := b.Serialize(); got != solvableBoard {
		t.Errorf("AllSolutions mutated its input: %q", got)
	}
}

func TestAllSolutionsFindsExactlyOne(t *testing.T) {
	b, err := board.Parse(solvableBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	solutions := AllSolutions(b, 0)
	if len(solutions) != 1 {
		t.Fatalf("AllSolutions found %d solutions, want 1", len(solutions))
	}
	if got := solutions[0].Serialize(); got != solvedBoard {
		t.Errorf("solution = %q, want %q", got, solvedBoard)
	}
}

func TestHasUniqueSolution(t *testing.T) {
	solved, err := board.Parse(solvedBoard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !HasUniqueSolution(solved) {
		t.Error("a solved board has exactly one completion")
	}

	empty := board.New()
	if HasUniqueSolution(empty) {
		t.Error("the empty board has many completions")
	}
}

func TestAllSolutionsCapShortCircuits(t *testing.T) {
	empty := board.New()
	solutions := AllSolutions(empty, 2)
	if len(solutions) != 2 {
		t.Errorf("AllSolutions(empty, 2) returned %d solutions, want 2", len(solutions))
	}
	for _, s := range solutions {
		if !s.Solved() {
			t.Errorf("enumerated board %q is not solved", s.Serialize())
		}
	}
}
