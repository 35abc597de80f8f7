package generate

import (
	"math/rand/v2"
	"testing"

	"github.com/jambolo/sudoku/internal/backtrack"
)

func TestGenerateProducesUniquePuzzle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	b := Generate(rng, 0)

	if !b.Consistent() {
		t.Fatal("generated board must be consistent")
	}
	if b.Completed() {
		t.Error("carving should have removed at least one cell")
	}
	if !backtrack.HasUniqueSolution(b) {
		t.Error("generated board must have exactly one completion")
	}
	if !backtrack.Solve(&b) {
		t.Error("generated board must be solvable")
	}
}

func TestGenerateHonorsBudget(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	b := Generate(rng, 5)

	empties := 0
	for i := 0; i < 81; i++ {
		if b.IsEmpty(i) {
			empties++
		}
	}
	if empties != 5 {
		t.Errorf("budget of 5 should remove exactly 5 cells, removed %d", empties)
	}
	if !backtrack.HasUniqueSolution(b) {
		t.Error("generated board must have exactly one completion")
	}
}
