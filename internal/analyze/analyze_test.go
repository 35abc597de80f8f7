package analyze

import (
	"testing"

	"github.com/jambolo/sudoku/internal/board"
)

const (
	solvedBoard   = "524189637361547289879623145653498712987251364142376958238914576415762893796835421"
	solvableBoard = "024189637361547289879623145653498712987251364142376958238914576415762893796835421"
	stuckBoard    = "006700400000050070070100030800079016060301750700620004690007023037960040008000967"
)

// stuckCandidates is the candidate state of stuckBoard after a run of
// eliminations that leaves no technique in the pipeline with progress.
var stuckCandidates = [81]board.Candidates{
	0x22e, 0x126, 0x040, 0x080, 0x208, 0x10c, 0x010, 0x300, 0x326,
	0x21a, 0x114, 0x216, 0x114, 0x020, 0x15c, 0x146, 0x080, 0x306,
	0x234, 0x080, 0x234, 0x002, 0x310, 0x154, 0x164, 0x008, 0x324,
	0x100, 0x034, 0x02c, 0x030, 0x080, 0x200, 0x00c, 0x002, 0x040,
	0x214, 0x040, 0x214, 0x008, 0x110, 0x002, 0x080, 0x020, 0x304,
	0x080, 0x022, 0x22a, 0x040, 0x004, 0x120, 0x108, 0x300, 0x010,
	0x040, 0x200, 0x032, 0x120, 0x012, 0x080, 0x122, 0x004, 0x008,
	0x026, 0x008, 0x080, 0x200, 0x040, 0x124, 0x122, 0x010, 0x122,
	0x036, 0x036, 0x100, 0x034, 0x01a, 0x03c, 0x200, 0x040, 0x080,
}

func mustParse(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return b
}

func TestNewRejectsInconsistentBoard(t *testing.T) {
	bad := "55" + solvedBoard[2:]
	b, err := board.Parse(bad)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := New(b); err == nil {
		t.Error("New should reject an inconsistent board")
	}
}

func TestNextOnSolvedBoardIsDone(t *testing.T) {
	a, err := New(mustParse(t, solvedBoard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	step := a.Next()
	if step.Action != ActionDone {
		t.Errorf("step.Action = %q, want %q", step.Action, ActionDone)
	}
	if !a.Done() {
		t.Error("Done() should be true after a done step")
	}
}

func TestNextFindsNakedSingle(t *testing.T) {
	a, err := New(mustParse(t, solvableBoard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	step := a.Next()
	if step.Action != ActionSolve {
		t.Fatalf("step.Action = %q, want %q", step.Action, ActionSolve)
	}
	if step.Technique != TechniqueNakedSingle {
		t.Errorf("step.Technique = %q, want %q", step.Technique, TechniqueNakedSingle)
	}
	if len(step.Indexes) != 1 || step.Indexes[0] != 0 {
		t.Errorf("step.Indexes = %v, want [0]", step.Indexes)
	}
	if len(step.Values) != 1 || step.Values[0] != 5 {
		t.Errorf("step.Values = %v, want [5]", step.Values)
	}
	if step.Reason == "" {
		t.Error("solve steps must carry a reason")
	}
}

func TestNextReportsStuck(t *testing.T) {
	a, err := NewWithCandidates(mustParse(t, stuckBoard), stuckCandidates)
	if err != nil {
		t.Fatalf("NewWithCandidates: %v", err)
	}
	step := a.Next()
	if step.Action != ActionStuck {
		t.Fatalf("step.Action = %q, want %q", step.Action, ActionStuck)
	}
	if step.Technique != TechniqueNone {
		t.Errorf("step.Technique = %q, want %q", step.Technique, TechniqueNone)
	}
	if len(step.Indexes) != 0 || len(step.Values) != 0 {
		t.Errorf("stuck step should carry no indexes or values, got %v %v", step.Indexes, step.Values)
	}
	if !a.Stuck() {
		t.Error("Stuck() should be true after a stuck step")
	}
}

// TestPipelineInvariants drives a naked-singles puzzle to completion,
// checking after every step that no cell loses its last candidate, that
// solved cells stay propagated, and that progress is strictly monotone.
func TestPipelineInvariants(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()

	puzzle := []byte(solvedBoard)
	for _, i := range []int{0, 10, 20, 30} {
		puzzle[i] = '0'
	}
	a, err := New(mustParse(t, string(puzzle)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	steps := 0
	for !a.Done() {
		prevEmpty := emptyCount(a)
		prevCandidates := candidateCount(a)

		step := a.Next()
		steps++
		if steps > 100 {
			t.Fatal("pipeline did not terminate")
		}

		for i := 0; i < 81; i++ {
			if a.Candidates(i).IsEmpty() {
				t.Fatalf("cell %d lost all candidates", i)
			}
		}
		for i := 0; i < 81; i++ {
			if v := a.Board().Get(i); v != board.Empty {
				if a.Candidates(i) != board.Of(v) {
					t.Errorf("solved cell %d candidates = %v, want {%d}", i, a.Candidates(i), v)
				}
				for _, j := range board.Dependents(i) {
					if a.Board().IsEmpty(j) && a.Candidates(j).Has(v) {
						t.Errorf("dependent %d of solved cell %d still has candidate %d", j, i, v)
					}
				}
			}
		}

		switch step.Action {
		case ActionSolve:
			if emptyCount(a) != prevEmpty-1 {
				t.Error("a solve step must fill exactly one cell")
			}
		case ActionEliminate:
			if candidateCount(a) >= prevCandidates {
				t.Error("an eliminate step must strictly shrink the candidate total")
			}
		}
	}

	if a.Stuck() {
		t.Fatal("naked-singles puzzle should not get stuck")
	}
	if got := a.Board().Serialize(); got != solvedBoard {
		t.Errorf("final board = %q, want %q", got, solvedBoard)
	}
}

func emptyCount(a *Analyzer) int {
	n := 0
	for i := 0; i < 81; i++ {
		if a.Board().IsEmpty(i) {
			n++
		}
	}
	return n
}

func candidateCount(a *Analyzer) int {
	n := 0
	for i := 0; i < 81; i++ {
		n += a.Candidates(i).Count()
	}
	return n
}

func TestConstructionPropagation(t *testing.T) {
	a, err := New(mustParse(t, solvableBoard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Every dependent of A1 is filled, so only its true value remains.
	if got := a.Candidates(0); got != board.Of(5) {
		t.Errorf("Candidates(0) = %v, want {5}", got)
	}
}
