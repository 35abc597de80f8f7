// Package analyze implements the human-style deductive engine: a
// pipelined Analyzer of twelve techniques operating over a mutable
// candidate set per cell, plus difficulty rating.
package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
)

// Debug enables the invariant assertions described in the design notes
// (disabled by default, matching a release build; tests turn it on).
var Debug = false

// Analyzer holds the mutable state the pipeline operates on: the board
// being solved, the 81-entry candidate array, and the done/stuck flags.
type Analyzer struct {
	b          board.Board
	candidates [81]board.Candidates
	done       bool
	stuck      bool
}

// New constructs an Analyzer from a consistent board. It materializes
// candidates[i] = AllCandidates for empty cells and a singleton for
// filled cells, then propagates each filled cell's value by eliminating
// it from its dependents' candidates.
func New(b board.Board) (*Analyzer, error) {
	if !b.Consistent() {
		return nil, fmt.Errorf("analyze: board is not consistent")
	}
	a := &Analyzer{b: b}
	for i := range a.candidates {
		a.candidates[i] = board.AllCandidates
	}
	for i := 0; i < 81; i++ {
		if !b.IsEmpty(i) {
			a.solve(i, b.Get(i))
		}
	}
	if Debug {
		a.assertValid()
	}
	return a, nil
}

// NewWithCandidates constructs an Analyzer from a consistent board and
// an explicit candidate array, bypassing construction-time propagation.
// Used by callers that have tracked eliminations themselves.
func NewWithCandidates(b board.Board, candidates [81]board.Candidates) (*Analyzer, error) {
	if !b.Consistent() {
		return nil, fmt.Errorf("analyze: board is not consistent")
	}
	a := &Analyzer{b: b, candidates: candidates}
	if Debug {
		a.assertValid()
	}
	return a, nil
}

// Board returns the current board state.
func (a *Analyzer) Board() board.Board {
	return a.b
}

// Candidates returns the current candidate mask for cell i.
func (a *Analyzer) Candidates(i int) board.Candidates {
	return a.candidates[i]
}

// Done reports whether the Analyzer has finished: it has reported
// action "done" or action "stuck".
func (a *Analyzer) Done() bool {
	return a.done
}

// Stuck reports whether the Analyzer has reported action "stuck".
func (a *Analyzer) Stuck() bool {
	return a.stuck
}

// pipeline is the fixed, ordered list of techniques. The first one that
// finds progress wins; technique order is part of the observable contract.
var pipeline = []func(*Analyzer) (Step, bool){
	nakedSingle,
	hiddenSingle,
	nakedPair,
	nakedTriple,
	nakedQuad,
	lockedCandidates,
	hiddenPair,
	hiddenTriple,
	hiddenQuad,
	xWing,
	yWing,
	simpleColoring,
}

// Next runs the pipeline once: the first technique that finds progress
// is applied to the Analyzer's own state and its Step is returned. If the
// board is already completed, it returns {action: done}. If no technique
// finds progress, it returns {action: stuck, technique: none}.
func (a *Analyzer) Next() Step {
	if a.b.Completed() {
		a.done = true
		return Step{Action: ActionDone}
	}

	for _, technique := range pipeline {
		step, ok := technique(a)
		if !ok {
			continue
		}
		switch step.Action {
		case ActionSolve:
			a.solve(step.Indexes[0], step.Values[0])
		case ActionEliminate:
			a.eliminate(step.Indexes, step.Values)
		}
		if Debug {
			a.assertValid()
		}
		return step
	}

	a.done = true
	a.stuck = true
	return Step{Action: ActionStuck, Technique: TechniqueNone}
}

// solve sets board[i] = x, collapses candidates[i] to {x}, and clears bit
// x from every dependent's candidates.
func (a *Analyzer) solve(i, x int) {
	a.b.Set(i, x)
	a.candidates[i] = board.Of(x)
	for _, j := range board.Dependents(i) {
		a.candidates[j] = a.candidates[j].Clear(x)
		if Debug && a.candidates[j].IsEmpty() {
			panic(fmt.Sprintf("analyze: propagating %d from cell %d emptied candidates at cell %d", x, i, j))
		}
	}
}

// eliminate clears every digit in values from every cell in indexes.
func (a *Analyzer) eliminate(indexes, values []int) {
	for _, i := range indexes {
		for _, v := range values {
			a.candidates[i] = a.candidates[i].Clear(v)
		}
		if Debug && a.candidates[i].IsEmpty() {
			panic(fmt.Sprintf("analyze: elimination emptied candidates at cell %d", i))
		}
	}
}

// assertValid checks invariant I1: every cell has a non-zero candidate mask.
func (a *Analyzer) assertValid() {
	for i, c := range a.candidates {
		if c.IsEmpty() {
			panic(fmt.Sprintf("analyze: invariant violated, cell %d has no candidates", i))
		}
	}
}
