package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
)

// nakedSingle finds an empty cell with exactly one remaining candidate.
func nakedSingle(a *Analyzer) (Step, bool) {
	for i := 0; i < 81; i++ {
		if a.b.IsEmpty(i) && a.candidates[i].IsSolved() {
			v := a.candidates[i].Value()
			return Step{
				Action:    ActionSolve,
				Technique: TechniqueNakedSingle,
				Indexes:   []int{i},
				Values:    []int{v},
				Reason:    "There are no other possible values for this square.",
			}, true
		}
	}
	return Step{}, false
}

type unitGroup struct {
	kind string
	unit func(u int) []int
	name func(u int) string
}

var unitGroups = []unitGroup{
	{"row", board.Row, board.RowName},
	{"column", board.Column, board.ColumnName},
	{"box", board.Box, board.BoxName},
}

// hiddenSingle finds a digit that appears as a candidate in exactly one
// cell of some unit (rows, then columns, then boxes; ascending within).
func hiddenSingle(a *Analyzer) (Step, bool) {
	for _, g := range unitGroups {
		for u := 0; u < board.Size; u++ {
			if i, v, ok := hiddenSingleInUnit(a, g.unit(u)); ok {
				reason := fmt.Sprintf("This is the only square in %s %s that can have this value.", g.kind, g.name(u))
				return Step{Action: ActionSolve, Technique: TechniqueHiddenSingle, Indexes: []int{i}, Values: []int{v}, Reason: reason}, true
			}
		}
	}
	return Step{}, false
}

func hiddenSingleInUnit(a *Analyzer, unit []int) (int, int, bool) {
	for _, s := range unit {
		if !a.b.IsEmpty(s) {
			continue
		}
		var others board.Candidates
		for _, t := range unit {
			if t != s {
				others = others.Union(a.candidates[t])
			}
		}
		exclusive := a.candidates[s].Subtract(others)
		if !exclusive.IsEmpty() {
			return s, exclusive.Values()[0], true
		}
	}
	return 0, 0, false
}

// lockedCandidates looks at the intersection of each row/column with a
// box: if a digit confined to the intersection within one unit does not
// occur elsewhere in that unit, it is eliminated from the rest of the
// other unit. Four directions: row->box, column->box, box->row, box->col.
func lockedCandidates(a *Analyzer) (Step, bool) {
	for r := 0; r < board.Size; r++ {
		row := board.Row(r)
		for _, c0 := range []int{0, board.BoxSize, 2 * board.BoxSize} {
			b := board.BoxOf(board.Index(r, c0))
			box := board.Box(b)
			if indexes, values, ok := lockedFind(a, row, box); ok {
				reason := fmt.Sprintf(
					"Since the portion of box %s within row %s must contain these values, they cannot be anywhere else in box %s.",
					board.BoxName(b), board.RowName(r), board.BoxName(b))
				return Step{Action: ActionEliminate, Technique: TechniqueLockedCandidates, Indexes: indexes, Values: values, Reason: reason}, true
			}
		}
	}

	for c := 0; c < board.Size; c++ {
		column := board.Column(c)
		for _, r0 := range []int{0, board.BoxSize, 2 * board.BoxSize} {
			b := board.BoxOf(board.Index(r0, c))
			box := board.Box(b)
			if indexes, values, ok := lockedFind(a, column, box); ok {
				reason := fmt.Sprintf(
					"Since the portion of box %s within column %s must contain these values, they cannot be anywhere else in box %s.",
					board.BoxName(b), board.ColumnName(c), board.BoxName(b))
				return Step{Action: ActionEliminate, Technique: TechniqueLockedCandidates, Indexes: indexes, Values: values, Reason: reason}, true
			}
		}
	}

	for b := 0; b < board.Size; b++ {
		box := board.Box(b)
		for _, r0 := range []int{0, board.BoxSize, 2 * board.BoxSize} {
			r := board.RowOf(box[0]) + r0/board.BoxSize
			row := board.Row(r)
			if indexes, values, ok := lockedFind(a, box, row); ok {
				reason := fmt.Sprintf(
					"Since the portion of row %s within box %s must contain these values, they cannot be anywhere else in row %s.",
					board.RowName(r), board.BoxName(b), board.RowName(r))
				return Step{Action: ActionEliminate, Technique: TechniqueLockedCandidates, Indexes: indexes, Values: values, Reason: reason}, true
			}
		}
	}

	for b := 0; b < board.Size; b++ {
		box := board.Box(b)
		for _, c0 := range []int{0, board.BoxSize, 2 * board.BoxSize} {
			c := board.ColOf(box[0]) + c0/board.BoxSize
			column := board.Column(c)
			if indexes, values, ok := lockedFind(a, box, column); ok {
				reason := fmt.Sprintf(
					"Since the portion of column %s within box %s must contain these values, they cannot be anywhere else in column %s.",
					board.ColumnName(c), board.BoxName(b), board.ColumnName(c))
				return Step{Action: ActionEliminate, Technique: TechniqueLockedCandidates, Indexes: indexes, Values: values, Reason: reason}, true
			}
		}
	}

	return Step{}, false
}

// lockedFind implements the shared intersection/elimination logic: the
// candidates confined to set1∩set2 within set1 (not appearing elsewhere
// in set1) must be eliminated from the rest of set2.
func lockedFind(a *Analyzer, set1, set2 []int) ([]int, []int, bool) {
	intersection := intersectSorted(set1, set2)
	if len(intersection) == 0 {
		return nil, nil, false
	}
	others1 := subtractSorted(set1, intersection)
	others2 := subtractSorted(set2, intersection)

	intersectionCandidates := unsolvedUnion(a, intersection)
	otherCandidates1 := unsolvedUnion(a, others1)
	unique := intersectionCandidates.Subtract(otherCandidates1)
	if unique.IsEmpty() {
		return nil, nil, false
	}

	var indexes []int
	for _, i := range others2 {
		if !a.candidates[i].Intersect(unique).IsEmpty() {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) == 0 {
		return nil, nil, false
	}
	return indexes, unique.Values(), true
}

func unsolvedUnion(a *Analyzer, indexes []int) board.Candidates {
	var c board.Candidates
	for _, i := range indexes {
		if !a.candidates[i].IsSolved() {
			c = c.Union(a.candidates[i])
		}
	}
	return c
}

func intersectSorted(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}
	var out []int
	for _, x := range a {
		if inB[x] {
			out = append(out, x)
		}
	}
	return out
}

func subtractSorted(a, b []int) []int {
	inB := make(map[int]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}
	var out []int
	for _, x := range a {
		if !inB[x] {
			out = append(out, x)
		}
	}
	return out
}
