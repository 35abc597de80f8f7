package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/link"
)

// xWing looks for a digit confined to the same two columns in two rows
// (or the same two rows in two columns). One of the two cells in each
// column must have the digit, so it can be eliminated from the rest of
// those columns. Rows first, then columns.
func xWing(a *Analyzer) (Step, bool) {
	for r0 := 0; r0 < board.Size-1; r0++ {
		for _, l := range link.FindStrongInUnit(a.candidates[:], board.Row(r0)) {
			c0, c1 := board.ColOf(l.Cell0), board.ColOf(l.Cell1)
			v := l.Value
			mask := board.Of(v)
			for r1 := r0 + 1; r1 < board.Size; r1++ {
				otherRow := board.Row(r1)
				if !link.Exists(a.candidates[:], otherRow[c0], otherRow[c1], mask, otherRow) {
					continue
				}
				var indexes []int
				for _, c := range [2]int{c0, c1} {
					for _, i := range board.Column(c) {
						if i == board.Index(r0, c) || i == board.Index(r1, c) {
							continue
						}
						if a.candidates[i].Has(v) {
							indexes = append(indexes, i)
						}
					}
				}
				if len(indexes) == 0 {
					continue
				}
				pivots := [4]int{board.Index(r0, c0), board.Index(r0, c1), board.Index(r1, c0), board.Index(r1, c1)}
				return Step{
					Action:    ActionEliminate,
					Technique: TechniqueXWing,
					Indexes:   indexes,
					Values:    []int{v},
					Reason:    xWingRowReason(v, pivots),
				}, true
			}
		}
	}

	for c0 := 0; c0 < board.Size-1; c0++ {
		for _, l := range link.FindStrongInUnit(a.candidates[:], board.Column(c0)) {
			r0, r1 := board.RowOf(l.Cell0), board.RowOf(l.Cell1)
			v := l.Value
			mask := board.Of(v)
			for c1 := c0 + 1; c1 < board.Size; c1++ {
				otherColumn := board.Column(c1)
				if !link.Exists(a.candidates[:], otherColumn[r0], otherColumn[r1], mask, otherColumn) {
					continue
				}
				var indexes []int
				for _, r := range [2]int{r0, r1} {
					for _, i := range board.Row(r) {
						if i == board.Index(r, c0) || i == board.Index(r, c1) {
							continue
						}
						if a.candidates[i].Has(v) {
							indexes = append(indexes, i)
						}
					}
				}
				if len(indexes) == 0 {
					continue
				}
				pivots := [4]int{board.Index(r0, c0), board.Index(r1, c0), board.Index(r0, c1), board.Index(r1, c1)}
				return Step{
					Action:    ActionEliminate,
					Technique: TechniqueXWing,
					Indexes:   indexes,
					Values:    []int{v},
					Reason:    xWingColumnReason(v, pivots),
				}, true
			}
		}
	}

	return Step{}, false
}

func xWingRowReason(v int, pivots [4]int) string {
	r0, c0 := board.RowOf(pivots[0]), board.ColOf(pivots[0])
	r3, c3 := board.RowOf(pivots[3]), board.ColOf(pivots[3])
	return fmt.Sprintf(
		"Only %s and %s in row %s and only %s and %s in row %s can have the value %d. "+
			"These squares are in the same two columns, %s and %s, so one of the squares in each column "+
			"must have this value and none of the other squares in these columns can.",
		board.CellName(pivots[0]), board.CellName(pivots[1]), board.RowName(r0),
		board.CellName(pivots[2]), board.CellName(pivots[3]), board.RowName(r3),
		v, board.ColumnName(c0), board.ColumnName(c3))
}

func xWingColumnReason(v int, pivots [4]int) string {
	r0, c0 := board.RowOf(pivots[0]), board.ColOf(pivots[0])
	r3, c3 := board.RowOf(pivots[3]), board.ColOf(pivots[3])
	return fmt.Sprintf(
		"Only %s and %s in column %s and only %s and %s in column %s can have the value %d. "+
			"These squares are in the same two rows, %s and %s. One of the squares in each row "+
			"must have this value and so none of the other squares in these rows can.",
		board.CellName(pivots[0]), board.CellName(pivots[1]), board.ColumnName(c0),
		board.CellName(pivots[2]), board.CellName(pivots[3]), board.ColumnName(c3),
		v, board.RowName(r0), board.RowName(r3))
}

// yWing looks for a bi-value pivot {a,b} that sees a bi-value cell {a,c}
// and a bi-value cell {b,c}. Whichever value the pivot takes, one of the
// two wings must be c, so any cell seeing both wings cannot be c.
func yWing(a *Analyzer) (Step, bool) {
	for p := 0; p < board.Size*board.Size; p++ {
		cp := a.candidates[p]
		if !a.b.IsEmpty(p) || !cp.IsBivalue() {
			continue
		}
		deps := board.Dependents(p)
		for x := 0; x < len(deps)-1; x++ {
			w1 := deps[x]
			cw1 := a.candidates[w1]
			if !a.b.IsEmpty(w1) || !cw1.IsBivalue() {
				continue
			}
			shared1 := cp.Intersect(cw1)
			if shared1.Count() != 1 {
				continue
			}
			for y := x + 1; y < len(deps); y++ {
				w2 := deps[y]
				cw2 := a.candidates[w2]
				if !a.b.IsEmpty(w2) || !cw2.IsBivalue() {
					continue
				}
				shared2 := cp.Intersect(cw2)
				if shared2.Count() != 1 || shared2 == shared1 {
					continue
				}
				third := cw1.Subtract(cp).Intersect(cw2.Subtract(cp))
				if third.IsEmpty() {
					continue
				}
				v3 := third.Value()
				var indexes []int
				for _, s := range board.CommonDependents(w1, w2) {
					if a.candidates[s].Has(v3) && !a.candidates[s].IsSolved() {
						indexes = append(indexes, s)
					}
				}
				if len(indexes) == 0 {
					continue
				}
				return Step{
					Action:    ActionEliminate,
					Technique: TechniqueYWing,
					Indexes:   indexes,
					Values:    []int{v3},
					Reason:    yWingReason(p, w1, w2, shared1.Value(), shared2.Value(), v3),
				}, true
			}
		}
	}
	return Step{}, false
}

func yWingReason(pivot, w1, w2, v1, v2, v3 int) string {
	return fmt.Sprintf(
		"If square %s is %d, then square %s must be %d, or if square %s is %d then square %s must be %d. "+
			"Either way, none of these squares can be %d.",
		board.CellName(pivot), v1, board.CellName(w1), v3,
		board.CellName(pivot), v2, board.CellName(w2), v3,
		v3)
}
