package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
)

// nakedPair finds two cells in a unit whose combined candidates are
// exactly two values, and eliminates those values from the rest of
// the unit.
func nakedPair(a *Analyzer) (Step, bool) {
	return nakedSubset(a, 2, TechniqueNakedPair, nakedPairReason)
}

func nakedTriple(a *Analyzer) (Step, bool) {
	return nakedSubset(a, 3, TechniqueNakedTriple, nakedTripleReason)
}

func nakedQuad(a *Analyzer) (Step, bool) {
	return nakedSubset(a, 4, TechniqueNakedQuad, nakedQuadReason)
}

// nakedSubset searches rows, then columns, then boxes for size cells
// whose union of candidates has exactly size values, and removes those
// values from every other cell of the unit that carries any of them.
func nakedSubset(a *Analyzer, size int, technique string, reasonFn func(unitKind string, unitName string, cells []int) string) (Step, bool) {
	for _, g := range unitGroups {
		for u := 0; u < board.Size; u++ {
			if nakedIdx, indexes, values, ok := nakedSubsetInUnit(a, g.unit(u), size); ok {
				reason := reasonFn(g.kind, g.name(u), nakedIdx)
				return Step{Action: ActionEliminate, Technique: technique, Indexes: indexes, Values: values, Reason: reason}, true
			}
		}
	}
	return Step{}, false
}

func nakedSubsetInUnit(a *Analyzer, unit []int, size int) ([]int, []int, []int, bool) {
	var combo []int
	var cumulative board.Candidates
	var result bool
	var nakedIdx, elimIdx, elimVals []int

	var choose func(start int)
	choose = func(start int) {
		if result {
			return
		}
		if len(combo) == size {
			var elim []int
			for _, i := range unit {
				if contains(combo, i) {
					continue
				}
				if !a.candidates[i].Intersect(cumulative).IsEmpty() {
					elim = append(elim, i)
				}
			}
			if len(elim) > 0 {
				nakedIdx = append([]int(nil), combo...)
				elimIdx = elim
				elimVals = cumulative.Values()
				result = true
			}
			return
		}
		if start >= len(unit) {
			return
		}
		for k := start; k < len(unit); k++ {
			i := unit[k]
			c := a.candidates[i]
			if c.IsSolved() || c.Count() > size {
				continue
			}
			newCumulative := cumulative.Union(c)
			if newCumulative.Count() > size {
				continue
			}
			combo = append(combo, i)
			prevCumulative := cumulative
			cumulative = newCumulative
			choose(k + 1)
			cumulative = prevCumulative
			combo = combo[:len(combo)-1]
			if result {
				return
			}
		}
	}
	choose(0)
	if !result {
		return nil, nil, nil, false
	}
	return nakedIdx, elimIdx, elimVals, true
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func nakedPairReason(unit, which string, cells []int) string {
	return fmt.Sprintf(
		"Two other squares (%s and %s) in %s %s must be one of these two values, so these squares cannot be either of these two values.",
		board.CellName(cells[0]), board.CellName(cells[1]), unit, which)
}

func nakedTripleReason(unit, which string, cells []int) string {
	return fmt.Sprintf(
		"Three other squares (%s, %s and %s) in %s %s must be one of these three values, so these squares cannot be any of these three values.",
		board.CellName(cells[0]), board.CellName(cells[1]), board.CellName(cells[2]), unit, which)
}

func nakedQuadReason(unit, which string, cells []int) string {
	return fmt.Sprintf(
		"Four other squares (%s, %s, %s and %s) in %s %s must be one of these four values, so these squares cannot be any of these four values.",
		board.CellName(cells[0]), board.CellName(cells[1]), board.CellName(cells[2]), board.CellName(cells[3]), unit, which)
}
