package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
)

// hiddenPair finds two values confined to the same two cells of a unit
// and strips any other candidates from those two cells.
func hiddenPair(a *Analyzer) (Step, bool) {
	return hiddenSubset(a, 2, TechniqueHiddenPair, hiddenPairReason)
}

func hiddenTriple(a *Analyzer) (Step, bool) {
	return hiddenSubset(a, 3, TechniqueHiddenTriple, hiddenTripleReason)
}

func hiddenQuad(a *Analyzer) (Step, bool) {
	return hiddenSubset(a, 4, TechniqueHiddenQuad, hiddenQuadReason)
}

func hiddenSubset(a *Analyzer, size int, technique string, reasonFn func(unitKind, unitName string, hidden []int) string) (Step, bool) {
	for _, g := range unitGroups {
		for u := 0; u < board.Size; u++ {
			if cells, values, hidden, ok := hiddenSubsetInUnit(a, g.unit(u), size); ok {
				reason := reasonFn(g.kind, g.name(u), hidden)
				return Step{Action: ActionEliminate, Technique: technique, Indexes: cells, Values: values, Reason: reason}, true
			}
		}
	}
	return Step{}, false
}

// hiddenSubsetInUnit tries every combination of size digits; if exactly
// size cells in the unit carry any of them, and each digit occurs in at
// least two of those cells, the digits are confined to that set of
// cells. Any other candidate in those cells can then be eliminated.
func hiddenSubsetInUnit(a *Analyzer, unit []int, size int) ([]int, []int, []int, bool) {
	for _, combo := range valueCombos(size) {
		var m board.Candidates
		for _, v := range combo {
			m = m.Set(v)
		}

		var found []int
		counts := make([]int, size)
		giveUp := false
		for _, i := range unit {
			c := a.candidates[i]
			if c.Intersect(m).IsEmpty() {
				continue
			}
			found = append(found, i)
			if len(found) > size {
				giveUp = true
				break
			}
			for k, v := range combo {
				if c.Has(v) {
					counts[k]++
				}
			}
		}
		if giveUp || len(found) != size {
			continue
		}
		allAtLeast2 := true
		for _, cnt := range counts {
			if cnt < 2 {
				allAtLeast2 = false
				break
			}
		}
		if !allAtLeast2 {
			continue
		}

		var union board.Candidates
		for _, i := range found {
			union = union.Union(a.candidates[i])
		}
		eliminated := union.Subtract(m)
		if eliminated.IsEmpty() {
			continue
		}
		return found, eliminated.Values(), combo, true
	}
	return nil, nil, nil, false
}

// valueCombos returns every increasing combination of size digits from
// 1..9.
func valueCombos(size int) [][]int {
	var result [][]int
	var combo []int
	var rec func(start int)
	rec = func(start int) {
		if len(combo) == size {
			result = append(result, append([]int(nil), combo...))
			return
		}
		for v := start; v <= board.Size; v++ {
			combo = append(combo, v)
			rec(v + 1)
			combo = combo[:len(combo)-1]
		}
	}
	rec(1)
	return result
}

func hiddenPairReason(unit, which string, hidden []int) string {
	return fmt.Sprintf(
		"Only these two squares in %s %s can be %d or %d, so they cannot be any other values.",
		unit, which, hidden[0], hidden[1])
}

func hiddenTripleReason(unit, which string, hidden []int) string {
	return fmt.Sprintf(
		"Only these three squares in %s %s can be %d, %d, or %d, so they cannot be any other values.",
		unit, which, hidden[0], hidden[1], hidden[2])
}

func hiddenQuadReason(unit, which string, hidden []int) string {
	return fmt.Sprintf(
		"Only these four squares in %s %s can be %d, %d, %d, or %d, so they cannot be any other values.",
		unit, which, hidden[0], hidden[1], hidden[2], hidden[3])
}
