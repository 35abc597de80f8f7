// Package link finds strong and weak links between cells that share a
// candidate digit within a unit, centralizing the adjacency search that
// the X-Wing and Simple Coloring techniques of the Analyzer consume.
package link

import "github.com/jambolo/sudoku/internal/board"

// Strong is a strong link: digit Value is a candidate in exactly two
// cells, Cell0 and Cell1, of some unit. {a,b,v} and {b,a,v} are the same
// link; callers should not rely on an ordering between Cell0 and Cell1
// beyond "as found."
type Strong struct {
	Cell0, Cell1 int
	Value        int
}

// FindStrongInUnit returns every strong link within unit, one pass per
// digit with an already-tested bitmask so no digit is rechecked.
func FindStrongInUnit(cands []board.Candidates, unit []int) []Strong {
	var links []Strong
	var alreadyTested board.Candidates

	for u0 := 0; u0 < len(unit)-1; u0++ {
		i0 := unit[u0]
		c0 := cands[i0]
		if c0.IsSolved() {
			continue
		}
		c0 = c0.Subtract(alreadyTested)
		if c0.IsEmpty() {
			continue
		}
		for _, v := range c0.Values() {
			mask := board.Of(v)
			for u1 := u0 + 1; u1 < len(unit); u1++ {
				i1 := unit[u1]
				if cands[i0].Intersect(cands[i1]).Intersect(mask).IsEmpty() {
					continue
				}
				if strongExistsInRange(cands, unit, u1, mask) {
					links = append(links, Strong{Cell0: i0, Cell1: i1, Value: v})
				}
				break
			}
		}
		alreadyTested = alreadyTested.Union(c0)
	}
	return links
}

// strongExistsInRange reports whether, given that no cell in unit[0:u1)
// other than the established first endpoint carries mask, no cell after
// u1 carries it either (so exactly two cells in the unit have the digit).
func strongExistsInRange(cands []board.Candidates, unit []int, u1 int, mask board.Candidates) bool {
	for u2 := u1 + 1; u2 < len(unit); u2++ {
		if !cands[unit[u2]].Intersect(mask).IsEmpty() {
			return false
		}
	}
	return true
}

// FindStrongForCell returns the union of strong links involving cell i
// across its row, column, and box.
func FindStrongForCell(cands []board.Candidates, i int) []Strong {
	var links []Strong
	for _, unit := range board.Units(i) {
		links = append(links, strongLinksTouching(cands, unit, i)...)
	}
	return links
}

func strongLinksTouching(cands []board.Candidates, unit []int, i int) []Strong {
	var links []Strong
	for _, v := range cands[i].Values() {
		mask := board.Of(v)
		for _, j := range unit {
			if j == i {
				continue
			}
			if Exists(cands, i, j, mask, unit) {
				links = append(links, Strong{Cell0: i, Cell1: j, Value: v})
			}
		}
	}
	return links
}

// Exists reports whether i and j form a strong link on mask within unit:
// both carry the digit, and no other cell in unit does.
func Exists(cands []board.Candidates, i, j int, mask board.Candidates, unit []int) bool {
	if cands[i].Intersect(cands[j]).Intersect(mask).IsEmpty() {
		return false
	}
	for _, k := range unit {
		if k != i && k != j && !cands[k].Intersect(mask).IsEmpty() {
			return false
		}
	}
	return true
}

// FindWeak returns every other cell in the row, column, or box of i that
// carries v as a candidate: a weak link on v between i and each of them.
func FindWeak(cands []board.Candidates, i, v int) []int {
	mask := board.Of(v)
	seen := make(map[int]bool)
	var result []int
	for _, unit := range board.Units(i) {
		for _, j := range unit {
			if j == i || seen[j] {
				continue
			}
			if !cands[j].Intersect(mask).IsEmpty() {
				seen[j] = true
				result = append(result, j)
			}
		}
	}
	return result
}
