package analyze

import (
	"fmt"

	"github.com/jambolo/sudoku/internal/board"
	"github.com/jambolo/sudoku/internal/link"
)

// simpleColoring builds the graph of strong links on a digit rooted at
// each cell and 2-colors it. Cells of one color either all have the
// digit or none do, so if two cells of the same color can see each
// other, the digit can be eliminated from every cell of that color.
func simpleColoring(a *Analyzer) (Step, bool) {
	for i := 0; i < board.Size*board.Size; i++ {
		if !a.b.IsEmpty(i) {
			continue
		}
		for _, v := range a.candidates[i].Values() {
			red, green := colorChains(a, i, v)
			for _, set := range [2][]int{red, green} {
				x, y, ok := collision(set)
				if !ok {
					continue
				}
				return Step{
					Action:    ActionEliminate,
					Technique: TechniqueSimpleColoring,
					Indexes:   set,
					Values:    []int{v},
					Reason:    coloringReason(v, x, y),
				}, true
			}
		}
	}
	return Step{}, false
}

// colorChains walks the strong links on v reachable from i with a
// breadth-first search, alternating colors along each link. The two
// returned sets are in ascending cell order.
func colorChains(a *Analyzer, i, v int) (red, green []int) {
	colors := map[int]int{i: 0}
	queue := []int{i}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, l := range link.FindStrongForCell(a.candidates[:], cur) {
			if l.Value != v {
				continue
			}
			next := l.Cell1
			if _, seen := colors[next]; seen {
				continue
			}
			colors[next] = 1 - colors[cur]
			queue = append(queue, next)
		}
	}
	for j := 0; j < board.Size*board.Size; j++ {
		switch c, seen := colors[j]; {
		case !seen:
		case c == 0:
			red = append(red, j)
		default:
			green = append(green, j)
		}
	}
	return red, green
}

// collision returns the first pair of cells in set (ascending) that see
// each other.
func collision(set []int) (int, int, bool) {
	for x := 0; x < len(set)-1; x++ {
		for y := x + 1; y < len(set); y++ {
			if board.Sees(set[x], set[y]) {
				return set[x], set[y], true
			}
		}
	}
	return 0, 0, false
}

func coloringReason(v, x, y int) string {
	return fmt.Sprintf(
		"These squares are connected by a chain of strong links, so either all of them are %d or none of them are. "+
			"%s and %s can see each other, so they cannot both be %d. Therefore, none of these squares can be %d.",
		v, board.CellName(x), board.CellName(y), v, v)
}
