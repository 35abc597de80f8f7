package board

// ============================================================================
// Fixed grid geometry
// ============================================================================
//
// The dependents table and the row/column/box membership tables are
// precomputed once at package initialization and never mutated afterward;
// every query below is a read against these constant arrays.

const (
	// Size is the number of rows, columns, and digits.
	Size = 9
	// BoxSize is the edge length of a box.
	BoxSize = 3
	// Empty is the cell value denoting an unfilled square.
	Empty = 0
)

// Index returns the flat index of row r, column c.
func Index(r, c int) int {
	return Size*r + c
}

// RowOf returns the row (0-8) of index i.
func RowOf(i int) int {
	return i / Size
}

// ColOf returns the column (0-8) of index i.
func ColOf(i int) int {
	return i % Size
}

// BoxOf returns the box (0-8, row-major) of index i.
func BoxOf(i int) int {
	r, c := RowOf(i), ColOf(i)
	return BoxSize*(r/BoxSize) + c/BoxSize
}

var (
	rowUnits    [Size][]int
	columnUnits [Size][]int
	boxUnits    [Size][]int
	dependents  [Size * Size][]int
)

func init() {
	for r := 0; r < Size; r++ {
		unit := make([]int, Size)
		for c := 0; c < Size; c++ {
			unit[c] = Index(r, c)
		}
		rowUnits[r] = unit
	}
	for c := 0; c < Size; c++ {
		unit := make([]int, Size)
		for r := 0; r < Size; r++ {
			unit[r] = Index(r, c)
		}
		columnUnits[c] = unit
	}
	for b := 0; b < Size; b++ {
		br, bc := BoxSize*(b/BoxSize), BoxSize*(b%BoxSize)
		unit := make([]int, 0, Size)
		for r := br; r < br+BoxSize; r++ {
			for c := bc; c < bc+BoxSize; c++ {
				unit = append(unit, Index(r, c))
			}
		}
		boxUnits[b] = unit
	}
	for i := 0; i < Size*Size; i++ {
		seen := make(map[int]bool, 20)
		var deps []int
		add := func(j int) {
			if j != i && !seen[j] {
				seen[j] = true
				deps = append(deps, j)
			}
		}
		for _, j := range rowUnits[RowOf(i)] {
			add(j)
		}
		for _, j := range columnUnits[ColOf(i)] {
			add(j)
		}
		for _, j := range boxUnits[BoxOf(i)] {
			add(j)
		}
		sortInts(deps)
		dependents[i] = deps
	}
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// Row returns the 9-element ascending cell-index list of row r.
func Row(r int) []int {
	return rowUnits[r]
}

// Column returns the 9-element ascending cell-index list of column c.
func Column(c int) []int {
	return columnUnits[c]
}

// Box returns the 9-element ascending cell-index list of box b.
func Box(b int) []int {
	return boxUnits[b]
}

// Units returns the three 9-element units (row, column, box) index i belongs to.
func Units(i int) [3][]int {
	return [3][]int{Row(RowOf(i)), Column(ColOf(i)), Box(BoxOf(i))}
}

// Dependents returns the ascending list of cells that see i: the other
// cells sharing its row, column, or box.
func Dependents(i int) []int {
	return dependents[i]
}

// CommonDependents returns the ascending intersection of Dependents(i) and
// Dependents(j): the cells that see both i and j.
func CommonDependents(i, j int) []int {
	a, b := dependents[i], dependents[j]
	inB := make(map[int]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}
	var common []int
	for _, x := range a {
		if inB[x] {
			common = append(common, x)
		}
	}
	return common
}

// Sees reports whether cells a and b share a row, column, or box.
func Sees(a, b int) bool {
	if a == b {
		return false
	}
	for _, d := range dependents[a] {
		if d == b {
			return true
		}
	}
	return false
}

// rowLetters skips 'I' to avoid confusion with the digit 1.
const rowLetters = "ABCDEFGHJ"

// RowName returns the letter label of row r.
func RowName(r int) string {
	return string(rowLetters[r])
}

// ColumnName returns the digit label of column c.
func ColumnName(c int) string {
	return string(rune('1' + c))
}

// BoxName returns the digit label of box b.
func BoxName(b int) string {
	return string(rune('1' + b))
}

// CellName returns "<RowLetter><ColumnDigit>", e.g. "A1".
func CellName(i int) string {
	return RowName(RowOf(i)) + ColumnName(ColOf(i))
}
