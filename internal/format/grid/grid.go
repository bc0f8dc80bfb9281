package grid

// DefaultCellWidth is the terminal columns reserved per glyph slot: two for
// the glyph itself plus two of spacing.
const DefaultCellWidth = 4

// Cell is one rendered grid slot: the symbol it shows and where it sits.
// X is in terminal columns, Y in rows.
type Cell struct {
	Symbol string
	Index  int
	X      int
	Y      int
}

// FitColumns returns how many slots of cellWidth fit into width, never
// fewer than one.
func FitColumns(width, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	columns := width / cellWidth
	if columns < 1 {
		columns = 1
	}
	return columns
}

// Place lays symbols out row-major across the given column count.
func Place(symbols []string, columns, cellWidth int) []Cell {
	if columns < 1 {
		columns = 1
	}
	cells := make([]Cell, len(symbols))
	for i, symbol := range symbols {
		col := i % columns
		cells[i] = Cell{
			Symbol: symbol,
			Index:  i,
			X:      col * cellWidth,
			Y:      i / columns,
		}
	}
	return cells
}

// SplitRows groups consecutive cells by row for line-based rendering.
func SplitRows(cells []Cell) [][]Cell {
	if len(cells) == 0 {
		return nil
	}
	var rows [][]Cell
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i == len(cells) || cells[i].Y != cells[start].Y {
			rows = append(rows, cells[start:i])
			start = i
		}
	}
	return rows
}

// Columns infers the column count from rendered cell geometry. With fewer
// than two cells the answer is one; otherwise the first two cells decide
// whether the layout wrapped at all, and the leading run of cells sharing
// the first row gives the count.
func Columns(cells []Cell) int {
	if len(cells) < 2 {
		return 1
	}
	if cells[0].Y != cells[1].Y {
		return 1
	}
	count := 1
	for _, cell := range cells[1:] {
		if cell.Y != cells[0].Y {
			break
		}
		count++
	}
	return count
}
