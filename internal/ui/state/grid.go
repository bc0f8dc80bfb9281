package state

import "github.com/atomicstack/emoji-popup-picker/internal/format/grid"

// Grid holds the accepted result set together with the cells rendered from
// it so far. Rendering happens in batches, so Cells usually trails Symbols
// until the renderer catches up. Replacing the symbols bumps Generation;
// in-flight batch messages carry the generation they were produced for and
// are dropped when it no longer matches.
type Grid struct {
	Symbols    []string
	Generation int
	Cells      []grid.Cell
	Columns    int
	CellWidth  int
}

// NewGrid returns an empty grid laid out with the given geometry.
func NewGrid(columns, cellWidth int) *Grid {
	if columns < 1 {
		columns = 1
	}
	if cellWidth <= 0 {
		cellWidth = grid.DefaultCellWidth
	}
	return &Grid{Columns: columns, CellWidth: cellWidth}
}

// Replace swaps in a new result set and clears the rendered cells. The
// rendered count restarts from zero; this is the only path that shrinks it.
func (g *Grid) Replace(symbols []string) {
	g.Symbols = symbols
	g.Generation++
	g.Cells = nil
}

// AppendBatch renders up to limit further symbols into cells. Reports the
// number of cells added.
func (g *Grid) AppendBatch(limit int) int {
	if limit <= 0 {
		return 0
	}
	end := len(g.Cells) + limit
	if end > len(g.Symbols) {
		end = len(g.Symbols)
	}
	added := end - len(g.Cells)
	if added <= 0 {
		return 0
	}
	g.Cells = grid.Place(g.Symbols[:end], g.Columns, g.CellWidth)
	return added
}

// RenderedCount reports how many cells have been rendered so far.
func (g *Grid) RenderedCount() int {
	return len(g.Cells)
}

// Done reports whether every symbol has a rendered cell.
func (g *Grid) Done() bool {
	return len(g.Cells) >= len(g.Symbols)
}

// SetColumns re-lays the rendered cells out over a new column count. The
// rendered count is preserved; only positions change.
func (g *Grid) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	if columns == g.Columns {
		return
	}
	g.Columns = columns
	if len(g.Cells) > 0 {
		g.Cells = grid.Place(g.Symbols[:len(g.Cells)], g.Columns, g.CellWidth)
	}
}

// Cell returns the rendered cell at index.
func (g *Grid) Cell(index int) (grid.Cell, bool) {
	if index < 0 || index >= len(g.Cells) {
		return grid.Cell{}, false
	}
	return g.Cells[index], true
}

// InferColumns derives the column count from the rendered cell geometry
// rather than the configured layout, so navigation always agrees with what
// is actually on screen.
func (g *Grid) InferColumns() int {
	return grid.Columns(g.Cells)
}

// Rows groups the rendered cells into display rows.
func (g *Grid) Rows() [][]grid.Cell {
	return grid.SplitRows(g.Cells)
}
