package core

// Mapper converts pointer positions in pixels into grid cells.
type Mapper struct {
	CellSize   int
	Rows, Cols int
}

// NewMapper returns a mapper for g with the given cell size in pixels.
func NewMapper(g *Grid, cellSize int) Mapper {
	return Mapper{CellSize: cellSize, Rows: g.Rows, Cols: g.Cols}
}

// Cell maps a pixel position to (row, col). The row comes from the vertical
// component py and the column from the horizontal component px, matching how
// cells are painted. Positions outside the grid are rejected rather than
// clamped.
func (m Mapper) Cell(px, py int) (row, col int, ok bool) {
	if m.CellSize <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	row, col = py/m.CellSize, px/m.CellSize
	if row >= m.Rows || col >= m.Cols {
		return 0, 0, false
	}
	return row, col, true
}
