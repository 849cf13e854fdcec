package parser

// Grid is a rectangular block of decoded cells. Row 0 is the header row.
type Grid struct {
	rows  [][]Cell
	width int
}

// NewGrid builds a Grid from rows of cells, padding short rows with Empty
// cells so every row has the width of the longest one. The caller's slices
// are left unchanged.
func NewGrid(rows [][]Cell) *Grid {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = make([]Cell, width)
		copy(out[i], row)
	}
	return &Grid{rows: out, width: width}
}

// Rows returns the grid rows, header row first.
func (g *Grid) Rows() [][]Cell {
	if g == nil {
		return nil
	}
	return g.rows
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height returns the number of rows, header row included.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Headers returns the display text of the header row. It returns false
// when the grid has no rows.
func (g *Grid) Headers() ([]string, bool) {
	if g.Height() == 0 {
		return nil, false
	}
	headers := make([]string, len(g.rows[0]))
	for i, c := range g.rows[0] {
		headers[i] = c.String()
	}
	return headers, true
}

// cropGrid cuts the rectangle of rows [headerRow, maxRow] and columns
// [minCol, maxCol] out of the decoded sheet, where the bounds are those of
// the non-empty cells. Rows above headerRow are dropped even when they
// hold data.
func cropGrid(rows [][]Cell, headerRow int) *Grid {
	_, maxRow, minCol, maxCol := findDataBounds(rows)
	if maxRow < 0 || headerRow > maxRow {
		return &Grid{}
	}
	width := maxCol - minCol + 1
	out := make([][]Cell, 0, maxRow-headerRow+1)
	for r := headerRow; r <= maxRow; r++ {
		row := make([]Cell, width)
		if r < len(rows) {
			src := rows[r]
			for c := minCol; c <= maxCol && c < len(src); c++ {
				row[c-minCol] = src[c]
			}
		}
		out = append(out, row)
	}
	return &Grid{rows: out, width: width}
}

// findDataBounds finds the bounding box of non-empty cells. All bounds
// are -1 when there are none.
func findDataBounds(rows [][]Cell) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell.Kind == KindEmpty {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
