package parser

import (
	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
)

// NormalizeSheet turns a decoded grid into header-tagged rows. Grid row 0
// supplies the headers and is not emitted. Empty cells are dropped from
// their row unless includeEmpty is set. Cells never cause an error: error
// values are rendered as text.
func NormalizeSheet(sheetName string, grid *Grid, includeEmpty bool) models.SheetResult {
	result := models.SheetResult{
		Sheet: sheetName,
		Rows:  []models.Row{},
	}

	headers, _ := grid.Headers()

	for rowIdx, row := range grid.Rows() {
		// skip header row
		if rowIdx == 0 {
			continue
		}

		columns := make([]models.ColumnValue, 0, len(row))
		for colIdx, cell := range row {
			if cell.Kind == KindEmpty && !includeEmpty {
				continue
			}
			var header string
			if colIdx < len(headers) {
				header = headers[colIdx]
			}
			columns = append(columns, models.ColumnValue{
				Header: header,
				Value:  FoldCell(cell),
			})
		}
		result.Rows = append(result.Rows, models.Row{Columns: columns})
	}

	return result
}

// FoldCell maps a decoded cell onto the closed output value set. Text,
// ISO dates, durations and errors become String; floats and date serials
// become Float.
func FoldCell(c Cell) models.CellValue {
	switch c.Kind {
	case KindInt:
		return models.Int(c.Int)
	case KindFloat, KindDateTime:
		return models.Float(c.Float)
	case KindBool:
		return models.Bool(c.Bool)
	case KindString, KindDateTimeISO, KindDurationISO, KindError:
		return models.String(c.Str)
	}
	return models.Empty()
}
