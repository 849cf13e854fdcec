package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an opened xlsx workbook.
type Workbook struct {
	f         *excelize.File
	headerRow int
	dateStyle map[int]bool
}

// Open decodes an xlsx workbook held in memory.
func Open(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f, dateStyle: make(map[int]bool)}, nil
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SetHeaderRow sets the zero-based row that Grid puts first.
func (w *Workbook) SetHeaderRow(row int) {
	w.headerRow = row
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid decodes a sheet into a typed grid starting at the header row.
// It returns an error wrapping excelize.ErrSheetNotExist when the sheet
// is unknown.
func (w *Workbook) Grid(sheetName string) (*Grid, error) {
	if idx, err := w.f.GetSheetIndex(sheetName); err != nil {
		return nil, err
	} else if idx < 0 {
		return nil, excelize.ErrSheetNotExist{SheetName: sheetName}
	}

	raw, err := w.rawRows(sheetName)
	if err != nil {
		return nil, err
	}

	// Cells holding an empty string carry no raw value, so every position
	// up to the sheet width is looked up by type.
	width := w.sheetWidth(sheetName, raw)
	colNames := make([]string, width)
	for i := range colNames {
		if colNames[i], err = excelize.ColumnNumberToName(i + 1); err != nil {
			return nil, err
		}
	}

	cells := make([][]Cell, len(raw))
	for rowIdx, row := range raw {
		rowNum := strconv.Itoa(rowIdx + 1) // 1-based row index
		cells[rowIdx] = make([]Cell, width)
		for colIdx, col := range colNames {
			var val string
			if colIdx < len(row) {
				val = row[colIdx]
			}
			axis := col + rowNum
			typ, err := w.f.GetCellType(sheetName, axis)
			if err != nil {
				return nil, fmt.Errorf("%s[%s]: %w", sheetName, axis, err)
			}
			cells[rowIdx][colIdx] = classifyCell(val, typ, func() bool {
				return w.isDateCell(sheetName, axis)
			})
		}
	}
	return cropGrid(cells, w.headerRow), nil
}

// rawRows streams the raw cell values of every row element in the sheet.
func (w *Workbook) rawRows(sheetName string) ([][]string, error) {
	rows, err := w.f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw [][]string
	for rows.Next() {
		row, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", sheetName, len(raw)+1, err)
		}
		raw = append(raw, row)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return raw, nil
}

// sheetWidth is the larger of the stored sheet dimension and the widest
// row of raw values.
func (w *Workbook) sheetWidth(sheetName string, raw [][]string) int {
	width := 0
	for _, row := range raw {
		width = max(width, len(row))
	}
	dim, err := w.f.GetSheetDimension(sheetName)
	if err != nil || dim == "" {
		return width
	}
	last := dim[strings.LastIndexByte(dim, ':')+1:]
	if col, _, err := excelize.CellNameToCoordinates(last); err == nil {
		width = max(width, col)
	}
	return width
}

// isDateCell reports whether the cell at axis has a date number format.
// Style lookups are cached per style index.
func (w *Workbook) isDateCell(sheetName, axis string) bool {
	idx, err := w.f.GetCellStyle(sheetName, axis)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := w.dateStyle[idx]; ok {
		return isDate
	}
	style, err := w.f.GetStyle(idx)
	isDate := err == nil && isDateStyle(style)
	w.dateStyle[idx] = isDate
	return isDate
}
