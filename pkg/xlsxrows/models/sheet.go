package models

// ColumnValue pairs a header with the value of one cell.
type ColumnValue struct {
	// Header is the label from the header row, or "" past its end.
	Header string `json:"header"`
	// Value is the folded cell value.
	Value CellValue `json:"value"`
}

// Row is one data row. Empty cells are absent unless they were requested,
// so positions within Columns do not necessarily match sheet columns.
type Row struct {
	Columns []ColumnValue `json:"columns"`
}

// Get returns the value of the first column labelled header.
func (r Row) Get(header string) (CellValue, bool) {
	for _, c := range r.Columns {
		if c.Header == header {
			return c.Value, true
		}
	}
	return CellValue{}, false
}

// SheetResult holds the data rows of a single sheet.
type SheetResult struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Rows are in physical order, header row excluded.
	Rows []Row `json:"rows"`
}

// Headers returns the distinct headers seen in the rows, in order of first
// appearance.
func (s SheetResult) Headers() []string {
	seen := make(map[string]struct{})
	var headers []string
	for _, row := range s.Rows {
		for _, c := range row.Columns {
			if _, ok := seen[c.Header]; ok {
				continue
			}
			seen[c.Header] = struct{}{}
			headers = append(headers, c.Header)
		}
	}
	return headers
}
