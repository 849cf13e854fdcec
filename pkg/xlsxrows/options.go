// Package xlsxrows extracts header-tagged rows from xlsx workbooks.
package xlsxrows

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SheetSelector chooses a single sheet to extract. It is implemented by
// SheetName and SheetIndex only; a nil selector selects every sheet.
type SheetSelector interface {
	isSheetSelector()
}

// SheetName selects a sheet by its exact name.
type SheetName string

// SheetIndex selects a sheet by its zero-based position in the workbook.
type SheetIndex int

func (SheetName) isSheetSelector()  {}
func (SheetIndex) isSheetSelector() {}

// Options configures a read. The zero value reads every sheet with row 0
// as the header row and drops empty cells.
type Options struct {
	// HeaderRow is the zero-based row supplying column headers. Rows above
	// it are not part of the output.
	HeaderRow int
	// Sheet selects the sheet to read. Nil reads all sheets in workbook
	// order.
	Sheet SheetSelector
	// IncludeEmptyCells keeps empty cells in rows as Empty values.
	IncludeEmptyCells bool
}

// DefaultOptions returns default read options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) validate() error {
	if o.HeaderRow < 0 {
		return fmt.Errorf("%w: negative header row %d", ErrInvalidOptions, o.HeaderRow)
	}
	if idx, ok := o.Sheet.(SheetIndex); ok && idx < 0 {
		return fmt.Errorf("%w: negative sheet index %d", ErrInvalidOptions, int(idx))
	}
	return nil
}

type jsonSheet struct {
	Name  *string `json:"name,omitempty"`
	Index *int    `json:"index,omitempty"`
}

type jsonOptions struct {
	HeaderRow         *int       `json:"headerRow,omitempty"`
	Sheet             *jsonSheet `json:"sheet,omitempty"`
	IncludeEmptyCells *bool      `json:"includeEmptyCells,omitempty"`
}

// UnmarshalJSON decodes options in the form
//
//	{"headerRow": 0, "sheet": {"name": "Data"}, "includeEmptyCells": true}
//
// where "sheet" is either {"name": ...} or {"index": ...}. Every field is
// optional; absent fields take their defaults.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw jsonOptions
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	opts := DefaultOptions()
	if raw.HeaderRow != nil {
		opts.HeaderRow = *raw.HeaderRow
	}
	if raw.IncludeEmptyCells != nil {
		opts.IncludeEmptyCells = *raw.IncludeEmptyCells
	}
	if s := raw.Sheet; s != nil {
		switch {
		case s.Name != nil && s.Index != nil:
			return fmt.Errorf("%w: sheet selects both name and index", ErrInvalidOptions)
		case s.Name != nil:
			opts.Sheet = SheetName(*s.Name)
		case s.Index != nil:
			opts.Sheet = SheetIndex(*s.Index)
		default:
			return fmt.Errorf("%w: sheet needs a name or an index", ErrInvalidOptions)
		}
	}
	*o = opts
	return nil
}

// MarshalJSON encodes options in the form accepted by UnmarshalJSON.
func (o Options) MarshalJSON() ([]byte, error) {
	raw := jsonOptions{
		HeaderRow:         &o.HeaderRow,
		IncludeEmptyCells: &o.IncludeEmptyCells,
	}
	switch sel := o.Sheet.(type) {
	case SheetName:
		name := string(sel)
		raw.Sheet = &jsonSheet{Name: &name}
	case SheetIndex:
		idx := int(sel)
		raw.Sheet = &jsonSheet{Index: &idx}
	}
	return json.Marshal(raw)
}
