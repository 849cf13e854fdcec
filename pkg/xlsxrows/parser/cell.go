// Package parser decodes xlsx worksheets into typed cell grids and
// normalizes them into header-tagged rows.
package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Kind is the decoded storage type of a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	// KindDateTime is a numeric serial shown with a date or time format.
	KindDateTime
	// KindDateTimeISO is an ISO 8601 date cell (t="d").
	KindDateTimeISO
	// KindDurationISO is an ISO 8601 duration stored in a t="d" cell.
	KindDurationISO
	// KindError is an error value such as #DIV/0!.
	KindError
)

var kindNames = [...]string{
	KindEmpty:       "Empty",
	KindInt:         "Int",
	KindFloat:       "Float",
	KindBool:        "Bool",
	KindString:      "String",
	KindDateTime:    "DateTime",
	KindDateTimeISO: "DateTimeISO",
	KindDurationISO: "DurationISO",
	KindError:       "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Cell is one decoded cell. Str carries the text of String, DateTimeISO,
// DurationISO and Error cells; Float carries Float and DateTime serials.
type Cell struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// String renders the cell for display, as used for header labels.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat, KindDateTime:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindEmpty:
		return ""
	}
	return c.Str
}

// classifyCell builds a Cell from the raw value and storage type excelize
// reports. isDate tells whether the cell's number format is a date format;
// it is only consulted for numeric cells.
func classifyCell(raw string, typ excelize.CellType, isDate func() bool) Cell {
	switch typ {
	case excelize.CellTypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return Cell{Kind: KindString, Str: raw}
		}
		return Cell{Kind: KindBool, Bool: b}
	case excelize.CellTypeError:
		return Cell{Kind: KindError, Str: raw}
	case excelize.CellTypeDate:
		if raw == "" {
			return Cell{}
		}
		if strings.HasPrefix(raw, "P") || strings.HasPrefix(raw, "-P") {
			return Cell{Kind: KindDurationISO, Str: raw}
		}
		return Cell{Kind: KindDateTimeISO, Str: raw}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return Cell{Kind: KindString, Str: raw}
	}

	// Unset or number.
	if raw == "" {
		return Cell{}
	}
	if isDate != nil && isDate() {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: KindDateTime, Float: f}
		}
	}
	return parseNumber(raw)
}

// parseNumber parses a raw numeric value as int64, then float64, and
// falls back to text.
func parseNumber(s string) Cell {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Cell{Kind: KindInt, Int: i}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: KindFloat, Float: f}
	}
	return Cell{Kind: KindString, Str: s}
}
