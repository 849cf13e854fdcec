package xlsxrows

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a sheet selector did not resolve.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrTooLarge indicates the input exceeds the configured size cap.
var ErrTooLarge = errors.New("input too large")

// ErrInvalidOptions indicates unusable read options.
var ErrInvalidOptions = errors.New("invalid options")

// DecodeError reports that the workbook bytes could not be opened.
type DecodeError struct {
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode workbook (%d bytes): %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidFormat) hold for every DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// SheetNotFoundError reports a selector that matched no sheet.
type SheetNotFoundError struct {
	// Selector is the selector that failed, or the SheetName of a listed
	// sheet whose data could not be loaded.
	Selector SheetSelector
	// Count is the number of sheets in the workbook.
	Count int
	// Err is the underlying cause, if any.
	Err error
}

func (e *SheetNotFoundError) Error() string {
	var msg string
	switch sel := e.Selector.(type) {
	case SheetIndex:
		msg = fmt.Sprintf("sheet index %d out of range (workbook has %d sheets)", int(sel), e.Count)
	case SheetName:
		msg = fmt.Sprintf("sheet %q not found", string(sel))
	default:
		msg = ErrSheetNotFound.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SheetNotFoundError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSheetNotFound) hold for every SheetNotFoundError.
func (e *SheetNotFoundError) Is(target error) bool {
	return target == ErrSheetNotFound
}
