package xlsxrows

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/parser"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Reader holds the bytes of one workbook and extracts rows from it.
// Each Read decodes the workbook afresh, so a Reader may be read
// concurrently and with different options.
type Reader struct {
	data []byte

	// MaxSize caps the decompressed size of gzip input. Zero means no cap.
	MaxSize int64

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// NewReader returns a Reader over a copy of data. Gzip-compressed input
// is decompressed when the workbook is read.
func NewReader(data []byte) *Reader {
	return &Reader{data: bytes.Clone(data)}
}

// NewReaderFrom reads all of r into a new Reader.
func NewReaderFrom(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return &Reader{data: data}, nil
}

// OpenFile reads the workbook at path into a new Reader.
func OpenFile(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return &Reader{data: data}, nil
}

// Size returns the number of bytes held.
func (r *Reader) Size() int { return len(r.data) }

func (r *Reader) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// open decodes the held bytes.
func (r *Reader) open() (*parser.Workbook, error) {
	data := r.data
	if bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &DecodeError{Size: len(r.data), Err: err}
		}
		defer zr.Close()
		var src io.Reader = zr
		if r.MaxSize > 0 {
			src = io.LimitReader(zr, r.MaxSize+1)
		}
		if data, err = io.ReadAll(src); err != nil {
			return nil, &DecodeError{Size: len(r.data), Err: fmt.Errorf("gunzip: %w", err)}
		}
		if r.MaxSize > 0 && int64(len(data)) > r.MaxSize {
			return nil, fmt.Errorf("%w: gzip content exceeds %d bytes", ErrTooLarge, r.MaxSize)
		}
	}
	wb, err := parser.Open(data)
	if err != nil {
		return nil, &DecodeError{Size: len(r.data), Err: err}
	}
	return wb, nil
}

// SheetNames returns the names of the workbook's sheets in order.
func (r *Reader) SheetNames() ([]string, error) {
	wb, err := r.open()
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.SheetNames(), nil
}

// Read extracts the sheets chosen by opts. It fails as a whole: either
// every selected sheet is returned or an error is.
func (r *Reader) Read(opts Options) (*models.Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := r.logger()

	wb, err := r.open()
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	wb.SetHeaderRow(opts.HeaderRow)

	names := wb.SheetNames()
	logger.Debug("workbook opened", "size", len(r.data), "sheets", names)

	selected, err := selectSheets(names, opts.Sheet)
	if err != nil {
		return nil, err
	}

	result := &models.Result{Sheets: make([]models.SheetResult, 0, len(selected))}
	for _, name := range selected {
		grid, err := wb.Grid(name)
		if err != nil {
			return nil, &SheetNotFoundError{Selector: SheetName(name), Count: len(names), Err: err}
		}
		sheet := parser.NormalizeSheet(name, grid, opts.IncludeEmptyCells)
		logger.Debug("sheet normalized", "sheet", name,
			"width", grid.Width(), "rows", len(sheet.Rows))
		result.Sheets = append(result.Sheets, sheet)
	}
	return result, nil
}

// selectSheets resolves sel against the sheet directory.
func selectSheets(names []string, sel SheetSelector) ([]string, error) {
	switch s := sel.(type) {
	case nil:
		return names, nil
	case SheetName:
		for _, name := range names {
			if name == string(s) {
				return []string{name}, nil
			}
		}
		return nil, &SheetNotFoundError{Selector: s, Count: len(names)}
	case SheetIndex:
		if int(s) < 0 || int(s) >= len(names) {
			return nil, &SheetNotFoundError{Selector: s, Count: len(names)}
		}
		return []string{names[s]}, nil
	}
	return nil, fmt.Errorf("%w: unsupported sheet selector %T", ErrInvalidOptions, sel)
}
