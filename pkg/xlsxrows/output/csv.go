package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
)

// GetEncoding returns the named character encoding, or nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// WriteCSV writes a sheet as CSV with a header line. Columns are the
// sheet's distinct headers; a row holding a header twice contributes its
// first value. Missing and empty values are written as empty fields.
// encName selects the output charset; "" means UTF-8.
func WriteCSV(w io.Writer, sheet models.SheetResult, encName string) (err error) {
	enc, err := GetEncoding(encName)
	if err != nil {
		return err
	}
	if enc != nil {
		ew := encoding.ReplaceUnsupported(enc.NewEncoder()).Writer(w)
		if c, ok := ew.(io.Closer); ok {
			defer func() {
				if cerr := c.Close(); err == nil {
					err = cerr
				}
			}()
		}
		w = ew
	}

	cw := csv.NewWriter(w)
	headers := sheet.Headers()
	if len(headers) == 0 {
		return nil
	}
	if err = cw.Write(headers); err != nil {
		return err
	}
	record := make([]string, len(headers))
	for i, row := range sheet.Rows {
		for j, h := range headers {
			v, _ := row.Get(h)
			record[j] = v.String()
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet.Sheet, i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
