// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
)

// ToJSON serializes a result, indented when pretty is set.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return marshal(res, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetResult, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
