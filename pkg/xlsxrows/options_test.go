package xlsxrows

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Options
	}{
		{`{}`, DefaultOptions()},
		{`{"headerRow": 2}`, Options{HeaderRow: 2}},
		{`{"sheet": {"name": "Data"}}`, Options{Sheet: SheetName("Data")}},
		{`{"sheet": {"index": 1}, "includeEmptyCells": true}`, Options{Sheet: SheetIndex(1), IncludeEmptyCells: true}},
		{`{"headerRow": 0, "sheet": null, "includeEmptyCells": false}`, DefaultOptions()},
	}
	for _, tt := range tests {
		var got Options
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOptionsUnmarshalJSONErrors(t *testing.T) {
	for _, in := range []string{
		`{"sheet": {}}`,
		`{"sheet": {"name": "A", "index": 0}}`,
		`{"sheet": {"title": "A"}}`,
		`{"header_row": 1}`,
		`{"headerRow": "1"}`,
	} {
		var got Options
		err := json.Unmarshal([]byte(in), &got)
		assert.ErrorIs(t, err, ErrInvalidOptions, in)
	}
}

func TestOptionsJSONRoundTrip(t *testing.T) {
	for _, opts := range []Options{
		DefaultOptions(),
		{HeaderRow: 3, Sheet: SheetName("Q1"), IncludeEmptyCells: true},
		{Sheet: SheetIndex(0)},
	} {
		b, err := json.Marshal(opts)
		require.NoError(t, err)
		var back Options
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, opts, back, string(b))
	}
}
