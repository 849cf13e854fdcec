package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xlsxrows-go/pkg/xlsxrows/models"
)

func testSheet() models.SheetResult {
	return models.SheetResult{Sheet: "Data", Rows: []models.Row{
		{Columns: []models.ColumnValue{
			{Header: "Name", Value: models.String("Ann")},
			{Header: "Age", Value: models.Int(30)},
		}},
		{Columns: []models.ColumnValue{
			{Header: "Name", Value: models.String("Bő, \"B\"")},
			{Header: "Score", Value: models.Float(1.5)},
		}},
	}}
}

func TestToJSON(t *testing.T) {
	sheet := testSheet()
	res := &models.Result{Sheets: []models.SheetResult{sheet}}

	compact, err := ToJSON(res, false)
	require.NoError(t, err)
	pretty, err := ToJSON(res, true)
	require.NoError(t, err)
	assert.JSONEq(t, string(compact), string(pretty))
	assert.Contains(t, string(pretty), "\n  ")
	assert.NotContains(t, string(compact), "\n")

	one, err := SheetToJSON(&sheet, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sheet":"Data","rows":[
		{"columns":[{"header":"Name","value":"Ann"},{"header":"Age","value":30}]},
		{"columns":[{"header":"Name","value":"Bő, \"B\""},{"header":"Score","value":1.5}]}]}`, string(one))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSheet(), ""))
	assert.Equal(t, "Name,Age,Score\nAnn,30,\n\"Bő, \"\"B\"\"\",,1.5\n", buf.String())
}

func TestWriteCSVCharset(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSheet(), "iso-8859-2"))
	// ő is 0xF5 in Latin-2.
	assert.True(t, bytes.Contains(buf.Bytes(), []byte{'B', 0xF5, ','}), "%q", buf.Bytes())

	assert.Error(t, WriteCSV(io.Discard, testSheet(), "no-such-charset"))
}

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf8"} {
		enc, err := GetEncoding(name)
		assert.NoError(t, err)
		assert.Nil(t, enc, name)
	}
	enc, err := GetEncoding("windows-1250")
	require.NoError(t, err)
	assert.NotNil(t, enc)
}

func TestWriteFileGzip(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"sheets":[]}`)

	plain := filepath.Join(dir, "out.json")
	require.NoError(t, WriteFile(plain, data))
	got, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	zipped := filepath.Join(dir, "out.json.gz")
	require.NoError(t, WriteFile(zipped, data))
	fh, err := os.Open(zipped)
	require.NoError(t, err)
	defer fh.Close()
	zr, err := gzip.NewReader(fh)
	require.NoError(t, err)
	got, err = io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
