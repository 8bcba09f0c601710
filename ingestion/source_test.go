package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSource_MissingFile(t *testing.T) {
	_, err := LoadSource(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoadSource_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := LoadSource(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadSource_CSV(t *testing.T) {
	path := writeTempCSV(t,
		"ProductID,ProductName,Quantity\n"+
			"P-1,Hex Bolt M8,420\n"+
			"P-2,Pallet Jack,6\n")

	rows, err := LoadSource(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 0, rows[0].Index)
	name, ok := rows[0].Field("ProductName")
	require.True(t, ok)
	assert.Equal(t, "Hex Bolt M8", name)

	assert.Equal(t, 1, rows[1].Index)
	qty, ok := rows[1].Field("Quantity")
	require.True(t, ok)
	assert.Equal(t, "6", qty)
}

func TestLoadSource_CSVRaggedRows(t *testing.T) {
	path := writeTempCSV(t,
		"ProductID,ProductName,Quantity\n"+
			"P-1,Hex Bolt M8\n")

	rows, err := LoadSource(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok := rows[0].Field("Quantity")
	assert.False(t, ok, "short row should leave trailing fields absent")
}

func TestLoadSource_CSVHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "ProductID,ProductName\n")

	rows, err := LoadSource(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLoadSource_CSVMalformed(t *testing.T) {
	path := writeTempCSV(t, "ProductID,\"unterminated\nP-1,x\n")

	_, err := LoadSource(path)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadSource_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"ProductID", "ProductName", "Quantity"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"P-1", "Forklift Battery", "12"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := LoadSource(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	name, ok := rows[0].Field("ProductName")
	require.True(t, ok)
	assert.Equal(t, "Forklift Battery", name)
}

func TestLoadSource_XLSXCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := LoadSource(path)
	assert.ErrorIs(t, err, ErrParse)
}
