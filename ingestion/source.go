package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/warebot/core"
	"github.com/xuri/excelize/v2"
)

// LoadSource reads a tabular inventory source fully into memory and returns
// its rows in source order. The first row is treated as the header; each data
// row becomes a core.Row keyed by header names.
//
// CSV and XLSX formats are supported, selected by file extension. A missing
// file fails with ErrSourceNotFound and an undecodable file fails with
// ErrParse, both before any ingestion work begins. Ragged rows are tolerated:
// short rows simply leave fields absent for the formatter to fill with
// placeholders.
func LoadSource(path string) ([]core.Row, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: unsupported source format %q", ErrParse, filepath.Ext(path))
	}
}

func loadCSV(path string) ([]core.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are a row-level issue, not a parse failure

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return rowsFromRecords(records), nil
}

func loadXLSX(path string) ([]core.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	// Only the first sheet carries inventory data
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return rowsFromRecords(records), nil
}

// rowsFromRecords converts raw header+data records into named-field rows.
// A source without data rows yields an empty slice.
func rowsFromRecords(records [][]string) []core.Row {
	if len(records) < 2 {
		return []core.Row{}
	}

	header := records[0]
	rows := make([]core.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(record) {
				fields[name] = record[j]
			}
		}
		rows = append(rows, core.Row{Index: i, Fields: fields})
	}
	return rows
}
