// Package sheet turns uploaded tabular files (CSV and Excel workbooks) into
// a uniform row/column table and provides the typed per-field coercions the
// bulk import applies to each cell.
package sheet

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"go-catalog-api/internal/apperr"

	"github.com/xuri/excelize/v2"
)

// Decode parses the uploaded bytes into rows of cells. The first row is the
// header and is dropped; the remaining rows keep their source order. The
// format is picked from the file extension; anything that is neither a
// delimited table nor a workbook fails with ErrUnsupportedFormat.
func Decode(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return decodeCSV(data)
	case ".xlsx", ".xlsm", ".xls":
		return decodeWorkbook(data)
	default:
		return nil, apperr.ErrUnsupportedFormat
	}
}

func decodeCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // rows may be ragged, missing cells read as empty
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.ErrUnsupportedFormat
	}
	return dropHeader(records), nil
}

func decodeWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.ErrUnsupportedFormat
	}
	defer f.Close()

	// Raw cell values keep native dates as Excel serial numbers instead of
	// locale-formatted strings; the date coercion understands both.
	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperr.ErrUnsupportedFormat
	}
	return dropHeader(rows), nil
}

func dropHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// Cell returns the trimmed cell at index i, or "" when the row is too short.
func Cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}
