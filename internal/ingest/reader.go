// Package ingest turns uploaded CSV/XLSX files into validated invoice rows.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Normalized column names recognized in uploads.
const (
	ColCliente  = "cliente"
	ColMonto    = "monto"
	ColVence    = "vence"
	ColTelefono = "telefono"
)

var requiredCols = []string{ColCliente, ColMonto, ColVence}

var ErrUnsupportedFormat = errors.New("Formato no soportado. Use .csv, .xlsx o .xls")

type MissingColumnsError struct {
	Columns []string // sorted
}

func (e *MissingColumnsError) Error() string {
	return "Faltan columnas requeridas: " + strings.Join(e.Columns, ", ")
}

type MalformedFileError struct {
	Err error
}

func (e *MalformedFileError) Error() string {
	return "Archivo ilegible: " + e.Err.Error()
}

func (e *MalformedFileError) Unwrap() error { return e.Err }

// Row maps a normalized (lowercased, trimmed) header to the raw cell value.
type Row map[string]string

// ReadTable parses an uploaded file into rows, dispatching on the filename
// extension. It is a pure transformation: no validation beyond the header
// check happens here.
func ReadTable(r io.Reader, filename string) ([]Row, error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	switch {
	case strings.HasSuffix(name, ".csv"):
		return readCSV(r)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return readExcel(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func readCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	return rowsFromRecords(records)
}

func readExcel(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}

	for i := range records {
		for j := range records[i] {
			records[i][j] = normalizeCell(f, sheet, i, j, records[i][j])
		}
	}
	return rowsFromRecords(records)
}

// Excel stores date-typed cells as day serials with a date number format;
// their raw value is the serial, not a date string. Convert those to ISO text
// so the normalizer treats them like any other date input.
func normalizeCell(f *excelize.File, sheet string, row, col int, raw string) string {
	if raw == "" || !isDateCell(f, sheet, row, col) {
		return raw
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

func isDateCell(f *excelize.File, sheet string, row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return false
	}
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if isDateNumFmt(style.NumFmt) {
		return true
	}
	if style.CustomNumFmt != nil {
		return hasDateTokens(*style.CustomNumFmt)
	}
	return false
}

// Built-in date and time number formats of the OOXML spec.
func isDateNumFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

func hasDateTokens(format string) bool {
	format = strings.ToLower(format)
	return strings.Contains(format, "y") || strings.Contains(format, "d") || strings.Contains(format, "h")
}

func rowsFromRecords(records [][]string) ([]Row, error) {
	var headers []string
	if len(records) > 0 {
		for i, h := range records[0] {
			if i == 0 {
				h = strings.TrimPrefix(h, "\ufeff") // BOM from Excel exports
			}
			headers = append(headers, strings.ToLower(strings.TrimSpace(h)))
		}
	}

	var missing []string
	for _, col := range requiredCols {
		if !contains(headers, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []Row
	for _, record := range records[1:] {
		row := Row{}
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
