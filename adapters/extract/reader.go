package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lrslens/domain/snapshot"
)

// TableReader reads one flat extract, CSV or XLSX, into a snapshot.Table
type TableReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewTableReader creates a reader for the given path; the extension decides
// the format, defaulting to CSV.
func NewTableReader(filePath string) *TableReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &TableReader{filePath: filePath, fileType: fileType}
}

// Read loads the table. Headers and cells are trimmed; a file without a
// header row and at least one data row is a load error; the export job
// always writes both.
func (r *TableReader) Read() (snapshot.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return snapshot.Table{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readXLSX()
	default:
		rows, err = r.readCSV()
	}
	if err != nil {
		return snapshot.Table{}, err
	}

	if len(rows) < 2 {
		return snapshot.Table{}, fmt.Errorf("%s must have at least a header row and one data row", r.filePath)
	}
	return tableFromRows(rows), nil
}

func (r *TableReader) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // survey rows may be ragged
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func (r *TableReader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

// tableFromRows converts raw string rows into the headers-plus-map-rows
// table form. Cells beyond the header width are dropped.
func tableFromRows(rows [][]string) snapshot.Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(map[string]string, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return snapshot.Table{Headers: headers, Rows: dataRows}
}
