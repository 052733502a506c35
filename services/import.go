package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for import files that are neither CSV nor xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format: must be .csv or .xlsx")

// ValidationError represents a single field-level problem on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing a line-item file. Rows with problems
// are still imported; their numeric cells are kept raw and price as their
// coerced value.
type ImportResult struct {
	Items        []LineItem        `json:"items"`
	TotalRows    int               `json:"total_rows"`
	SkippedRows  int               `json:"skipped_rows"`
	Warnings     []ValidationError `json:"warnings"`
	Unrecognized []string          `json:"unrecognized_columns,omitempty"`
	FileName     string            `json:"-"`
}

// ParseLineItems reads line items from a CSV or xlsx file. The format is
// chosen by the extension of fileName.
func ParseLineItems(file io.Reader, fileName string) (*ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	fields := LineItemTemplateFields()
	columnKeys, unrecognized := mapHeadersToFields(headers, fields)
	if !hasColumn(columnKeys, "name") {
		return nil, fmt.Errorf("missing required column %q", "Item")
	}

	keyToField := make(map[string]TemplateField, len(fields))
	for _, f := range fields {
		keyToField[f.Key] = f
	}

	result := &ImportResult{
		FileName:     fileName,
		Unrecognized: unrecognized,
		Items:        make([]LineItem, 0, len(dataRows)),
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)
		for colIdx, key := range columnKeys {
			if key == "" || colIdx >= len(row) {
				continue
			}
			rowData[key] = strings.TrimSpace(row[colIdx])
		}
		if isBlankRow(rowData) {
			result.SkippedRows++
			continue
		}
		result.TotalRows++

		item := LineItem{
			ID:              uuid.NewString(),
			Name:            rowData["name"],
			Unit:            rowData["unit"],
			Quantity:        Raw(rowData["quantity"]),
			UnitPrice:       Raw(rowData["unit_price"]),
			DiscountPercent: Raw(rowData["discount_percent"]),
		}
		result.Items = append(result.Items, item)

		if !item.Named() {
			result.Warnings = append(result.Warnings, ValidationError{
				Row:     rowNum,
				Field:   keyToField["name"].Label,
				Message: "Item is blank; the row is kept but not totalled",
			})
		}
		for _, key := range []string{"quantity", "unit_price", "discount_percent"} {
			v := rowData[key]
			if v == "" {
				continue
			}
			if _, ok := Raw(v).Strict(); !ok {
				result.Warnings = append(result.Warnings, ValidationError{
					Row:     rowNum,
					Field:   keyToField[key].Label,
					Message: fmt.Sprintf("%q is not a number and will be read as %s", v, FormatQty(Raw(v).Float64())),
				})
			}
		}
	}

	return result, nil
}

func hasColumn(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func isBlankRow(data map[string]string) bool {
	for _, v := range data {
		if v != "" {
			return false
		}
	}
	return true
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	// Raw values so number formats ("1,500") do not leak into the numeric cells.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to TemplateField keys by
// label or alias. Returns one key per column ("" when unknown) and the
// unrecognized headers.
func mapHeadersToFields(headers []string, fields []TemplateField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		labelToKey[strings.ToLower(strings.TrimSpace(f.Label))] = f.Key
		for _, alias := range f.Aliases {
			labelToKey[alias] = f.Key
		}
	}

	mapped := make([]string, len(headers))
	var unrecognized []string
	seen := make(map[string]bool)

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Strip trailing " *" that the template adds for required fields
		norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))

		key, ok := labelToKey[norm]
		if ok && !seen[key] {
			mapped[i] = key
			seen[key] = true
			continue
		}
		if strings.TrimSpace(h) != "" {
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

// GenerateErrorReport creates a downloadable .xlsx file from import warnings.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
