package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateLineItemTemplate creates a downloadable .xlsx template for bulk
// line-item import. ParseLineItems reads it back.
func GenerateLineItemTemplate() ([]byte, error) {
	fields := LineItemTemplateFields()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Line Items"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorders(),
	})

	columns := columnLetters(len(fields))
	for i, field := range fields {
		cell := fmt.Sprintf("%s1", columns[i])

		headerText := field.Label
		style := optionalHeaderStyle
		if field.AlwaysRequired {
			headerText += " *"
			style = requiredHeaderStyle
		}
		f.SetCellValue(sheetName, cell, headerText)
		f.SetCellStyle(sheetName, cell, cell, style)

		width := float64(len(field.Label)) * 1.3
		if field.Key == "name" {
			width = 40
		}
		if width < 15 {
			width = 15
		}
		f.SetColWidth(sheetName, columns[i], columns[i], width)
	}

	// Example row so the file opens with something to overwrite.
	for i, field := range fields {
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", columns[i]), field.ExampleValue)
	}

	// Unit is a dropdown; numeric columns get soft range checks. Neither is
	// enforced on import.
	for i, field := range fields {
		col := columns[i]
		rangeRef := fmt.Sprintf("%s2:%s1048576", col, col)

		switch field.Key {
		case "unit":
			dv := excelize.NewDataValidation(true)
			dv.Sqref = rangeRef
			dv.SetDropList(UOMOptions)
			f.AddDataValidation(sheetName, dv)
		case "discount_percent":
			dv := excelize.NewDataValidation(true)
			dv.Sqref = rangeRef
			dv.SetRange(0, 100, excelize.DataValidationTypeDecimal, excelize.DataValidationOperatorBetween)
			dv.SetError(excelize.DataValidationErrorStyleWarning, "Discount %", "Discounts are usually between 0 and 100")
			f.AddDataValidation(sheetName, dv)
		}
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	addInstructionsSheet(f, fields)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel template: %w", err)
	}
	return buf.Bytes(), nil
}

// addInstructionsSheet creates a hidden sheet with field descriptions.
func addInstructionsSheet(f *excelize.File, fields []TemplateField) {
	instSheet := "Instructions"
	f.NewSheet(instSheet)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})

	f.SetCellValue(instSheet, "A1", "Line Item Import - Instructions")
	f.SetCellStyle(instSheet, "A1", "A1", titleStyle)

	instructionHeaders := []string{"Field Name", "Required?", "Format Rule", "Description", "Example"}
	cols := columnLetters(len(instructionHeaders))
	for i, h := range instructionHeaders {
		cell := fmt.Sprintf("%s3", cols[i])
		f.SetCellValue(instSheet, cell, h)
		f.SetCellStyle(instSheet, cell, cell, headerStyle)
	}

	for i, field := range fields {
		row := fmt.Sprintf("%d", i+4)
		reqLabel := "Optional"
		if field.AlwaysRequired {
			reqLabel = "Required"
		}
		f.SetCellValue(instSheet, cols[0]+row, field.Label)
		f.SetCellValue(instSheet, cols[1]+row, reqLabel)
		f.SetCellValue(instSheet, cols[2]+row, field.FormatRule)
		f.SetCellValue(instSheet, cols[3]+row, field.Description)
		f.SetCellValue(instSheet, cols[4]+row, field.ExampleValue)
	}

	// Tax is set on the quote header, not per line; list the slabs for reference.
	taxRow := strconv.Itoa(len(fields) + 5)
	f.SetCellValue(instSheet, cols[0]+taxRow, "Tax rates (%)")
	f.SetCellStyle(instSheet, cols[0]+taxRow, cols[0]+taxRow, headerStyle)
	f.SetCellValue(instSheet, cols[1]+taxRow, taxRateList())

	widths := []float64{20, 12, 30, 45, 25}
	for i, w := range widths {
		f.SetColWidth(instSheet, cols[i], cols[i], w)
	}

	f.SetSheetVisible(instSheet, false)
}

func taxRateList() string {
	rates := make([]string, len(TaxRateOptions))
	for i, r := range TaxRateOptions {
		rates[i] = strconv.Itoa(r)
	}
	return strings.Join(rates, ", ")
}

// columnLetters returns Excel column letters for n columns: A, B, ... Z, AA, AB ...
func columnLetters(n int) []string {
	cols := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		cols[i] = name
	}
	return cols
}
