package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel file from the given ExportData and returns
// the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are limited to 31 characters.
	sheetName := data.QuoteNumber
	if sheetName == "" {
		sheetName = data.Title
	}
	sheetName = sheetNameReplacer.Replace(sheetName)
	if sheetName == "" {
		sheetName = "Quotation"
	}
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 42, 10, 10, 16, 10, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	amountFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &amountFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &amountFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(joinNonEmpty([]string{data.Company.Name, data.Title}, " - ")))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	subtitles := []string{
		joinNonEmpty([]string{fmtField("No", data.QuoteNumber), fmtField("Date", data.Date)}, "    "),
		fmtField("Client", data.Client.Name),
	}
	for i, s := range subtitles {
		r := fmt.Sprintf("%d", i+2)
		if err := f.MergeCell(sheetName, "A"+r, lastCol+r); err != nil {
			return nil, fmt.Errorf("merge subtitle: %w", err)
		}
		f.SetCellValue(sheetName, "A"+r, sanitizeExcelCell(s))
		f.SetCellStyle(sheetName, "A"+r, lastCol+r, subtitleStyle)
	}

	// ── Row 5: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Description", "Qty", "Unit", "Rate", "Disc %", "Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data Rows (starting row 6) ──────────────────────────────────────

	row := 6
	for _, item := range data.LineItems {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, item.SINo)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(item.Description))
		f.SetCellValue(sheetName, "C"+rowStr, item.Qty)
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(item.Unit))
		f.SetCellValue(sheetName, "E"+rowStr, item.Rate)
		f.SetCellValue(sheetName, "F"+rowStr, item.DiscountPercent)
		f.SetCellValue(sheetName, "G"+rowStr, item.LineTotal)

		f.SetCellStyle(sheetName, "A"+rowStr, "D"+rowStr, itemStyle)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, amountStyle)
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, itemStyle)
		f.SetCellStyle(sheetName, "G"+rowStr, "G"+rowStr, amountStyle)

		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++

	t := data.Totals
	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal:", t.Subtotal},
		{"Discount:", t.Discount},
		{"After Discount:", t.SubtotalAfterDiscount},
		{fmt.Sprintf("Tax (%s):", FormatPercent(t.TaxRate)), t.TaxAmount},
		{"Total:", t.TotalAmount},
	}
	for _, s := range summary {
		summaryRow := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "F"+summaryRow, s.label)
		f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryLabelStyle)
		f.SetCellValue(sheetName, "G"+summaryRow, s.value)
		f.SetCellStyle(sheetName, "G"+summaryRow, "G"+summaryRow, summaryValueStyle)
		row++
	}

	if data.AmountInWords != "" {
		row++
		wordsRow := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheetName, "A"+wordsRow, lastCol+wordsRow); err != nil {
			return nil, fmt.Errorf("merge amount in words: %w", err)
		}
		f.SetCellValue(sheetName, "A"+wordsRow, "Amount in Words: "+data.AmountInWords)
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sheetNameReplacer strips characters Excel does not allow in sheet names.
var sheetNameReplacer = strings.NewReplacer(
	":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")",
)

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
