package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// registerColumn defines a column in the quote register spreadsheet.
type registerColumn struct {
	Header string
	Width  float64
	Value  func(QuoteSummary) any
}

var registerColumns = []registerColumn{
	{Header: "Quote No", Width: 24, Value: func(q QuoteSummary) any { return sanitizeExcelCell(q.Number) }},
	{Header: "Client", Width: 30, Value: func(q QuoteSummary) any { return sanitizeExcelCell(q.Client) }},
	{Header: "Date", Width: 14, Value: func(q QuoteSummary) any { return q.Date }},
	{Header: "Status", Width: 12, Value: func(q QuoteSummary) any { return q.Status }},
	{Header: "Currency", Width: 10, Value: func(q QuoteSummary) any { return q.Currency }},
	{Header: "Lines", Width: 8, Value: func(q QuoteSummary) any { return q.Lines }},
	{Header: "Subtotal", Width: 16, Value: func(q QuoteSummary) any { return q.Totals.Subtotal }},
	{Header: "Discount", Width: 14, Value: func(q QuoteSummary) any { return q.Totals.Discount }},
	{Header: "Tax", Width: 14, Value: func(q QuoteSummary) any { return q.Totals.TaxAmount }},
	{Header: "Total", Width: 16, Value: func(q QuoteSummary) any { return q.Totals.TotalAmount }},
}

// GenerateRegisterExcel creates a quote register workbook: one row per quote
// followed by a per-status summary.
func GenerateRegisterExcel(title string, summary DashboardSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quote Register"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

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
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		Alignment: &excelize.Alignment{
			Vertical: "center",
			WrapText: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create data style: %w", err)
	}

	cols := columnLetters(len(registerColumns))
	lastCol := cols[len(cols)-1]
	for i, col := range registerColumns {
		f.SetColWidth(sheetName, cols[i], cols[i], col.Width)
	}

	// --- Row 1: Title ---
	if title == "" {
		title = "Quote Register"
	}
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// --- Row 2: Subtitle with count and value ---
	f.MergeCell(sheetName, "A2", lastCol+"2")
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Total: %d quotes, %s", summary.Count, FormatINR(summary.TotalValue)))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// --- Row 4: Column headers ---
	for i, col := range registerColumns {
		f.SetCellValue(sheetName, cols[i]+"4", col.Header)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      4,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	})

	// --- Data rows starting at row 5 ---
	rowNum := 5
	for _, q := range summary.Quotes {
		rowStr := fmt.Sprintf("%d", rowNum)
		for colIdx, col := range registerColumns {
			f.SetCellValue(sheetName, cols[colIdx]+rowStr, col.Value(q))
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, dataStyle)
		rowNum++
	}

	// --- Status summary ---
	rowNum++
	statusHeader := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "A"+statusHeader, "Status")
	f.SetCellValue(sheetName, "B"+statusHeader, "Quotes")
	f.SetCellValue(sheetName, "C"+statusHeader, "Value")
	f.SetCellStyle(sheetName, "A"+statusHeader, "C"+statusHeader, headerStyle)
	rowNum++
	for _, s := range summary.ByStatus {
		rowStr := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+rowStr, s.Status)
		f.SetCellValue(sheetName, "B"+rowStr, s.Count)
		f.SetCellValue(sheetName, "C"+rowStr, s.Value)
		f.SetCellStyle(sheetName, "A"+rowStr, "C"+rowStr, dataStyle)
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}
