package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateRegisterExcel(t *testing.T) {
	summary := SummarizeQuotes(SampleQuotes())

	result, err := GenerateRegisterExcel("", summary)
	if err != nil {
		t.Fatalf("GenerateRegisterExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	if sheet != "Quote Register" {
		t.Errorf("sheet = %q", sheet)
	}

	title, _ := f.GetCellValue(sheet, "A1")
	if title != "Quote Register" {
		t.Errorf("title = %q", title)
	}
	header, _ := f.GetCellValue(sheet, "J4")
	if header != "Total" {
		t.Errorf("J4 = %q, want Total", header)
	}
	number, _ := f.GetCellValue(sheet, "A5")
	if number != "QT-ACME-25-26-001" {
		t.Errorf("A5 = %q", number)
	}
	total, _ := f.GetCellValue(sheet, "J5", excelize.Options{RawCellValue: true})
	if total != "21535" {
		t.Errorf("J5 = %q, want 21535", total)
	}

	// three quotes, a blank row, then the status table
	status, _ := f.GetCellValue(sheet, "A9")
	if status != "Status" {
		t.Errorf("A9 = %q, want Status", status)
	}
}
