package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateLineItemTemplate(t *testing.T) {
	result, err := GenerateLineItemTemplate()
	if err != nil {
		t.Fatalf("GenerateLineItemTemplate() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Line Items" || sheets[1] != "Instructions" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	wantHeaders := []string{"Item *", "Unit", "Quantity", "Unit Price", "Discount %"}
	for i, want := range wantHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, _ := f.GetCellValue("Line Items", cell)
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	visible, _ := f.GetSheetVisible("Instructions")
	if visible {
		t.Error("Instructions sheet should be hidden")
	}
	if got, _ := f.GetCellValue("Instructions", "B10"); got != "0, 5, 12, 18, 28" {
		t.Errorf("tax rate slabs = %q", got)
	}

	dvs, err := f.GetDataValidations("Line Items")
	if err != nil {
		t.Fatalf("GetDataValidations() error = %v", err)
	}
	if len(dvs) != 2 {
		t.Errorf("expected 2 data validations, got %d", len(dvs))
	}
}

func TestColumnLetters(t *testing.T) {
	cols := columnLetters(28)
	if cols[0] != "A" || cols[25] != "Z" || cols[26] != "AA" || cols[27] != "AB" {
		t.Errorf("unexpected columns: %v", cols)
	}
}

func TestLineItemTemplateFields(t *testing.T) {
	fields := LineItemTemplateFields()
	seen := make(map[string]bool)
	required := 0
	for _, f := range fields {
		if seen[f.Key] {
			t.Errorf("duplicate key %q", f.Key)
		}
		seen[f.Key] = true
		if f.AlwaysRequired {
			required++
		}
	}
	if required != 1 || !fields[0].AlwaysRequired || fields[0].Key != "name" {
		t.Errorf("only the item name should be required")
	}
}
