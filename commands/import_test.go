package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"quotecalc/services"
	"quotecalc/testhelpers"
)

const importCSV = "Item *,Unit,Qty,Rate,Discount %,Remarks\n" +
	"Design,Day,10,500,0,first\n" +
	"Dev,Day,20,750,5,\n" +
	",,,,,\n" +
	"Travel,Trip,two,1200,,\n"

func TestImportCmd_ToFile(t *testing.T) {
	env := newTestEnv(t)
	dir := t.TempDir()
	src := testhelpers.WriteTestFile(t, dir, "items.csv", []byte(importCSV))
	out := filepath.Join(dir, "quote.json")

	stdout, stderr, err := runCommand(t, env, "import", src, "-o", out, "--number", "QT-25-26-007", "--client", "Acme")
	if err != nil {
		t.Fatalf("import error: %v", err)
	}
	testhelpers.AssertContains(t, stdout, "imported 3 lines (1 blank rows skipped, 1 warnings)")
	testhelpers.AssertContains(t, stderr, `column "Remarks" was ignored`, "row 5, Quantity:")

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open written quote: %v", err)
	}
	defer f.Close()
	q, err := services.LoadQuote(f)
	if err != nil {
		t.Fatalf("load written quote: %v", err)
	}
	if q.Number != "QT-25-26-007" || q.Client.Name != "Acme" {
		t.Errorf("header = %q / %q", q.Number, q.Client.Name)
	}
	if q.Date != "2026-01-15" || q.Status != "draft" || q.Currency != "INR" {
		t.Errorf("defaults = %q %q %q", q.Date, q.Status, q.Currency)
	}
	if len(q.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(q.Items))
	}
	for _, item := range q.Items {
		if item.ID == "" {
			t.Errorf("item %q has no ID", item.Name)
		}
	}
	if got := q.Items[2].Quantity.String(); got != "two" {
		t.Errorf("non-numeric quantity kept as %q, want raw text", got)
	}
	// "two" prices as 0, so only Design and Dev count.
	if got := q.Totals().Subtotal; got != 19250 {
		t.Errorf("subtotal = %v, want 19250", got)
	}
}

func TestImportCmd_Stdout(t *testing.T) {
	src := testhelpers.WriteTestFile(t, t.TempDir(), "items.csv", []byte("Item,Qty,Rate\nDesign,10,500\n"))

	stdout, _, err := runCommand(t, newTestEnv(t), "import", src)
	if err != nil {
		t.Fatalf("import error: %v", err)
	}
	q, err := services.LoadQuote(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("stdout is not a quote: %v", err)
	}
	if q.Totals().TotalAmount != 5900 {
		t.Errorf("total = %v, want 5900 with the configured 18%% tax", q.Totals().TotalAmount)
	}
}

func TestImportCmd_ErrorReport(t *testing.T) {
	dir := t.TempDir()
	src := testhelpers.WriteTestFile(t, dir, "items.csv", []byte(importCSV))
	report := filepath.Join(dir, "errors.xlsx")

	if _, _, err := runCommand(t, newTestEnv(t), "import", src, "-o", filepath.Join(dir, "q.json"), "--errors", report); err != nil {
		t.Fatalf("import error: %v", err)
	}
	f, err := excelize.OpenFile(report)
	if err != nil {
		t.Fatalf("open error report: %v", err)
	}
	f.Close()
}

func TestImportCmd_MissingItemColumn(t *testing.T) {
	src := testhelpers.WriteTestFile(t, t.TempDir(), "items.csv", []byte("Qty,Rate\n1,2\n"))

	_, stderr, err := runCommand(t, newTestEnv(t), "import", src)
	if err == nil {
		t.Fatal("expected error when the Item column is missing")
	}
	testhelpers.AssertContains(t, stderr, "error: Failed to read items.csv")
}

func TestTemplateCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "template.xlsx")

	stdout, _, err := runCommand(t, newTestEnv(t), "template", "-o", out)
	if err != nil {
		t.Fatalf("template error: %v", err)
	}
	testhelpers.AssertContains(t, stdout, "template written to "+out)

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	defer f.Close()
	header, err := f.GetCellValue("Line Items", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if !strings.HasPrefix(header, "Item") {
		t.Errorf("A1 = %q, want the Item column", header)
	}
}

func TestTemplateCmd_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "template.xlsx")
	if _, _, err := runCommand(t, newTestEnv(t), "template", "-o", tmpl); err != nil {
		t.Fatalf("template error: %v", err)
	}

	stdout, _, err := runCommand(t, newTestEnv(t), "totals", "--json", tmpl)
	if err != nil {
		t.Fatalf("totals on template error: %v", err)
	}
	testhelpers.AssertContains(t, stdout, `"name": "Website design"`)
}
