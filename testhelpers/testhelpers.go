// Package testhelpers provides fixtures for testing the quotecalc commands.
package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quotecalc/services"
)

// NewTestQuote returns a sent quotation with two priced lines, an 18% tax
// rate and a 1000 flat discount. Its total is 21535.
func NewTestQuote(number string) services.Quote {
	return services.Quote{
		Number:   number,
		Client:   services.Party{Name: "Test Client", Email: "client@example.com"},
		Date:     "2025-06-02",
		Currency: "INR",
		Status:   "sent",
		TaxRate:  services.Parsed(18),
		Discount: services.Parsed(1000),
		Items: []services.LineItem{
			{ID: "design", Name: "Design", Unit: "Day", Quantity: services.Parsed(10), UnitPrice: services.Parsed(500), DiscountPercent: services.Parsed(0)},
			{ID: "dev", Name: "Dev", Unit: "Day", Quantity: services.Parsed(20), UnitPrice: services.Parsed(750), DiscountPercent: services.Parsed(5)},
		},
	}
}

// WriteTestQuote saves q as JSON under dir and returns the file path.
func WriteTestQuote(t *testing.T, dir, name string, q services.Quote) string {
	t.Helper()

	var buf bytes.Buffer
	if err := services.WriteQuote(&buf, q); err != nil {
		t.Fatalf("failed to encode test quote: %v", err)
	}
	return WriteTestFile(t, dir, name, buf.Bytes())
}

// WriteTestFile writes content to dir/name and returns the file path.
func WriteTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// AssertContains checks that body contains all specified fragments.
func AssertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected output to contain %q, but it was not found\noutput (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertNotContains checks that body contains none of the fragments.
func AssertNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected output not to contain %q\noutput (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
