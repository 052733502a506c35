package services

import (
	"testing"
)

func TestUOMOptions(t *testing.T) {
	if len(UOMOptions) == 0 {
		t.Fatal("UOMOptions should not be empty")
	}

	// Check some expected values
	expected := map[string]bool{
		"Nos": true, "Sqm": true, "Sqft": true, "Kg": true, "Lumpsum": true,
	}
	found := make(map[string]bool)
	for _, opt := range UOMOptions {
		if opt == "" {
			t.Error("UOMOptions contains empty string")
		}
		found[opt] = true
	}
	for k := range expected {
		if !found[k] {
			t.Errorf("expected UOM option %q not found", k)
		}
	}
}

func TestTaxRateOptions(t *testing.T) {
	if len(TaxRateOptions) == 0 {
		t.Fatal("TaxRateOptions should not be empty")
	}

	expected := []int{0, 5, 12, 18, 28}
	if len(TaxRateOptions) != len(expected) {
		t.Errorf("expected %d tax rate options, got %d", len(expected), len(TaxRateOptions))
	}
	for i, v := range expected {
		if TaxRateOptions[i] != v {
			t.Errorf("TaxRateOptions[%d] = %d, want %d", i, TaxRateOptions[i], v)
		}
	}
}
