package services

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0, "Zero Rupees Only/-"},
		{1, "One Rupees Only/-"},
		{15, "Fifteen Rupees Only/-"},
		{100, "One Hundred Rupees Only/-"},
		{105, "One Hundred and Five Rupees Only/-"},
		{21535, "Twenty One Thousand Five Hundred and Thirty Five Rupees Only/-"},
		{100000, "One Lakhs Rupees Only/-"},
		{913183.50, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees and Fifty Paise Only/-"},
		{12345678, "One Crores Twenty Three Lakhs Forty Five Thousand Six Hundred and Seventy Eight Rupees Only/-"},
		{0.75, "Seventy Five Paise Only/-"},
		{0.004, "Zero Rupees Only/-"},
		{-250, "Negative Two Hundred and Fifty Rupees Only/-"},
	}

	for _, tt := range tests {
		if got := AmountToWords(tt.input); got != tt.expect {
			t.Errorf("AmountToWords(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestIndianWords_LargeCrores(t *testing.T) {
	// 150 crores needs the crore count itself spelled out with hundreds
	got := indianWords(1500000000)
	if got != "One Hundred and Fifty Crores" {
		t.Errorf("indianWords(1500000000) = %q", got)
	}
}
