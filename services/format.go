package services

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAmount formats amount in the given ISO currency. INR uses Indian
// digit grouping; other currencies use their own symbol and separators.
// An empty or unknown code falls back to INR.
func FormatAmount(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" || code == money.INR || money.GetCurrency(code) == nil {
		return FormatINR(amount)
	}
	return money.NewFromFloat(Round2(amount), code).Display()
}

// FormatQty returns quantities without decimals when whole, otherwise with
// up to 3 decimals and thousands separators.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) && math.Abs(qty) < 1<<53 {
		return humanize.Comma(int64(qty))
	}
	return humanize.CommafWithDigits(qty, 3)
}

// FormatPercent formats a rate such as 18 or 12.5 as "18%" or "12.5%".
func FormatPercent(pct float64) string {
	return humanize.FtoaWithDigits(pct, 2) + "%"
}

// FormatINR formats amount in Indian Rupee notation: after the last three
// digits, digits are grouped in pairs (₹1,23,45,678.90). Exactly 2 decimals
// are shown, rounded half away from zero.
func FormatINR(amount float64) string {
	negative := amount < 0
	raw := toDecimal(math.Abs(amount)).StringFixed(2)

	intPart, decPart, _ := strings.Cut(raw, ".")
	result := "₹" + applyIndianGrouping(intPart) + "." + decPart
	if negative && raw != "0.00" {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// The last 3 digits stay together.
	result := s[n-3:]
	remaining := s[:n-3]

	// Group remaining digits in pairs from the right.
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// toDecimal uses the shortest decimal representation of f, so 10.005 is
// exactly 10.005 and not its binary neighbour. NaN and infinities are 0.
func toDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
