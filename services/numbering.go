package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultQuotePrefix starts every generated quotation number.
const DefaultQuotePrefix = "QT"

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()
	month := t.Month()

	var startYear int
	if month >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// FormatQuoteNumber builds "{prefix}-{ref}-{fiscalYear}-{seq}". The sequence
// is zero-padded to 3 digits. An empty ref is left out.
func FormatQuoteNumber(prefix, ref, fiscalYear string, sequence int) string {
	if prefix == "" {
		prefix = DefaultQuotePrefix
	}
	if ref == "" {
		return fmt.Sprintf("%s-%s-%03d", prefix, fiscalYear, sequence)
	}
	return fmt.Sprintf("%s-%s-%s-%03d", prefix, ref, fiscalYear, sequence)
}

// NextQuoteNumber returns the next number in the prefix/ref/fiscal-year
// series, given the numbers already issued. The sequence continues after the
// highest one found, so gaps left by deleted quotes are not reused.
func NextQuoteNumber(prefix, ref string, now time.Time, existing []string) string {
	fy := GetFiscalYear(now)
	series := strings.TrimSuffix(FormatQuoteNumber(prefix, ref, fy, 0), "000")

	highest := 0
	for _, number := range existing {
		rest, ok := strings.CutPrefix(strings.TrimSpace(number), series)
		if !ok {
			continue
		}
		// A ref that ends in its own year pair ("QT-25-26-27-001") must not
		// be read as this series.
		if rest == "" || strings.ContainsFunc(rest, notDigit) {
			continue
		}
		if seq, err := strconv.Atoi(rest); err == nil && seq > highest {
			highest = seq
		}
	}
	return FormatQuoteNumber(prefix, ref, fy, highest+1)
}

func notDigit(r rune) bool { return r < '0' || r > '9' }
