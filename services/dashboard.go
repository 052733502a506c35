package services

import (
	"sort"

	"github.com/shopspring/decimal"
)

// QuoteSummary is one row of the quote register.
type QuoteSummary struct {
	Number   string         `json:"number"`
	Client   string         `json:"client"`
	Date     string         `json:"date"`
	Status   string         `json:"status"`
	Currency string         `json:"currency"`
	Lines    int            `json:"lines"`
	Totals   DocumentTotals `json:"totals"`
}

// StatusSummary aggregates the quotes in one status.
type StatusSummary struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

// DashboardSummary aggregates a set of quotes.
type DashboardSummary struct {
	Count        int             `json:"count"`
	TotalValue   float64         `json:"total_value"`
	TotalTax     float64         `json:"total_tax"`
	AverageValue float64         `json:"average_value"`
	// HeaderDiscounts sums the numeric header discounts; DiscountsSkipped
	// counts the ones that were not numbers.
	HeaderDiscounts  float64 `json:"header_discounts"`
	DiscountsSkipped int     `json:"discounts_skipped"`
	ByStatus     []StatusSummary `json:"by_status"`
	Quotes       []QuoteSummary  `json:"quotes"`
}

// SummarizeQuotes prices every quote and rolls the results up by status.
// Statuses are listed in lifecycle order; unknown statuses follow, sorted.
// Values are summed across currencies as plain numbers.
func SummarizeQuotes(quotes []Quote) DashboardSummary {
	var summary DashboardSummary
	total := decimal.Zero
	tax := decimal.Zero
	byStatus := make(map[string]*StatusSummary)
	statusValue := make(map[string]decimal.Decimal)
	discounts := make([]NumericInput, 0, len(quotes))

	for _, q := range quotes {
		totals := q.Totals()
		discounts = append(discounts, q.Discount)
		status := q.Status
		if status == "" {
			status = "draft"
		}

		summary.Quotes = append(summary.Quotes, QuoteSummary{
			Number:   q.Number,
			Client:   q.Client.Name,
			Date:     q.Date,
			Status:   status,
			Currency: q.Currency,
			Lines:    len(q.NamedItems()),
			Totals:   totals,
		})

		total = total.Add(toDecimal(totals.TotalAmount))
		tax = tax.Add(toDecimal(totals.TaxAmount))

		s, ok := byStatus[status]
		if !ok {
			s = &StatusSummary{Status: status}
			byStatus[status] = s
		}
		s.Count++
		statusValue[status] = statusValue[status].Add(toDecimal(totals.TotalAmount))
	}

	summary.Count = len(quotes)
	summary.HeaderDiscounts, summary.DiscountsSkipped = SumNumeric(discounts)
	summary.TotalValue = total.Round(2).InexactFloat64()
	summary.TotalTax = tax.Round(2).InexactFloat64()
	if summary.Count > 0 {
		summary.AverageValue = total.Div(decimal.NewFromInt(int64(summary.Count))).Round(2).InexactFloat64()
	}

	for _, status := range statusOrder(byStatus) {
		s := byStatus[status]
		s.Value = statusValue[status].Round(2).InexactFloat64()
		summary.ByStatus = append(summary.ByStatus, *s)
	}
	return summary
}

func statusOrder(byStatus map[string]*StatusSummary) []string {
	var order []string
	known := make(map[string]bool, len(QuoteStatuses))
	for _, s := range QuoteStatuses {
		known[s] = true
		if _, ok := byStatus[s]; ok {
			order = append(order, s)
		}
	}
	var other []string
	for s := range byStatus {
		if !known[s] {
			other = append(other, s)
		}
	}
	sort.Strings(other)
	return append(order, other...)
}

// SumNumeric adds up values that are strictly numeric and counts the rest,
// which are skipped rather than coerced. Empty values are neither.
func SumNumeric(values []NumericInput) (sum float64, skipped int) {
	total := decimal.Zero
	for _, v := range values {
		if v.IsEmpty() {
			continue
		}
		f, ok := v.Strict()
		if !ok {
			skipped++
			continue
		}
		total = total.Add(toDecimal(f))
	}
	return total.InexactFloat64(), skipped
}
