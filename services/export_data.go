package services

import (
	"strings"
)

// ExportLineItem is one priced row of an exported quote.
type ExportLineItem struct {
	SINo            int
	Description     string
	Unit            string
	Qty             float64
	Rate            float64
	DiscountPercent float64
	LineTotal       float64
}

// ExportData holds all data needed to render a quote as xlsx or PDF.
type ExportData struct {
	Company Party
	Client  Party

	Title       string
	QuoteNumber string
	Date        string
	Status      string
	Currency    string

	LineItems []ExportLineItem
	Totals    DocumentTotals

	AmountInWords string
	Notes         string
	Terms         string
}

// BuildExportData prices q and assembles what the exporters need. Blank-named
// lines are left out, as they do not count towards the totals.
func BuildExportData(q Quote, company Party) ExportData {
	totals := q.Totals()

	data := ExportData{
		Company:     company,
		Client:      q.Client,
		Title:       "Quotation",
		QuoteNumber: q.Number,
		Date:        q.Date,
		Status:      q.Status,
		Currency:    strings.ToUpper(strings.TrimSpace(q.Currency)),
		Totals:      totals,
		Notes:       q.Notes,
		Terms:       q.Terms,
	}
	if data.Status == "invoiced" {
		data.Title = "Tax Invoice"
	}
	if data.Currency == "" || data.Currency == "INR" {
		data.AmountInWords = AmountToWords(totals.TotalAmount)
	}

	for _, item := range q.NamedItems() {
		data.LineItems = append(data.LineItems, ExportLineItem{
			SINo:            len(data.LineItems) + 1,
			Description:     item.Name,
			Unit:            item.Unit,
			Qty:             item.Quantity.Float64(),
			Rate:            item.UnitPrice.Float64(),
			DiscountPercent: item.DiscountPercent.Float64(),
			LineTotal:       ComputeLineTotal(item),
		})
	}
	return data
}

// Amount formats v in the document's currency.
func (d ExportData) Amount(v float64) string {
	return FormatAmount(v, d.Currency)
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
