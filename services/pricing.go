// Package services provides pricing, import/export and reporting for quotation
// and invoice documents.
package services

import (
	"math"
	"strings"
)

// LineItem is one row of a quotation or invoice. Only Name, Quantity,
// UnitPrice and DiscountPercent take part in pricing.
type LineItem struct {
	ID              string       `json:"id,omitempty"`
	Name            string       `json:"name"`
	Unit            string       `json:"unit,omitempty"`
	Quantity        NumericInput `json:"quantity"`
	UnitPrice       NumericInput `json:"unit_price"`
	DiscountPercent NumericInput `json:"discount_percent"`
}

// Named reports whether the line counts towards document totals.
func (li LineItem) Named() bool {
	return strings.TrimSpace(li.Name) != ""
}

// DocumentTotals holds the derived totals of a document.
type DocumentTotals struct {
	Subtotal              float64 `json:"subtotal"`
	Discount              float64 `json:"discount"`
	SubtotalAfterDiscount float64 `json:"subtotal_after_discount"`
	TaxRate               float64 `json:"tax_rate"`
	TaxAmount             float64 `json:"tax_amount"`
	TotalAmount           float64 `json:"total_amount"`
}

// Round2 rounds to 2 decimal places, halves away from zero on x*100.
// NaN and infinities round to 0.
func Round2(x float64) float64 {
	r := math.Round(float64(x*100)) / 100
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// ComputeLineTotal returns quantity * unitPrice less the line discount,
// rounded to 2 decimals. Missing or non-numeric fields count as zero and
// out-of-range values are applied as given.
func ComputeLineTotal(item LineItem) float64 {
	qty := item.Quantity.Float64()
	price := item.UnitPrice.Float64()
	pct := item.DiscountPercent.Float64()

	// The conversions keep each product rounded on its own, so no platform
	// fuses them into the subtraction.
	subtotal := float64(qty * price)
	discount := float64(subtotal * (pct / 100))
	return Round2(subtotal - discount)
}

// ComputeDocumentTotals prices a document. Lines with a blank name are left
// out of the subtotal, which is summed in item order. The header discount is
// a flat amount and the discounted subtotal never goes below zero.
func ComputeDocumentTotals(items []LineItem, taxRatePercent, headerDiscountAmount NumericInput) DocumentTotals {
	var subtotal float64
	for _, item := range items {
		if !item.Named() {
			continue
		}
		subtotal += ComputeLineTotal(item)
	}
	subtotal = Round2(subtotal)

	discount := headerDiscountAmount.Float64()
	taxRate := taxRatePercent.Float64()

	afterDiscount := math.Max(0, subtotal-discount)
	taxAmount := Round2(float64(afterDiscount*taxRate) / 100)
	total := Round2(afterDiscount + taxAmount)

	return DocumentTotals{
		Subtotal:              subtotal,
		Discount:              discount,
		SubtotalAfterDiscount: afterDiscount,
		TaxRate:               taxRate,
		TaxAmount:             taxAmount,
		TotalAmount:           total,
	}
}
