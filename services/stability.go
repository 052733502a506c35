package services

import "math"

// totalsTolerance is the largest change in subtotal, tax or total that does
// not count as a new result.
const totalsTolerance = 0.01

// TotalsChanged reports whether next differs from prev by more than 0.01 in
// the subtotal, the tax amount or the total amount.
func TotalsChanged(prev, next DocumentTotals) bool {
	return differs(prev.Subtotal, next.Subtotal) ||
		differs(prev.TaxAmount, next.TaxAmount) ||
		differs(prev.TotalAmount, next.TotalAmount)
}

func differs(a, b float64) bool {
	return math.Abs(a-b) > totalsTolerance
}

// TotalsTracker remembers the last totals handed to the caller for one open
// document. The first observation is always emitted; later ones only when
// TotalsChanged. A TotalsTracker is not safe for concurrent use.
type TotalsTracker struct {
	last    DocumentTotals
	emitted bool
}

// Observe records next and returns the totals to publish and whether they
// should be published at all.
func (t *TotalsTracker) Observe(next DocumentTotals) (DocumentTotals, bool) {
	if t.emitted && !TotalsChanged(t.last, next) {
		return t.last, false
	}
	t.last = next
	t.emitted = true
	return next, true
}

// Last returns the most recently emitted totals.
func (t *TotalsTracker) Last() (DocumentTotals, bool) {
	return t.last, t.emitted
}

// Reset forgets the emitted totals, e.g. when the document is discarded.
func (t *TotalsTracker) Reset() {
	*t = TotalsTracker{}
}
