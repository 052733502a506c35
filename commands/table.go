package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"quotecalc/services"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func row(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

// writeLinesTable prints every line of q with its line total. Lines with a
// blank name are shown but marked as left out of the totals.
func writeLinesTable(w io.Writer, q services.Quote) error {
	tw := newTable(w)
	row(tw, "#", "ITEM", "QTY", "UNIT", "RATE", "DISC %", "AMOUNT")
	for i, item := range q.Items {
		name := item.Name
		if !item.Named() {
			name = "(blank, not totalled)"
		}
		row(tw,
			fmt.Sprint(i+1),
			name,
			services.FormatQty(item.Quantity.Float64()),
			item.Unit,
			services.FormatAmount(item.UnitPrice.Float64(), q.Currency),
			services.FormatPercent(item.DiscountPercent.Float64()),
			services.FormatAmount(services.ComputeLineTotal(item), q.Currency),
		)
	}
	return tw.Flush()
}

// writeTotalsTable prints the document totals block.
func writeTotalsTable(w io.Writer, totals services.DocumentTotals, currency string) error {
	tw := newTable(w)
	amount := func(v float64) string { return services.FormatAmount(v, currency) }
	row(tw, "Subtotal", amount(totals.Subtotal))
	row(tw, "Discount", amount(totals.Discount))
	row(tw, "After discount", amount(totals.SubtotalAfterDiscount))
	row(tw, "Tax ("+services.FormatPercent(totals.TaxRate)+")", amount(totals.TaxAmount))
	row(tw, "Total", amount(totals.TotalAmount))
	return tw.Flush()
}
