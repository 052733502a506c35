package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 100, Green: 100, Blue: 100}
	darkColor   = &props.Color{Red: 33, Green: 37, Blue: 41}
	whiteColor  = &props.Color{Red: 255, Green: 255, Blue: 255}
	stripeColor = &props.Color{Red: 248, Green: 249, Blue: 250}
)

// GeneratePDF creates a quotation PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addClientBlock(m, data)
	addLineItemsTable(m, data)
	addTotals(m, data)
	addAmountInWords(m, data)
	addNotes(m, "NOTES", data.Notes)
	addNotes(m, "TERMS & CONDITIONS", data.Terms)
	addSignatures(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds company name, document title, contact line and quote number.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Company.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(strings.ToUpper(data.Title), props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: darkColor,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(joinNonEmpty([]string{data.Company.Address, data.Company.Email}, " | "), props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("No: %s", data.QuoteNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	if data.Company.GSTIN != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(fmtField("GSTIN", data.Company.GSTIN), props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addClientBlock adds client details on the left and document metadata on the right.
func addClientBlock(m core.Maroto, data ExportData) {
	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Left, Color: mutedColor}
	valueStyle := props.Text{Size: 8, Align: align.Left}
	rightLabelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Right, Color: mutedColor}
	rightValueStyle := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("BILL TO", labelStyle)),
			col.New(6).Add(text.New("DETAILS", rightLabelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.Client.Name, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Date:", rightLabelStyle)),
			col.New(3).Add(text.New(data.Date, rightValueStyle)),
		),
	)

	address := joinNonEmpty([]string{data.Client.Address, data.Client.PinCode}, " - ")
	if address != "" || data.Status != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(address, valueStyle)),
				col.New(3).Add(text.New("Status:", rightLabelStyle)),
				col.New(3).Add(text.New(data.Status, rightValueStyle)),
			),
		)
	}

	if data.Client.GSTIN != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(fmtField("GSTIN", data.Client.GSTIN), valueStyle)),
			),
		)
	}

	contact := joinNonEmpty([]string{data.Client.Phone, data.Client.Email}, " | ")
	if contact != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(fmtField("Contact", contact), valueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addLineItemsTable adds the line items table with header and body rows.
func addLineItemsTable(m core.Maroto, data ExportData) {
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: whiteColor,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: darkColor}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("SI No", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Disc%", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	for i, item := range data.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: stripeColor}
		}

		cols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), bodyText)),
			col.New(4).Add(text.New(item.Description, bodyTextLeft)),
			col.New(1).Add(text.New(FormatQty(item.Qty), bodyTextRight)),
			col.New(1).Add(text.New(item.Unit, bodyText)),
			col.New(2).Add(text.New(data.Amount(item.Rate), bodyTextRight)),
			col.New(1).Add(text.New(FormatPercent(item.DiscountPercent), bodyText)),
			col.New(2).Add(text.New(data.Amount(item.LineTotal), bodyTextRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}

		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

// addTotals adds right-aligned total rows.
func addTotals(m core.Maroto, data ExportData) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	t := data.Totals
	lines := []struct{ label, value string }{
		{"Subtotal", data.Amount(t.Subtotal)},
	}
	if t.Discount != 0 {
		lines = append(lines,
			struct{ label, value string }{"Discount", "- " + data.Amount(t.Discount)},
			struct{ label, value string }{"After Discount", data.Amount(t.SubtotalAfterDiscount)},
		)
	}
	lines = append(lines, struct{ label, value string }{
		fmt.Sprintf("Tax %s", FormatPercent(t.TaxRate)), data.Amount(t.TaxAmount),
	})

	for _, l := range lines {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(l.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(l.value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	grandCell := &props.Cell{BackgroundColor: darkColor}
	grandStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: whiteColor}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(data.Amount(t.TotalAmount), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addAmountInWords adds the amount in words row.
func addAmountInWords(m core.Maroto, data ExportData) {
	if data.AmountInWords == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Amount in Words: %s", data.AmountInWords), props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addNotes adds a titled free-text section if body is non-empty.
func addNotes(m core.Maroto, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(title, props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: mutedColor,
			})),
		),
	)
	for _, line := range strings.Split(body, "\n") {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(line, props.Text{Size: 8, Align: align.Left})),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addSignatures adds the signature section at the bottom.
func addSignatures(m core.Maroto, data ExportData) {
	m.AddRows(row.New(10))

	lineStyle := props.Text{Size: 8, Align: align.Center, Color: mutedColor}
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("____________________________", lineStyle)),
			col.New(6).Add(text.New("____________________________", lineStyle)),
		),
	)

	labelStyle := props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Color: mutedColor}
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Customer Acceptance", labelStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("For %s", data.Company.Name), labelStyle)),
		),
	)
}

// fmtField returns "label: value" if value is non-empty, otherwise empty string.
func fmtField(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, value)
}
