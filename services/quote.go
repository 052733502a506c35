package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ErrNoNamedLines is returned when a document has no line with a name.
var ErrNoNamedLines = errors.New("at least one line item needs a name")

// QuoteStatuses lists the lifecycle states of a quotation.
var QuoteStatuses = []string{"draft", "sent", "accepted", "rejected", "invoiced"}

// Quote is a quotation or invoice document as exchanged with the caller.
// Totals are never stored on it; call Totals.
type Quote struct {
	Number   string       `json:"number"`
	Client   Party        `json:"client"`
	Date     string       `json:"date,omitempty"`
	Currency string       `json:"currency,omitempty"`
	Status   string       `json:"status,omitempty"`
	TaxRate  NumericInput `json:"tax_rate"`
	Discount NumericInput `json:"discount"`
	Items    []LineItem   `json:"items"`
	Notes    string       `json:"notes,omitempty"`
	Terms    string       `json:"terms,omitempty"`
}

// Totals prices the document.
func (q Quote) Totals() DocumentTotals {
	return ComputeDocumentTotals(q.Items, q.TaxRate, q.Discount)
}

// LineTotals returns the line total of every item, in order, including
// blank-named lines.
func (q Quote) LineTotals() []float64 {
	totals := make([]float64, len(q.Items))
	for i, item := range q.Items {
		totals[i] = ComputeLineTotal(item)
	}
	return totals
}

// NamedItems returns the lines that count towards totals.
func (q Quote) NamedItems() []LineItem {
	var named []LineItem
	for _, item := range q.Items {
		if item.Named() {
			named = append(named, item)
		}
	}
	return named
}

// Validate checks that the document can be saved. Numeric fields are never
// validated; they are coerced when priced.
func (q Quote) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Items, validation.By(hasNamedLine)),
		validation.Field(&q.Status, validation.In(stringsToAny(QuoteStatuses)...)),
		validation.Field(&q.Currency, validation.By(knownCurrency)),
		validation.Field(&q.Client),
	)
}

// EnsureItemIDs assigns an ID to every line that lacks one.
func (q *Quote) EnsureItemIDs() {
	for i := range q.Items {
		if q.Items[i].ID == "" {
			q.Items[i].ID = uuid.NewString()
		}
	}
}

// LoadQuote decodes a JSON quote document.
func LoadQuote(r io.Reader) (Quote, error) {
	var q Quote
	dec := json.NewDecoder(r)
	if err := dec.Decode(&q); err != nil {
		return Quote{}, fmt.Errorf("decode quote: %w", err)
	}
	return q, nil
}

// WriteQuote encodes q as indented JSON.
func WriteQuote(w io.Writer, q Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	return nil
}

func hasNamedLine(value any) error {
	items, _ := value.([]LineItem)
	for _, item := range items {
		if item.Named() {
			return nil
		}
	}
	return ErrNoNamedLines
}

func knownCurrency(value any) error {
	code, _ := value.(string)
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
