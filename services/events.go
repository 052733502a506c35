package services

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnknownEditOp is returned for an edit whose op is not recognized.
	ErrUnknownEditOp = errors.New("unknown edit op")
	// ErrItemIndex is returned when an edit targets a line that does not exist.
	ErrItemIndex = errors.New("line item index out of range")
	// ErrUnknownField is returned when an edit names a field that cannot be set.
	ErrUnknownField = errors.New("unknown field")
)

// Edit ops understood by ApplyEdit.
const (
	OpAddItem    = "add_item"
	OpRemoveItem = "remove_item"
	OpSetField   = "set_field"
	OpSetHeader  = "set_header"
)

// EditEvent is one user input change on an open document, e.g. a keystroke
// in the quantity cell of row 2.
type EditEvent struct {
	Op    string          `json:"op"`
	Index int             `json:"index,omitempty"`
	Field string          `json:"field,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// ApplyEdit mutates q according to ev. Numeric values are stored as they
// arrive; they are coerced when the document is priced.
func ApplyEdit(q *Quote, ev EditEvent) error {
	switch ev.Op {
	case OpAddItem:
		item := LineItem{ID: uuid.NewString()}
		if len(ev.Value) > 0 {
			if err := json.Unmarshal(ev.Value, &item); err != nil {
				return fmt.Errorf("add_item: %w", err)
			}
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
		}
		q.Items = append(q.Items, item)
		return nil

	case OpRemoveItem:
		if ev.Index < 0 || ev.Index >= len(q.Items) {
			return fmt.Errorf("remove_item %d: %w", ev.Index, ErrItemIndex)
		}
		q.Items = append(q.Items[:ev.Index], q.Items[ev.Index+1:]...)
		return nil

	case OpSetField:
		if ev.Index < 0 || ev.Index >= len(q.Items) {
			return fmt.Errorf("set_field %d: %w", ev.Index, ErrItemIndex)
		}
		return setItemField(&q.Items[ev.Index], ev.Field, ev.Value)

	case OpSetHeader:
		return setHeaderField(q, ev.Field, ev.Value)
	}
	return fmt.Errorf("%q: %w", ev.Op, ErrUnknownEditOp)
}

func setItemField(item *LineItem, field string, value json.RawMessage) error {
	switch field {
	case "name":
		item.Name = decodeText(value)
	case "unit":
		item.Unit = decodeText(value)
	case "quantity":
		item.Quantity = decodeNumeric(value)
	case "unit_price":
		item.UnitPrice = decodeNumeric(value)
	case "discount_percent":
		item.DiscountPercent = decodeNumeric(value)
	default:
		return fmt.Errorf("line item field %q: %w", field, ErrUnknownField)
	}
	return nil
}

func setHeaderField(q *Quote, field string, value json.RawMessage) error {
	switch field {
	case "tax_rate":
		q.TaxRate = decodeNumeric(value)
	case "discount":
		q.Discount = decodeNumeric(value)
	case "client":
		q.Client.Name = decodeText(value)
	case "number":
		q.Number = decodeText(value)
	case "status":
		q.Status = decodeText(value)
	default:
		return fmt.Errorf("header field %q: %w", field, ErrUnknownField)
	}
	return nil
}

func decodeNumeric(value json.RawMessage) NumericInput {
	var n NumericInput
	_ = n.UnmarshalJSON(value)
	return n
}

func decodeText(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return strings.Trim(string(value), `"`)
	}
	return s
}

// ReplayStep is the outcome of one applied edit.
type ReplayStep struct {
	Line    int            `json:"line"`
	Op      string         `json:"op"`
	Emitted bool           `json:"emitted"`
	Totals  DocumentTotals `json:"totals"`
}

// Replay reads newline-delimited EditEvents from r, applies them to q in
// order and re-prices the document after each one. emit is called for every
// event; Emitted is set only when the totals moved by more than 0.01 since
// the last emitted totals, which is when a caller would autosave.
func Replay(q *Quote, r io.Reader, emit func(ReplayStep) error) error {
	var tracker TotalsTracker
	tracker.Observe(q.Totals())

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var ev EditEvent
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return fmt.Errorf("line %d: decode edit: %w", line, err)
		}
		if err := ApplyEdit(q, ev); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		totals, emitted := tracker.Observe(q.Totals())
		if err := emit(ReplayStep{Line: line, Op: ev.Op, Emitted: emitted, Totals: totals}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read edits: %w", err)
	}
	return nil
}
