package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestApplyEdit(t *testing.T) {
	q := Quote{}

	steps := []EditEvent{
		{Op: OpAddItem, Value: json.RawMessage(`{"name": "Design"}`)},
		{Op: OpSetField, Index: 0, Field: "quantity", Value: json.RawMessage(`"1"`)},
		{Op: OpSetField, Index: 0, Field: "quantity", Value: json.RawMessage(`"10"`)},
		{Op: OpSetField, Index: 0, Field: "unit_price", Value: json.RawMessage(`500`)},
		{Op: OpSetHeader, Field: "tax_rate", Value: json.RawMessage(`18`)},
		{Op: OpSetHeader, Field: "client", Value: json.RawMessage(`"Acme"`)},
	}
	for i, ev := range steps {
		if err := ApplyEdit(&q, ev); err != nil {
			t.Fatalf("step %d: ApplyEdit() error = %v", i, err)
		}
	}

	if len(q.Items) != 1 || q.Items[0].ID == "" {
		t.Fatalf("unexpected items: %+v", q.Items)
	}
	if q.Client.Name != "Acme" {
		t.Errorf("Client.Name = %q", q.Client.Name)
	}
	if got := q.Totals().TotalAmount; got != 5900 {
		t.Errorf("TotalAmount = %v, want 5900", got)
	}

	if err := ApplyEdit(&q, EditEvent{Op: OpRemoveItem, Index: 0}); err != nil {
		t.Fatalf("remove_item: %v", err)
	}
	if len(q.Items) != 0 {
		t.Errorf("expected no items after remove, got %d", len(q.Items))
	}
}

func TestApplyEdit_Errors(t *testing.T) {
	q := Quote{Items: []LineItem{{Name: "A"}}}

	tests := []struct {
		name string
		ev   EditEvent
		want error
	}{
		{"unknown op", EditEvent{Op: "rename"}, ErrUnknownEditOp},
		{"remove out of range", EditEvent{Op: OpRemoveItem, Index: 3}, ErrItemIndex},
		{"set negative index", EditEvent{Op: OpSetField, Index: -1, Field: "name"}, ErrItemIndex},
		{"unknown item field", EditEvent{Op: OpSetField, Index: 0, Field: "hsn"}, ErrUnknownField},
		{"unknown header field", EditEvent{Op: OpSetHeader, Field: "agency"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ApplyEdit(&q, tt.ev); !errors.Is(err, tt.want) {
				t.Errorf("ApplyEdit() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyEdit_BadNumbersAreCoerced(t *testing.T) {
	q := Quote{Items: []LineItem{{Name: "A", Quantity: Parsed(2), UnitPrice: Parsed(10)}}}

	ev := EditEvent{Op: OpSetField, Index: 0, Field: "unit_price", Value: json.RawMessage(`"abc"`)}
	if err := ApplyEdit(&q, ev); err != nil {
		t.Fatalf("ApplyEdit() error = %v", err)
	}
	if got := q.Totals().Subtotal; got != 0 {
		t.Errorf("Subtotal = %v, want 0", got)
	}
}

func TestReplay(t *testing.T) {
	q := Quote{Items: []LineItem{{Name: "Design", Quantity: Parsed(10), UnitPrice: Parsed(500)}}}

	events := strings.Join([]string{
		`# typing a second row`,
		`{"op": "add_item"}`,
		`{"op": "set_field", "index": 1, "field": "quantity", "value": "2"}`,
		``,
		`{"op": "set_field", "index": 1, "field": "unit_price", "value": "0.004"}`,
		`{"op": "set_field", "index": 1, "field": "name", "value": "Dev"}`,
		`{"op": "set_field", "index": 1, "field": "unit_price", "value": "750"}`,
	}, "\n")

	var steps []ReplayStep
	err := Replay(&q, strings.NewReader(events), func(s ReplayStep) error {
		steps = append(steps, s)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	// Only the last edit moves the totals: the unnamed row does not count,
	// and naming it adds 0.01 at most.
	for i, s := range steps[:4] {
		if s.Emitted {
			t.Errorf("step %d (line %d, %s) should not be emitted", i, s.Line, s.Op)
		}
	}
	last := steps[4]
	if !last.Emitted || last.Totals.Subtotal != 6500 {
		t.Errorf("unexpected last step: %+v", last)
	}
	if last.Line != 7 {
		t.Errorf("last.Line = %d, want 7", last.Line)
	}
}

func TestReplay_StopsOnError(t *testing.T) {
	q := Quote{}
	events := "{\"op\": \"add_item\"}\n{\"op\": \"remove_item\", \"index\": 5}\n{\"op\": \"add_item\"}\n"

	calls := 0
	err := Replay(&q, strings.NewReader(events), func(ReplayStep) error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrItemIndex) {
		t.Fatalf("expected ErrItemIndex, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
	if calls != 1 {
		t.Errorf("emit called %d times, want 1", calls)
	}
}

func TestReplay_BadJSON(t *testing.T) {
	q := Quote{}
	err := Replay(&q, strings.NewReader("{oops\n"), func(ReplayStep) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected decode error on line 1, got %v", err)
	}
}
