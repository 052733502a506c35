package services

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// NumericKind tells how a NumericInput arrived at the boundary.
type NumericKind int

const (
	// NumericEmpty is a field the user has not filled in yet.
	NumericEmpty NumericKind = iota
	// NumericRaw is text typed by the user and not yet normalized.
	NumericRaw
	// NumericParsed is an already-committed number.
	NumericParsed
)

// NumericInput is the loosely typed numeric value accepted from forms, files
// and JSON documents. It is normalized to a float64 with Float64, which never
// fails: anything that is not a number counts as zero.
type NumericInput struct {
	kind NumericKind
	raw  string
	num  float64
}

var (
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	wholeNumber   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Empty returns a NumericInput with no value.
func Empty() NumericInput {
	return NumericInput{kind: NumericEmpty}
}

// Raw wraps user-entered text. The empty string is Empty.
func Raw(s string) NumericInput {
	if s == "" {
		return Empty()
	}
	return NumericInput{kind: NumericRaw, raw: s}
}

// Parsed wraps a committed number.
func Parsed(f float64) NumericInput {
	return NumericInput{kind: NumericParsed, num: f}
}

// NumericFrom converts an arbitrary decoded value (a form field, a spreadsheet
// cell, a JSON-decoded interface) into a NumericInput.
func NumericFrom(v any) NumericInput {
	switch x := v.(type) {
	case nil:
		return Empty()
	case NumericInput:
		return x
	case string:
		return Raw(x)
	case json.Number:
		return Raw(x.String())
	case bool:
		return Empty()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Empty()
	}
	return Parsed(f)
}

// Kind reports how the value arrived.
func (n NumericInput) Kind() NumericKind { return n.kind }

// IsEmpty reports whether no value was entered.
func (n NumericInput) IsEmpty() bool { return n.kind == NumericEmpty }

// Float64 normalizes the input. Empty, unparseable, NaN and infinite values
// are all zero. Raw text is read up to the end of its leading decimal literal,
// so "12kg" is 12.
func (n NumericInput) Float64() float64 {
	var f float64
	switch n.kind {
	case NumericParsed:
		f = n.num
	case NumericRaw:
		lit := leadingNumber.FindString(strings.TrimSpace(n.raw))
		if lit == "" {
			return 0
		}
		parsed, err := cast.ToFloat64E(lit)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Strict returns the value only when the input is a complete, finite number.
// Aggregations use it to skip values instead of counting them as zero.
func (n NumericInput) Strict() (float64, bool) {
	switch n.kind {
	case NumericParsed:
		if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
			return 0, false
		}
		return n.num, true
	case NumericRaw:
		s := strings.TrimSpace(n.raw)
		if !wholeNumber.MatchString(s) {
			return 0, false
		}
		f := n.Float64()
		if f == 0 && !isZeroLiteral(s) {
			// overflowed or otherwise rejected by the parser
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String returns the text form used when writing the value back out.
func (n NumericInput) String() string {
	switch n.kind {
	case NumericRaw:
		return n.raw
	case NumericParsed:
		return cast.ToString(n.num)
	}
	return ""
}

// MarshalJSON keeps the kind: Empty is "", Raw is a JSON string and Parsed is
// a JSON number. Non-finite numbers are written as 0.
func (n NumericInput) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case NumericRaw:
		return json.Marshal(n.raw)
	case NumericParsed:
		if math.IsNaN(n.num) || math.IsInf(n.num, 0) {
			return []byte("0"), nil
		}
		return json.Marshal(n.num)
	}
	return []byte(`""`), nil
}

// UnmarshalJSON accepts null, strings and numbers. Any other JSON value decodes
// to Empty without an error.
func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Empty()
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = Empty()
			return nil
		}
		*n = Raw(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			*n = Empty()
			return nil
		}
		*n = Parsed(f)
	default:
		*n = Empty()
	}
	return nil
}

func isZeroLiteral(s string) bool {
	mantissa := strings.TrimLeft(s, "+-")
	if i := strings.IndexAny(mantissa, "eE"); i >= 0 {
		mantissa = mantissa[:i]
	}
	return strings.Trim(mantissa, "0.") == ""
}
