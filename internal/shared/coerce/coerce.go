// Package coerce turns loosely typed request values into numbers and times.
// Clients send coordinates and ids either as JSON numbers or as numeric
// strings; both are accepted, anything else is rejected.
package coerce

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var ErrInvalidDate = errors.New("invalid date")

// Number is a JSON field that may hold a number or a numeric string.
type Number struct {
	raw     any
	present bool
}

// NewNumber wraps v as if it had been decoded from a request body.
func NewNumber(v any) Number {
	return Number{raw: v, present: v != nil}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = NewNumber(v)
	return nil
}

// Present reports whether the field was sent with a non-null value.
func (n Number) Present() bool {
	return n.present
}

// Float64 returns the value when it is a finite number.
func (n Number) Float64() (float64, bool) {
	if !n.present {
		return 0, false
	}
	switch v := n.raw.(type) {
	case bool:
		return 0, false
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		n.raw = strings.TrimSpace(v)
	}
	f, err := cast.ToFloat64E(n.raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ID returns the value when it is a positive whole number.
func (n Number) ID() (uint, bool) {
	f, ok := n.Float64()
	if !ok || f < 1 || f != math.Trunc(f) || f > math.MaxUint32 {
		return 0, false
	}
	return uint(f), true
}

// ParseFloat coerces a query-string value.
func ParseFloat(s string) (float64, bool) {
	return NewNumber(s).Float64()
}

// ParseID parses a path parameter into a positive id.
func ParseID(s string) (uint, bool) {
	return NewNumber(s).ID()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime accepts the date and timestamp shapes clients send.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ParseOptionalTime parses s when it is set and non-blank.
func ParseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
