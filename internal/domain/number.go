package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMissingField marks a key that is absent from the source record.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidNumeric marks a value that cannot be parsed as a finite number.
	ErrInvalidNumeric = errors.New("invalid numeric")
)

// FieldError ties a decode problem to the source field it came from.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error() + " " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// MissingField returns a FieldError for an absent key.
func MissingField(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

// Number is a numeric field as decoded from the source record. Raw keeps the
// source text so values can be displayed without reformatting.
type Number struct {
	Raw   string
	Value float64
	Err   error
}

// ParseNumber parses a raw field. A nil or blank raw value is missing.
func ParseNumber(field string, raw *string) Number {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return Number{Err: MissingField(field)}
	}

	s := strings.TrimSpace(*raw)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{Raw: s, Err: &FieldError{Field: field, Err: ErrInvalidNumeric}}
	}
	return Number{Raw: s, Value: v}
}

// OK reports whether the number holds a usable value.
func (n Number) OK() bool {
	return n.Err == nil
}

// IsMissing reports whether the field was absent from the record.
func (n Number) IsMissing() bool {
	return errors.Is(n.Err, ErrMissingField)
}
