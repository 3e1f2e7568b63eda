package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// OptionalInt is an integer field that some backend endpoints serialize
// inconsistently: sometimes as a JSON number, sometimes as a numeric
// string ("7"). The numeric form is tried first, then the quoted form.
// Anything else (null, non-numeric string, other types) leaves the value
// absent instead of failing the surrounding decode.
type OptionalInt struct {
	Value int
	Valid bool
}

// Int returns the held value and whether it is present.
func (o OptionalInt) Int() (int, bool) {
	return o.Value, o.Valid
}

// IsZero reports absence, so struct fields tagged omitzero drop the
// field entirely instead of encoding null.
func (o OptionalInt) IsZero() bool {
	return !o.Valid
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Value, o.Valid = 0, false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		o.Value, o.Valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			o.Value, o.Valid = n, true
		}
	}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
