// Package dto holds the request payloads and response projections for the
// HTTP surface. Patch payloads distinguish "absent", "explicit null" and
// "value" per field so a patch can say what it means.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Optional is a three-state JSON field: absent (zero value), explicit null
// (Present && Null), or a value (Present && !Null).
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.Null = false
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// HasValue reports whether the field was supplied with a non-null value.
func (o Optional[T]) HasValue() bool {
	return o.Present && !o.Null
}

// textValue extracts a usable string from an optional text field. Null and
// blank strings do not count: text fields can be changed but never cleared.
func textValue(o Optional[string]) (string, bool) {
	if !o.HasValue() || strings.TrimSpace(o.Value) == "" {
		return "", false
	}
	return o.Value, true
}
