package model

import (
	"encoding/json"
)

// Payload holds a decoded backend response. Value is one of string, []any,
// map[string]any, json.Number, bool or nil.
type Payload struct {
	Value any
}

// Decode maps the payload onto a typed view such as OperadoraPage.
func (p Payload) Decode(v any) error {
	b, err := json.Marshal(p.Value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// MarshalJSON writes the payload as the plain JSON value it wraps.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value)
}
