package models

import (
	"github.com/goccy/go-json"
)

// Nullable distinguishes the three states of a JSON field in a partial update:
//   - absent:        Set=false, Valid=false
//   - present, null: Set=true,  Valid=false
//   - present:       Set=true,  Valid=true, Value holds it
//
// A plain pointer cannot tell "absent" from "null", which an update needs in
// order to clear a field.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// NewNullable returns a set, valid value.
func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Set: true}
}

// Null returns a value that was explicitly set to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil for null or absent values.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
