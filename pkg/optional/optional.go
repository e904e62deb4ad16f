package optional

import "encoding/json"

// Value tracks whether a JSON key was present in a request body.
// A key sent as null is Present with a nil Value.
type Value[T any] struct {
	Present bool
	Value   *T
}

func Of[T any](v T) Value[T] { return Value[T]{Present: true, Value: &v} }

func Null[T any]() Value[T] { return Value[T]{Present: true} }

func (v *Value[T]) UnmarshalJSON(b []byte) error {
	v.Present = true
	if string(b) == "null" {
		v.Value = nil
		return nil
	}

	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	v.Value = &t

	return nil
}

// Or returns the wrapped value or def when it is absent or null.
func (v Value[T]) Or(def T) T {
	if v.Value == nil {
		return def
	}
	return *v.Value
}
