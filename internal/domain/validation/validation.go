package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Kind string

const (
	KindRequired         Kind = "required"
	KindMinLength        Kind = "minlength"
	KindMaxLength        Kind = "maxlength"
	KindMin              Kind = "min"
	KindMax              Kind = "max"
	KindEnum             Kind = "enum"
	KindResourceNotFound Kind = "resourceNotFound"
)

type (
	FieldError struct {
		Field   string `json:"field"`
		Kind    Kind   `json:"kind"`
		Message string `json:"message"`
	}

	// Error lists every violated field of a candidate document.
	Error struct {
		Fields []FieldError
	}
)

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Error) Add(field string, kind Kind, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// Has reports whether field was rejected with kind.
func (e *Error) Has(field string, kind Kind) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Kind == kind {
			return true
		}
	}
	return false
}

// Err returns nil when no field was rejected.
func (e *Error) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *Error) Required(field string) {
	e.Add(field, KindRequired, "Path `%s` is required", field)
}

// Length checks the rune length of s against [min, max]; min <= 0 disables the lower bound.
func (e *Error) Length(field, s string, min, max int) {
	l := utf8.RuneCountInString(s)
	switch {
	case min > 0 && l < min:
		e.Add(field, KindMinLength, "Path `%s` is shorter than the minimum allowed length (%d)", field, min)
	case max > 0 && l > max:
		e.Add(field, KindMaxLength, "Path `%s` is longer than the maximum allowed length (%d)", field, max)
	}
}

func (e *Error) Range(field string, v, min, max float64) {
	switch {
	case v < min:
		e.Add(field, KindMin, "Path `%s` (%v) is less than minimum allowed value (%v)", field, v, min)
	case v > max:
		e.Add(field, KindMax, "Path `%s` (%v) is more than maximum allowed value (%v)", field, v, max)
	}
}

func (e *Error) Enum(field, v string, allowed []string) {
	for _, a := range allowed {
		if v == a {
			return
		}
	}
	e.Add(field, KindEnum, "`%s` is not a valid enum value for path `%s`", v, field)
}
