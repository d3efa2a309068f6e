package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies the type of a field. The set of kinds is closed.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
)

// DefaultMaxLength is the max length used by String when no limit is given.
const DefaultMaxLength = 255

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a template keyword ("string", "int") into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "int":
		return KindInt, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}

// Value is the raw value held by a field.
// Set is false until a value has been assigned, so an unset field is never
// confused with a field holding nil or an empty string.
type Value struct {
	Raw any
	Set bool
}

func (v Value) String() string {
	if !v.Set {
		return "<unset>"
	}
	return fmt.Sprint(v.Raw)
}

// Text returns a string value with its surrounding single quotes removed.
func (v Value) Text() (string, bool) {
	s, ok := v.Raw.(string)
	if !v.Set || !ok {
		return "", false
	}
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1], true
	}
	return s, true
}

// Int returns the value as an int64 when it is a Go integer or a digit string
// that fits in int64. Use Digits for values beyond that range.
func (v Value) Int() (int64, bool) {
	if !v.Set {
		return 0, false
	}
	switch n := v.Raw.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		return int64(n), n <= math.MaxInt64
	case uint64:
		return int64(n), n <= math.MaxInt64
	case string:
		if !isDigits(n) {
			return 0, false
		}
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// Digits returns an integer value as canonical decimal text (no leading
// zeros), whatever its magnitude. It fails for anything IntField would reject.
func (v Value) Digits() (string, bool) {
	if !v.Set {
		return "", false
	}
	switch n := v.Raw.(type) {
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", n), true
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", n), true
	case string:
		if !isDigits(n) {
			return "", false
		}
		if t := strings.TrimLeft(n, "0"); t != "" {
			return t, true
		}
		return "0", true
	}
	return "", false
}

// Field is a named, typed leaf value with a validation rule.
// Values are mutated in place; a Schema hands out the same Field every time.
type Field interface {
	// Name returns the declared field name.
	Name() string
	// Kind returns the field kind.
	Kind() Kind
	// Value returns the current value, which may be unset.
	Value() Value
	// SetValue stores raw without validating it.
	SetValue(raw any)
	// Validate checks the current value against the kind's rule.
	Validate() error
}

type field struct {
	name  string
	value Value
}

func (f *field) Name() string     { return f.name }
func (f *field) Value() Value     { return f.value }
func (f *field) SetValue(raw any) { f.value = Value{Raw: raw, Set: true} }

func (f *field) fail(reason string) error {
	e := &ValidationError{Field: f.name, Reason: reason}
	if f.value.Set {
		e.Value = f.value.Raw
	}
	return e
}

// StringField holds a quoted string literal such as 'John'.
type StringField struct {
	field
	MaxLength int
}

// NewStringField creates a string field limited to maxLength characters.
func NewStringField(name string, maxLength int) *StringField {
	return &StringField{field: field{name: name}, MaxLength: maxLength}
}

func (f *StringField) Kind() Kind { return KindString }

// Validate requires a string of at most MaxLength characters, counting the
// quotes, that starts and ends with a single quote.
func (f *StringField) Validate() error {
	if !f.value.Set {
		return f.fail("value is not set")
	}
	s, ok := f.value.Raw.(string)
	if !ok {
		return f.fail(fmt.Sprintf("value must be a string, got %T", f.value.Raw))
	}
	if utf8.RuneCountInString(s) > f.MaxLength {
		return f.fail(fmt.Sprintf("string exceeds max length %d", f.MaxLength))
	}
	if !strings.HasPrefix(s, "'") || !strings.HasSuffix(s, "'") {
		return f.fail("string must be enclosed in single quotes (e.g. 'value')")
	}
	return nil
}

// IntField holds an integer, given either natively or as a digit string.
type IntField struct {
	field
}

// NewIntField creates an integer field.
func NewIntField(name string) *IntField {
	return &IntField{field: field{name: name}}
}

func (f *IntField) Kind() Kind { return KindInt }

func (f *IntField) Validate() error {
	if !f.value.Set {
		return f.fail("value is not set")
	}
	switch v := f.value.Raw.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case string:
		if isDigits(v) {
			return nil
		}
		return f.fail("value must be an integer")
	default:
		return f.fail(fmt.Sprintf("value must be an integer, got %T", v))
	}
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FieldSpec is the declaration of a single field in a template.
type FieldSpec struct {
	Name      string
	Kind      Kind
	MaxLength int // string fields only
}

func (s FieldSpec) String() string {
	if s.Kind == KindString {
		return fmt.Sprintf("%s|%s|%d", s.Name, s.Kind, s.MaxLength)
	}
	return fmt.Sprintf("%s|%s", s.Name, s.Kind)
}

// NewField builds an empty Field for spec. Every Kind is handled here.
func NewField(spec FieldSpec) (Field, error) {
	switch spec.Kind {
	case KindString:
		return NewStringField(spec.Name, spec.MaxLength), nil
	case KindInt:
		return NewIntField(spec.Name), nil
	default:
		return nil, &SchemaError{Field: spec.Name, Reason: fmt.Sprintf("unknown kind %s", spec.Kind)}
	}
}
