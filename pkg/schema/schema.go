package schema

import (
	"fmt"
	"strings"
)

// Schema is an ordered set of uniquely named fields describing a record.
// The set of fields is fixed at construction; only their values change.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New creates a schema from fields in declaration order.
func New(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f == nil {
			return nil, &SchemaError{Reason: "nil field"}
		}
		name := f.Name()
		if name == "" {
			return nil, &SchemaError{Reason: "empty field name"}
		}
		if _, dup := s.index[name]; dup {
			return nil, &SchemaError{Field: name, Reason: "duplicate field name"}
		}
		s.index[name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// FieldCount returns the number of declared fields.
func (s *Schema) FieldCount() int { return len(s.fields) }

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name()
	}
	return names
}

// Field returns the named field.
func (s *Schema) Field(name string) (Field, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	return s.fields[i], nil
}

// Get returns the current value of the named field.
func (s *Schema) Get(name string) (Value, error) {
	f, err := s.Field(name)
	if err != nil {
		return Value{}, err
	}
	return f.Value(), nil
}

// Set assigns raw to the named field without validating it.
func (s *Schema) Set(name string, raw any) error {
	f, err := s.Field(name)
	if err != nil {
		return err
	}
	f.SetValue(raw)
	return nil
}

// Assign sets every declared key of values and ignores the others.
// It returns s so calls can be chained into Build.
func (s *Schema) Assign(values map[string]any) *Schema {
	for name, raw := range values {
		if i, ok := s.index[name]; ok {
			s.fields[i].SetValue(raw)
		}
	}
	return s
}

// Fill assigns values positionally without validating them.
// The number of values must match the number of fields exactly.
func (s *Schema) Fill(values []any) error {
	if len(values) != len(s.fields) {
		return &FormatError{Expected: len(s.fields), Actual: len(values)}
	}
	for i, f := range s.fields {
		f.SetValue(values[i])
	}
	return nil
}

// SetValues assigns values positionally and validates the result.
func (s *Schema) SetValues(values []any) error {
	if err := s.Fill(values); err != nil {
		return err
	}
	return s.Validate()
}

// Validate checks every field in declaration order and returns the first failure.
func (s *Schema) Validate() error {
	for _, f := range s.fields {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll checks every field and reports all failures as an *AggregateError.
func (s *Schema) ValidateAll() error {
	var errs []error
	for _, f := range s.fields {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Build validates the schema and returns it.
func (s *Schema) Build() (*Schema, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// String renders one "name: value" line per field.
func (s *Schema) String() string {
	lines := make([]string, len(s.fields))
	for i, f := range s.fields {
		lines[i] = fmt.Sprintf("%s: %s", f.Name(), f.Value())
	}
	return strings.Join(lines, "\n")
}

// Inline renders the record on a single line, e.g. {name: 'John', age: 30}.
func (s *Schema) Inline() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name(), f.Value())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
