package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Template is a parsed schema description.
//
// The textual form lists fields separated by spaces, each field written as
// name|kind|param, for example:
//
//	firstname|string|255 lastname|string|255 age|int
//
// A string field requires its max length as the only parameter; an int field
// takes none.
type Template struct {
	Source string
	Fields []FieldSpec
}

// ParseTemplate parses text into a Template.
// Any malformed field yields a *SchemaError.
func ParseTemplate(text string) (Template, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Template{}, &SchemaError{Reason: "empty schema template"}
	}

	t := Template{Source: text, Fields: make([]FieldSpec, 0, len(tokens))}
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		spec, err := parseFieldSpec(tok)
		if err != nil {
			return Template{}, err
		}
		if seen[spec.Name] {
			return Template{}, &SchemaError{Field: spec.Name, Reason: "duplicate field name"}
		}
		seen[spec.Name] = true
		t.Fields = append(t.Fields, spec)
	}
	return t, nil
}

func parseFieldSpec(tok string) (FieldSpec, error) {
	props := strings.Split(tok, "|")
	name := props[0]
	if name == "" {
		return FieldSpec{}, &SchemaError{Reason: fmt.Sprintf("missing field name in %q", tok)}
	}
	if len(props) < 2 || props[1] == "" {
		return FieldSpec{}, &SchemaError{Field: name, Reason: "missing kind"}
	}
	kind, err := ParseKind(props[1])
	if err != nil {
		return FieldSpec{}, &SchemaError{Field: name, Reason: err.Error()}
	}
	params := props[2:]

	switch kind {
	case KindString:
		if len(params) != 1 {
			return FieldSpec{}, &SchemaError{Field: name, Reason: "string requires exactly one parameter (max length)"}
		}
		n, err := strconv.Atoi(params[0])
		if err != nil || n < 0 {
			return FieldSpec{}, &SchemaError{Field: name, Reason: fmt.Sprintf("invalid max length %q", params[0])}
		}
		return FieldSpec{Name: name, Kind: KindString, MaxLength: n}, nil
	case KindInt:
		if len(params) != 0 {
			return FieldSpec{}, &SchemaError{Field: name, Reason: "int takes no parameters"}
		}
		return FieldSpec{Name: name, Kind: KindInt}, nil
	}
	return FieldSpec{}, &SchemaError{Field: name, Reason: fmt.Sprintf("unknown kind %s", kind)}
}

// Instantiate creates a fresh, empty Schema with the template's fields.
func (t Template) Instantiate() (*Schema, error) {
	fields := make([]Field, 0, len(t.Fields))
	for _, spec := range t.Fields {
		f, err := NewField(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return New(fields...)
}

// String returns the canonical textual form of the template.
func (t Template) String() string {
	parts := make([]string, len(t.Fields))
	for i, spec := range t.Fields {
		parts[i] = spec.String()
	}
	return strings.Join(parts, " ")
}

// Build parses text and instantiates an empty Schema from it.
func Build(text string) (*Schema, error) {
	t, err := ParseTemplate(text)
	if err != nil {
		return nil, err
	}
	return t.Instantiate()
}
