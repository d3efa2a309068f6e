package schema

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the record into target, which must be a pointer to a struct
// or map. Struct fields are matched by name or by a `field` tag; string values
// are unquoted and digit strings are converted to the target's numeric type.
func (s *Schema) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "field",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("schema: decoder: %w", err)
	}
	if err := dec.Decode(s.Map()); err != nil {
		return fmt.Errorf("schema: decode: %w", err)
	}
	return nil
}

// AssignStruct sets fields from the exported fields of a struct. Struct
// fields map to schema fields by `field` tag or by case-insensitive name;
// string values are quoted so they satisfy string fields.
func (s *Schema) AssignStruct(src any) (*Schema, error) {
	var raw map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &raw,
		TagName: "field",
	})
	if err != nil {
		return nil, fmt.Errorf("schema: decoder: %w", err)
	}
	if err := dec.Decode(src); err != nil {
		return nil, fmt.Errorf("schema: assign: %w", err)
	}
	for key, v := range raw {
		f := s.lookupFold(key)
		if f == nil {
			continue
		}
		if str, ok := v.(string); ok && f.Kind() == KindString {
			v = "'" + str + "'"
		}
		f.SetValue(v)
	}
	return s, nil
}

func (s *Schema) lookupFold(name string) Field {
	if i, ok := s.index[name]; ok {
		return s.fields[i]
	}
	for _, f := range s.fields {
		if strings.EqualFold(f.Name(), name) {
			return f
		}
	}
	return nil
}
