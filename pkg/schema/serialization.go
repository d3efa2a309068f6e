package schema

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// exported returns the typed form of a field value: string fields lose their
// quotes and int fields become int64. Unset values become nil. An int beyond
// the int64 range stays as its decimal text; the JSON and YAML encoders still
// write it as a number (see bigInt).
func exported(f Field) any {
	v := f.Value()
	if !v.Set {
		return nil
	}
	switch f.Kind() {
	case KindString:
		if s, ok := v.Text(); ok {
			return s
		}
	case KindInt:
		if n, ok := v.Int(); ok {
			return n
		}
	}
	return v.Raw
}

// Map returns the typed field values keyed by field name.
func (s *Schema) Map() map[string]any {
	m := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		m[f.Name()] = exported(f)
	}
	return m
}

// MarshalJSON serializes the record as a JSON object in field order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if digits, ok := bigInt(f); ok {
			buf.WriteString(digits)
			continue
		}
		val, err := json.Marshal(exported(f))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML serializes the record as a YAML mapping in field order.
func (s *Schema) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range s.fields {
		val := &yaml.Node{}
		if digits, ok := bigInt(f); ok {
			val = &yaml.Node{Kind: yaml.ScalarNode, Value: digits}
		} else if err := val.Encode(exported(f)); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name(), err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name()}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// bigInt reports the decimal text of an int field whose value does not fit
// in int64.
func bigInt(f Field) (string, bool) {
	if f.Kind() != KindInt {
		return "", false
	}
	v := f.Value()
	if _, ok := v.Int(); ok {
		return "", false
	}
	return v.Digits()
}
