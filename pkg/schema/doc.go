// Package schema defines typed fields, record schemas and the compact template
// language used to declare them.
//
// A template lists fields separated by spaces, each written as name|kind|param:
//
//	firstname|string|255 lastname|string|255 age|int
//
// Two kinds exist. A string field holds a single-quoted literal such as 'John'
// whose length, quotes included, is bounded by the declared max length. An int
// field holds a Go integer or a string of decimal digits.
//
// Basic usage:
//
//	s, err := schema.Build("firstname|string|255 age|int")
//	if err != nil {
//	    // *schema.SchemaError
//	}
//
//	if err := s.SetValues([]any{"'John'", "30"}); err != nil {
//	    // *schema.FormatError or *schema.ValidationError
//	}
//
//	age, _ := s.Get("age")
//	n, _ := age.Int() // 30
//
// Records can be encoded as JSON or YAML in field order, and decoded into Go
// structs with Decode:
//
//	var u struct {
//	    Firstname string
//	    Age       int
//	}
//	_ = s.Decode(&u) // u.Firstname == "John"
package schema
