// Package codec converts between raw data lines and schema records.
//
// Deserialize splits a line on single spaces and assigns the tokens to the
// schema's fields in declaration order. Render turns a record back into text,
// JSON or YAML.
package codec
