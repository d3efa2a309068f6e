package codec

import (
	"strings"

	"github.com/aretw0/schemarepl/pkg/schema"
)

// Tokenize splits a data line on single spaces. Consecutive spaces produce
// empty tokens, which count toward the field total.
func Tokenize(line string) []string {
	return strings.Split(line, " ")
}

// Deserialize feeds the tokens of line positionally into s and validates it.
// A token count different from the field count yields a *schema.FormatError;
// validation failures are returned unchanged.
func Deserialize(s *schema.Schema, line string) (*schema.Schema, error) {
	if err := fill(s, line); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Check is like Deserialize but reports every failing field at once.
func Check(s *schema.Schema, line string) error {
	if err := fill(s, line); err != nil {
		return err
	}
	return s.ValidateAll()
}

func fill(s *schema.Schema, line string) error {
	tokens := Tokenize(line)
	values := make([]any, len(tokens))
	for i, tok := range tokens {
		values[i] = tok
	}
	return s.Fill(values)
}
