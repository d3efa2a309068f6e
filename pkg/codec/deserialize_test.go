package codec

import (
	"testing"

	"github.com/aretw0/schemarepl/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userTemplate = "firstname|string|255 lastname|string|255 age|int"

func newUser(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Build(userTemplate)
	require.NoError(t, err)
	return s
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"'John'", "'Doe'", "30"}, Tokenize("'John' 'Doe' 30"))
	assert.Equal(t, []string{"a", "", "b"}, Tokenize("a  b"))
	assert.Equal(t, []string{""}, Tokenize(""))
}

func TestDeserialize(t *testing.T) {
	rec, err := Deserialize(newUser(t), "'John' 'Doe' 30")
	require.NoError(t, err)

	for name, want := range map[string]string{"firstname": "'John'", "lastname": "'Doe'", "age": "30"} {
		v, err := rec.Get(name)
		require.NoError(t, err)
		assert.Equal(t, want, v.Raw, name)
	}
}

func TestDeserialize_TokenCount(t *testing.T) {
	tests := []struct {
		line   string
		actual int
	}{
		{"'John' 'Doe'", 2},
		{"'John' 'Doe' 30 extra", 4},
		{"'John'  'Doe' 30", 4},
	}

	for _, tt := range tests {
		_, err := Deserialize(newUser(t), tt.line)
		var fErr *schema.FormatError
		require.ErrorAs(t, err, &fErr, tt.line)
		assert.Equal(t, 3, fErr.Expected)
		assert.Equal(t, tt.actual, fErr.Actual)
	}
}

func TestDeserialize_Validation(t *testing.T) {
	_, err := Deserialize(newUser(t), "John 'Doe' 30")
	var vErr *schema.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "firstname", vErr.Field)

	_, err = Deserialize(newUser(t), "'John' 'Doe' thirty")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "age", vErr.Field)
	assert.Equal(t, "thirty", vErr.Value)
}

func TestCheck_ReportsAllFailures(t *testing.T) {
	err := Check(newUser(t), "John Doe thirty")
	assert.Len(t, schema.ValidationErrors(err), 3)

	assert.NoError(t, Check(newUser(t), "'John' 'Doe' 30"))

	var fErr *schema.FormatError
	assert.ErrorAs(t, Check(newUser(t), "'John'"), &fErr)
}
