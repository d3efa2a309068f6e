package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "text": FormatText, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unsupported format "xml"`)
}

func TestRender(t *testing.T) {
	rec, err := Deserialize(newUser(t), "'John' 'Doe' 30")
	require.NoError(t, err)

	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "firstname: 'John'\nlastname: 'Doe'\nage: 30"},
		{FormatJSON, `{"firstname":"John","lastname":"Doe","age":30}`},
		{FormatYAML, "firstname: John\nlastname: Doe\nage: 30"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Render(rec, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderEntry(t *testing.T) {
	rec, err := Deserialize(newUser(t), "'John' 'Doe' 30")
	require.NoError(t, err)

	got, err := RenderEntry(0, rec, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "(0, {firstname: 'John', lastname: 'Doe', age: 30})", got)

	got, err = RenderEntry(2, rec, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, `{"index":2,"record":{"firstname":"John","lastname":"Doe","age":30}}`, got)

	got, err = RenderEntry(1, rec, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "index: 1\nrecord:\n    firstname: John\n    lastname: Doe\n    age: 30", got)
}
