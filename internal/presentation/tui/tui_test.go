package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner_IncludesVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewErrorStyle_PlainWriter(t *testing.T) {
	// A bytes.Buffer is not a terminal, so no escape codes are added.
	style := NewErrorStyle(&bytes.Buffer{}, true)
	assert.Equal(t, "Error: bad", style("Error: bad"))

	style = NewErrorStyle(&bytes.Buffer{}, false)
	assert.Equal(t, "Error: bad", style("Error: bad"))
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer()
	out, err := render("# Commands\n\n`add <data>`\n")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, "Commands"))
}
