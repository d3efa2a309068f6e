package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoDispatcher records the lines it receives and answers from a script.
type echoDispatcher struct {
	lines []string
	reply func(line string) (string, error)
}

func (d *echoDispatcher) Dispatch(_ context.Context, line string) (string, error) {
	d.lines = append(d.lines, line)
	if d.reply != nil {
		return d.reply(line)
	}
	return "ok " + line, nil
}

func newTestRunner(input string, out *bytes.Buffer) *Runner {
	return NewRunner(NewScannerReader(strings.NewReader(input), nil, ""), WithOutput(out))
}

func TestRunner_Run_EchoesUntilEOF(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{}

	err := newTestRunner("one\ntwo\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, d.lines)
	assert.Equal(t, "ok one\nok two\n\nExiting on EOF.\n", out.String())
}

func TestRunner_Run_SkipsBlankLines(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{}

	err := newTestRunner("\n   \nadd x\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, []string{"add x"}, d.lines)
}

func TestRunner_Run_ErrorsDoNotStopLoop(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{reply: func(line string) (string, error) {
		switch line {
		case "nope":
			return "", &registry.UnknownCommandError{Name: "nope"}
		case "add 1":
			return "", fmt.Errorf("add: %w", domain.ErrNoSchema)
		case "get 9":
			return "", domain.ErrNotFound
		}
		return "", nil
	}}

	err := newTestRunner("nope\nadd 1\nget 9\nset_schema\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Len(t, d.lines, 4)
	assert.Equal(t,
		"Unknown command: nope\nNo schema defined\nError: record not found\n\nExiting on EOF.\n",
		out.String())
}

func TestRunner_Run_ExitStopsLoop(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{reply: func(line string) (string, error) {
		if line == "exit" {
			return "", domain.ErrExit
		}
		return line, nil
	}}

	err := newTestRunner("a\nexit\nb\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "exit"}, d.lines)
	assert.Equal(t, "a\n", out.String())
}

func TestRunner_Run_RecoversPanics(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{reply: func(line string) (string, error) {
		if line == "boom" {
			panic("kaboom")
		}
		return line, nil
	}}

	err := newTestRunner("boom\nafter\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Error: internal error: kaboom")
	assert.Contains(t, out.String(), "after\n")
}

func TestRunner_Run_ErrorStyle(t *testing.T) {
	out := &bytes.Buffer{}
	d := &echoDispatcher{reply: func(string) (string, error) { return "", errors.New("bad") }}
	r := NewRunner(
		NewScannerReader(strings.NewReader("x\n"), nil, ""),
		WithOutput(out),
		WithErrorStyle(func(s string) string { return "[" + s + "]" }),
	)

	require.NoError(t, r.Run(context.Background(), d))
	assert.True(t, strings.HasPrefix(out.String(), "[Error: bad]\n"))
}

func TestRunner_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestRunner("x\n", &bytes.Buffer{}).Run(ctx, &echoDispatcher{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScannerReader_PrintsPrompt(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewScannerReader(strings.NewReader("hello\n"), out, DefaultPrompt)

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.Equal(t, DefaultPrompt, out.String())
}

// countingDispatcher stores every dispatched line and answers "count".
type countingDispatcher struct {
	stored []string
}

func (d *countingDispatcher) Dispatch(_ context.Context, line string) (string, error) {
	if line == "count" {
		return fmt.Sprint(len(d.stored)), nil
	}
	d.stored = append(d.stored, line)
	return "", nil
}

func TestRunner_Run_RejectsControlCharacters(t *testing.T) {
	out := &bytes.Buffer{}
	d := &countingDispatcher{}

	err := newTestRunner("add 'a\x01b'\ncount\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Empty(t, d.stored, "a line with control characters must never reach the program")
	assert.Equal(t,
		"Error: input contains control characters: U+0001 at byte 6\n0\n\nExiting on EOF.\n",
		out.String())
}

func TestRunner_Run_LongLineWithinLimit(t *testing.T) {
	out := &bytes.Buffer{}
	d := &countingDispatcher{}
	line := "add '" + strings.Repeat("x", 6000) + "'"

	err := newTestRunner(line+"\ncount\n", out).Run(context.Background(), d)

	require.NoError(t, err)
	assert.Equal(t, []string{line}, d.stored)
	assert.Equal(t, "1\n\nExiting on EOF.\n", out.String())
}
