package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/schemarepl/internal/logging"
	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/runner"
	"github.com/aretw0/schemarepl/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Run_Scenario(t *testing.T) {
	sess, err := NewSession(RunOptions{}, false)
	require.NoError(t, err)

	input := strings.Join([]string{
		"set-schema firstname|string|255 lastname|string|255 age|int",
		"add 'John' 'Doe' 30",
		"add 'John' 'Doe'",
		"get 0",
		"get 99",
		"frobnicate",
	}, "\n") + "\n"

	var out bytes.Buffer
	reader := runner.NewScannerReader(strings.NewReader(input), nil, "")
	require.NoError(t, sess.Run(context.Background(), reader, &out, false))

	want := strings.Join([]string{
		"(0, {firstname: 'John', lastname: 'Doe', age: 30})",
		"Error: incorrect number of fields: expected 3, actual 2",
		"firstname: 'John'",
		"lastname: 'Doe'",
		"age: 30",
		"Error: record not found: index 99",
		"Unknown command: frobnicate",
		"",
		"Exiting on EOF.",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestSession_Run_NoSchema(t *testing.T) {
	sess, err := NewSession(RunOptions{}, false)
	require.NoError(t, err)

	var out bytes.Buffer
	reader := runner.NewScannerReader(strings.NewReader("add 'x'\nquit\nadd 'y'\n"), nil, "")
	require.NoError(t, sess.Run(context.Background(), reader, &out, false))
	assert.Equal(t, "No schema defined\n", out.String())
}

func TestNewSession_FlagsOverrideConfig(t *testing.T) {
	t.Setenv("SCHEMAREPL_FORMAT", "yaml")

	sess, err := NewSession(RunOptions{}, false)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatYAML, sess.Format)

	sess, err = NewSession(RunOptions{Format: "json", Prompt: "db> ", NoBanner: true}, false)
	require.NoError(t, err)
	assert.Equal(t, codec.FormatJSON, sess.Format)
	assert.Equal(t, "db> ", sess.Config.Prompt)
	assert.False(t, sess.Config.Banner)
}

func TestNewSession_BadFormat(t *testing.T) {
	_, err := NewSession(RunOptions{Format: "xml"}, false)
	assert.Error(t, err)
}

func TestValidateTemplate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ValidateTemplate(&out, "name|string|20 age|int"))
	assert.Contains(t, out.String(), "2 fields")
	assert.Contains(t, out.String(), "0. name|string|20")
	assert.Contains(t, out.String(), "1. age|int")

	err := ValidateTemplate(&out, "age|int|3")
	var sErr *schema.SchemaError
	assert.ErrorAs(t, err, &sErr)
}

func TestDiagramTemplate(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, DiagramTemplate(&out, "user", "name|string|20 age|int"))
	assert.Contains(t, out.String(), "USER {")
	assert.Contains(t, out.String(), "string name \"max 20\"")
}

func TestCreateDebugHooks_Logs(t *testing.T) {
	var buf bytes.Buffer
	hooks := createDebugHooks(logging.NewWithWriter(&buf, slog.LevelDebug))

	hooks.OnRecordStored(context.Background(), &domain.RecordEvent{Index: 4})
	hooks.OnCommand(context.Background(), &domain.CommandEvent{Command: "get", Err: domain.ErrNotFound})

	assert.Contains(t, buf.String(), "index=4")
	assert.Contains(t, buf.String(), "command=get")
	assert.Contains(t, buf.String(), "err=\"record not found\"")
}

func TestSession_Run_ControlCharactersNotStored(t *testing.T) {
	sess, err := NewSession(RunOptions{}, false)
	require.NoError(t, err)

	input := "set-schema s|string|6000\nadd 'a\x01b'\ncount\nget 0\n"
	var out bytes.Buffer
	reader := runner.NewScannerReader(strings.NewReader(input), nil, "")
	require.NoError(t, sess.Run(context.Background(), reader, &out, false))

	assert.Equal(t, strings.Join([]string{
		"Error: input contains control characters: U+0001 at byte 6",
		"0",
		"Error: record not found: index 0",
		"",
		"Exiting on EOF.",
	}, "\n")+"\n", out.String())
}
