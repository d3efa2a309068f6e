package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/registry"
)

// Dispatcher executes one command line and returns the text to print.
type Dispatcher interface {
	Dispatch(ctx context.Context, line string) (string, error)
}

// Runner reads lines, hands them to a Dispatcher and prints the results.
// A failing command never ends the loop; only end of input, an exit command
// or a cancelled context does.
type Runner struct {
	Reader LineReader
	Output io.Writer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// ErrorStyle decorates error text before it is printed (e.g. ANSI color).
	ErrorStyle func(string) string
}

// NewRunner creates a Runner reading from reader and writing to os.Stdout.
func NewRunner(reader LineReader, opts ...Option) *Runner {
	r := &Runner{
		Reader: reader,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the command loop until termination.
// End of input prints a farewell and returns nil.
func (r *Runner) Run(ctx context.Context, d Dispatcher) error {
	if r.Reader == nil {
		return fmt.Errorf("runner: line reader must be set")
	}
	defer func() { _ = r.Reader.Close() }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := r.Reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.Output, "\nExiting on EOF.")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line, err := SanitizeInput(strings.TrimSpace(raw))
		if err != nil {
			r.report(err)
			continue
		}
		if line == "" {
			continue
		}

		out, err := r.dispatch(ctx, d, line)
		if errors.Is(err, domain.ErrExit) {
			if out != "" {
				fmt.Fprintln(r.Output, out)
			}
			return nil
		}
		if err != nil {
			r.Logger.Debug("Command Failed", "line", line, "err", err)
			r.report(err)
			continue
		}
		if out != "" {
			fmt.Fprintln(r.Output, out)
		}
	}
}

// dispatch runs one command, turning a panic into an error so the session
// survives it.
func (r *Runner) dispatch(ctx context.Context, d Dispatcher, line string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.Logger.Error("Command Panicked", "line", line, "panic", p)
			out, err = "", fmt.Errorf("internal error: %v", p)
		}
	}()
	return d.Dispatch(ctx, line)
}

func (r *Runner) report(err error) {
	msg := Message(err)
	if r.ErrorStyle != nil {
		msg = r.ErrorStyle(msg)
	}
	fmt.Fprintln(r.Output, msg)
}

// Message converts a command error into the text shown to the user.
func Message(err error) string {
	var unknown *registry.UnknownCommandError
	switch {
	case errors.Is(err, domain.ErrNoSchema):
		return "No schema defined"
	case errors.As(err, &unknown):
		return unknown.Error()
	default:
		return "Error: " + err.Error()
	}
}
