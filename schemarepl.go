package schemarepl

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/schemarepl/internal/runtime"
	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/observability"
	"github.com/aretw0/schemarepl/pkg/ports"
	"github.com/aretw0/schemarepl/pkg/runner"
	"github.com/aretw0/schemarepl/pkg/schema"
)

// Version is the release of the library and CLI.
var Version = "v0.1.0"

// Repl is the high-level entry point for embedding the schema command loop.
// It wraps the internal program and provides a simplified API for consumers.
type Repl struct {
	program *runtime.Program
	logger  *slog.Logger
	prompt  string
}

type settings struct {
	programOpts []runtime.Option
	logger      *slog.Logger
	prompt      string
}

// Option defines a functional option for configuring the Repl.
type Option func(*settings)

// WithLogger sets the structured logger used by the program and the loop.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
		s.programOpts = append(s.programOpts, runtime.WithLogger(logger))
	}
}

// WithStore replaces the default in-memory record store.
func WithStore(store ports.RecordStore) Option {
	return func(s *settings) {
		s.programOpts = append(s.programOpts, runtime.WithStore(store))
	}
}

// WithFormat selects how add and get render records.
func WithFormat(f codec.Format) Option {
	return func(s *settings) {
		s.programOpts = append(s.programOpts, runtime.WithFormat(f))
	}
}

// WithMetrics shares a metrics set, e.g. to expose it elsewhere.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *settings) {
		s.programOpts = append(s.programOpts, runtime.WithMetrics(m))
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.programOpts = append(s.programOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithPrompt sets the prompt printed by Run before each line.
func WithPrompt(prompt string) Option {
	return func(s *settings) {
		s.prompt = prompt
	}
}

// New creates a Repl with no schema defined.
func New(opts ...Option) *Repl {
	s := &settings{prompt: runner.DefaultPrompt}
	for _, opt := range opts {
		opt(s)
	}
	return &Repl{
		program: runtime.NewProgram(s.programOpts...),
		logger:  s.logger,
		prompt:  s.prompt,
	}
}

// Exec runs a single command line and returns its output.
func (r *Repl) Exec(ctx context.Context, line string) (string, error) {
	return r.program.Dispatch(ctx, line)
}

// Run reads commands from in until EOF or exit, writing results to out.
func (r *Repl) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	loop := runner.NewRunner(
		runner.NewScannerReader(in, out, r.prompt),
		runner.WithOutput(out),
		runner.WithLogger(r.logger),
	)
	return loop.Run(ctx, r.program)
}

// SetSchema replaces the active template and clears all records.
func (r *Repl) SetSchema(template string) {
	r.program.SetSchema(template)
}

// Add validates a space-separated data line and stores it.
func (r *Repl) Add(line string) (int, *schema.Schema, error) {
	return r.program.Add(line)
}

// Get returns the record stored at index.
func (r *Repl) Get(index int) (*schema.Schema, error) {
	return r.program.Get(index)
}

// Check validates a data line without storing it.
func (r *Repl) Check(line string) error {
	return r.program.Check(line)
}

// Metrics returns the counters the program maintains.
func (r *Repl) Metrics() *observability.Metrics {
	return r.program.Metrics()
}
