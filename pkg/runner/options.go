package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithOutput sets where results and errors are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithErrorStyle sets a decorator applied to error messages.
func WithErrorStyle(style func(string) string) Option {
	return func(r *Runner) {
		r.ErrorStyle = style
	}
}
