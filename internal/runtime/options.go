package runtime

import (
	"log/slog"

	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/observability"
	"github.com/aretw0/schemarepl/pkg/ports"
)

// Option configures a Program.
type Option func(*Program)

// WithStore replaces the default in-memory record store.
func WithStore(store ports.RecordStore) Option {
	return func(p *Program) {
		if store != nil {
			p.store = store
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics shares a metrics set instead of creating a private one.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Program) {
		p.metrics = m
	}
}

// WithFormat selects how add and get render records.
func WithFormat(f codec.Format) Option {
	return func(p *Program) {
		p.format = f
	}
}

// WithHelpRenderer sets a markdown renderer for the help command.
// Without one, help prints the raw markdown.
func WithHelpRenderer(render func(string) (string, error)) Option {
	return func(p *Program) {
		p.render = render
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Program) {
		p.hooks = hooks
	}
}
