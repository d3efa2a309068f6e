package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/schemarepl/internal/logging"
	"github.com/aretw0/schemarepl/pkg/adapters/memory"
	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/observability"
	"github.com/aretw0/schemarepl/pkg/ports"
	"github.com/aretw0/schemarepl/pkg/registry"
	"github.com/aretw0/schemarepl/pkg/schema"
)

// Program holds the active schema template and the records added under it.
//
// It has two states: NoSchema (initial, or after an empty set_schema) and
// SchemaActive. The template is stored verbatim and parsed again on every
// add, so a malformed template is reported when data is first added.
type Program struct {
	template string
	active   bool

	store    ports.RecordStore
	registry *registry.Registry
	metrics  *observability.Metrics
	logger   *slog.Logger
	format   codec.Format
	render   func(string) (string, error)
	hooks    domain.LifecycleHooks
}

// NewProgram creates a Program in the NoSchema state with its commands
// registered.
func NewProgram(opts ...Option) *Program {
	p := &Program{
		store:    memory.NewStore(),
		registry: registry.NewRegistry(),
		logger:   logging.NewNop(),
		format:   codec.FormatText,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics == nil {
		p.metrics = observability.NewMetrics()
	}
	p.registerCommands()
	return p
}

// Template returns the active template and whether one is set.
func (p *Program) Template() (string, bool) {
	return p.template, p.active
}

// Registry exposes the command table, e.g. for tab completion.
func (p *Program) Registry() *registry.Registry {
	return p.registry
}

// Metrics returns the program's collectors.
func (p *Program) Metrics() *observability.Metrics {
	return p.metrics
}

// Len returns the number of stored records.
func (p *Program) Len() int {
	return p.store.Len()
}

// SetSchema replaces the active template and discards every stored record.
// An empty template returns the program to the NoSchema state.
func (p *Program) SetSchema(template string) {
	p.template = template
	p.active = strings.TrimSpace(template) != ""
	p.store.Clear()
	p.metrics.Records.Set(0)
	p.metrics.SchemaChanges.Inc()
	p.logger.Debug("Schema Set", "template", template, "active", p.active)

	if p.hooks.OnSchemaSet != nil {
		p.hooks.OnSchemaSet(context.Background(), &domain.SchemaEvent{
			EventBase: domain.NewEventBase(domain.EventSchemaSet),
			Template:  template,
			Active:    p.active,
		})
	}
}

// newRecord builds an empty record from the active template.
func (p *Program) newRecord() (*schema.Schema, error) {
	if !p.active {
		return nil, domain.ErrNoSchema
	}
	return schema.Build(p.template)
}

// Add deserializes line under the active template and stores the record.
// Nothing is stored when any step fails, so no index is consumed.
func (p *Program) Add(line string) (int, *schema.Schema, error) {
	rec, err := p.newRecord()
	if err != nil {
		return 0, nil, err
	}
	if _, err := codec.Deserialize(rec, line); err != nil {
		return 0, nil, err
	}
	idx, rec := p.store.Save(rec)
	p.metrics.RecordsSaved.Inc()
	p.metrics.Records.Set(float64(p.store.Len()))
	p.logger.Debug("Record Stored", "index", idx)

	if p.hooks.OnRecordStored != nil {
		p.hooks.OnRecordStored(context.Background(), &domain.RecordEvent{
			EventBase: domain.NewEventBase(domain.EventRecordStored),
			Index:     idx,
		})
	}
	return idx, rec, nil
}

// Get returns the record stored at index.
func (p *Program) Get(index int) (*schema.Schema, error) {
	return p.store.Load(index)
}

// Check validates line against the active template without storing it.
// Every failing field is reported.
func (p *Program) Check(line string) error {
	rec, err := p.newRecord()
	if err != nil {
		return err
	}
	return codec.Check(rec, line)
}

// Dispatch runs a single command line such as "add 'John' 30".
func (p *Program) Dispatch(ctx context.Context, line string) (string, error) {
	name, arg := registry.SplitLine(line)
	name = registry.NormalizeName(name)

	start := time.Now()
	out, err := p.registry.Execute(ctx, name, arg)

	label := name
	if _, ok := p.registry.Lookup(name); !ok {
		label = "unknown"
	}
	p.metrics.ObserveCommand(label, err)
	if err != nil {
		p.logger.Debug("Command Failed", "command", name, "err", err)
	}
	if p.hooks.OnCommand != nil {
		p.hooks.OnCommand(ctx, &domain.CommandEvent{
			EventBase: domain.NewEventBase(domain.EventCommand),
			Command:   name,
			Arg:       arg,
			Duration:  time.Since(start),
			Err:       err,
		})
	}
	return out, err
}

func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be an integer", arg)
	}
	return idx, nil
}
