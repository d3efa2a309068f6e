package observability

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/registry"
	"github.com/aretw0/schemarepl/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "schemarepl"

// Outcome labels for CommandsTotal.
const (
	OutcomeOK         = "ok"
	OutcomeFormat     = "format_error"
	OutcomeValidation = "validation_error"
	OutcomeSchema     = "schema_error"
	OutcomeNotFound   = "not_found"
	OutcomeNoSchema   = "no_schema"
	OutcomeUnknown    = "unknown_command"
	OutcomeError      = "error"
)

// Metrics groups the program's collectors.
type Metrics struct {
	Registry *prometheus.Registry

	CommandsTotal *prometheus.CounterVec
	RecordsSaved  prometheus.Counter
	Records       prometheus.Gauge
	SchemaChanges prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Commands executed, by command and outcome.",
			},
			[]string{"command", "outcome"},
		),
		RecordsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_saved_total",
			Help:      "Records appended to the datastore.",
		}),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records currently held by the datastore.",
		}),
		SchemaChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_changes_total",
			Help:      "Times the active schema template was replaced.",
		}),
	}
	m.Registry.MustRegister(m.CommandsTotal, m.RecordsSaved, m.Records, m.SchemaChanges)
	return m
}

// ObserveCommand counts one command execution, classified by its error.
func (m *Metrics) ObserveCommand(command string, err error) {
	m.CommandsTotal.WithLabelValues(command, Outcome(err)).Inc()
}

// Outcome classifies a command error into an outcome label.
func Outcome(err error) string {
	var (
		fErr    *schema.FormatError
		vErr    *schema.ValidationError
		aggrErr *schema.AggregateError
		sErr    *schema.SchemaError
		unknown *registry.UnknownCommandError
	)
	switch {
	case err == nil, errors.Is(err, domain.ErrExit):
		return OutcomeOK
	case errors.As(err, &fErr):
		return OutcomeFormat
	case errors.As(err, &vErr), errors.As(err, &aggrErr):
		return OutcomeValidation
	case errors.As(err, &sErr):
		return OutcomeSchema
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrNoSchema):
		return OutcomeNoSchema
	case errors.As(err, &unknown):
		return OutcomeUnknown
	default:
		return OutcomeError
	}
}

// Sample is a single metric value.
type Sample struct {
	Name   string
	Labels string // k=v pairs joined by commas, empty when unlabeled
	Value  float64
}

func (s Sample) String() string {
	if s.Labels == "" {
		return fmt.Sprintf("%s %g", s.Name, s.Value)
	}
	return fmt.Sprintf("%s{%s} %g", s.Name, s.Labels, s.Value)
}

// Snapshot gathers the current counter and gauge values, sorted by name.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			pairs := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			s := Sample{Name: mf.GetName(), Labels: strings.Join(pairs, ",")}
			switch {
			case metric.GetCounter() != nil:
				s.Value = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				s.Value = metric.GetGauge().GetValue()
			default:
				continue
			}
			samples = append(samples, s)
		}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}
