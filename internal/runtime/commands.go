package runtime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/registry"
	"github.com/aretw0/schemarepl/pkg/runner"
	"github.com/aretw0/schemarepl/pkg/schema"
)

func (p *Program) registerCommands() {
	p.registry.MustRegister(
		registry.Command{
			Name:    "set_schema",
			Usage:   "set-schema <template>",
			Summary: "Replace the schema and clear all records.",
			Run:     p.cmdSetSchema,
		},
		registry.Command{
			Name:    "add",
			Usage:   "add <data>",
			Summary: "Validate a space-separated record and store it.",
			Run:     p.cmdAdd,
		},
		registry.Command{
			Name:    "get",
			Usage:   "get <index>",
			Summary: "Show the record stored at index.",
			Run:     p.cmdGet,
		},
		registry.Command{
			Name:    "check",
			Usage:   "check <data>",
			Summary: "Validate a record without storing it.",
			Run:     p.cmdCheck,
		},
		registry.Command{
			Name:    "schema",
			Usage:   "schema",
			Summary: "Show the active template and its fields.",
			Run:     p.cmdSchema,
		},
		registry.Command{
			Name:    "count",
			Usage:   "count",
			Summary: "Show how many records are stored.",
			Run:     p.cmdCount,
		},
		registry.Command{
			Name:    "stats",
			Usage:   "stats",
			Summary: "Show command and record counters.",
			Run:     p.cmdStats,
		},
		registry.Command{
			Name:    "help",
			Usage:   "help",
			Summary: "Show this reference.",
			Run:     p.cmdHelp,
		},
		registry.Command{
			Name:    "exit",
			Usage:   "exit",
			Summary: "Leave the session.",
			Run:     p.cmdExit,
		},
		registry.Command{
			Name:    "quit",
			Usage:   "quit",
			Summary: "Same as exit.",
			Run:     p.cmdExit,
		},
	)
}

func (p *Program) cmdSetSchema(_ context.Context, arg string) (string, error) {
	p.SetSchema(arg)
	return "", nil
}

func (p *Program) cmdAdd(_ context.Context, arg string) (string, error) {
	idx, rec, err := p.Add(arg)
	if err != nil {
		return "", err
	}
	return codec.RenderEntry(idx, rec, p.format)
}

func (p *Program) cmdGet(_ context.Context, arg string) (string, error) {
	idx, err := parseIndex(arg)
	if err != nil {
		return "", err
	}
	rec, err := p.Get(idx)
	if err != nil {
		return "", err
	}
	return codec.Render(rec, p.format)
}

func (p *Program) cmdCheck(_ context.Context, arg string) (string, error) {
	if err := p.Check(arg); err != nil {
		return "", err
	}
	return "OK", nil
}

func (p *Program) cmdSchema(_ context.Context, _ string) (string, error) {
	if !p.active {
		return "", domain.ErrNoSchema
	}
	t, err := schema.ParseTemplate(p.template)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "template: %s", t.Source)
	for i, f := range t.Fields {
		fmt.Fprintf(&b, "\n  %d. %s", i, f)
	}
	return b.String(), nil
}

func (p *Program) cmdCount(_ context.Context, _ string) (string, error) {
	return strconv.Itoa(p.store.Len()), nil
}

func (p *Program) cmdStats(_ context.Context, _ string) (string, error) {
	samples, err := p.metrics.Snapshot()
	if err != nil {
		return "", err
	}
	lines := make([]string, len(samples))
	for i, s := range samples {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (p *Program) cmdHelp(_ context.Context, _ string) (string, error) {
	md := p.helpMarkdown()
	if p.render == nil {
		return md, nil
	}
	out, err := p.render(md)
	if err != nil {
		p.logger.Debug("Help Render Failed", "err", err)
		return md, nil
	}
	return strings.TrimRight(out, "\n"), nil
}

func (p *Program) cmdExit(_ context.Context, _ string) (string, error) {
	return "", domain.ErrExit
}

func (p *Program) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, cmd := range p.registry.Commands() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", cmd.Usage, cmd.Summary)
	}
	b.WriteString("\nTemplates list fields as `name|kind|param`, e.g. ")
	b.WriteString("`firstname|string|255 age|int`. String values are single-quoted.\n")
	fmt.Fprintf(&b, "\nInput lines are limited to %d bytes (set `%s` to change it) ", runner.MaxInputSize(), runner.EnvMaxInputSize)
	b.WriteString("and may not contain control characters other than tab.\n")
	return b.String()
}
