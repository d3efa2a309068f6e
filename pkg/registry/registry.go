package registry

import (
	"context"
	"fmt"
	"strings"
)

// CommandFunc is the signature of a command handler.
// It receives the raw argument text (everything after the command name) and
// returns the text to print, which may be empty.
type CommandFunc func(ctx context.Context, arg string) (string, error)

// Command describes a registered command.
type Command struct {
	Name    string // canonical name, using underscores
	Usage   string // e.g. "add <data>"
	Summary string
	Run     CommandFunc
}

// UnknownCommandError is returned when no command matches a name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Unknown command: " + e.Name
}

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// NormalizeName maps user spelling to the canonical command name by
// replacing hyphens with underscores ("set-schema" -> "set_schema").
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// SplitLine separates a command line at its first space into the command
// name and the argument text.
func SplitLine(line string) (name, arg string) {
	name, arg, _ = strings.Cut(line, " ")
	return name, arg
}

// Register adds a command. Names are normalized; an empty name, a nil handler
// or a name registered twice is an error.
func (r *Registry) Register(cmd Command) error {
	cmd.Name = NormalizeName(cmd.Name)
	if cmd.Name == "" {
		return fmt.Errorf("registry: command name is required")
	}
	if cmd.Run == nil {
		return fmt.Errorf("registry: command %s has no handler", cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("registry: command %s already registered", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a command by name, normalizing it first.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[NormalizeName(name)]
	return cmd, ok
}

// Execute looks up a command by name and runs it.
// Returns *UnknownCommandError if the command is not found.
func (r *Registry) Execute(ctx context.Context, name, arg string) (string, error) {
	name = NormalizeName(name)
	cmd, ok := r.commands[name]
	if !ok {
		return "", &UnknownCommandError{Name: name}
	}
	return cmd.Run(ctx, arg)
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}
