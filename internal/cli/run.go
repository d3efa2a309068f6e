package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/schemarepl/internal/config"
	"github.com/aretw0/schemarepl/internal/presentation/tui"
	"github.com/aretw0/schemarepl/internal/runtime"
	"github.com/aretw0/schemarepl/pkg/codec"
	"github.com/aretw0/schemarepl/pkg/runner"
)

// RunOptions contains the command-line overrides for a session.
// Zero values leave the configured setting untouched.
type RunOptions struct {
	ConfigPath  string
	Debug       bool
	Format      string
	Prompt      string
	HistoryFile string
	NoBanner    bool
	Version     string
}

// Session is a fully wired program and the settings it runs with.
type Session struct {
	Config  *config.Config
	Program *runtime.Program
	Format  codec.Format
}

// resolve layers flags over the loaded configuration.
func resolve(opts RunOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		cfg.Debug = true
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.HistoryFile != "" {
		cfg.HistoryFile = opts.HistoryFile
	}
	if opts.NoBanner {
		cfg.Banner = false
	}
	return cfg, nil
}

// NewSession loads configuration and builds the program.
func NewSession(opts RunOptions, interactive bool) (*Session, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	format, err := codec.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	logger := createLogger(cfg.Debug)
	programOpts := []runtime.Option{
		runtime.WithLogger(logger),
		runtime.WithFormat(format),
	}
	if cfg.Debug {
		programOpts = append(programOpts, runtime.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if interactive {
		programOpts = append(programOpts, runtime.WithHelpRenderer(tui.NewRenderer()))
	}

	return &Session{
		Config:  cfg,
		Program: runtime.NewProgram(programOpts...),
		Format:  format,
	}, nil
}

// Execute runs an interactive session on the process's standard streams.
// A terminal on stdin gets the line editor, anything else is read plainly.
func Execute(opts RunOptions) error {
	interactive := tui.IsTerminal(os.Stdin) && tui.IsTerminal(os.Stdout)

	sess, err := NewSession(opts, interactive)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	var reader runner.LineReader
	if interactive {
		rl, err := runner.NewReadlineReader(runner.ReadlineConfig{
			Prompt:      sess.Config.Prompt,
			HistoryFile: sess.Config.HistoryFile,
			Commands:    commandNames(sess.Program),
		})
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		reader = rl
		if sess.Config.Banner {
			tui.PrintBanner(os.Stdout, opts.Version)
		}
	} else {
		reader = runner.NewScannerReader(os.Stdin, os.Stdout, sess.Config.Prompt)
	}

	err = sess.Run(sigCtx, reader, os.Stdout, interactive && sess.Config.Color)
	if sigCtx.Signal() != nil {
		// Interrupted by the user: a normal way to leave.
		fmt.Fprintln(os.Stdout)
		return nil
	}
	return err
}

// Run drives the program from reader until EOF, exit or cancellation.
func (s *Session) Run(ctx context.Context, reader runner.LineReader, out io.Writer, color bool) error {
	r := runner.NewRunner(reader,
		runner.WithOutput(out),
		runner.WithLogger(createLogger(s.Config.Debug)),
		runner.WithErrorStyle(tui.NewErrorStyle(out, color)),
	)
	err := r.Run(ctx, s.Program)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func commandNames(p *runtime.Program) []string {
	cmds := p.Registry().Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}
