package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// DefaultPrompt is printed before every line read.
const DefaultPrompt = ">>> "

// LineReader is a source of command lines.
// ReadLine returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// maxScanLine is the longest line ScannerReader accepts.
const maxScanLine = 1 << 20

// ScannerReader reads lines from any io.Reader, printing a prompt first.
// It is used for pipes, files and tests.
type ScannerReader struct {
	scanner *bufio.Scanner
	writer  io.Writer
	prompt  string
}

// NewScannerReader creates a reader over r that writes prompt to w.
// A nil r reads from os.Stdin; a nil w disables the prompt.
func NewScannerReader(r io.Reader, w io.Writer, prompt string) *ScannerReader {
	if r == nil {
		r = os.Stdin
	}
	scanner := bufio.NewScanner(r)
	// Lines above the sanitizer limit must still be read whole so they can be
	// refused with a size error rather than ending the session.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxScanLine)
	return &ScannerReader{
		scanner: scanner,
		writer:  w,
		prompt:  prompt,
	}
}

func (s *ScannerReader) ReadLine() (string, error) {
	if s.writer != nil && s.prompt != "" {
		fmt.Fprint(s.writer, s.prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *ScannerReader) Close() error { return nil }

// ReadlineConfig configures an interactive ReadlineReader.
type ReadlineConfig struct {
	Prompt      string
	HistoryFile string   // empty disables history persistence
	Commands    []string // offered for tab completion
}

// ReadlineReader reads lines from a terminal with editing, history and
// completion.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a terminal line editor.
func NewReadlineReader(cfg ReadlineConfig) (*ReadlineReader, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Commands))
	for _, name := range cfg.Commands {
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("readline: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine returns the next line. Ctrl+C discards the current line and
// yields an empty one; Ctrl+D yields io.EOF.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
