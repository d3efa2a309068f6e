/*
Package runner implements the interactive command loop.

The runner reads one line at a time from a LineReader, passes it to a
Dispatcher and prints the result. Command failures are printed and the loop
carries on; end of input (io.EOF) ends the session cleanly.

# Key Components

  - Runner: the read-dispatch-print loop.
  - ScannerReader: line source for pipes, files and tests.
  - ReadlineReader: line editor with history and completion for terminals.

# Usage

	r := runner.NewRunner(
		runner.NewScannerReader(os.Stdin, os.Stdout, runner.DefaultPrompt),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx, program); err != nil {
		log.Fatal(err)
	}
*/
package runner
