package main

import (
	"strings"

	"github.com/aretw0/schemarepl"
	"github.com/aretw0/schemarepl/internal/cli"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive command loop",
	Long: `Starts reading commands (set-schema, add, get, ...) from stdin.
On a terminal a line editor with history is used; piped input is read line by line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		prompt, _ := cmd.Flags().GetString("prompt")
		history, _ := cmd.Flags().GetString("history")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.Execute(cli.RunOptions{
			ConfigPath:  configPath,
			Debug:       debug,
			Format:      format,
			Prompt:      prompt,
			HistoryFile: history,
			NoBanner:    noBanner,
			Version:     strings.TrimSpace(schemarepl.Version),
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	for _, c := range []*cobra.Command{rootCmd, replCmd} {
		c.Flags().String("format", "", "Record output format: text, json or yaml")
		c.Flags().String("prompt", "", "Prompt printed before each line")
		c.Flags().String("history", "", "File to persist line-editor history")
		c.Flags().Bool("no-banner", false, "Do not print the startup banner")
	}

	// The loop is the default when no subcommand is given.
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = replCmd.RunE
}
