package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/schemarepl"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of schemarepl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "schemarepl version %s\n", strings.TrimSpace(schemarepl.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
