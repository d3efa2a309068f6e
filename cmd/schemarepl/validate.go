package main

import (
	"strings"

	"github.com/aretw0/schemarepl/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <template>",
	Short: "Check a schema template and list its fields",
	Example: `  schemarepl validate "firstname|string|255 lastname|string|255 age|int"
  schemarepl validate --mermaid --entity user "firstname|string|255 age|int"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			entity, _ := cmd.Flags().GetString("entity")
			return cli.DiagramTemplate(cmd.OutOrStdout(), entity, text)
		}
		return cli.ValidateTemplate(cmd.OutOrStdout(), text)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("mermaid", false, "Print the template as a Mermaid erDiagram")
	validateCmd.Flags().String("entity", "record", "Entity name used in the diagram")
}
