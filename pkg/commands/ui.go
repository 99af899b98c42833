package commands

import (
	"github.com/spf13/cobra"
)

func addUI(topLevel *cobra.Command) {
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open today's page in the editor",
		Example: `
daybook ui
daybook ui --demo
`,
		Args:      cobra.NoArgs,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, demo)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "Open the editor on sample notes kept in memory.")

	topLevel.AddCommand(cmd)
}
