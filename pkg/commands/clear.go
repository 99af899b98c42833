package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/erase"
)

func addClear(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "delete a day's note",
		Example: `
daybook clear
daybook clear --on 2024-3-15 --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(setupOptions{})
			if err != nil {
				return err
			}
			defer e.Close()

			day, err := do.Day(e.Service.Clock)
			if err != nil {
				return err
			}
			c := erase.Erase{
				Service: e.Service,
				Day:     day,
				Yes:     yes,
				Out:     cmd.OutOrStdout(),
			}
			if err := c.Do(cmd.Context()); err != nil && !errors.Is(err, erase.ErrDeclined) {
				return err
			}
			return nil
		},
	}
	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
