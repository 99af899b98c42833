package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	render := false
	follow := false
	width := 0

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print a day's note",
		Example: `
daybook show
daybook show --on yesterday
daybook show --on 2024-3-15 --render
daybook show --follow
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
			s := show.Show{
				Service: e.Service,
				Day:     day,
				Render:  render,
				Follow:  follow,
				Width:   width,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddDayArgs(cmd, do)
	cmd.Flags().BoolVarP(&render, "render", "r", false, "Render the note as markdown.")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Print the note again whenever it changes.")
	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width used with --render.")

	topLevel.AddCommand(cmd)
}
