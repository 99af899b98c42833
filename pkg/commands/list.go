package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/runner/list"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	since := ""
	calendar := false

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the days that have a note",
		Example: `
daybook list
daybook list --since 2w
daybook list --calendar
daybook list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, _, err := timeutil.ParseWindow(since)
			if err != nil {
				return oo.HandleError(err)
			}
			e, err := setup(setupOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()

			l := list.List{
				Service:  e.Service,
				Window:   window,
				JSON:     oo.JSON,
				Calendar: calendar,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}
	base.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&since, "since", "", "Only list days within this window, for example 3d, 2w or 1y.")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Show month calendars instead of a table.")

	topLevel.AddCommand(cmd)
}
