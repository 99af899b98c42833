package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/runner/ui"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {
	demo := false

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("One page a day. Type forward, never back."),
		Long: base.Wrap80("daybook opens today's page in a full-screen editor. Text can only be " +
			"appended; it is saved half a second after you stop typing. Other commands " +
			"print, list and clear stored days."),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, demo)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "Open the editor on sample notes kept in memory.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addList(topLevel)
	addClear(topLevel)
	addPath(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func runUI(cmd *cobra.Command, demo bool) error {
	e, err := setup(setupOptions{Fallback: true, Demo: demo})
	if err != nil {
		return err
	}
	defer e.Close()

	i := ui.UI{Service: e.Service, Settings: e.Settings, Log: e.Log}
	return i.Do(cmd.Context())
}
