package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/config"
	"tableflip.dev/daybook/pkg/daykey"
)

func addPath(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "print the data directory and today's key",
		Example: `
daybook path
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(config.Options{})
			if err != nil {
				return err
			}
			today := daykey.Today(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "data:  %s\n", settings.Path)
			_, _ = fmt.Fprintf(out, "today: %s\n", today)
			_, _ = fmt.Fprintf(out, "log:   %s\n", settings.Log.File)
			_, _ = fmt.Fprintf(out, "audio: %s\n", settings.Audio.File)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
