package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/config"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Example: `
daybook config > ~/.daybook.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(config.Options{})
			if err != nil {
				return err
			}
			b, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("config: encode: %w", err)
			}
			out := cmd.OutOrStdout()
			if settings.File != "" {
				_, _ = fmt.Fprintf(out, "# read from %s\n", settings.File)
			}
			_, err = out.Write(b)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
