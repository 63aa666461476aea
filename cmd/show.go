package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "show [flags] [-- logon command...]",
		Short: "Print a sandbox configuration without writing it",
		Long: `Show builds the same configuration as generate and prints the XML to
stdout. No file is written and no host folder is created.`,
		Args: dashArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := f.generator(cmd, args)
			if err != nil {
				return err
			}

			result, err := g.Build(opts)
			if err != nil {
				return err
			}

			reportWarnings(result)
			out, err := result.Config.Render()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	f.register(cmd)
	return cmd
}
