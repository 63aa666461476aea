package cmd

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		f      buildFlags
		output string
		mkdir  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [flags] [-- logon command...]",
		Short: "Write a sandbox configuration from templates",
		Long: `Generate resolves the selected templates and writes a .wsb file.

Templates, device settings, placeholder values and the output path are taken
from flags first, then from the defaults file. Whatever is still missing is
prompted for when a terminal is attached, and is an error otherwise.

Arguments after -- are joined into one extra logon command that runs after
every template command.`,
		Example: `  wsbgen generate -t dev.ini --env ROOT=C:\work -o dev.wsb
  wsbgen generate -t base.ini --networking=false -- explorer.exe C:\Tools`,
		Args: dashArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, opts, err := f.generator(cmd, args)
			if err != nil {
				return err
			}
			opts.Output = output
			if cmd.Flags().Changed("mkdir") {
				opts.MakeDir = &mkdir
			}

			result, err := g.Generate(opts)
			if err != nil {
				return err
			}

			reportWarnings(result)
			for _, dir := range result.Created {
				logInfo("Created %s", dir)
			}
			logSuccess("Wrote %s (%d templates, %d mappings, %d commands)",
				result.Output,
				len(result.Resolution.Order),
				len(result.Normalized.Mappings),
				len(result.Config.LogonCommands()),
			)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output .wsb file")
	cmd.Flags().BoolVar(&mkdir, "mkdir", false, "Create missing host folders")

	return cmd
}
