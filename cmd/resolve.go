package cmd

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/wsbgen/internal/errors"
)

func newResolveCmd() *cobra.Command {
	var (
		templateDirs []string
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "resolve [template...]",
		Short: "Show what a set of templates expands to",
		Long: `Resolve follows the requires of each template and prints the processing
order, the folder mappings and logon commands in output order, and the
placeholder names that need values. Placeholders are not substituted and
nothing is written.

With no arguments the templates listed in the defaults file are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				defaults, err := loadDefaults(configPath)
				if err != nil {
					return err
				}
				ids = defaults.General.Templates
			}
			if len(ids) == 0 {
				return errors.ValidationError("no templates given")
			}

			store, err := openStore(templateDirs)
			if err != nil {
				return err
			}
			res, err := store.Resolve(ids)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Templates:")
			for i, id := range res.Order {
				fmt.Fprintf(w, "  %d. %s\n", i+1, id)
			}

			fmt.Fprintln(w, "\nMappings:")
			if len(res.Mappings) == 0 {
				fmt.Fprintln(w, "  (none)")
			}
			for _, m := range res.Mappings {
				mode := "rw"
				if m.ReadOnly {
					mode = "ro"
				}
				fmt.Fprintf(w, "  %s -> %s (%s)\n", m.HostFolder, m.SandboxFolder, mode)
			}

			fmt.Fprintln(w, "\nCommands:")
			if len(res.Commands) == 0 {
				fmt.Fprintln(w, "  (none)")
			}
			for _, c := range res.Commands {
				fmt.Fprintf(w, "  [%s] %s\n", commandProgram(c), c)
			}

			fmt.Fprintln(w, "\nRequired environment:")
			if len(res.RequiredEnv) == 0 {
				fmt.Fprintln(w, "  (none)")
			} else {
				fmt.Fprintf(w, "  %s\n", strings.Join(res.RequiredEnv, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&templateDirs, "templates-dir", nil, "Extra template directory searched first (repeatable)")
	cmd.Flags().StringVar(&configPath, "config", "", "Defaults file to use instead of the XDG location")

	return cmd
}

// commandProgram returns the program a logon command runs. Commands that do
// not split as shell words are shown whole.
func commandProgram(command string) string {
	words, err := shellquote.Split(command)
	if err != nil || len(words) == 0 {
		return command
	}
	return words[0]
}
