package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	var templateDirs []string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available sandbox templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(templateDirs)
			if err != nil {
				return err
			}

			templates := store.List()
			if len(templates) == 0 {
				logInfo("No templates found. Searched: %s", strings.Join(store.Dirs(), ", "))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tAUTHOR\tREQUIRES\tDESCRIPTION")
			fmt.Fprintln(w, "--\t----\t------\t--------\t-----------")

			for _, t := range templates {
				author := t.Author
				if author == "" {
					author = "-"
				}
				requires := strings.Join(t.Requires, ",")
				if requires == "" {
					requires = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, author, requires, t.Description)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringArrayVar(&templateDirs, "templates-dir", nil, "Extra template directory searched first (repeatable)")

	return cmd
}
