package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/wsbgen/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

// NewRootCmd builds the wsbgen command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wsbgen",
		Short: "Windows Sandbox configuration generator",
		Long: `wsbgen builds Windows Sandbox (.wsb) files from INI templates.

Templates describe folder mappings and logon commands, and may require
other templates. wsbgen resolves the whole set, fills in <NAME>
placeholders, and writes a single sandbox configuration:
  - Templates are searched in ./templates, then the XDG config and data dirs
  - Defaults come from $XDG_CONFIG_HOME/wsbgen/config.toml
  - Anything still missing is asked for interactively`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose, jsonOutput, os.Stderr)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newGenerateCmd(),
		newShowCmd(),
		newResolveCmd(),
		newTemplatesCmd(),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
