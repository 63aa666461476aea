package cmd

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/wsbgen/internal/app"
	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/generate"
	"github.com/firefly-engineering/wsbgen/internal/template"
	"github.com/firefly-engineering/wsbgen/internal/terminal"
	"github.com/firefly-engineering/wsbgen/internal/tui"
)

// loadDefaults reads the defaults file. An explicit path replaces the
// configured location for this invocation only.
func loadDefaults(path string) (*config.Defaults, error) {
	if path != "" {
		return config.LoadDefaults(path)
	}
	return app.Default.LoadDefaults()
}

// openStore loads the templates, searching extraDirs first.
func openStore(extraDirs []string) (*template.Store, error) {
	return app.Default.OpenStore(extraDirs...)
}

// newPrompter picks the Bubble Tea prompter when a terminal is attached.
func newPrompter(nonInteractive bool) generate.Prompter {
	if nonInteractive || !terminal.Interactive() {
		return generate.NonInteractive{}
	}
	return &tui.Prompter{}
}

// parseEnv turns repeated KEY=VALUE flags into a map. Later flags win.
func parseEnv(pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.ValidationError(fmt.Sprintf("invalid --env value %q, expected KEY=VALUE", pair))
		}
		env[name] = value
	}
	return env, nil
}

// dashArgs accepts positional arguments only after "--".
func dashArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && cmd.ArgsLenAtDash() != 0 {
		return errors.ValidationError(fmt.Sprintf("unexpected argument %q, put logon commands after --", args[0]))
	}
	return nil
}

// trailingCommand joins the arguments after "--" into one logon command.
func trailingCommand(cmd *cobra.Command, args []string) []string {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 || dash >= len(args) {
		return nil
	}
	return []string{shellquote.Join(args[dash:]...)}
}

// buildFlags are the inputs shared by generate and show.
type buildFlags struct {
	templates      []string
	env            []string
	templateDirs   []string
	configPath     string
	nonInteractive bool
	memory         int
}

func (f *buildFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&f.templates, "template", "t", nil, "Template ID to include (repeatable)")
	flags.StringArrayVar(&f.env, "env", nil, "Placeholder value as KEY=VALUE (repeatable)")
	flags.StringArrayVar(&f.templateDirs, "templates-dir", nil, "Extra template directory searched first (repeatable)")
	flags.StringVar(&f.configPath, "config", "", "Defaults file to use instead of the XDG location")
	flags.BoolVar(&f.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing input")
	flags.IntVar(&f.memory, "memory", 0, "Sandbox memory in MB (0 for the platform default)")

	var s config.Sandbox
	for _, t := range s.Toggles() {
		flags.Bool(toggleFlag(t), t.Default, t.Prompt)
	}
}

// toggleFlag is the command-line name of a device toggle.
func toggleFlag(t config.Toggle) string {
	return strings.ReplaceAll(t.Key, "_", "-")
}

// sandbox returns only the settings given on the command line so the
// defaults file and prompts can fill the rest.
func (f *buildFlags) sandbox(cmd *cobra.Command) config.Sandbox {
	var s config.Sandbox
	flags := cmd.Flags()

	for _, t := range s.Toggles() {
		name := toggleFlag(t)
		if !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetBool(name)
		*t.Value = &v
	}

	if flags.Changed("memory") {
		m := f.memory
		s.MemoryInMB = &m
	}
	return s
}

// generator loads the defaults and templates and returns a Generator with
// the options parsed from the command line.
func (f *buildFlags) generator(cmd *cobra.Command, args []string) (*generate.Generator, generate.Options, error) {
	env, err := parseEnv(f.env)
	if err != nil {
		return nil, generate.Options{}, err
	}
	if f.memory < 0 {
		return nil, generate.Options{}, errors.ValidationError("--memory must not be negative")
	}

	defaults, err := loadDefaults(f.configPath)
	if err != nil {
		return nil, generate.Options{}, err
	}

	store, err := openStore(f.templateDirs)
	if err != nil {
		return nil, generate.Options{}, err
	}

	g := generate.New(store, defaults, newPrompter(f.nonInteractive))
	g.Normalizer = app.Default.Normalizer

	opts := generate.Options{
		Templates:     f.templates,
		Env:           env,
		Sandbox:       f.sandbox(cmd),
		ExtraCommands: trailingCommand(cmd, args),
	}
	return g, opts, nil
}

// reportWarnings prints every mapping dropped for a duplicate sandbox folder.
func reportWarnings(result *generate.Result) {
	for _, w := range result.Normalized.Warnings {
		logWarning("%s", w)
	}
}
