package generate

import (
	"os"

	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/logging"
	"github.com/firefly-engineering/wsbgen/internal/template"
	"github.com/firefly-engineering/wsbgen/internal/wsb"
)

// Options are the command-line choices. Anything left empty falls back to
// the defaults file and then to the Prompter.
type Options struct {
	Templates []string
	Env       map[string]string
	Sandbox   config.Sandbox
	Output    string
	MakeDir   *bool
	// ExtraCommands are appended after every template command.
	ExtraCommands []string
}

// Result describes a built descriptor.
type Result struct {
	Templates  []string
	Resolution *template.Resolution
	Normalized *template.Normalized
	Settings   config.Settings
	Config     *wsb.Config
	// Output is the written file. Empty after Build.
	Output string
	// Created lists host folders created because makedir was on.
	Created []string
}

// Generator turns template selections into sandbox descriptors.
type Generator struct {
	Store      *template.Store
	Defaults   *config.Defaults
	Prompter   Prompter
	Normalizer *template.Normalizer
	MkdirAll   func(path string, perm os.FileMode) error
}

// New creates a Generator. A nil defaults is treated as an empty defaults
// file.
func New(store *template.Store, defaults *config.Defaults, p Prompter) *Generator {
	if defaults == nil {
		defaults = &config.Defaults{}
	}
	if p == nil {
		p = NonInteractive{}
	}
	return &Generator{
		Store:      store,
		Defaults:   defaults,
		Prompter:   p,
		Normalizer: template.NewNormalizer(),
		MkdirAll:   os.MkdirAll,
	}
}

// Build decides the settings, resolves and normalizes the selected templates
// and assembles the descriptor in memory. Nothing is written.
func (g *Generator) Build(opts Options) (*Result, error) {
	settings, err := g.settings(opts.Sandbox)
	if err != nil {
		return nil, err
	}

	ids, err := g.templates(opts.Templates)
	if err != nil {
		return nil, err
	}

	res, err := g.Store.Resolve(ids)
	if err != nil {
		return nil, err
	}
	logging.Debug("resolved templates", "requested", ids, "order", res.Order, "env", res.RequiredEnv)

	env, err := g.env(res.RequiredEnv, opts.Env)
	if err != nil {
		return nil, err
	}

	normalized, err := g.Normalizer.Normalize(res.Mappings, env)
	if err != nil {
		return nil, err
	}

	cfg := wsb.New()
	cfg.SetVGPU(settings.VGPU)
	cfg.SetNetworking(settings.Networking)
	cfg.SetAudioInput(settings.AudioInput)
	cfg.SetVideoInput(settings.VideoInput)
	cfg.SetProtectedClient(settings.ProtectedClient)
	cfg.SetPrinterRedirection(settings.PrinterRedirection)
	cfg.SetClipboardRedirection(settings.ClipboardRedirection)
	cfg.SetMemoryInMB(settings.MemoryInMB)
	for _, m := range normalized.Mappings {
		cfg.AddMappedFolder(m.HostFolder, m.SandboxFolder, m.ReadOnly)
	}
	for _, c := range res.Commands {
		cfg.AddLogonCommand(c)
	}
	for _, c := range opts.ExtraCommands {
		cfg.AddLogonCommand(c)
	}

	return &Result{
		Templates:  ids,
		Resolution: res,
		Normalized: normalized,
		Settings:   settings,
		Config:     cfg,
	}, nil
}

// Generate builds the descriptor, creates host folders when makedir is on
// and writes the file.
func (g *Generator) Generate(opts Options) (*Result, error) {
	result, err := g.Build(opts)
	if err != nil {
		return nil, err
	}

	// The output path may still be prompted for, so it is settled before
	// any host folder is created.
	output, err := g.outputPath(opts.Output)
	if err != nil {
		return nil, err
	}

	if g.makeDir(opts.MakeDir) {
		for _, m := range result.Normalized.Mappings {
			if err := g.MkdirAll(m.HostFolder, 0755); err != nil {
				return nil, errors.OutputError(m.HostFolder, err)
			}
			result.Created = append(result.Created, m.HostFolder)
		}
		logging.Debug("created host folders", "count", len(result.Created))
	}

	if err := result.Config.Save(output); err != nil {
		return nil, err
	}
	result.Output = output

	logging.Info("wrote sandbox configuration",
		"path", output,
		"templates", result.Resolution.Order,
		"mappings", len(result.Normalized.Mappings),
		"commands", len(result.Config.LogonCommands()),
	)
	return result, nil
}

func (g *Generator) settings(flags config.Sandbox) (config.Settings, error) {
	s := flags
	s.Merge(g.Defaults.Sandbox)
	if len(s.Unset()) > 0 || s.MemoryInMB == nil {
		if err := g.Prompter.SandboxSettings(&s); err != nil {
			return config.Settings{}, err
		}
	}
	return s.Resolve(), nil
}

func (g *Generator) templates(flags []string) ([]string, error) {
	if len(flags) > 0 {
		return flags, nil
	}
	if len(g.Defaults.General.Templates) > 0 {
		return g.Defaults.General.Templates, nil
	}

	ids, err := g.Prompter.SelectTemplates(g.Store.List())
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errors.ValidationError("no templates selected")
	}
	return ids, nil
}

// env merges defaults-file values with flag values and prompts for the
// required names still missing.
func (g *Generator) env(required []string, flags map[string]string) (map[string]string, error) {
	env := make(map[string]string, len(g.Defaults.Environments)+len(flags))
	for k, v := range g.Defaults.Environments {
		env[k] = v
	}
	for k, v := range flags {
		env[k] = v
	}

	var missing []string
	for _, name := range required {
		if _, ok := env[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return env, nil
	}

	values, err := g.Prompter.EnvValues(missing)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		env[k] = v
	}
	return env, nil
}

func (g *Generator) makeDir(flag *bool) bool {
	if flag != nil {
		return *flag
	}
	if g.Defaults.General.MakeDir != nil {
		return *g.Defaults.General.MakeDir
	}
	return false
}

func (g *Generator) outputPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if g.Defaults.General.Output != "" {
		return g.Defaults.General.Output, nil
	}
	path, err := g.Prompter.OutputPath()
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.ValidationError("no output path given")
	}
	return path, nil
}
