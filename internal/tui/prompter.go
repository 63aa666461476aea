package tui

import (
	"fmt"
	"io"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/template"
)

const (
	memoryKey = "memory_mb"
	outputKey = "output"

	// DefaultOutput is offered when no output path is configured.
	DefaultOutput = "sandbox.wsb"
)

// Prompter asks for generator input with Bubble Tea forms.
type Prompter struct {
	// In and Out default to the process's stdin and stdout when nil.
	In  io.Reader
	Out io.Writer
}

// run drives m until it quits.
func (p *Prompter) run(m tea.Model) error {
	var opts []tea.ProgramOption
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func (p *Prompter) runForm(f *formModel) error {
	if err := p.run(f); err != nil {
		return err
	}
	if f.cancelled || !f.submitted {
		return errors.Cancelled()
	}
	return nil
}

// SandboxSettings asks for every unset toggle and, when unset, the memory
// size.
func (p *Prompter) SandboxSettings(s *config.Sandbox) error {
	f := newSettingsForm(s)
	if len(f.fields) == 0 {
		return nil
	}
	if err := p.runForm(f); err != nil {
		return err
	}
	return applySettings(f, s)
}

// SelectTemplates shows the template picker.
func (p *Prompter) SelectTemplates(available []*template.Template) ([]string, error) {
	if len(available) == 0 {
		return nil, errors.ConfigError("no templates found on the search path", nil)
	}

	m := newPickerModel(available)
	if err := p.run(m); err != nil {
		return nil, err
	}
	if m.cancelled {
		return nil, errors.Cancelled()
	}
	return m.Selected(), nil
}

// EnvValues asks for a value for each placeholder name.
func (p *Prompter) EnvValues(names []string) (map[string]string, error) {
	f := newEnvForm(names)
	if err := p.runForm(f); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = f.text(name)
	}
	return values, nil
}

// OutputPath asks where to write the descriptor.
func (p *Prompter) OutputPath() (string, error) {
	f := newOutputForm()
	if err := p.runForm(f); err != nil {
		return "", err
	}
	return f.text(outputKey), nil
}

func newSettingsForm(s *config.Sandbox) *formModel {
	f := newFormModel("Sandbox settings")
	for _, t := range s.Unset() {
		f.addToggle(t.Key, t.Prompt, t.Default)
	}
	if s.MemoryInMB == nil {
		f.addText(memoryKey, "Memory in MB", "Leave empty for the platform default", "default", "", validateMemory)
	}
	return f
}

func applySettings(f *formModel, s *config.Sandbox) error {
	for _, t := range s.Unset() {
		v := f.toggle(t.Key)
		*t.Value = &v
	}
	if s.MemoryInMB == nil {
		mb, err := parseMemory(f.text(memoryKey))
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		s.MemoryInMB = &mb
	}
	return nil
}

func newEnvForm(names []string) *formModel {
	f := newFormModel("Environment values")
	for _, name := range names {
		f.addText(name, name, "", "value for <"+name+">", "", nil)
	}
	return f
}

func newOutputForm() *formModel {
	f := newFormModel("Output")
	f.addText(outputKey, "Output path", "", DefaultOutput, DefaultOutput, validateOutput)
	return f
}

func validateMemory(s string) error {
	_, err := parseMemory(s)
	return err
}

// parseMemory accepts an empty string (platform default) or a non-negative
// number of megabytes.
func parseMemory(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	mb, err := strconv.Atoi(s)
	if err != nil || mb < 0 {
		return 0, fmt.Errorf("invalid memory value %q", s)
	}
	return mb, nil
}

func validateOutput(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}
