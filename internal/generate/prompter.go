package generate

import (
	"github.com/firefly-engineering/wsbgen/internal/config"
	"github.com/firefly-engineering/wsbgen/internal/errors"
	"github.com/firefly-engineering/wsbgen/internal/template"
)

// Prompter asks the user for whatever the flags and defaults file left open.
// Each method is only called when there is something to ask.
type Prompter interface {
	// SandboxSettings fills the nil fields of s.
	SandboxSettings(s *config.Sandbox) error
	// SelectTemplates returns the IDs of the chosen templates.
	SelectTemplates(available []*template.Template) ([]string, error)
	// EnvValues returns a value for each name.
	EnvValues(names []string) (map[string]string, error)
	// OutputPath returns where to write the descriptor.
	OutputPath() (string, error)
}

// NonInteractive is a Prompter that never asks. Unset toggles keep their
// platform defaults; anything else that is missing is an error.
type NonInteractive struct{}

func (NonInteractive) SandboxSettings(*config.Sandbox) error {
	return nil
}

func (NonInteractive) SelectTemplates([]*template.Template) ([]string, error) {
	return nil, errors.ValidationError("no templates selected (use --template or [config] templates)")
}

func (NonInteractive) EnvValues(names []string) (map[string]string, error) {
	return nil, errors.MissingEnvironmentValue(names)
}

func (NonInteractive) OutputPath() (string, error) {
	return "", errors.ValidationError("no output path (use --output or [config] output)")
}
