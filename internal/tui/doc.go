// Package tui provides terminal user interface components for wsbgen.
//
// This package uses the Bubble Tea framework for the interactive prompts of
// the generate command. Prompter implements generate.Prompter:
//
//	g := generate.New(store, defaults, &tui.Prompter{})
//	result, err := g.Generate(opts)
//
// # Template Picker
//
// A numbered, filterable list of templates. Space marks a template, Enter
// finishes (picking the highlighted one if nothing is marked), q or Esc
// cancels. Templates are returned in the order they were marked.
//
// # Forms
//
// Device toggles, memory size, placeholder values and the output path are
// asked for on single-page forms. Toggles start at their platform default;
// Space, y or n change them. Enter validates and submits, Esc cancels.
// A cancelled prompt returns errors.Cancelled.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
