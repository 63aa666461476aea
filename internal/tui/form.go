package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldKind identifies how a form field is edited.
type fieldKind int

const (
	fieldToggle fieldKind = iota
	fieldText
)

// formField is one row of a form.
type formField struct {
	kind  fieldKind
	key   string
	label string
	desc  string

	// toggle
	on bool

	// text
	input    textinput.Model
	validate func(string) error
}

// formModel is a single-page form of toggles and text inputs. Enter submits,
// Esc or Ctrl+C cancels.
type formModel struct {
	title  string
	fields []*formField
	cursor int

	submitted bool
	cancelled bool
	err       error
	errField  int
}

func newFormModel(title string) *formModel {
	return &formModel{title: title, errField: -1}
}

func (f *formModel) addToggle(key, label string, on bool) {
	f.fields = append(f.fields, &formField{
		kind:  fieldToggle,
		key:   key,
		label: label,
		on:    on,
	})
}

func (f *formModel) addText(key, label, desc, placeholder, value string, validate func(string) error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Width = 60
	ti.SetValue(value)

	f.fields = append(f.fields, &formField{
		kind:     fieldText,
		key:      key,
		label:    label,
		desc:     desc,
		input:    ti,
		validate: validate,
	})
}

func (f *formModel) field(key string) *formField {
	for _, fld := range f.fields {
		if fld.key == key {
			return fld
		}
	}
	return nil
}

// toggle returns the state of a toggle field.
func (f *formModel) toggle(key string) bool {
	if fld := f.field(key); fld != nil {
		return fld.on
	}
	return false
}

// text returns the trimmed value of a text field.
func (f *formModel) text(key string) string {
	if fld := f.field(key); fld != nil {
		return strings.TrimSpace(fld.input.Value())
	}
	return ""
}

func (f *formModel) current() *formField {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.cursor]
}

func (f *formModel) focusCurrent() tea.Cmd {
	for _, fld := range f.fields {
		if fld.kind == fieldText {
			fld.input.Blur()
		}
	}
	if fld := f.current(); fld != nil && fld.kind == fieldText {
		fld.input.Focus()
		return textinput.Blink
	}
	return nil
}

func (f *formModel) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.cursor = (f.cursor + delta + len(f.fields)) % len(f.fields)
	return f.focusCurrent()
}

// submit validates every text field and reports whether the form is done.
func (f *formModel) submit() bool {
	for i, fld := range f.fields {
		if fld.kind != fieldText || fld.validate == nil {
			continue
		}
		if err := fld.validate(strings.TrimSpace(fld.input.Value())); err != nil {
			f.err = fmt.Errorf("%s: %w", fld.label, err)
			f.errField = i
			f.cursor = i
			return false
		}
	}
	f.err = nil
	f.errField = -1
	f.submitted = true
	return true
}

func (f *formModel) Init() tea.Cmd {
	return f.focusCurrent()
}

func (f *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.forward(msg)
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		f.cancelled = true
		return f, tea.Quit
	case tea.KeyEnter:
		if f.submit() {
			return f, tea.Quit
		}
		return f, f.focusCurrent()
	case tea.KeyUp, tea.KeyShiftTab:
		return f, f.move(-1)
	case tea.KeyDown, tea.KeyTab:
		return f, f.move(1)
	}

	fld := f.current()
	if fld != nil && fld.kind == fieldToggle {
		switch keyMsg.String() {
		case " ", "x":
			fld.on = !fld.on
		case "y":
			fld.on = true
		case "n":
			fld.on = false
		case "j":
			return f, f.move(1)
		case "k":
			return f, f.move(-1)
		}
		return f, nil
	}

	return f, f.forward(msg)
}

func (f *formModel) forward(msg tea.Msg) tea.Cmd {
	fld := f.current()
	if fld == nil || fld.kind != fieldText {
		return nil
	}
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	return cmd
}

func (f *formModel) View() string {
	if f.submitted || f.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")

	for i, fld := range f.fields {
		cursor := " "
		if i == f.cursor {
			cursor = ">"
		}

		var line string
		switch fld.kind {
		case fieldToggle:
			checked := " "
			if fld.on {
				checked = "x"
			}
			line = fmt.Sprintf("  %s [%s] %s", cursor, checked, fld.label)
		case fieldText:
			line = fmt.Sprintf("  %s %s: %s", cursor, fld.label, fld.input.View())
		}
		if i == f.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if fld.desc != "" {
			b.WriteString(dimStyle.Render("      " + fld.desc))
			b.WriteString("\n")
		}
	}

	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[space] Toggle  [↑/↓] Move  [enter] Continue  [esc] Cancel"))
	return b.String()
}
