package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestFormToggles(t *testing.T) {
	f := newFormModel("test")
	f.addToggle("a", "A", false)
	f.addToggle("b", "B", true)

	f.Update(keySpace)
	if !f.toggle("a") {
		t.Error("space should turn a on")
	}

	f.Update(keyDown)
	if f.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", f.cursor)
	}
	f.Update(runes("n"))
	if f.toggle("b") {
		t.Error("n should turn b off")
	}
	f.Update(runes("y"))
	if !f.toggle("b") {
		t.Error("y should turn b on")
	}

	f.Update(keyDown)
	if f.cursor != 0 {
		t.Errorf("cursor should wrap to 0, got %d", f.cursor)
	}
	f.Update(keyUp)
	if f.cursor != 1 {
		t.Errorf("cursor should wrap to 1, got %d", f.cursor)
	}
}

func TestFormTextInput(t *testing.T) {
	f := newFormModel("test")
	f.addText("name", "Name", "", "", "", nil)
	f.Init()

	for _, r := range "jk y" {
		f.Update(runes(string(r)))
	}

	if got := f.text("name"); got != "jk y" {
		t.Errorf("text = %q, want %q (letters go to the input, not navigation)", got, "jk y")
	}
}

func TestFormSubmit(t *testing.T) {
	f := newFormModel("test")
	f.addToggle("t", "T", false)
	f.addText("n", "Number", "", "", "abc", func(s string) error {
		if s != "42" {
			return fmt.Errorf("want 42")
		}
		return nil
	})

	_, cmd := f.Update(keyEnter)
	if f.submitted {
		t.Fatal("invalid input should not submit")
	}
	if cmd == nil {
		t.Error("expected focus command for the invalid field")
	}
	if f.cursor != 1 || f.errField != 1 {
		t.Errorf("cursor = %d, errField = %d, want 1", f.cursor, f.errField)
	}
	if !strings.Contains(f.View(), "want 42") {
		t.Error("view should show the validation error")
	}

	f.fields[1].input.SetValue("42")
	f.Update(keyEnter)
	if !f.submitted {
		t.Error("valid input should submit")
	}
	if f.err != nil {
		t.Errorf("err = %v, want nil", f.err)
	}
	if f.View() != "" {
		t.Error("view should be empty after submit")
	}
}

func TestFormCancel(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyEsc, {Type: tea.KeyCtrlC}} {
		f := newFormModel("test")
		f.addToggle("t", "T", false)

		_, cmd := f.Update(key)
		if !f.cancelled {
			t.Errorf("%s should cancel", key)
		}
		if cmd == nil {
			t.Errorf("%s should quit", key)
		}
	}
}

func TestFormView(t *testing.T) {
	f := newFormModel("Sandbox settings")
	f.addToggle("vgpu", "Enable vGPU", true)
	f.addText("mem", "Memory in MB", "Leave empty for the platform default", "default", "", nil)

	view := f.View()
	for _, want := range []string{"Sandbox settings", "[x] Enable vGPU", "Memory in MB", "platform default"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
