package tui

import (
	"strings"
	"testing"

	"github.com/firefly-engineering/wsbgen/internal/template"
)

func testTemplates() []*template.Template {
	return []*template.Template{
		{ID: "base.ini", Name: "Base", Description: "Tools"},
		{ID: "dev.ini", Name: "Development", Description: "Sources", Requires: []string{"base.ini"}},
		{ID: "office.ini", Name: "Office", Description: "Documents"},
	}
}

func TestTemplateItem(t *testing.T) {
	item := templateItem{index: 1, tmpl: testTemplates()[1]}

	if got := item.Title(); got != "[ ] 2. Development" {
		t.Errorf("Title() = %q", got)
	}
	item.selected = true
	if got := item.Title(); got != "[x] 2. Development" {
		t.Errorf("Title() = %q", got)
	}
	if got := item.Description(); got != "Sources (requires base.ini)" {
		t.Errorf("Description() = %q", got)
	}
	if got := item.FilterValue(); !strings.Contains(got, "dev.ini") {
		t.Errorf("FilterValue() = %q, should contain the ID", got)
	}
}

func TestPickerMarkOrder(t *testing.T) {
	m := newPickerModel(testTemplates())

	m.Update(keyDown)
	m.Update(keyDown)
	m.Update(keySpace) // office
	m.Update(keyUp)
	m.Update(keyUp)
	m.Update(runes("x")) // base

	if got := m.Selected(); strings.Join(got, ",") != "office.ini,base.ini" {
		t.Fatalf("Selected() = %v, want marking order", got)
	}

	m.Update(keySpace) // unmark base
	if got := m.Selected(); strings.Join(got, ",") != "office.ini" {
		t.Fatalf("Selected() = %v after unmarking", got)
	}

	_, cmd := m.Update(keyEnter)
	if !m.done || cmd == nil {
		t.Error("enter should finish the picker")
	}
	if got := m.Selected(); strings.Join(got, ",") != "office.ini" {
		t.Errorf("Selected() = %v", got)
	}
}

func TestPickerEnterPicksHighlighted(t *testing.T) {
	m := newPickerModel(testTemplates())
	m.Update(keyDown)

	m.Update(keyEnter)
	if !m.done {
		t.Fatal("enter should finish the picker")
	}
	if got := m.Selected(); len(got) != 1 || got[0] != "dev.ini" {
		t.Errorf("Selected() = %v, want [dev.ini]", got)
	}
}

func TestPickerCancel(t *testing.T) {
	m := newPickerModel(testTemplates())
	m.Update(keySpace)

	m.Update(runes("q"))
	if !m.cancelled {
		t.Error("q should cancel")
	}
	if m.View() != "" {
		t.Error("view should be empty after cancel")
	}
}

func TestSimpleList(t *testing.T) {
	out := SimpleList(testTemplates())
	for _, want := range []string{"1. Base", "2. Development", "        Sources", "3. Office"} {
		if !strings.Contains(out, want) {
			t.Errorf("SimpleList() missing %q:\n%s", want, out)
		}
	}

	if out := SimpleList(nil); !strings.Contains(out, "No templates") {
		t.Errorf("SimpleList(nil) = %q", out)
	}
}
