package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/wsbgen/internal/template"
)

// templateItem implements list.Item for template selection
type templateItem struct {
	index    int
	tmpl     *template.Template
	selected bool
}

func (i templateItem) Title() string {
	mark := " "
	if i.selected {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %d. %s", mark, i.index+1, i.tmpl.Name)
}

func (i templateItem) Description() string {
	desc := i.tmpl.Description
	if len(i.tmpl.Requires) > 0 {
		desc += " (requires " + strings.Join(i.tmpl.Requires, ", ") + ")"
	}
	return desc
}

func (i templateItem) FilterValue() string {
	return i.tmpl.Name + " " + i.tmpl.ID
}

// pickerModel is the bubbletea model for the multi-select template picker
type pickerModel struct {
	list list.Model
	// order records selected IDs in the order they were picked.
	order     []string
	done      bool
	cancelled bool
}

func newPickerModel(templates []*template.Template) *pickerModel {
	items := make([]list.Item, len(templates))
	for i, t := range templates {
		items[i] = templateItem{index: i, tmpl: t}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "Select templates"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &pickerModel{list: l}
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case " ", "x":
			m.toggleCurrent()
			return m, nil

		case "enter":
			// Enter with nothing marked picks the highlighted template.
			if len(m.order) == 0 {
				m.toggleCurrent()
			}
			if len(m.order) > 0 {
				m.done = true
				return m, tea.Quit
			}
			return m, nil

		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *pickerModel) toggleCurrent() {
	item, ok := m.list.SelectedItem().(templateItem)
	if !ok {
		return
	}
	item.selected = !item.selected
	m.list.SetItem(m.list.GlobalIndex(), item)

	if item.selected {
		m.order = append(m.order, item.tmpl.ID)
		return
	}
	for i, id := range m.order {
		if id == item.tmpl.ID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *pickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	help := helpStyle.Render("[space] Mark  [enter] Done  [/] Filter  [q] Cancel")
	if len(m.order) > 0 {
		help = dimStyle.Render("Selected: "+strings.Join(m.order, ", ")) + "\n" + help
	}
	return m.list.View() + "\n" + help
}

// Selected returns the picked template IDs in the order they were marked
func (m *pickerModel) Selected() []string {
	return append([]string(nil), m.order...)
}

// SimpleList renders the numbered template list for non-interactive output
func SimpleList(templates []*template.Template) string {
	var sb strings.Builder

	if len(templates) == 0 {
		sb.WriteString("No templates found.\n")
		return sb.String()
	}

	for i, t := range templates {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Name))
		sb.WriteString(fmt.Sprintf("        %s\n", t.Description))
	}
	return sb.String()
}
