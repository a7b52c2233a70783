package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fulfilled/tripprep/internal/cli/formatter"
	"github.com/fulfilled/tripprep/internal/plan"
)

// checkItem is one row of the active packing list.
type checkItem struct {
	label     string
	essential bool
}

// checklistModel is an interactive packing checklist over a plan. Lists
// cycle between the combined list and each traveler's list; the
// minimalist filter narrows to essentials.
type checklistModel struct {
	plan        *plan.Plan
	destination string

	listIdx int // 0 = combined, 1..n = PersonOrder[listIdx-1]
	minimal bool
	cursor  int

	checked map[string]bool     // "list|item" -> packed
	extras  map[string][]string // list name -> user-added items

	adding bool
	input  textinput.Model

	quitting bool
}

func newChecklistModel(p *plan.Plan) checklistModel {
	ti := textinput.New()
	ti.Placeholder = "Add an item"
	ti.CharLimit = 80
	ti.Width = 40

	return checklistModel{
		plan:        p,
		destination: p.Basics.Destination,
		checked:     make(map[string]bool),
		extras:      make(map[string][]string),
		input:       ti,
	}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

// listName returns the display name of the active list.
func (m checklistModel) listName() string {
	if m.listIdx == 0 {
		return "Everyone"
	}
	return m.plan.Packing.PersonOrder[m.listIdx-1]
}

// listCount is the number of cyclable lists: combined plus one per traveler.
func (m checklistModel) listCount() int {
	return 1 + len(m.plan.Packing.PersonOrder)
}

// items returns the rows of the active list, minimalist filter and
// user-added extras applied.
func (m checklistModel) items() []checkItem {
	var full, minimal []string
	if m.listIdx == 0 {
		full = m.plan.Packing.Combined
		minimal = m.plan.Packing.MinimalCombined
	} else {
		person := m.plan.Packing.PersonOrder[m.listIdx-1]
		full = m.plan.Packing.ByPerson[person]
		minimal = m.plan.Packing.MinimalByPerson[person]
	}

	essentials := make(map[string]bool, len(minimal))
	for _, item := range minimal {
		essentials[item] = true
	}

	var rows []checkItem
	for _, item := range full {
		if m.minimal && !essentials[item] {
			continue
		}
		rows = append(rows, checkItem{label: item, essential: essentials[item]})
	}
	for _, item := range m.extras[m.listName()] {
		rows = append(rows, checkItem{label: item})
	}
	return rows
}

func (m checklistModel) itemKey(label string) string {
	return m.listName() + "|" + label
}

// addExtra appends a typed item to the active list, skipping anything
// already present in the list or the extras.
func (m *checklistModel) addExtra(label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	for _, row := range m.items() {
		if row.label == label {
			return
		}
	}
	name := m.listName()
	m.extras[name] = append(m.extras[name], label)
}

func (m *checklistModel) clampCursor() {
	if n := len(m.items()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		switch keyMsg.String() {
		case "enter":
			m.addExtra(m.input.Value())
			m.input.Reset()
			m.adding = false
			return m, nil
		case "esc":
			m.input.Reset()
			m.adding = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case "tab":
		m.listIdx = (m.listIdx + 1) % m.listCount()
		m.clampCursor()
	case "shift+tab":
		m.listIdx = (m.listIdx + m.listCount() - 1) % m.listCount()
		m.clampCursor()
	case "m":
		m.minimal = !m.minimal
		m.clampCursor()
	case " ":
		rows := m.items()
		if m.cursor < len(rows) {
			k := m.itemKey(rows[m.cursor].label)
			m.checked[k] = !m.checked[k]
		}
	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m checklistModel) View() string {
	if m.quitting {
		return ""
	}

	rows := m.items()
	packed := 0
	for _, row := range rows {
		if m.checked[m.itemKey(row.label)] {
			packed++
		}
	}

	title := fmt.Sprintf("Packing for %s: %s", m.destination, m.listName())
	if m.minimal {
		title += " (minimalist)"
	}

	var b strings.Builder
	b.WriteString(formatter.Header(title))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d/%d packed", packed, len(rows))))
	b.WriteString("\n\n")

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor && !m.adding {
			cursor = formatter.Bold("> ")
		}
		box := "[ ]"
		if m.checked[m.itemKey(row.label)] {
			box = formatter.StyleGreen.Render("[x]")
		}
		label := row.label
		if row.essential {
			label += " " + formatter.StyleYellow.Render("*")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, label))
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
		b.WriteString(formatter.Dim("enter add · esc cancel"))
	} else {
		b.WriteString("\n" + formatter.Dim("space toggle · tab list · m minimalist · a add · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// ShortHelp lists the checklist key bindings.
func (m checklistModel) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle packed")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "minimalist")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
