package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfilled/tripprep/internal/domain"
	"github.com/fulfilled/tripprep/internal/plan"
	"github.com/fulfilled/tripprep/internal/teatest"
)

func checklistFixture(t *testing.T) checklistModel {
	t.Helper()
	p, err := plan.Build(domain.TripInput{
		Destination: "Lisbon, Portugal",
		StartDate:   "2026-09-15",
		Modes:       []domain.TravelMode{domain.ModeFly},
		Travelers: []domain.Traveler{
			{Name: "Ana", Type: domain.TravelerAdult},
			{Name: "Rui", Type: domain.TravelerChild, Age: domain.AgeOf(4)},
		},
		Activities: []domain.Activity{domain.ActivityPool},
	})
	require.NoError(t, err)
	return newChecklistModel(p)
}

func press(t *testing.T, m checklistModel, msg tea.Msg) checklistModel {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(checklistModel)
	require.True(t, ok)
	return next
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestChecklist_StartsOnCombinedList(t *testing.T) {
	m := checklistFixture(t)
	assert.Equal(t, "Everyone", m.listName())
	assert.NotEmpty(t, m.items())
}

func TestChecklist_TabCyclesLists(t *testing.T) {
	m := checklistFixture(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Ana", m.listName())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Rui", m.listName())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Everyone", m.listName(), "wraps around")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Rui", m.listName())
}

func TestChecklist_SpaceTogglesItem(t *testing.T) {
	m := checklistFixture(t)
	first := m.items()[0].label

	m = press(t, m, keyRune(' '))
	assert.True(t, m.checked[m.itemKey(first)])

	m = press(t, m, keyRune(' '))
	assert.False(t, m.checked[m.itemKey(first)])
}

func TestChecklist_ChecksAreScopedPerList(t *testing.T) {
	m := checklistFixture(t)
	m = press(t, m, keyRune(' ')) // check first item on Everyone

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // Ana
	first := m.items()[0].label
	assert.False(t, m.checked[m.itemKey(first)], "same label, different list")
}

func TestChecklist_MinimalFilterKeepsEssentialsOnly(t *testing.T) {
	m := checklistFixture(t)
	full := len(m.items())

	m = press(t, m, keyRune('m'))
	minimal := m.items()
	assert.Less(t, len(minimal), full)
	for _, row := range minimal {
		assert.True(t, row.essential, "%q in minimalist view", row.label)
	}

	m = press(t, m, keyRune('m'))
	assert.Len(t, m.items(), full)
}

func TestChecklist_CursorClampsWhenListShrinks(t *testing.T) {
	m := checklistFixture(t)
	m.cursor = len(m.items()) - 1

	m = press(t, m, keyRune('m'))
	assert.Less(t, m.cursor, len(m.items()))
}

func TestChecklist_AddItemFlow(t *testing.T) {
	m := checklistFixture(t)
	before := len(m.items())

	d := teatest.New(t, m)
	d.Press('a')
	assert.True(t, d.Model.(checklistModel).adding)

	d.Type("Power adapter")
	d.PressKey(tea.KeyEnter)

	final := d.Model.(checklistModel)
	assert.False(t, final.adding)
	rows := final.items()
	require.Len(t, rows, before+1)
	assert.Equal(t, "Power adapter", rows[len(rows)-1].label)
}

func TestChecklist_AddSkipsDuplicates(t *testing.T) {
	m := checklistFixture(t)
	before := len(m.items())

	m.addExtra(m.items()[0].label)
	assert.Len(t, m.items(), before, "existing item not re-added")

	m.addExtra("Power adapter")
	m.addExtra("Power adapter")
	assert.Len(t, m.items(), before+1, "extras de-duplicated")

	m.addExtra("   ")
	assert.Len(t, m.items(), before+1, "blank ignored")
}

func TestChecklist_EscCancelsAdd(t *testing.T) {
	m := checklistFixture(t)
	before := len(m.items())

	m = press(t, m, keyRune('a'))
	m = press(t, m, keyRune('x'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.adding)
	assert.Len(t, m.items(), before)
	assert.Empty(t, m.input.Value())
}

func TestChecklist_ViewShowsProgress(t *testing.T) {
	m := checklistFixture(t)
	m = press(t, m, keyRune(' '))

	view := m.View()
	assert.Contains(t, view, "PACKING FOR LISBON, PORTUGAL")
	assert.Contains(t, view, "1/")
	assert.Contains(t, view, "[x]")
}

func TestChecklist_QuitReturnsQuitCmd(t *testing.T) {
	m := checklistFixture(t)
	updated, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.True(t, updated.(checklistModel).quitting)

	d := teatest.New(t, checklistFixture(t))
	d.Press('q')
	assert.True(t, d.Quitting)
}
