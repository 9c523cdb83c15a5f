package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringmanolo/mail/internal/prompt"
)

func testChoices() []prompt.Choice {
	return []prompt.Choice{
		{Label: "first@mailslurp.com", Value: "first@mailslurp.com", Note: "created 2024-01-01"},
		{Label: "second@mailslurp.com", Value: "second@mailslurp.com", Note: "created 2024-01-02"},
	}
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestUpdateSelect(t *testing.T) {
	m := sized(NewModel("Inboxes", testChoices()))

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := newModel.(Model)

	c, ok := updated.Chosen()
	require.True(t, ok)
	assert.Equal(t, "first@mailslurp.com", c.Value)
	assert.NotNil(t, cmd)
	assert.Empty(t, updated.View())
}

func TestUpdateMoveThenSelect(t *testing.T) {
	m := sized(NewModel("Inboxes", testChoices()))

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	newModel, _ = newModel.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})

	c, ok := newModel.(Model).Chosen()
	require.True(t, ok)
	assert.Equal(t, "second@mailslurp.com", c.Value)
}

func TestUpdateCancel(t *testing.T) {
	m := sized(NewModel("Inboxes", testChoices()))

	newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	updated := newModel.(Model)

	assert.True(t, updated.Cancelled())
	_, ok := updated.Chosen()
	assert.False(t, ok)
	assert.NotNil(t, cmd)
}

func TestUpdateSelectEmptyList(t *testing.T) {
	m := sized(NewModel("Inboxes", nil))

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := newModel.(Model).Chosen()
	assert.False(t, ok)
}

func TestViewShowsTitleAndItems(t *testing.T) {
	m := sized(NewModel("Inboxes", testChoices()))
	view := m.View()
	assert.Contains(t, view, "Inboxes")
	assert.Contains(t, view, "first@mailslurp.com")
}

func TestItem(t *testing.T) {
	item := Item{Choice: testChoices()[0]}
	assert.Equal(t, "first@mailslurp.com", item.Title())
	assert.Equal(t, "created 2024-01-01", item.Description())
	assert.Equal(t, "first@mailslurp.com", item.FilterValue())
}

func TestAskNoChoices(t *testing.T) {
	_, err := Prompter{}.Ask("Inboxes", nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}
