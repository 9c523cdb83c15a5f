// Package picker is a full-screen list for choosing one inbox or email.
package picker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stringmanolo/mail/internal/prompt"
	"github.com/stringmanolo/mail/internal/styles"
)

// Item wraps a choice for the list.
type Item struct {
	Choice prompt.Choice
}

func (i Item) Title() string       { return i.Choice.Label }
func (i Item) Description() string { return i.Choice.Note }
func (i Item) FilterValue() string { return i.Choice.Label }

// Model is the Bubble Tea model for a single selection.
type Model struct {
	list      list.Model
	keys      KeyMap
	chosen    *prompt.Choice
	cancelled bool
}

// NewModel creates a picker titled title over choices.
func NewModel(title string, choices []prompt.Choice) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(styles.White).
		BorderForeground(styles.DarkGray)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(styles.Gray).
		BorderForeground(styles.DarkGray)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.Primary).
		BorderForeground(styles.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.Gray).
		BorderForeground(styles.Primary)

	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = Item{Choice: c}
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = styles.HeaderStyle
	l.Styles.HelpStyle = styles.HelpStyle.Padding(1, 0, 0, 2)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{DefaultKeyMap.Select, DefaultKeyMap.Cancel}
	}

	return Model{list: l, keys: DefaultKeyMap}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Chosen returns the selected choice, if any.
func (m Model) Chosen() (prompt.Choice, bool) {
	if m.chosen == nil {
		return prompt.Choice{}, false
	}
	return *m.chosen, true
}

// Cancelled reports whether the user left without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}
