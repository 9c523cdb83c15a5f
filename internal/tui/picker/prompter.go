package picker

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stringmanolo/mail/internal/prompt"
)

var (
	// ErrCancelled is returned when the picker is closed without a choice.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoChoices is returned when there is nothing to pick from.
	ErrNoChoices = errors.New("nothing to choose from")
)

// Prompter runs a picker for each question. Nil In/Out use the terminal.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements prompt.Prompter.
func (p Prompter) Ask(label string, choices []prompt.Choice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	var opts []tea.ProgramOption
	opts = append(opts, tea.WithAltScreen())
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(NewModel(label, choices), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("picker error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", ErrCancelled
	}
	c, ok := m.Chosen()
	if !ok {
		return "", ErrCancelled
	}
	return c.Value, nil
}
