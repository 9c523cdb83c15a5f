package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stringmanolo/mail/internal/styles"
)

var (
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Green)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Red)

	MutedStyle = lipgloss.NewStyle().
			Foreground(styles.Gray)
)

// PrintSuccess prints a success message with checkmark
func PrintSuccess(msg string) string {
	return SuccessStyle.Render("✓ " + msg)
}

// PrintError prints an error message
func PrintError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}

// PrintInfo prints an info message
func PrintInfo(msg string) string {
	return MutedStyle.Render("• " + msg)
}
