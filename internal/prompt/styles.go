// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#4E79A7")
	successColor = lipgloss.Color("#59A14F")
	errorColor   = lipgloss.Color("#E15759")
	subtleColor  = lipgloss.Color("#79706E")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	promptStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)
)

const (
	successIcon = "✓"
	errorIcon   = "✗"
)

func formatTitle(title string) string {
	return titleStyle.Render(title)
}

func formatPrompt(prompt string) string {
	return promptStyle.Render(prompt) + " "
}

func formatSuccess(message string) string {
	return successStyle.Render(successIcon + " " + message)
}

func formatError(message string) string {
	return errorStyle.Render(errorIcon + " " + message)
}

func formatHint(hint string) string {
	return subtleStyle.Render(hint)
}
