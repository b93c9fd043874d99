package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(44)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	dialogInputStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)
)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message string) string {
	return dialogStyle.Render(
		dialogTitleStyle.Render(title) + "\n\n" +
			dialogBodyStyle.Render(message) + "\n" +
			dialogBodyStyle.Render("y: confirm | n: cancel"),
	)
}

// InputDialog renders a prompt around an already rendered input line.
func InputDialog(title, input string) string {
	return dialogStyle.Render(
		dialogTitleStyle.Render(title) + "\n\n" +
			dialogInputStyle.Render(input) + "\n" +
			dialogBodyStyle.Render("enter: submit | esc: cancel"),
	)
}
