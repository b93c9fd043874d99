package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#5f8fbf") // steel blue
	ColorSecondary  = lipgloss.Color("#4f8a7a") // sea green
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorGhost      = lipgloss.Color("#5c6274") // completion hint
	ColorBorder     = lipgloss.Color("#2b3a46") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// GhostStyle renders the untyped remainder of a completion hint.
	GhostStyle = lipgloss.NewStyle().
			Foreground(ColorGhost)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PopupStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PopupItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	PopupSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorSecondary).
				Bold(true)
)
