package components

import "github.com/charmbracelet/lipgloss"

// Component colors. They mirror the theme in package ui so components can
// render without importing it.
var (
	colorPrimary   = lipgloss.Color("#5f8fbf")
	colorSecondary = lipgloss.Color("#4f8a7a")
	colorText      = lipgloss.Color("#d7d9da")
	colorMuted     = lipgloss.Color("#9ba0bf")
	colorBorder    = lipgloss.Color("#2b3a46")
	colorSurface   = lipgloss.Color("#1f2530")
	colorDark      = lipgloss.Color("#16161d")
	colorKeyCap    = lipgloss.Color("#888ba4")
	colorErrBorder = lipgloss.Color("#7a2f3a")
	colorErrTitle  = lipgloss.Color("#e06c75")
	colorErrBody   = lipgloss.Color("#d6b5b5")
)
