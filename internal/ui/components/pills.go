package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	pillStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1).
			MarginRight(1)

	pillSelectedStyle = lipgloss.NewStyle().
				Foreground(colorDark).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginRight(1)
)

// Pill renders one tag as a filled label. The remove mark is shown on the
// selected pill only.
func Pill(tag string, selected bool) string {
	text := ClampTextWidth(tag, 32)
	if selected {
		return pillSelectedStyle.Render(text + " ×")
	}
	return pillStyle.Render(text)
}

// PillRow lays out tags as pills, wrapping onto more lines within width.
// selected indexes the highlighted pill; -1 highlights none.
func PillRow(tags []string, selected int, width int) string {
	if len(tags) == 0 {
		return ""
	}
	pills := make([]string, len(tags))
	for i, tag := range tags {
		pills[i] = Pill(tag, i == selected)
	}
	if width <= 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
	}
	return strings.Join(wrapSegments(pills, width), "\n")
}
