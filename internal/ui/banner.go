package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
████████  █████   ██████   ██████  ██ ███    ██  ██████
   ██    ██   ██ ██       ██       ██ ████   ██ ██
   ██    ███████ ██   ███ ██   ███ ██ ██ ██  ██ ██   ███
   ██    ██   ██ ██    ██ ██    ██ ██ ██  ██ ██ ██    ██
   ██    ██   ██  ██████   ██████  ██ ██   ████  ██████`

const bannerSubtitle = "Comma-Separated Tag Editor • Command-Line Interface"

// RenderBanner returns the styled banner with a centered subtitle.
func RenderBanner() string {
	var b strings.Builder
	artWidth := 0
	for _, line := range strings.Split(bannerArt, "\n") {
		if line == "" {
			continue
		}
		artWidth = max(artWidth, lipgloss.Width(line))
		b.WriteString(BannerStyle.Render(line) + "\n")
	}

	subtitleWidth := lipgloss.Width(bannerSubtitle)
	block := lipgloss.NewStyle().Width(max(artWidth, subtitleWidth)).Align(lipgloss.Center)
	subtitle := block.Foreground(ColorMuted).Render(bannerSubtitle)
	underline := block.Foreground(ColorBorder).Render(strings.Repeat("─", subtitleWidth))

	return "\n" + b.String() + "\n" + subtitle + "\n" + underline + "\n"
}
