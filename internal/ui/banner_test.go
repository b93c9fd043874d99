package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/tagging/internal/ui/components"
)

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner()
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Comma-Separated Tag Editor")
	assert.Contains(t, clean, "Command-Line Interface")
	assert.Contains(t, clean, "─")
}
