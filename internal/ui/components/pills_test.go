package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPillRowEmpty(t *testing.T) {
	assert.Equal(t, "", PillRow(nil, -1, 80))
}

func TestPillRowRendersEveryTag(t *testing.T) {
	out := SanitizeText(PillRow([]string{"go", "rust"}, -1, 80))

	assert.Contains(t, out, "go")
	assert.Contains(t, out, "rust")
	assert.NotContains(t, out, "×")
}

func TestPillRowMarksSelected(t *testing.T) {
	out := SanitizeText(PillRow([]string{"go", "rust"}, 1, 80))

	assert.Contains(t, out, "rust ×")
	assert.NotContains(t, out, "go ×")
}

func TestPillRowWraps(t *testing.T) {
	tags := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	out := PillRow(tags, -1, 20)

	lines := strings.Split(out, "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}
