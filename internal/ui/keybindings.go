package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagging/internal/tagging"
)

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down")
}

func isLeft(msg tea.KeyMsg) bool {
	return isKey(msg, "left")
}

func isRight(msg tea.KeyMsg) bool {
	return isKey(msg, "right")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter")
}

func isDelete(msg tea.KeyMsg) bool {
	return isKey(msg, "backspace", "delete")
}

func isClear(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+l")
}

func isYes(msg tea.KeyMsg) bool {
	return isKey(msg, "y", "Y")
}

func isNo(msg tea.KeyMsg) bool {
	return isKey(msg, "n", "N") || isBack(msg)
}

// entryKey maps a keystroke onto the entry state machine's alphabet.
func entryKey(msg tea.KeyMsg) tagging.Key {
	switch msg.String() {
	case "enter":
		return tagging.KeyEnter
	case "tab":
		return tagging.KeyTab
	case ",":
		return tagging.KeyComma
	case "backspace":
		return tagging.KeyBackspace
	}
	return tagging.KeyOther
}
