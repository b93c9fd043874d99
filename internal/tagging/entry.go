package tagging

import (
	"strings"
	"unicode/utf8"
)

// EntryKind distinguishes the states of the free-text entry.
type EntryKind int

const (
	EntryEmpty EntryKind = iota
	EntryTyping
	// EntryHintPending means a ghost-text completion is visible.
	EntryHintPending
)

func (k EntryKind) String() string {
	switch k {
	case EntryEmpty:
		return "empty"
	case EntryTyping:
		return "typing"
	case EntryHintPending:
		return "hint_pending"
	default:
		return "unknown"
	}
}

// EntryState is the entry control's state. Hint is only meaningful when
// Kind is EntryHintPending.
type EntryState struct {
	Kind EntryKind
	Text string
	Hint string
}

// Empty returns the empty entry state.
func Empty() EntryState { return EntryState{Kind: EntryEmpty} }

// Typing returns the state for text without a pending hint.
func Typing(text string) EntryState {
	if text == "" {
		return Empty()
	}
	return EntryState{Kind: EntryTyping, Text: text}
}

// HintPending returns the state for text with a visible completion hint.
func HintPending(text, hint string) EntryState {
	return EntryState{Kind: EntryHintPending, Text: text, Hint: hint}
}

// EntryFrom derives the entry state from the entry text and the current
// completion offered by the suggestion collaborator. A hint is pending only
// when it extends text (case-insensitively) with more characters.
func EntryFrom(text, hint string) EntryState {
	if text == "" {
		return Empty()
	}
	if Extends(text, hint) {
		return HintPending(text, hint)
	}
	return Typing(text)
}

// Extends reports whether hint starts with text, ignoring case, and has
// characters left over.
func Extends(text, hint string) bool {
	lt, lh := strings.ToLower(text), strings.ToLower(hint)
	return strings.HasPrefix(lh, lt) && utf8.RuneCountInString(lh) > utf8.RuneCountInString(lt)
}

// Key is a keystroke relevant to the entry state machine.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyComma
	KeyTab
	KeyBackspace
)

// Outcome tells the view adapter what Step did with a keystroke.
type Outcome int

const (
	// OutcomePassThrough leaves the key to the native entry control.
	OutcomePassThrough Outcome = iota
	// OutcomeCommitted means the entry text was committed via AddTag.
	OutcomeCommitted
	// OutcomeHintAccepted means the entry text should become the hint.
	OutcomeHintAccepted
	// OutcomeDeletedLast means Backspace on an empty entry deleted the last tag.
	OutcomeDeletedLast
	// OutcomeIgnored means the key was consumed without effect.
	OutcomeIgnored
)

// Step applies key to state. Accepting a hint and committing a tag are two
// separate keystrokes: the first Enter or Tab with a pending hint only
// completes the entry text.
func (e *Engine) Step(state EntryState, key Key) (EntryState, Outcome) {
	switch key {
	case KeyEnter, KeyTab:
		switch state.Kind {
		case EntryHintPending:
			return Typing(state.Hint), OutcomeHintAccepted
		case EntryTyping:
			return e.commit(state)
		default:
			return state, OutcomePassThrough
		}
	case KeyComma:
		if state.Kind == EntryEmpty {
			return state, OutcomeIgnored
		}
		return e.commit(state)
	case KeyBackspace:
		if state.Kind == EntryEmpty {
			e.DeleteLast()
			return Empty(), OutcomeDeletedLast
		}
	}
	return state, OutcomePassThrough
}

func (e *Engine) commit(state EntryState) (EntryState, Outcome) {
	if e.AddTag(state.Text) == AddRejected {
		return state, OutcomeIgnored
	}
	return Empty(), OutcomeCommitted
}
