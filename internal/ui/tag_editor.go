package ui

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagging/internal/tagging"
	"github.com/gravitrone/tagging/internal/ui/components"
)

const popupPageSize = 5

// tagNoticeMsg reports an add that produced no new pill.
type tagNoticeMsg struct {
	level string
	text  string
}

// TagEditor is the terminal rendition of a tag field: a row of pills
// followed by a free-text entry with completion. Pills change only through
// the tagging.Renderer methods, which the bound engine calls.
type TagEditor struct {
	engine   *tagging.Engine
	pills    []string
	input    textinput.Model
	popup    *components.List
	typed    string
	selected int
	width    int
}

// NewTagEditor creates an editor with a focused, empty entry. Pass it as the
// renderer when creating the engine, then Bind the engine.
func NewTagEditor() *TagEditor {
	ti := textinput.New()
	ti.Placeholder = "add a tag"
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Focus()

	return &TagEditor{
		input:    ti,
		popup:    components.NewList(popupPageSize),
		selected: -1,
		width:    80,
	}
}

// Bind attaches the engine whose render instructions this editor receives.
func (ed *TagEditor) Bind(e *tagging.Engine) {
	ed.engine = e
	ed.refresh()
}

// SetWidth sets the available terminal width.
func (ed *TagEditor) SetWidth(width int) {
	if width > 0 {
		ed.width = width
	}
}

// --- tagging.Renderer ---

func (ed *TagEditor) InsertTag(value string) {
	ed.pills = append(ed.pills, value)
}

func (ed *TagEditor) RemoveTag(value string) {
	if i := slices.Index(ed.pills, value); i >= 0 {
		ed.pills = slices.Delete(ed.pills, i, i+1)
	}
	if ed.selected >= len(ed.pills) {
		ed.selected = len(ed.pills) - 1
	}
}

func (ed *TagEditor) ClearTags() {
	ed.pills = nil
	ed.selected = -1
}

func (ed *TagEditor) ClearEntry() {
	ed.input.Reset()
	ed.typed = ""
}

// --- Accessors ---

// Pills returns the rendered tags.
func (ed *TagEditor) Pills() []string { return slices.Clone(ed.pills) }

// Entry returns the text in the free-text entry.
func (ed *TagEditor) Entry() string { return ed.input.Value() }

// Suggestions returns the candidates in the completion popup.
func (ed *TagEditor) Suggestions() []string { return slices.Clone(ed.popup.Items) }

// Selected returns the index of the highlighted pill, or -1.
func (ed *TagEditor) Selected() int { return ed.selected }

// Busy reports whether esc would be consumed by the editor itself.
func (ed *TagEditor) Busy() bool {
	return ed.selected >= 0 || ed.popup.Cursor >= 0
}

// Hint returns the completion offered for the current entry text. Nothing
// is offered while a popup item is highlighted.
func (ed *TagEditor) Hint() string {
	text := ed.input.Value()
	if text == "" || ed.popup.Cursor >= 0 {
		return ""
	}
	for _, s := range ed.popup.Items {
		if tagging.Extends(text, s) {
			return s
		}
	}
	return ""
}

func (ed *TagEditor) state() tagging.EntryState {
	return tagging.EntryFrom(ed.input.Value(), ed.Hint())
}

// refresh recomputes the popup from the entry text.
func (ed *TagEditor) refresh() {
	ed.typed = ed.input.Value()
	var items []string
	if ed.engine != nil && ed.typed != "" {
		items = slices.Collect(ed.engine.Suggestions(ed.typed))
	}
	ed.popup.SetItems(items)
}

// --- Update ---

// Update handles one message. Keystrokes go through the engine's entry
// state machine; keys it passes through reach the text input.
func (ed *TagEditor) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		ed.input, cmd = ed.input.Update(msg)
		return cmd
	}
	if ed.engine == nil {
		return nil
	}

	if ed.selected >= 0 {
		if ed.handlePillKeys(key) {
			return nil
		}
		ed.selected = -1
	}

	switch {
	case isLeft(key) && ed.input.Value() == "" && len(ed.pills) > 0:
		ed.selected = len(ed.pills) - 1
		return nil
	case isDown(key):
		ed.movePopup(ed.popup.Down)
		return nil
	case isUp(key):
		ed.movePopup(ed.popup.Up)
		return nil
	case isBack(key):
		if ed.popup.Cursor >= 0 {
			ed.input.SetValue(ed.typed)
			ed.input.CursorEnd()
			ed.popup.Reset()
		}
		return nil
	case key.Type == tea.KeyRunes && len(key.Runes) > 1 && slices.Contains(key.Runes, ','):
		ed.commitPasted(string(key.Runes))
		return nil
	}

	k := entryKey(key)
	if k == tagging.KeyOther {
		return ed.passThrough(key)
	}

	text := ed.input.Value()
	before := len(ed.pills)
	next, outcome := ed.engine.Step(ed.state(), k)
	switch outcome {
	case tagging.OutcomePassThrough:
		return ed.passThrough(key)
	case tagging.OutcomeHintAccepted:
		ed.input.SetValue(next.Text)
		ed.input.CursorEnd()
		ed.refresh()
	case tagging.OutcomeCommitted:
		ed.refresh()
		if len(ed.pills) == before {
			return ed.notice(tagging.Sanitize(text))
		}
	case tagging.OutcomeDeletedLast:
		ed.refresh()
	}
	return nil
}

func (ed *TagEditor) handlePillKeys(key tea.KeyMsg) bool {
	switch {
	case isLeft(key):
		ed.selected = max(ed.selected-1, 0)
	case isRight(key):
		ed.selected++
		if ed.selected >= len(ed.pills) {
			ed.selected = -1
		}
	case isDelete(key):
		ed.engine.DeleteTag(ed.pills[ed.selected])
		ed.refresh()
	case isBack(key):
		ed.selected = -1
	default:
		return false
	}
	return true
}

func (ed *TagEditor) movePopup(move func()) {
	if ed.popup.Len() == 0 {
		return
	}
	move()
	if current, ok := ed.popup.Current(); ok {
		ed.input.SetValue(current)
	} else {
		ed.input.SetValue(ed.typed)
	}
	ed.input.CursorEnd()
}

// commitPasted adds every complete comma-terminated segment of the entry
// text plus the pasted text as one change, leaving the remainder in the
// entry.
func (ed *TagEditor) commitPasted(pasted string) {
	parts := strings.Split(ed.input.Value()+pasted, tagging.Separator)
	rest := parts[len(parts)-1]
	ed.engine.Batch(func() {
		for _, part := range parts[:len(parts)-1] {
			ed.engine.AddTag(part)
		}
	})
	ed.input.SetValue(strings.TrimLeft(rest, " "))
	ed.input.CursorEnd()
	ed.refresh()
}

func (ed *TagEditor) passThrough(key tea.KeyMsg) tea.Cmd {
	before := ed.input.Value()
	var cmd tea.Cmd
	ed.input, cmd = ed.input.Update(key)
	if ed.input.Value() != before {
		ed.refresh()
	}
	return cmd
}

func (ed *TagEditor) notice(tag string) tea.Cmd {
	msg := tagNoticeMsg{level: "info", text: fmt.Sprintf("%q is already tagged", tag)}
	if !ed.engine.Contains(tag) {
		msg = tagNoticeMsg{level: "warning", text: fmt.Sprintf("tag limit of %d reached", ed.engine.MaxTags())}
	}
	return func() tea.Msg { return msg }
}

// --- View ---

func (ed *TagEditor) View() string {
	width := components.BoxContentWidth(ed.width)
	var b strings.Builder

	if row := components.PillRow(ed.pills, ed.selected, width); row != "" {
		b.WriteString(row + "\n\n")
	}

	b.WriteString(PromptStyle.Render("› ") + ed.input.View())
	if hint := ed.Hint(); hint != "" {
		runes := []rune(hint)
		if typed := utf8.RuneCountInString(ed.input.Value()); typed < len(runes) {
			b.WriteString(GhostStyle.Render(string(runes[typed:])))
		}
	}

	if ed.popup.Len() > 0 {
		lines := make([]string, 0, popupPageSize)
		for i, item := range ed.popup.Visible() {
			style := PopupItemStyle
			if ed.popup.IsSelected(ed.popup.RelToAbs(i)) {
				style = PopupSelectedStyle
			}
			lines = append(lines, style.Render(components.ClampTextWidth(item, max(width-4, 8))))
		}
		b.WriteString("\n" + PopupStyle.Render(strings.Join(lines, "\n")))
	}

	b.WriteString("\n\n" + MutedStyle.Render(ed.counter()))
	return b.String()
}

func (ed *TagEditor) counter() string {
	if ed.engine == nil {
		return ""
	}
	n := len(ed.pills)
	if ed.engine.MaxTags() == tagging.DefaultMaxTags {
		return fmt.Sprintf("%d tags", n)
	}
	return fmt.Sprintf("%d/%d tags", n, ed.engine.MaxTags())
}
