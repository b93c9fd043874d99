package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/tagging/internal/forms"
	"github.com/gravitrone/tagging/internal/store"
	"github.com/gravitrone/tagging/internal/ui/components"
)

// --- Modes ---

type viewMode int

const (
	modeBrowse viewMode = iota
	modeNewField
	modeEdit
)

// --- Messages ---

type errMsg struct{ err error }
type clearToastMsg struct{}
type fieldsLoadedMsg struct{ items []store.FieldRecord }

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model. It lists stored fields and opens one at a time
// in a TagEditor. Started on a single field it skips the list and quits when
// the editor closes.
type App struct {
	ws     *forms.Workspace
	mode   viewMode
	single bool

	fields []store.FieldRecord
	cursor int

	newField textinput.Model

	fieldID      string
	editor       *TagEditor
	confirmClear bool

	width  int
	height int
	err    string
	toast  *appToast
}

// NewApp creates the root model. A non-empty fieldID opens that field
// directly.
func NewApp(ws *forms.Workspace, fieldID string) App {
	ti := textinput.New()
	ti.Placeholder = "field id"
	ti.Prompt = "> "
	ti.CharLimit = 64

	a := App{
		ws:       ws,
		mode:     modeBrowse,
		newField: ti,
	}
	if id := strings.TrimSpace(fieldID); id != "" {
		a.openEditor(id)
		a.single = a.mode == modeEdit
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.single {
		return textinput.Blink
	}
	return a.loadFieldsCmd()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.editor != nil {
			a.editor.SetWidth(msg.Width)
		}
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case tagNoticeMsg:
		cmd := a.setToast(msg.level, msg.text)
		return a, cmd

	case fieldsLoadedMsg:
		a.fields = msg.items
		a.cursor = min(a.cursor, max(len(a.fields)-1, 0))
		return a, nil

	case tea.KeyMsg:
		if isQuit(msg) {
			a.closeEditor()
			return a, tea.Quit
		}
		switch a.mode {
		case modeNewField:
			return a.handleNewFieldKeys(msg)
		case modeEdit:
			return a.handleEditKeys(msg)
		default:
			return a.handleBrowseKeys(msg)
		}
	}

	var cmd tea.Cmd
	switch a.mode {
	case modeNewField:
		a.newField, cmd = a.newField.Update(msg)
	case modeEdit:
		cmd = a.editor.Update(msg)
	}
	return a, cmd
}

func (a App) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "q") || isBack(msg):
		return a, tea.Quit
	case isUp(msg) || isKey(msg, "k"):
		a.cursor = max(a.cursor-1, 0)
	case isDown(msg) || isKey(msg, "j"):
		a.cursor = min(a.cursor+1, max(len(a.fields)-1, 0))
	case isKey(msg, "n"):
		a.mode = modeNewField
		a.newField.Reset()
		cmd := a.newField.Focus()
		return a, cmd
	case isKey(msg, "r"):
		return a, a.loadFieldsCmd()
	case isEnter(msg):
		if len(a.fields) == 0 {
			return a, nil
		}
		a.openEditor(a.fields[a.cursor].ID)
	}
	return a, nil
}

func (a App) handleNewFieldKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.newField.Blur()
		a.mode = modeBrowse
		return a, nil
	case isEnter(msg):
		id := strings.TrimSpace(a.newField.Value())
		if id == "" {
			cmd := a.setToast("warning", "field id is required")
			return a, cmd
		}
		a.newField.Blur()
		a.openEditor(id)
		return a, nil
	}
	var cmd tea.Cmd
	a.newField, cmd = a.newField.Update(msg)
	return a, cmd
}

func (a App) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmClear {
		switch {
		case isYes(msg):
			a.confirmClear = false
			if err := a.ws.Registry.Clear(a.fieldID); err != nil {
				a.err = err.Error()
				return a, nil
			}
			cmd := a.setToast("success", "tags cleared")
			return a, cmd
		case isNo(msg):
			a.confirmClear = false
		}
		return a, nil
	}

	switch {
	case isClear(msg):
		a.confirmClear = len(a.editor.Pills()) > 0
		return a, nil
	case isBack(msg) && !a.editor.Busy():
		a.closeEditor()
		if a.single {
			return a, tea.Quit
		}
		a.mode = modeBrowse
		return a, a.loadFieldsCmd()
	}
	return a, a.editor.Update(msg)
}

// openEditor initializes the field's engine with a fresh editor as its
// renderer.
func (a *App) openEditor(id string) {
	ed := NewTagEditor()
	ed.SetWidth(a.width)
	engine, err := a.ws.Open(id, ed)
	if err != nil {
		a.err = err.Error()
		return
	}
	ed.Bind(engine)
	a.editor = ed
	a.fieldID = id
	a.mode = modeEdit
	a.err = ""
}

func (a *App) closeEditor() {
	if a.editor == nil {
		return
	}
	if err := a.ws.Close(a.fieldID); err != nil {
		a.ws.Log.Warn().Err(err).Str("field", a.fieldID).Msg("close editor")
	}
	a.editor = nil
	a.fieldID = ""
	a.confirmClear = false
}

func (a App) loadFieldsCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := a.ws.DB.ListFields()
		if err != nil {
			return errMsg{err: err}
		}
		return fieldsLoadedMsg{items: items}
	}
}

// --- View ---

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	var content string
	switch {
	case a.confirmClear:
		body := fmt.Sprintf("Remove all %d tags from %s?", len(a.editor.Pills()), a.fieldID)
		content = components.Indent(components.ConfirmDialog("Clear tags", body), 1)
	case a.mode == modeNewField:
		content = components.Indent(components.InputDialog("New field", a.newField.View()), 1)
	case a.mode == modeEdit:
		content = components.ActiveTitledBox(a.fieldID, a.editor.View(), a.layoutWidth())
	default:
		content = a.renderFields()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.layoutWidth()), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) layoutWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func (a App) renderFields() string {
	width := a.layoutWidth()
	if len(a.fields) == 0 {
		return components.TitledBox("Fields", MutedStyle.Render("No fields yet. Press n to create one."), width)
	}

	cols := []components.TableColumn{
		{Header: "Field", Width: 16},
		{Header: "Tags", Width: 5, Align: lipgloss.Right},
		{Header: "Updated", Width: 16},
		{Header: "Value", Width: 10},
	}
	rows := make([][]string, len(a.fields))
	for i, f := range a.fields {
		rows[i] = []string{
			f.ID,
			strconv.Itoa(len(f.Tags())),
			f.UpdatedAt.Local().Format("2006-01-02 15:04"),
			f.Value,
		}
	}
	grid := components.TableGrid(cols, rows, components.BoxContentWidth(width), a.cursor)
	list := components.TitledBox(fmt.Sprintf("Fields (%d)", len(a.fields)), grid, width)
	return list + "\n" + a.renderFieldDetails(width)
}

// renderFieldDetails shows the highlighted field in full.
func (a App) renderFieldDetails(width int) string {
	if a.cursor < 0 || a.cursor >= len(a.fields) {
		return ""
	}
	f := a.fields[a.cursor]
	tags := f.Tags()
	list := strings.Join(tags, ", ")
	if list == "" {
		list = "none"
	}
	return components.Table("Details", []components.TableRow{
		{Label: "Field", Value: f.ID},
		{Label: "Tags", Value: strconv.Itoa(len(tags))},
		{Label: "Updated", Value: f.UpdatedAt.Local().Format("2006-01-02 15:04:05")},
		{Label: "Values", Value: list},
	}, width)
}

func (a App) statusHints() []string {
	switch {
	case a.confirmClear:
		return []string{components.Hint("y", "Confirm"), components.Hint("n", "Cancel")}
	case a.mode == modeNewField:
		return []string{components.Hint("enter", "Open"), components.Hint("esc", "Cancel")}
	case a.mode == modeEdit:
		back := "Back"
		if a.single {
			back = "Quit"
		}
		return []string{
			components.Hint("enter/,", "Add"),
			components.Hint("tab", "Complete"),
			components.Hint("↑/↓", "Suggestions"),
			components.Hint("←", "Select tag"),
			components.Hint("ctrl+l", "Clear"),
			components.Hint("esc", back),
		}
	default:
		return []string{
			components.Hint("↑/↓", "Select"),
			components.Hint("enter", "Edit"),
			components.Hint("n", "New"),
			components.Hint("r", "Reload"),
			components.Hint("q", "Quit"),
		}
	}
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.layoutWidth())
	}
	return components.TitledBox(title, a.toast.text, a.layoutWidth())
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, lipgloss.Width(line))
	}
	if widest <= 0 || widest >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-widest)/2)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
