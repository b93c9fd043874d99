package components

// List is a scrollable list whose cursor may rest on no item. A cursor of
// -1 means nothing is highlighted.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates an empty list with the given page size.
func NewList(pageSize int) *List {
	return &List{Cursor: -1, PageSize: max(pageSize, 1)}
}

// SetItems replaces items and clears the highlight.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Reset()
}

// Reset clears the highlight and scrolls to the top.
func (l *List) Reset() {
	l.Cursor = -1
	l.Offset = 0
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Down moves the highlight down, starting at the first item.
func (l *List) Down() {
	if l.Cursor >= len(l.Items)-1 {
		return
	}
	l.Cursor++
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
}

// Up moves the highlight up. Moving up from the first item clears it.
func (l *List) Up() {
	if l.Cursor < 0 {
		return
	}
	l.Cursor--
	if l.Cursor >= 0 && l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
}

// Current returns the highlighted item.
func (l *List) Current() (string, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return "", false
	}
	return l.Items[l.Cursor], true
}

// Visible returns the items on the current page.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := min(l.Offset+l.PageSize, len(l.Items))
	return l.Items[l.Offset:end]
}

// IsSelected reports whether the absolute index is highlighted.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

// RelToAbs converts an index into Visible to an index into Items.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}
