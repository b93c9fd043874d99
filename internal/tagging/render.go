package tagging

// Renderer receives render instructions from the engine. Implementations own
// the visual elements but must keep them derived from these calls.
type Renderer interface {
	// InsertTag appends one visual tag before the entry element.
	InsertTag(value string)
	// RemoveTag removes the visual tag carrying value.
	RemoveTag(value string)
	// ClearTags removes every visual tag, leaving the entry element.
	ClearTags()
	// ClearEntry empties the free-text entry.
	ClearEntry()
}

type nopRenderer struct{}

func (nopRenderer) InsertTag(string) {}
func (nopRenderer) RemoveTag(string) {}
func (nopRenderer) ClearTags()       {}
func (nopRenderer) ClearEntry()      {}
