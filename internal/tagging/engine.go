package tagging

import (
	"slices"

	"github.com/rs/zerolog"
)

// DefaultMaxTags is the cap used when no limit is configured. It is large
// enough to be effectively unbounded for a hand-edited field.
const DefaultMaxTags = 9001

// AddResult reports what AddTag did. Callers must not assume AddTag always
// grows the list.
type AddResult int

const (
	// AddRejected means the tag was empty after sanitation; nothing changed.
	AddRejected AddResult = iota
	// AddInserted means the tag was appended.
	AddInserted
	// AddDuplicate means the tag was already present.
	AddDuplicate
	// AddOverCapacity means the list already held MaxTags tags.
	AddOverCapacity
)

func (r AddResult) String() string {
	switch r {
	case AddRejected:
		return "rejected"
	case AddInserted:
		return "inserted"
	case AddDuplicate:
		return "duplicate"
	case AddOverCapacity:
		return "over_capacity"
	default:
		return "unknown"
	}
}

// Options configures an engine at construction.
type Options struct {
	// MaxTags caps the tag list length. Zero or negative means DefaultMaxTags.
	MaxTags int
	// SuggestionPool is the fixed candidate list for autocomplete.
	SuggestionPool []string
	// Autocomplete toggles suggestions. Nil means enabled when a pool is set.
	Autocomplete *bool
	// QuietNoopDelete suppresses the change notification when DeleteTag
	// finds nothing to remove.
	QuietNoopDelete bool
	Logger          *zerolog.Logger
}

// Engine keeps the serialized field value, the tag list derived from it and
// the rendered projection in step. It is not safe for concurrent use; all
// calls are expected to come from one event loop.
type Engine struct {
	field           HostField
	renderer        Renderer
	maxTags         int
	pool            []string
	autocomplete    bool
	quietNoopDelete bool

	batches int
	mutes   int
	pending bool
	closed  bool
	log    zerolog.Logger
}

// New creates an engine for field, seeding the rendered projection from the
// field's current value. A nil renderer discards render instructions.
func New(field HostField, renderer Renderer, opts Options) *Engine {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	maxTags := opts.MaxTags
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}
	autocomplete := len(opts.SuggestionPool) > 0
	if opts.Autocomplete != nil {
		autocomplete = *opts.Autocomplete && autocomplete
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	e := &Engine{
		field:           field,
		renderer:        renderer,
		maxTags:         maxTags,
		pool:            slices.Clone(opts.SuggestionPool),
		autocomplete:    autocomplete,
		quietNoopDelete: opts.QuietNoopDelete,
		log:             log.With().Str("field", field.ID()).Logger(),
	}
	for _, tag := range e.TagList() {
		e.renderer.InsertTag(tag)
	}
	return e
}

// FieldID returns the id of the host field the engine is bound to.
func (e *Engine) FieldID() string { return e.field.ID() }

// MaxTags returns the configured capacity.
func (e *Engine) MaxTags() int { return e.maxTags }

// Value returns the current serialized value.
func (e *Engine) Value() string { return e.field.Value() }

// TagList re-derives the tag list from the serialized value.
func (e *Engine) TagList() []string {
	return ParseSerialized(e.field.Value())
}

// Contains reports whether tag is present, by exact match.
func (e *Engine) Contains(tag string) bool {
	return slices.Contains(e.TagList(), tag)
}

// AddTag sanitizes raw and appends it when it is new and capacity allows.
// Duplicates and over-capacity tags still re-serialize the value and clear
// the entry, but produce no visual tag.
func (e *Engine) AddTag(raw string) AddResult {
	if e.closed {
		e.log.Warn().Str("tag", raw).Msg("add on torn down engine")
		return AddRejected
	}
	value := Sanitize(raw)
	if value == "" {
		e.log.Debug().Str("raw", raw).Msg("tag empty after sanitation")
		return AddRejected
	}

	result := e.addToValue(value)
	if result == AddInserted {
		e.renderer.InsertTag(value)
	}
	e.renderer.ClearEntry()
	e.log.Debug().Str("tag", value).Stringer("result", result).Msg("add tag")
	e.notify()
	return result
}

func (e *Engine) addToValue(value string) AddResult {
	tags := e.TagList()
	result := AddInserted
	switch {
	case slices.Contains(tags, value):
		result = AddDuplicate
	case len(tags) >= e.maxTags:
		result = AddOverCapacity
	default:
		tags = append(tags, value)
	}
	e.field.SetValue(Serialize(tags))
	return result
}

// DeleteTag removes value by exact match, preserving the order of the rest.
// A missing or empty value removes nothing; the change notification still
// fires unless QuietNoopDelete is set.
func (e *Engine) DeleteTag(value string) bool {
	if e.closed {
		e.log.Warn().Str("tag", value).Msg("delete on torn down engine")
		return false
	}
	removed := e.deleteFromValue(value)
	if removed {
		e.renderer.RemoveTag(value)
	}
	e.log.Debug().Str("tag", value).Bool("removed", removed).Msg("delete tag")
	if removed || !e.quietNoopDelete {
		e.notify()
	}
	return removed
}

func (e *Engine) deleteFromValue(value string) bool {
	if value == "" {
		return false
	}
	tags := e.TagList()
	idx := slices.Index(tags, value)
	if idx == -1 {
		return false
	}
	tags = slices.Delete(tags, idx, idx+1)
	e.field.SetValue(Serialize(tags))
	return true
}

// DeleteLast removes the last tag. On an empty list it behaves like deleting
// a missing value.
func (e *Engine) DeleteLast() bool {
	tags := e.TagList()
	if len(tags) == 0 {
		return e.DeleteTag("")
	}
	return e.DeleteTag(tags[len(tags)-1])
}

// ClearTags removes every tag and empties the serialized value.
func (e *Engine) ClearTags() {
	if e.closed {
		e.log.Warn().Msg("clear on torn down engine")
		return
	}
	e.renderer.ClearTags()
	e.field.SetValue("")
	e.log.Debug().Msg("clear tags")
	e.notify()
}

// SetValue replaces all tags with tags, sanitized and deduplicated in order,
// firing exactly one change notification.
func (e *Engine) SetValue(tags []string) {
	e.Batch(func() {
		e.ClearTags()
		for _, tag := range tags {
			e.AddTag(tag)
		}
	})
}

// Batch runs fn with change notifications suppressed and fires a single
// notification when the outermost batch ends, provided something inside
// asked for one.
func (e *Engine) Batch(fn func()) {
	e.batches++
	func() {
		defer func() { e.batches-- }()
		fn()
	}()
	if e.batches == 0 && e.pending {
		e.pending = false
		e.notify()
	}
}

// Mute runs fn with change notifications suppressed and fires none.
func (e *Engine) Mute(fn func()) {
	e.mutes++
	defer func() { e.mutes-- }()
	fn()
}

func (e *Engine) notify() {
	switch {
	case e.closed || e.mutes > 0:
		return
	case e.batches > 0:
		e.pending = true
		return
	}
	e.field.DispatchChange()
}

// teardown drops the rendered projection and detaches the engine. The host
// field keeps its current value.
func (e *Engine) teardown() {
	if e.closed {
		return
	}
	e.renderer.ClearTags()
	e.renderer.ClearEntry()
	e.closed = true
	e.log.Debug().Msg("engine torn down")
}
