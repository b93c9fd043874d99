package tagging

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

var (
	// ErrNotInitialized is returned for field ids without a live engine.
	ErrNotInitialized = errors.New("tag editor not initialized")
	// ErrNoField is returned when Initialize is given a nil host field.
	ErrNoField = errors.New("host field is required")
)

// Registry owns one engine per host field id. Initialize and Teardown are
// the only lifecycle boundaries.
type Registry struct {
	engines map[string]*Engine
	log     zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		engines: make(map[string]*Engine),
		log:     log,
	}
}

// Initialize installs an engine on field. Calling it again for the same
// field id returns the existing engine and changes nothing.
func (r *Registry) Initialize(field HostField, renderer Renderer, opts Options) (*Engine, error) {
	if field == nil {
		return nil, ErrNoField
	}
	id := field.ID()
	if e, ok := r.engines[id]; ok {
		return e, nil
	}
	if opts.Logger == nil {
		opts.Logger = &r.log
	}
	e := New(field, renderer, opts)
	r.engines[id] = e
	r.log.Info().
		Str("field", id).
		Int("tags", len(e.TagList())).
		Int("max_tags", e.MaxTags()).
		Bool("autocomplete", e.AutocompleteEnabled()).
		Msg("tag editor initialized")
	return e, nil
}

// Get returns the engine for id.
func (r *Registry) Get(id string) (*Engine, error) {
	e, ok := r.engines[id]
	if !ok {
		return nil, fmt.Errorf("field %q: %w", id, ErrNotInitialized)
	}
	return e, nil
}

// Clear removes every tag from the field.
func (r *Registry) Clear(id string) error {
	e, err := r.Get(id)
	if err != nil {
		return err
	}
	e.ClearTags()
	return nil
}

// Value returns the field's tag list.
func (r *Registry) Value(id string) ([]string, error) {
	e, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return e.TagList(), nil
}

// SetValue replaces the field's tags, firing a single change notification.
func (r *Registry) SetValue(id string, tags []string) error {
	e, err := r.Get(id)
	if err != nil {
		return err
	}
	e.SetValue(tags)
	return nil
}

// Teardown discards the engine for id. The host field keeps its value.
func (r *Registry) Teardown(id string) error {
	e, err := r.Get(id)
	if err != nil {
		return err
	}
	e.teardown()
	delete(r.engines, id)
	r.log.Info().Str("field", id).Msg("tag editor torn down")
	return nil
}

// IDs returns the ids of all live engines, sorted.
func (r *Registry) IDs() []string {
	return slices.Sorted(maps.Keys(r.engines))
}
