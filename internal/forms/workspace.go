package forms

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/gravitrone/tagging/internal/config"
	"github.com/gravitrone/tagging/internal/store"
	"github.com/gravitrone/tagging/internal/tagging"
)

// Workspace ties configuration, the store and the engine registry together
// for one process.
type Workspace struct {
	Config   *config.Config
	DB       *store.DB
	Registry *tagging.Registry
	Log      zerolog.Logger
}

// OpenWorkspace opens the store at cfg.DBPath and wraps it in a workspace.
func OpenWorkspace(cfg *config.Config, log zerolog.Logger) (*Workspace, error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}
	return NewWorkspace(cfg, db, log), nil
}

// NewWorkspace creates a workspace with an empty registry.
func NewWorkspace(cfg *config.Config, db *store.DB, log zerolog.Logger) *Workspace {
	return &Workspace{
		Config:   cfg,
		DB:       db,
		Registry: tagging.NewRegistry(log),
		Log:      log,
	}
}

// SuggestionPool returns the configured suggestions followed by the names of
// known tags, without duplicates.
func (w *Workspace) SuggestionPool() ([]string, error) {
	pool := slices.Clone(w.Config.Suggestions)
	if !w.Config.StoreSuggestions {
		return pool, nil
	}
	names, err := w.DB.TagNames(w.Config.Language)
	if err != nil {
		return nil, fmt.Errorf("suggestion pool: %w", err)
	}
	for _, name := range names {
		if !slices.Contains(pool, name) {
			pool = append(pool, name)
		}
	}
	return pool, nil
}

// EngineOptions builds engine options from the configuration.
func (w *Workspace) EngineOptions() (tagging.Options, error) {
	pool, err := w.SuggestionPool()
	if err != nil {
		return tagging.Options{}, err
	}
	autocomplete := w.Config.AutocompleteEnabled(pool)
	return tagging.Options{
		MaxTags:         w.Config.MaxTags,
		SuggestionPool:  pool,
		Autocomplete:    &autocomplete,
		QuietNoopDelete: !w.Config.NotifyNoopDelete,
	}, nil
}

// Open returns the engine for field id, binding the field to the store and
// initializing an engine on first use.
func (w *Workspace) Open(id string, renderer tagging.Renderer) (*tagging.Engine, error) {
	if e, err := w.Registry.Get(id); err == nil {
		return e, nil
	}
	field, err := Bind(w.DB, id, w.Log)
	if err != nil {
		return nil, err
	}
	opts, err := w.EngineOptions()
	if err != nil {
		return nil, err
	}
	return w.Registry.Initialize(field, renderer, opts)
}

// Close tears down the engine for field id.
func (w *Workspace) Close(id string) error {
	return w.Registry.Teardown(id)
}

// Shutdown tears down every open engine and closes the store.
func (w *Workspace) Shutdown() error {
	for _, id := range w.Registry.IDs() {
		_ = w.Registry.Teardown(id)
	}
	return w.DB.Close()
}

// Form returns a tagging form for the configured language.
func (w *Workspace) Form(user string) TaggingForm {
	return TaggingForm{DB: w.DB, Language: w.Config.Language, User: user}
}
