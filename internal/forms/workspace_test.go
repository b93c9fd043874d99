package forms

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/tagging/internal/config"
	"github.com/gravitrone/tagging/internal/tagging"
)

func testWorkspace(t *testing.T, cfg config.Config) *Workspace {
	t.Helper()
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return NewWorkspace(&cfg, testDB(t), zerolog.Nop())
}

func TestSuggestionPoolMergesStoreNames(t *testing.T) {
	ws := testWorkspace(t, config.Config{Suggestions: []string{"red", "go"}, StoreSuggestions: true})
	_, err := ws.Form("").Clean("article", "1", "go,rust")
	require.NoError(t, err)

	pool, err := ws.SuggestionPool()
	require.NoError(t, err)

	assert.Equal(t, []string{"red", "go", "rust"}, pool)
}

func TestSuggestionPoolConfiguredOnly(t *testing.T) {
	ws := testWorkspace(t, config.Config{Suggestions: []string{"red"}})
	_, err := ws.Form("").Clean("article", "1", "rust")
	require.NoError(t, err)

	pool, err := ws.SuggestionPool()
	require.NoError(t, err)

	assert.Equal(t, []string{"red"}, pool)
}

func TestEngineOptionsFromConfig(t *testing.T) {
	ws := testWorkspace(t, config.Config{
		MaxTags:          4,
		Suggestions:      []string{"red"},
		Autocomplete:     true,
		NotifyNoopDelete: false,
	})

	opts, err := ws.EngineOptions()
	require.NoError(t, err)

	assert.Equal(t, 4, opts.MaxTags)
	assert.Equal(t, []string{"red"}, opts.SuggestionPool)
	require.NotNil(t, opts.Autocomplete)
	assert.True(t, *opts.Autocomplete)
	assert.True(t, opts.QuietNoopDelete)
}

func TestWorkspaceOpenIsIdempotentAndPersists(t *testing.T) {
	ws := testWorkspace(t, config.Config{})
	require.NoError(t, ws.DB.SaveField("post", "a"))

	e1, err := ws.Open("post", nil)
	require.NoError(t, err)
	e2, err := ws.Open("post", nil)
	require.NoError(t, err)
	assert.Same(t, e1, e2)

	e1.AddTag("b")
	value, err := ws.DB.LoadField("post")
	require.NoError(t, err)
	assert.Equal(t, "a,b", value)

	require.NoError(t, ws.Close("post"))
	assert.ErrorIs(t, ws.Close("post"), tagging.ErrNotInitialized)

	value, err = ws.DB.LoadField("post")
	require.NoError(t, err)
	assert.Equal(t, "a,b", value)
}

func TestOpenWorkspaceAndShutdown(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "nested", "ws.db"), Language: "en"}

	ws, err := OpenWorkspace(cfg, zerolog.Nop())
	require.NoError(t, err)
	_, err = ws.Open("post", nil)
	require.NoError(t, err)

	require.NoError(t, ws.Shutdown())
	assert.Empty(t, ws.Registry.IDs())
}
