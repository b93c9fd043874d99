package tagging

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryInitializeIsIdempotent(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	field := NewMemoryField("f1", "a")
	first := &recordingRenderer{}

	e1, err := reg.Initialize(field, first, Options{MaxTags: 3})
	require.NoError(t, err)
	e2, err := reg.Initialize(field, &recordingRenderer{}, Options{MaxTags: 10})
	require.NoError(t, err)

	assert.Same(t, e1, e2)
	assert.Equal(t, 3, e2.MaxTags())
	assert.Equal(t, []string{"a"}, first.pills)
}

func TestRegistryOperationsBeforeInitializeFail(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	_, err := reg.Value("missing")
	assert.True(t, errors.Is(err, ErrNotInitialized))
	assert.ErrorIs(t, reg.Clear("missing"), ErrNotInitialized)
	assert.ErrorIs(t, reg.SetValue("missing", []string{"a"}), ErrNotInitialized)
	assert.ErrorIs(t, reg.Teardown("missing"), ErrNotInitialized)
}

func TestRegistryInitializeRequiresField(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	_, err := reg.Initialize(nil, nil, Options{})

	assert.ErrorIs(t, err, ErrNoField)
}

func TestRegistryCapabilitySurface(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	field := NewMemoryField("f1", "")
	changes := 0
	field.OnChange(func(ChangeEvent) { changes++ })
	_, err := reg.Initialize(field, nil, Options{})
	require.NoError(t, err)

	require.NoError(t, reg.SetValue("f1", []string{"a", "b"}))
	tags, err := reg.Value("f1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tags)
	assert.Equal(t, 1, changes)

	require.NoError(t, reg.Clear("f1"))
	tags, err = reg.Value("f1")
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.Equal(t, 2, changes)
}

func TestRegistryTeardownKeepsFieldValue(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	field := NewMemoryField("f1", "a,b")
	renderer := &recordingRenderer{}
	e, err := reg.Initialize(field, renderer, Options{})
	require.NoError(t, err)

	require.NoError(t, reg.Teardown("f1"))

	assert.Equal(t, "a,b", field.Value())
	assert.Empty(t, renderer.pills)
	assert.Empty(t, reg.IDs())
	_, err = reg.Get("f1")
	assert.ErrorIs(t, err, ErrNotInitialized)

	// A stale handle no longer mutates the field.
	assert.Equal(t, AddRejected, e.AddTag("c"))
	assert.Equal(t, "a,b", field.Value())

	// Re-initializing after teardown installs a fresh engine.
	fresh, err := reg.Initialize(field, nil, Options{})
	require.NoError(t, err)
	assert.NotSame(t, e, fresh)
	assert.Equal(t, []string{"a", "b"}, fresh.TagList())
}

func TestRegistryIDsSorted(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	for _, id := range []string{"c", "a", "b"} {
		_, err := reg.Initialize(NewMemoryField(id, ""), nil, Options{})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, reg.IDs())
}
