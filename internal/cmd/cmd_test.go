package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/tagging/internal/config"
	"github.com/gravitrone/tagging/internal/store"
)

func init() {
	color.NoColor = true
}

func setupHome(t *testing.T, cfg *config.Config) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	if cfg != nil {
		require.NoError(t, cfg.Save())
	}
}

func runCmd(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	out, err := runCmd(t, c, args...)
	require.NoError(t, err)
	return out
}

func TestAddThenGet(t *testing.T) {
	setupHome(t, nil)

	out := mustRun(t, AddCmd(), "post", "go", "rust")
	assert.Contains(t, out, "+ go")
	assert.Contains(t, out, "+ rust")

	assert.Equal(t, "go\nrust\n", mustRun(t, GetCmd(), "post"))
	assert.Equal(t, "go,rust\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestGetUnknownField(t *testing.T) {
	setupHome(t, nil)

	assert.Equal(t, "no tags\n", mustRun(t, GetCmd(), "nothing"))
}

func TestAddReportsDuplicateAndRejected(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, AddCmd(), "post", "go")

	out := mustRun(t, AddCmd(), "post", "go", "!!!")

	assert.Contains(t, out, "= go (already tagged)")
	assert.Contains(t, out, `- "!!!" (empty after cleaning)`)
	assert.Equal(t, "go\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestAddRespectsConfiguredLimit(t *testing.T) {
	setupHome(t, &config.Config{MaxTags: 1, Autocomplete: true, NotifyNoopDelete: true})

	out := mustRun(t, AddCmd(), "post", "a", "b")

	assert.Contains(t, out, "+ a")
	assert.Contains(t, out, "! b (tag limit 1 reached)")
	assert.Equal(t, "a\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestAddRequiresTag(t *testing.T) {
	setupHome(t, nil)

	_, err := runCmd(t, AddCmd(), "post")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, AddCmd(), "post", "a", "b")

	out := mustRun(t, RemoveCmd(), "post", "a", "zz")

	assert.Contains(t, out, "- a")
	assert.Contains(t, out, "zz (not tagged)")
	assert.Equal(t, "b\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestRemoveMissingTagIsNotPersistedWhenQuiet(t *testing.T) {
	setupHome(t, &config.Config{NotifyNoopDelete: false})

	out := mustRun(t, RemoveCmd(), "ghost", "zz")

	assert.Contains(t, out, "zz (not tagged)")
	assert.Equal(t, "no fields\n", mustRun(t, FieldsCmd()))
}

func TestSetReplacesAndClears(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, AddCmd(), "post", "a")

	mustRun(t, SetCmd(), "post", "x", "y", "x")
	assert.Equal(t, "x,y\n", mustRun(t, GetCmd(), "post", "--raw"))

	mustRun(t, SetCmd(), "post")
	assert.Equal(t, "\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestClear(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, AddCmd(), "post", "a", "b")

	out := mustRun(t, ClearCmd(), "post")

	assert.Contains(t, out, "cleared 2 tags from post")
	assert.Equal(t, "\n", mustRun(t, GetCmd(), "post", "--raw"))
}

func TestSuggestExcludesUsedTags(t *testing.T) {
	setupHome(t, &config.Config{
		Suggestions:      []string{"golang", "rust", "gopher"},
		Autocomplete:     true,
		StoreSuggestions: true,
		NotifyNoopDelete: true,
	})
	mustRun(t, AddCmd(), "post", "golang")

	assert.Equal(t, "gopher\n", mustRun(t, SuggestCmd(), "post", "go"))
	assert.Equal(t, "rust\n", mustRun(t, SuggestCmd(), "post", "-n", "1"))
	assert.Equal(t, "no suggestions\n", mustRun(t, SuggestCmd(), "post", "zzz"))
}

func TestSuggestWithAutocompleteOff(t *testing.T) {
	setupHome(t, &config.Config{Suggestions: []string{"golang"}, NotifyNoopDelete: true})

	assert.Equal(t, "autocomplete is off\n", mustRun(t, SuggestCmd(), "post", "go"))
}

func TestFieldsAndDelete(t *testing.T) {
	setupHome(t, nil)
	assert.Equal(t, "no fields\n", mustRun(t, FieldsCmd()))

	mustRun(t, AddCmd(), "post", "a", "b")
	out := mustRun(t, FieldsCmd())
	assert.Contains(t, out, "post  2  a,b")

	mustRun(t, DeleteCmd(), "post")
	_, err := runCmd(t, DeleteCmd(), "post")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAttachAndListTags(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, SetCmd(), "post", "Go", "Data Bases")

	out := mustRun(t, AttachCmd(), "post", "article", "1", "--user", "ana")
	assert.Contains(t, out, "article/1: #Go")
	assert.Contains(t, out, "article/1: #Data Bases")

	out = mustRun(t, TagsCmd(), "article", "1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Go  go", lines[0])
	assert.Equal(t, "Data Bases  data-bases", lines[1])

	assert.Contains(t, mustRun(t, TagsCmd(), "article"), "data-bases")
	assert.Equal(t, "no tags\n", mustRun(t, TagsCmd(), "article", "2"))
}

func TestAttachEmptyFieldDetaches(t *testing.T) {
	setupHome(t, nil)
	mustRun(t, SetCmd(), "post", "go")
	mustRun(t, AttachCmd(), "post", "article", "1")

	mustRun(t, ClearCmd(), "post")
	out := mustRun(t, AttachCmd(), "post", "article", "1")

	assert.Contains(t, out, "detached all tags from article/1")
	assert.Equal(t, "no tags\n", mustRun(t, TagsCmd(), "article", "1"))
}

func TestConfigPermissionsTooOpenFails(t *testing.T) {
	setupHome(t, &config.Config{Autocomplete: true})
	require.NoError(t, os.Chmod(config.Path(), 0644))

	_, err := runCmd(t, GetCmd(), "post")
	assert.ErrorContains(t, err, "config permissions too open")
}
