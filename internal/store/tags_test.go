package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagNames(tags []Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

func TestSyncTaggedItemsCreatesTagsAndItems(t *testing.T) {
	db := setupTestDB(t)

	items, err := db.SyncTaggedItems("article", "1", []string{" Go Lang ", "Databases"}, "en", "user-1")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "go-lang", items[0].Tag.Slug)
	assert.Equal(t, "Go Lang", items[0].Tag.Name)
	assert.Equal(t, "databases", items[1].Tag.Slug)
	assert.Equal(t, "user-1", items[0].UserID)
	assert.Equal(t, "article/1: #Go Lang", items[0].String())
}

func TestSyncTaggedItemsRemovesStaleAndKeepsExisting(t *testing.T) {
	db := setupTestDB(t)
	first, err := db.SyncTaggedItems("article", "1", []string{"a", "b", "c"}, "en", "")
	require.NoError(t, err)

	second, err := db.SyncTaggedItems("article", "1", []string{"c", "a"}, "en", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a"}, tagNames([]Tag{second[0].Tag, second[1].Tag}))
	// Surviving attachments keep their identity.
	assert.Equal(t, first[0].ID, second[1].ID)
	assert.Equal(t, first[2].ID, second[0].ID)
}

func TestSyncTaggedItemsEmptyDetachesAll(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.SyncTaggedItems("article", "1", []string{"a"}, "en", "")
	require.NoError(t, err)

	items, err := db.SyncTaggedItems("article", "1", nil, "en", "")
	require.NoError(t, err)
	assert.Empty(t, items)

	// The tag itself survives for reuse.
	names, err := db.TagNames("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)
}

func TestSyncTaggedItemsSkipsEmptyAndDuplicateSlugs(t *testing.T) {
	db := setupTestDB(t)

	items, err := db.SyncTaggedItems("article", "1", []string{"Go", "", "!!!", "go", "GO "}, "en", "")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "go", items[0].Tag.Slug)
}

func TestTagsSharedAcrossObjects(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.SyncTaggedItems("article", "1", []string{"news", "go"}, "en", "")
	require.NoError(t, err)
	_, err = db.SyncTaggedItems("article", "2", []string{"go", "rust"}, "en", "")
	require.NoError(t, err)
	_, err = db.SyncTaggedItems("video", "1", []string{"cats"}, "en", "")
	require.NoError(t, err)

	byType, err := db.TagsForType("article", "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "news", "rust"}, tagNames(byType))

	byObjects, err := db.TagsForObjects("article", []string{"2"}, "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, tagNames(byObjects))

	none, err := db.TagsForObjects("article", nil, "en")
	require.NoError(t, err)
	assert.Empty(t, none)

	names, err := db.TagNames("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"cats", "go", "news", "rust"}, names)
}

func TestTagNamesPerLanguageFallBackToSlug(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.SyncTaggedItems("article", "1", []string{"Hund"}, "de", "")
	require.NoError(t, err)
	_, err = db.SyncTaggedItems("article", "2", []string{"hund"}, "en", "")
	require.NoError(t, err)
	_, err = db.SyncTaggedItems("article", "3", []string{"Katze"}, "de", "")
	require.NoError(t, err)

	de, err := db.TagsForObject("article", "2", "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hund"}, tagNames(de))

	en, err := db.TagNames("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"hund", "katze"}, en)

	fr, err := db.TagsForObject("article", "3", "fr")
	require.NoError(t, err)
	require.Len(t, fr, 1)
	assert.Equal(t, "katze", fr[0].Name)
}

func TestTagsForUnknownObjectIsEmpty(t *testing.T) {
	db := setupTestDB(t)

	tags, err := db.TagsForObject("article", "404", "en")
	require.NoError(t, err)
	assert.Empty(t, tags)
}
