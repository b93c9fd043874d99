package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gravitrone/tagging/internal/tagging"
)

// Tag is a tag with its display name resolved for one language. Name falls
// back to Slug when the tag has no translation in that language.
type Tag struct {
	ID   string
	Slug string
	Name string
}

func (t Tag) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}

// TaggedItem attaches a Tag to an object identified by type and id.
type TaggedItem struct {
	ID         string
	Tag        Tag
	ObjectType string
	ObjectID   string
	UserID     string
	CreatedAt  time.Time
}

func (ti TaggedItem) String() string {
	return fmt.Sprintf("%s/%s: #%s", ti.ObjectType, ti.ObjectID, ti.Tag)
}

const tagColumns = "t.id, t.slug, COALESCE(tr.name, t.slug)"

// SyncTaggedItems makes the object's tags exactly names, in order. Each name
// is trimmed and slugified; tags are created on first use with a
// translation in language, and existing tags gain one if it is missing.
// Names that slugify to nothing are skipped.
func (db *DB) SyncTaggedItems(objectType, objectID string, names []string, language, userID string) ([]TaggedItem, error) {
	if err := db.syncTaggedItems(objectType, objectID, names, language, userID); err != nil {
		return nil, err
	}
	return db.TaggedItems(objectType, objectID, language)
}

func (db *DB) syncTaggedItems(objectType, objectID string, names []string, language, userID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	seen := make(map[string]bool)
	keep := make([]any, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		slug := tagging.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true

		tagID, err := getOrCreateTag(tx, slug, name, language)
		if err != nil {
			return err
		}
		itemID, err := getOrCreateTaggedItem(tx, tagID, objectType, objectID, userID, len(keep))
		if err != nil {
			return err
		}
		keep = append(keep, itemID)
	}

	query := "DELETE FROM tagged_items WHERE object_type = ? AND object_id = ?"
	args := []any{objectType, objectID}
	if len(keep) > 0 {
		query += " AND id NOT IN (" + placeholders(len(keep)) + ")"
		args = append(args, keep...)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("delete stale tagged items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tagged items: %w", err)
	}
	return nil
}

func getOrCreateTag(tx *sql.Tx, slug, name, language string) (string, error) {
	var id string
	err := tx.QueryRow("SELECT id FROM tags WHERE slug = ?", slug).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.New().String()
		if _, err := tx.Exec("INSERT INTO tags (id, slug, created_at) VALUES (?, ?, ?)", id, slug, now()); err != nil {
			return "", fmt.Errorf("create tag %s: %w", slug, err)
		}
	case err != nil:
		return "", fmt.Errorf("get tag %s: %w", slug, err)
	}

	_, err = tx.Exec(
		"INSERT OR IGNORE INTO tag_translations (tag_id, language, name) VALUES (?, ?, ?)",
		id, language, name,
	)
	if err != nil {
		return "", fmt.Errorf("translate tag %s: %w", slug, err)
	}
	return id, nil
}

func getOrCreateTaggedItem(tx *sql.Tx, tagID, objectType, objectID, userID string, position int) (string, error) {
	var id string
	err := tx.QueryRow(
		"SELECT id FROM tagged_items WHERE object_type = ? AND object_id = ? AND tag_id = ?",
		objectType, objectID, tagID,
	).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.New().String()
		_, err = tx.Exec(`
			INSERT INTO tagged_items (id, tag_id, object_type, object_id, user_id, position, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, tagID, objectType, objectID, nullString(userID), position, now())
		if err != nil {
			return "", fmt.Errorf("attach tag: %w", err)
		}
	case err != nil:
		return "", fmt.Errorf("get tagged item: %w", err)
	default:
		if _, err := tx.Exec("UPDATE tagged_items SET position = ? WHERE id = ?", position, id); err != nil {
			return "", fmt.Errorf("reorder tagged item: %w", err)
		}
	}
	return id, nil
}

// TaggedItems returns the object's tagged items in their saved order.
func (db *DB) TaggedItems(objectType, objectID, language string) ([]TaggedItem, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT ti.id, ti.object_type, ti.object_id, COALESCE(ti.user_id, ''), ti.created_at, `+tagColumns+`
		FROM tagged_items ti
		JOIN tags t ON t.id = ti.tag_id
		LEFT JOIN tag_translations tr ON tr.tag_id = t.id AND tr.language = ?
		WHERE ti.object_type = ? AND ti.object_id = ?
		ORDER BY ti.position, ti.created_at
	`, language, objectType, objectID)
	if err != nil {
		return nil, fmt.Errorf("list tagged items: %w", err)
	}
	defer rows.Close()

	var out []TaggedItem
	for rows.Next() {
		var ti TaggedItem
		var created string
		if err := rows.Scan(&ti.ID, &ti.ObjectType, &ti.ObjectID, &ti.UserID, &created,
			&ti.Tag.ID, &ti.Tag.Slug, &ti.Tag.Name); err != nil {
			return nil, fmt.Errorf("scan tagged item: %w", err)
		}
		ti.CreatedAt = parseTime(created)
		out = append(out, ti)
	}
	return out, rows.Err()
}

// TagsForObject returns the tags attached to one object, in saved order.
func (db *DB) TagsForObject(objectType, objectID, language string) ([]Tag, error) {
	items, err := db.TaggedItems(objectType, objectID, language)
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, 0, len(items))
	for _, ti := range items {
		tags = append(tags, ti.Tag)
	}
	return tags, nil
}

// TagsForType returns the distinct tags used by any object of objectType.
func (db *DB) TagsForType(objectType, language string) ([]Tag, error) {
	return db.queryTags(`
		SELECT DISTINCT `+tagColumns+`
		FROM tags t
		JOIN tagged_items ti ON ti.tag_id = t.id
		LEFT JOIN tag_translations tr ON tr.tag_id = t.id AND tr.language = ?
		WHERE ti.object_type = ?
		ORDER BY 3, 2
	`, language, objectType)
}

// TagsForObjects returns the distinct tags attached to any of the objects.
func (db *DB) TagsForObjects(objectType string, objectIDs []string, language string) ([]Tag, error) {
	if len(objectIDs) == 0 {
		return []Tag{}, nil
	}
	args := []any{language, objectType}
	for _, id := range objectIDs {
		args = append(args, id)
	}
	return db.queryTags(`
		SELECT DISTINCT `+tagColumns+`
		FROM tags t
		JOIN tagged_items ti ON ti.tag_id = t.id
		LEFT JOIN tag_translations tr ON tr.tag_id = t.id AND tr.language = ?
		WHERE ti.object_type = ? AND ti.object_id IN (`+placeholders(len(objectIDs))+`)
		ORDER BY 3, 2
	`, args...)
}

// TagNames returns the display name of every known tag in language.
func (db *DB) TagNames(language string) ([]string, error) {
	tags, err := db.queryTags(`
		SELECT `+tagColumns+`
		FROM tags t
		LEFT JOIN tag_translations tr ON tr.tag_id = t.id AND tr.language = ?
		ORDER BY 3, 2
	`, language)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.String())
	}
	return names, nil
}

func (db *DB) queryTags(query string, args ...any) ([]Tag, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	out := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
