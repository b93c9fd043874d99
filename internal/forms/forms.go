// Package forms connects tag fields to the store: it binds host fields to
// their persisted values and cleans submitted tag values onto objects.
package forms

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gravitrone/tagging/internal/store"
	"github.com/gravitrone/tagging/internal/tagging"
)

// Bind loads the stored value of field id into a MemoryField and persists
// every change notification the field dispatches.
func Bind(db *store.DB, id string, log zerolog.Logger) (*tagging.MemoryField, error) {
	value, err := db.LoadField(id)
	if err != nil {
		return nil, fmt.Errorf("bind field: %w", err)
	}
	field := tagging.NewMemoryField(id, value)
	field.OnChange(func(ev tagging.ChangeEvent) {
		if err := db.SaveField(ev.FieldID, ev.Value); err != nil {
			log.Error().Err(err).Str("field", ev.FieldID).Msg("persist field")
			return
		}
		log.Debug().Str("field", ev.FieldID).Int("tags", len(ev.Tags())).Msg("field saved")
	})
	return field, nil
}

// TaggingForm attaches the tags of a submitted field value to an object.
type TaggingForm struct {
	DB       *store.DB
	Language string
	User     string
}

// Initial returns the serialized value for an object's current tags.
func (f TaggingForm) Initial(objectType, objectID string) (string, error) {
	tags, err := f.DB.TagsForObject(objectType, objectID, f.Language)
	if err != nil {
		return "", fmt.Errorf("initial tags: %w", err)
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.String())
	}
	return tagging.Serialize(names), nil
}

// Clean splits data on commas and syncs the object's tags to the result.
// Empty data detaches every tag and returns no items.
func (f TaggingForm) Clean(objectType, objectID, data string) ([]store.TaggedItem, error) {
	var names []string
	if strings.TrimSpace(data) != "" {
		for _, part := range strings.Split(data, tagging.Separator) {
			names = append(names, strings.TrimSpace(part))
		}
	}
	items, err := f.DB.SyncTaggedItems(objectType, objectID, names, f.Language, f.User)
	if err != nil {
		return nil, fmt.Errorf("clean tags: %w", err)
	}
	return items, nil
}
