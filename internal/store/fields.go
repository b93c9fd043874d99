package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gravitrone/tagging/internal/tagging"
)

// FieldRecord is a stored host field.
type FieldRecord struct {
	ID        string
	Value     string
	UpdatedAt time.Time
}

// Tags returns the record's value split into tags.
func (r FieldRecord) Tags() []string {
	return tagging.ParseSerialized(r.Value)
}

// LoadField returns the serialized value of a field. Unknown fields are empty.
func (db *DB) LoadField(id string) (string, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var value string
	err := db.conn.QueryRow("SELECT value FROM fields WHERE id = ?", id).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load field %s: %w", id, err)
	}
	return value, nil
}

// SaveField stores the serialized value of a field.
func (db *DB) SaveField(id, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	_, err := db.conn.Exec(`
		INSERT INTO fields (id, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, id, value, now())
	if err != nil {
		return fmt.Errorf("save field %s: %w", id, err)
	}
	return nil
}

// ListFields returns every stored field ordered by id.
func (db *DB) ListFields() ([]FieldRecord, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query("SELECT id, value, updated_at FROM fields ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer rows.Close()

	var out []FieldRecord
	for rows.Next() {
		var rec FieldRecord
		var updated string
		if err := rows.Scan(&rec.ID, &rec.Value, &updated); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		rec.UpdatedAt = parseTime(updated)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteField removes a stored field.
func (db *DB) DeleteField(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	res, err := db.conn.Exec("DELETE FROM fields WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete field %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete field %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("field %s: %w", id, ErrNotFound)
	}
	return nil
}
