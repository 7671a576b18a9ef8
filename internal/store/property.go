package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Property is one key=value pair attached to a volume.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetProperty writes a property on a volume, overwriting any previous
// value.
func (s *Store) SetProperty(volumeID, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO properties (volume_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(volume_id, key) DO UPDATE SET value = excluded.value`,
		volumeID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set property %q: %w", key, err)
	}
	return nil
}

// GetProperty reads one property of a volume.
func (s *Store) GetProperty(volumeID, key string) (string, error) {
	var value string
	err := s.db.QueryRow(
		`SELECT value FROM properties WHERE volume_id = ? AND key = ?`,
		volumeID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("property %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get property %q: %w", key, err)
	}
	return value, nil
}

// ListProperties returns all properties of a volume ordered by key.
func (s *Store) ListProperties(volumeID string) ([]Property, error) {
	rows, err := s.db.Query(
		`SELECT key, value FROM properties WHERE volume_id = ? ORDER BY key`,
		volumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var out []Property
	for rows.Next() {
		var p Property
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
