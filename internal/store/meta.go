package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
)

// GetMeta reads a registry-level setting, returning fallback when unset.
func (s *Store) GetMeta(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("get meta %q: %w", key, err)
	}
	return value, nil
}

// SetMeta writes a registry-level setting.
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set meta %q: %w", key, err)
	}
	return nil
}

// Checksum computes a stable content hash over every registry table, in
// deterministic row order.
func (s *Store) Checksum() (string, error) {
	h := sha256.New()

	queries := []string{
		`SELECT id || '|' || name || '|' || path || '|' || created_at FROM volumes ORDER BY id`,
		`SELECT id || '|' || volume_id || '|' || name || '|' || read_only || '|' || created_at FROM snapshots ORDER BY id`,
		`SELECT name || '|' || max_referenced FROM qgroups ORDER BY name`,
		`SELECT qgroup_name || '|' || volume_id FROM qgroup_members ORDER BY qgroup_name, volume_id`,
		`SELECT volume_id || '|' || key || '|' || value FROM properties ORDER BY volume_id, key`,
	}

	for _, q := range queries {
		rows, err := s.db.Query(q)
		if err != nil {
			return "", fmt.Errorf("checksum query: %w", err)
		}
		for rows.Next() {
			var line string
			if err := rows.Scan(&line); err != nil {
				rows.Close()
				return "", err
			}
			h.Write([]byte(line))
			h.Write([]byte{'\n'})
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return "", err
		}
		rows.Close()
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Fsck verifies referential integrity of the registry and returns a list
// of problems found, empty when the registry is consistent.
func (s *Store) Fsck() ([]string, error) {
	var problems []string

	checks := []struct {
		query  string
		format string
	}{
		{
			`SELECT s.name FROM snapshots s
			 LEFT JOIN volumes v ON v.id = s.volume_id
			 WHERE v.id IS NULL ORDER BY s.name`,
			"snapshot %q references a missing volume",
		},
		{
			`SELECT m.qgroup_name || '/' || m.volume_id FROM qgroup_members m
			 LEFT JOIN volumes v ON v.id = m.volume_id
			 WHERE v.id IS NULL ORDER BY m.qgroup_name`,
			"qgroup member %q references a missing volume",
		},
		{
			`SELECT p.key FROM properties p
			 LEFT JOIN volumes v ON v.id = p.volume_id
			 WHERE v.id IS NULL ORDER BY p.key`,
			"property %q attached to a missing volume",
		},
	}

	for _, c := range checks {
		rows, err := s.db.Query(c.query)
		if err != nil {
			return nil, fmt.Errorf("fsck query: %w", err)
		}
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return nil, err
			}
			problems = append(problems, fmt.Sprintf(c.format, name))
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}

	return problems, nil
}

// Counts returns the number of volumes and snapshots in the registry.
func (s *Store) Counts() (volumes, snapshots int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM volumes`).Scan(&volumes); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&snapshots); err != nil {
		return 0, 0, err
	}
	return volumes, snapshots, nil
}
