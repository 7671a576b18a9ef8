package store

import (
	"fmt"
	"time"
)

// QGroup is a quota group volumes can be assigned to.
type QGroup struct {
	Name          string    `json:"name"`
	MaxReferenced int64     `json:"max_referenced"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateQGroup registers a new quota group.
func (s *Store) CreateQGroup(name string) error {
	_, err := s.db.Exec(
		`INSERT INTO qgroups (name, max_referenced, created_at) VALUES (?, 0, ?)`,
		name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create qgroup %q: %w", name, err)
	}
	return nil
}

// DestroyQGroup removes a quota group and its memberships.
func (s *Store) DestroyQGroup(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM qgroup_members WHERE qgroup_name = ?`, name); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("destroy qgroup %q: %w", name, err)
	}
	res, err := tx.Exec(`DELETE FROM qgroups WHERE name = ?`, name)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("destroy qgroup %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("qgroup %q: %w", name, ErrNotFound)
	}
	return tx.Commit()
}

// SetQGroupLimit sets the referenced-bytes limit of a group (0 = none).
func (s *Store) SetQGroupLimit(name string, maxReferenced int64) error {
	res, err := s.db.Exec(
		`UPDATE qgroups SET max_referenced = ? WHERE name = ?`, maxReferenced, name,
	)
	if err != nil {
		return fmt.Errorf("limit qgroup %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("qgroup %q: %w", name, ErrNotFound)
	}
	return nil
}

// AssignQGroup adds a volume to a quota group.
func (s *Store) AssignQGroup(qgroup, volumeID string) error {
	var exists int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM qgroups WHERE name = ?`, qgroup,
	).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("qgroup %q: %w", qgroup, ErrNotFound)
	}

	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO qgroup_members (qgroup_name, volume_id) VALUES (?, ?)`,
		qgroup, volumeID,
	)
	if err != nil {
		return fmt.Errorf("assign %q to qgroup %q: %w", volumeID, qgroup, err)
	}
	return nil
}

// ListQGroups returns all quota groups with their member counts.
func (s *Store) ListQGroups() ([]QGroup, error) {
	rows, err := s.db.Query(
		`SELECT name, max_referenced, created_at FROM qgroups ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list qgroups: %w", err)
	}
	defer rows.Close()

	var out []QGroup
	for rows.Next() {
		var g QGroup
		var created string
		if err := rows.Scan(&g.Name, &g.MaxReferenced, &created); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		g.CreatedAt = t
		out = append(out, g)
	}
	return out, rows.Err()
}

// QGroupMembers returns the volume IDs assigned to a group.
func (s *Store) QGroupMembers(name string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT volume_id FROM qgroup_members WHERE qgroup_name = ? ORDER BY volume_id`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("members of qgroup %q: %w", name, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
