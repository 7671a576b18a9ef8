package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Snapshot is a point-in-time record of a volume.
type Snapshot struct {
	ID        string    `json:"id"`
	VolumeID  string    `json:"volume_id"`
	Name      string    `json:"name"`
	ReadOnly  bool      `json:"read_only"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSnapshot records a snapshot of an existing volume.
func (s *Store) CreateSnapshot(snap Snapshot) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (id, volume_id, name, read_only, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.VolumeID, snap.Name, boolToInt(snap.ReadOnly),
		snap.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", snap.Name, err)
	}
	return nil
}

// GetSnapshot returns the snapshot with the given name.
func (s *Store) GetSnapshot(name string) (Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT id, volume_id, name, read_only, created_at
		 FROM snapshots WHERE name = ?`, name,
	)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
	}
	return snap, err
}

// ListSnapshots returns snapshots, optionally restricted to one volume
// (volumeID empty means all), ordered by creation time.
func (s *Store) ListSnapshots(volumeID string) ([]Snapshot, error) {
	query := `SELECT id, volume_id, name, read_only, created_at FROM snapshots`
	args := []any{}
	if volumeID != "" {
		query += ` WHERE volume_id = ?`
		args = append(args, volumeID)
	}
	query += ` ORDER BY created_at, name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// DeleteSnapshot removes a snapshot by name.
func (s *Store) DeleteSnapshot(name string) error {
	res, err := s.db.Exec(`DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete snapshot %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("snapshot %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var snap Snapshot
	var readOnly int
	var created string
	if err := row.Scan(&snap.ID, &snap.VolumeID, &snap.Name, &readOnly, &created); err != nil {
		return Snapshot{}, err
	}
	snap.ReadOnly = readOnly != 0
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse created_at: %w", err)
	}
	snap.CreatedAt = t
	return snap, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
