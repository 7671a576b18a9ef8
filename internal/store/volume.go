package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a named record does not exist.
var ErrNotFound = errors.New("not found")

// Volume is one registered volume.
type Volume struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateVolume registers a new volume. The name must be unique.
func (s *Store) CreateVolume(v Volume) error {
	_, err := s.db.Exec(
		`INSERT INTO volumes (id, name, path, created_at) VALUES (?, ?, ?, ?)`,
		v.ID, v.Name, v.Path, v.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create volume %q: %w", v.Name, err)
	}
	return nil
}

// GetVolume returns the volume with the given name.
func (s *Store) GetVolume(name string) (Volume, error) {
	row := s.db.QueryRow(
		`SELECT id, name, path, created_at FROM volumes WHERE name = ?`, name,
	)
	v, err := scanVolume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Volume{}, fmt.Errorf("volume %q: %w", name, ErrNotFound)
	}
	return v, err
}

// ListVolumes returns all volumes ordered by name.
func (s *Store) ListVolumes() ([]Volume, error) {
	rows, err := s.db.Query(
		`SELECT id, name, path, created_at FROM volumes ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}
	defer rows.Close()

	var out []Volume
	for rows.Next() {
		v, err := scanVolume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// DeleteVolume removes a volume. It fails while snapshots still
// reference it.
func (s *Store) DeleteVolume(name string) error {
	v, err := s.GetVolume(name)
	if err != nil {
		return err
	}

	var snaps int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM snapshots WHERE volume_id = ?`, v.ID,
	).Scan(&snaps); err != nil {
		return fmt.Errorf("count snapshots of %q: %w", name, err)
	}
	if snaps > 0 {
		return fmt.Errorf("volume %q still has %d snapshot(s)", name, snaps)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, q := range []string{
		`DELETE FROM properties WHERE volume_id = ?`,
		`DELETE FROM qgroup_members WHERE volume_id = ?`,
		`DELETE FROM volumes WHERE id = ?`,
	} {
		if _, err := tx.Exec(q, v.ID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete volume %q: %w", name, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVolume(row rowScanner) (Volume, error) {
	var v Volume
	var created string
	if err := row.Scan(&v.ID, &v.Name, &v.Path, &created); err != nil {
		return Volume{}, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Volume{}, fmt.Errorf("parse created_at: %w", err)
	}
	v.CreatedAt = t
	return v, nil
}
