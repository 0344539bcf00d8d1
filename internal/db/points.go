package db

import (
	"encoding/json"
	"fmt"

	"github.com/banshee-data/cash.report/internal/cash"
)

// InsertPoints stores a point set, replacing nothing: ids must not collide
// with rows already present. Attribute vectors are stored as JSON arrays.
func (db *DB) InsertPoints(points []cash.Point) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert points: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO points (id, attrs) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert points: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		attrs, err := json.Marshal(p.Attrs)
		if err != nil {
			return fmt.Errorf("encode attrs for point %d: %w", p.ID, err)
		}
		if _, err := stmt.Exec(p.ID, string(attrs)); err != nil {
			return fmt.Errorf("insert point %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// ListPoints returns every stored point ordered by id, the static snapshot
// the clustering engine consumes.
func (db *DB) ListPoints() ([]cash.Point, error) {
	rows, err := db.Query("SELECT id, attrs FROM points ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	var points []cash.Point
	for rows.Next() {
		var (
			id    int64
			attrs string
		)
		if err := rows.Scan(&id, &attrs); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}

		p := cash.Point{ID: id}
		if err := json.Unmarshal([]byte(attrs), &p.Attrs); err != nil {
			return nil, fmt.Errorf("decode attrs for point %d: %w", id, err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// CountPoints returns the number of stored points.
func (db *DB) CountPoints() (int, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM points").Scan(&count); err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}
	return count, nil
}

// DeleteAllPoints clears the points table, typically before re-ingesting a
// dataset.
func (db *DB) DeleteAllPoints() error {
	return retryOnBusy(func() error {
		_, err := db.Exec("DELETE FROM points")
		return err
	})
}
