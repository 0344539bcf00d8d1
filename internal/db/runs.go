package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/cash.report/internal/cash"
)

// Run records one complete clustering run: its parameters and how much it
// explained, for later comparison across parameter choices.
type Run struct {
	RunID           string
	Splits          int
	Eps             float64
	MinPts          int
	Dims            int
	PointCount      int
	ClusterCount    int
	CreatedAtUnixNs int64
}

// InsertRun persists a run together with its clusters. If RunID is empty a
// UUID is generated. Clusters keep their extraction order via the seq column.
func (db *DB) InsertRun(run *Run, clusters []cash.Cluster) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAtUnixNs == 0 {
		run.CreatedAtUnixNs = time.Now().UnixNano()
	}
	run.ClusterCount = len(clusters)

	return retryOnBusy(func() error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin insert run: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(`
			INSERT INTO runs (
				run_id, splits, eps, min_pts, dims,
				point_count, cluster_count, created_at_unix_ns
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.RunID, run.Splits, run.Eps, run.MinPts, run.Dims,
			run.PointCount, run.ClusterCount, run.CreatedAtUnixNs,
		)
		if err != nil {
			return fmt.Errorf("insert run %s: %w", run.RunID, err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO clusters (run_id, seq, members, angles_deg, size)
			VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert clusters: %w", err)
		}
		defer stmt.Close()

		for seq, c := range clusters {
			members, err := json.Marshal(c.Members)
			if err != nil {
				return fmt.Errorf("encode members for cluster %d: %w", seq, err)
			}
			angles, err := json.Marshal(c.AnglesDeg)
			if err != nil {
				return fmt.Errorf("encode angles for cluster %d: %w", seq, err)
			}
			if _, err := stmt.Exec(run.RunID, seq, string(members), string(angles), c.Size()); err != nil {
				return fmt.Errorf("insert cluster %d: %w", seq, err)
			}
		}

		return tx.Commit()
	})
}

// ListClusters returns a run's clusters in extraction order.
func (db *DB) ListClusters(runID string) ([]cash.Cluster, error) {
	rows, err := db.Query(`
		SELECT members, angles_deg FROM clusters
		WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query clusters for run %s: %w", runID, err)
	}
	defer rows.Close()

	var clusters []cash.Cluster
	for rows.Next() {
		var members, angles string
		if err := rows.Scan(&members, &angles); err != nil {
			return nil, fmt.Errorf("scan cluster: %w", err)
		}

		var c cash.Cluster
		if err := json.Unmarshal([]byte(members), &c.Members); err != nil {
			return nil, fmt.Errorf("decode cluster members: %w", err)
		}
		if err := json.Unmarshal([]byte(angles), &c.AnglesDeg); err != nil {
			return nil, fmt.Errorf("decode cluster angles: %w", err)
		}
		clusters = append(clusters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clusters, nil
}

// ListRuns returns all runs, most recent first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, splits, eps, min_pts, dims,
		       point_count, cluster_count, created_at_unix_ns
		FROM runs ORDER BY created_at_unix_ns DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.RunID, &r.Splits, &r.Eps, &r.MinPts, &r.Dims,
			&r.PointCount, &r.ClusterCount, &r.CreatedAtUnixNs,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
