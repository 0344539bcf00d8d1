// Package db persists point sets and clustering results in SQLite. The
// clustering core is storage-agnostic; this package owns the schema, the
// ingest target, and the run/cluster history.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if necessary) the SQLite database at path and
// applies the connection pragmas. The schema itself is managed by
// migrations; callers run MigrateUp before using the stores.
func NewDB(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := sqldb.Exec(pragma); err != nil {
			sqldb.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return &DB{sqldb}, nil
}
