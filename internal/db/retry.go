package db

import (
	"strings"
	"time"
)

// retryOnBusy retries a write a few times when SQLite reports the database
// as busy or locked. WAL mode plus the busy_timeout pragma cover most
// contention; this catches the rest during concurrent test runs.
func retryOnBusy(fn func() error) error {
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		msg := err.Error()
		if !strings.Contains(msg, "database is locked") && !strings.Contains(msg, "SQLITE_BUSY") {
			return err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return err
}
