package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open opens a Postgres connection pool via the pgx stdlib driver and
// verifies it with a ping. Pool limits are modest: the dispatch workload is a
// handful of concurrent readers plus the seeding tool.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pool, nil
}
