// Package dbtest provides a file-backed SQLite pool shaped like the
// production Postgres pool, for tests that need a real database.
package dbtest

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"userapi/internal/config"
	"userapi/internal/db"
	"userapi/internal/logging"
)

const usersDDL = `CREATE TABLE users (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	name  VARCHAR NOT NULL,
	email VARCHAR NOT NULL
)`

// Config returns pool settings suitable for SQLite: one writer at a time.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LeaseTimeout: 5 * time.Second,
	}
}

// NewClient opens a fresh database with the users table already created.
// The pool is closed when the test ends.
func NewClient(t *testing.T, cfg config.DatabaseConfig, logger logging.Logger) (*db.Client, *sqlx.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.db")
	raw, err := sqlx.Open("sqlite", fmt.Sprintf("%s?_pragma=busy_timeout(5000)", path))
	require.NoError(t, err)

	_, err = raw.Exec(usersDDL)
	require.NoError(t, err)

	client := db.Wrap(raw, dialect.SQLite, cfg, logger)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, raw
}

// CountUsers returns the number of rows in the users table.
func CountUsers(t *testing.T, raw *sqlx.DB) int {
	t.Helper()

	var n int
	require.NoError(t, raw.Get(&n, `SELECT COUNT(*) FROM users`))
	return n
}
