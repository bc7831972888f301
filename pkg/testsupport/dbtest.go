// Package testsupport holds shared helpers for storage-backed tests.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN shares one in-memory database across every connection a test
// opens; without cache=shared each new connection would see an empty schema.
const memoryDSN = "file::memory:?cache=shared"

// NewSQLiteMemoryDB opens the shared in-memory SQLite database the bun
// storage integration tests run against.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", memoryDSN)
}
