package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/ironlog/internal/db"
	"github.com/alexanderramin/ironlog/internal/repository"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewTestStateStore returns a StateStore over a fresh in-memory database
// whose Atomically writes run in real transactions.
func NewTestStateStore(t *testing.T) (*repository.StateStore, *sql.DB) {
	t.Helper()
	database := NewTestDB(t)
	kv := repository.NewSQLiteKVRepo(database)
	return repository.NewStateStore(kv, repository.WithUnitOfWork(NewTestUoW(database))), database
}
