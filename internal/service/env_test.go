package service

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/repository"
	"github.com/alexanderramin/ironlog/internal/testutil"
)

var testNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

type testEnv struct {
	state *State
	store *repository.StateStore
	db    *sql.DB
	clock *testutil.Clock
	opts  []Option
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, database := testutil.NewTestStateStore(t)
	clock := testutil.NewClock(testNow)
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return &testEnv{
		state: DefaultState(),
		store: store,
		db:    database,
		clock: clock,
		opts:  []Option{WithClock(clock.Func()), WithIDGenerator(ids)},
	}
}

// failingStore swaps in a store whose transactions fail when they write key.
func (e *testEnv) failingStore(key string) {
	uow := &testutil.FailingUoW{DB: e.db, FailOnKey: key, Err: fmt.Errorf("injected failure on %s", key)}
	e.store = repository.NewStateStore(repository.NewSQLiteKVRepo(e.db), repository.WithUnitOfWork(uow))
}

func (e *testEnv) workouts() WorkoutService {
	return NewWorkoutService(e.state, e.store, e.opts...)
}

func (e *testEnv) timer() TimerService {
	return NewTimerService(e.state, e.store, e.opts...)
}

func (e *testEnv) notes() NoteService {
	return NewNoteService(e.state, e.store, e.opts...)
}

func (e *testEnv) settings() SettingsService {
	return NewSettingsService(e.state, e.store, e.opts...)
}

func (e *testEnv) backups(dir string) BackupService {
	return NewBackupService(e.state, e.store, dir, e.opts...)
}

func (e *testEnv) reload(t *testing.T) *State {
	t.Helper()
	st, _, err := LoadState(t.Context(), e.store, e.clock.Now, func() string { return "reload-id" })
	if err != nil {
		t.Fatalf("reloading state: %v", err)
	}
	return st
}
