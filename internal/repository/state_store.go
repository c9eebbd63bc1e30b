package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ironlog/internal/db"
	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/importer"
)

// Storage keys. Each holds one JSON document except unit-system and
// active-workout, which hold bare strings.
const (
	KeyWorkouts      = "workouts"
	KeyExercises     = "exercises"
	KeyNotes         = "notes"
	KeyUnitSystem    = "unit-system"
	KeyTimer         = "timer"
	KeyTimerPresets  = "timer-presets"
	KeyActiveWorkout = "active-workout"
)

// StateStore maps the app's state slices onto a KVRepo.
type StateStore struct {
	kv  KVRepo
	uow db.UnitOfWork
}

type StoreOption func(*StateStore)

// WithUnitOfWork makes Atomically run inside a database transaction.
func WithUnitOfWork(uow db.UnitOfWork) StoreOption {
	return func(s *StateStore) { s.uow = uow }
}

func NewStateStore(kv KVRepo, opts ...StoreOption) *StateStore {
	s := &StateStore{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Atomically runs fn against a store whose writes either all land or none
// do. Without a UnitOfWork the writes go straight to the underlying repo.
func (s *StateStore) Atomically(ctx context.Context, fn func(ctx context.Context, tx *StateStore) error) error {
	if s.uow == nil {
		return fn(ctx, s)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, NewStateStore(NewSQLiteKVRepo(tx)))
	})
}

func (s *StateStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func loadJSON[T any](ctx context.Context, s *StateStore, key string) (T, bool, error) {
	var v T
	data, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, fmt.Errorf("key %q: %w: %v", key, ErrCorruptValue, err)
	}
	return v, true, nil
}

func (s *StateStore) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.kv.Put(ctx, key, data)
}

// LoadWorkouts reads and normalizes the workout log. repaired reports
// that normalization changed the stored document, so the caller should
// write it back.
func (s *StateStore) LoadWorkouts(ctx context.Context, now time.Time, newID importer.IDFunc) (workouts []domain.Workout, found, repaired bool, err error) {
	data, ok, err := s.get(ctx, KeyWorkouts)
	if err != nil || !ok {
		return nil, false, false, err
	}
	workouts, err = importer.NormalizeWorkouts(data, now, newID)
	if err != nil {
		return nil, false, false, fmt.Errorf("key %q: %w: %v", KeyWorkouts, ErrCorruptValue, err)
	}
	normalized, err := json.Marshal(workouts)
	if err != nil {
		return nil, false, false, fmt.Errorf("encoding workouts: %w", err)
	}
	return workouts, true, !sameJSON(data, normalized), nil
}

func (s *StateStore) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	return s.putJSON(ctx, KeyWorkouts, workouts)
}

func (s *StateStore) LoadExercises(ctx context.Context) ([]domain.Exercise, bool, error) {
	return loadJSON[[]domain.Exercise](ctx, s, KeyExercises)
}

func (s *StateStore) SaveExercises(ctx context.Context, exercises []domain.Exercise) error {
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return s.putJSON(ctx, KeyExercises, exercises)
}

func (s *StateStore) LoadNotes(ctx context.Context) ([]domain.Note, bool, error) {
	return loadJSON[[]domain.Note](ctx, s, KeyNotes)
}

func (s *StateStore) SaveNotes(ctx context.Context, notes []domain.Note) error {
	if notes == nil {
		notes = []domain.Note{}
	}
	return s.putJSON(ctx, KeyNotes, notes)
}

func (s *StateStore) LoadTimer(ctx context.Context) (domain.TimerState, bool, error) {
	t, ok, err := loadJSON[domain.TimerState](ctx, s, KeyTimer)
	if err != nil || !ok {
		return t, ok, err
	}
	return t.Normalize(), true, nil
}

func (s *StateStore) SaveTimer(ctx context.Context, t domain.TimerState) error {
	return s.putJSON(ctx, KeyTimer, t)
}

func (s *StateStore) LoadPresets(ctx context.Context) ([]domain.TimerPreset, bool, error) {
	return loadJSON[[]domain.TimerPreset](ctx, s, KeyTimerPresets)
}

func (s *StateStore) SavePresets(ctx context.Context, presets []domain.TimerPreset) error {
	if presets == nil {
		presets = []domain.TimerPreset{}
	}
	return s.putJSON(ctx, KeyTimerPresets, presets)
}

func (s *StateStore) LoadUnitSystem(ctx context.Context) (domain.UnitSystem, bool, error) {
	data, ok, err := s.get(ctx, KeyUnitSystem)
	if err != nil || !ok {
		return "", false, err
	}
	u, err := domain.ParseUnitSystem(string(data))
	if err != nil {
		return "", false, fmt.Errorf("key %q: %w: %v", KeyUnitSystem, ErrCorruptValue, err)
	}
	return u, true, nil
}

func (s *StateStore) SaveUnitSystem(ctx context.Context, u domain.UnitSystem) error {
	return s.kv.Put(ctx, KeyUnitSystem, []byte(u))
}

// LoadActiveWorkoutID returns "" when no workout is active.
func (s *StateStore) LoadActiveWorkoutID(ctx context.Context) (string, error) {
	data, _, err := s.get(ctx, KeyActiveWorkout)
	return string(data), err
}

// SaveActiveWorkoutID stores the pointer, or removes it when id is empty.
func (s *StateStore) SaveActiveWorkoutID(ctx context.Context, id string) error {
	if id == "" {
		return s.kv.Delete(ctx, KeyActiveWorkout)
	}
	return s.kv.Put(ctx, KeyActiveWorkout, []byte(id))
}
