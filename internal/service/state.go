package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/repository"
)

// State is the whole in-memory application state. Services hold a shared
// pointer to it and are the only code that mutates it; every mutation is
// persisted before it becomes visible here.
type State struct {
	mu sync.Mutex

	Workouts        []domain.Workout
	Exercises       []domain.Exercise
	Notes           []domain.Note
	Units           domain.UnitSystem
	Timer           domain.TimerState
	Presets         []domain.TimerPreset
	ActiveWorkoutID string
}

// DefaultState is what a first run starts with.
func DefaultState() *State {
	return &State{
		Workouts:  []domain.Workout{},
		Exercises: domain.DefaultExercises(),
		Notes:     []domain.Note{},
		Units:     domain.DefaultUnitSystem,
		Timer:     domain.DefaultTimer(),
		Presets:   domain.DefaultPresets(),
	}
}

// LoadReport describes what LoadState had to fix.
type LoadReport struct {
	RepairedWorkouts bool
	ClearedActiveID  string
	Defaulted        []string
}

// LoadState reads every key once. Missing keys take their defaults.
// Unreadable settings (timer, presets, units) fall back to defaults and
// are listed in the report; an unreadable workout log, exercise library
// or notes list is an error. Legacy workout records are normalized and
// written back, and a stale active-workout pointer is cleared.
func LoadState(ctx context.Context, store *repository.StateStore, now time.Time, newID importer.IDFunc) (*State, LoadReport, error) {
	st := DefaultState()
	var report LoadReport

	workouts, found, repaired, err := store.LoadWorkouts(ctx, now, newID)
	if err != nil {
		return nil, report, fmt.Errorf("loading workouts: %w", err)
	}
	if found {
		st.Workouts = workouts
		report.RepairedWorkouts = repaired
	}

	exercises, found, err := store.LoadExercises(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("loading exercises: %w", err)
	}
	if found {
		st.Exercises = exercises
	}

	notes, found, err := store.LoadNotes(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("loading notes: %w", err)
	}
	if found {
		st.Notes = notes
	}

	units, found, err := store.LoadUnitSystem(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptValue):
		report.Defaulted = append(report.Defaulted, repository.KeyUnitSystem)
	case err != nil:
		return nil, report, fmt.Errorf("loading unit system: %w", err)
	case found:
		st.Units = units
	}

	timer, found, err := store.LoadTimer(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptValue):
		report.Defaulted = append(report.Defaulted, repository.KeyTimer)
	case err != nil:
		return nil, report, fmt.Errorf("loading timer: %w", err)
	case found:
		st.Timer = timer
	}

	presets, found, err := store.LoadPresets(ctx)
	switch {
	case errors.Is(err, repository.ErrCorruptValue):
		report.Defaulted = append(report.Defaulted, repository.KeyTimerPresets)
	case err != nil:
		return nil, report, fmt.Errorf("loading timer presets: %w", err)
	case found:
		st.Presets = presets
	}

	activeID, err := store.LoadActiveWorkoutID(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("loading active workout: %w", err)
	}
	if activeID != "" {
		if i := st.indexOf(activeID); i >= 0 && !st.Workouts[i].IsFinished() {
			st.ActiveWorkoutID = activeID
		} else {
			report.ClearedActiveID = activeID
		}
	}

	if report.RepairedWorkouts || report.ClearedActiveID != "" {
		err := store.Atomically(ctx, func(ctx context.Context, tx *repository.StateStore) error {
			if report.RepairedWorkouts {
				if err := tx.SaveWorkouts(ctx, st.Workouts); err != nil {
					return err
				}
			}
			if report.ClearedActiveID != "" {
				return tx.SaveActiveWorkoutID(ctx, "")
			}
			return nil
		})
		if err != nil {
			return nil, report, fmt.Errorf("saving repaired state: %w", err)
		}
	}

	return st, report, nil
}

// indexOf returns the position of the workout with the given id, or -1.
func (s *State) indexOf(id string) int {
	return slices.IndexFunc(s.Workouts, func(w domain.Workout) bool { return w.ID == id })
}

// active returns the in-progress workout the pointer refers to. A pointer
// to a missing or finished workout counts as no active workout.
func (s *State) active() (domain.Workout, bool) {
	if s.ActiveWorkoutID == "" {
		return domain.Workout{}, false
	}
	i := s.indexOf(s.ActiveWorkoutID)
	if i < 0 || s.Workouts[i].IsFinished() {
		return domain.Workout{}, false
	}
	return s.Workouts[i], true
}

// withWorkout returns a copy of the log with the workout at i replaced.
func (s *State) withWorkout(i int, w domain.Workout) []domain.Workout {
	out := slices.Clone(s.Workouts)
	out[i] = w
	return out
}

// withoutWorkout returns a copy of the log with the workout at i removed.
func (s *State) withoutWorkout(i int) []domain.Workout {
	return slices.Delete(slices.Clone(s.Workouts), i, i+1)
}
