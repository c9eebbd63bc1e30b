package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/importer"
)

// WorkoutService owns the workout log, the active-workout pointer and the
// exercise library. At most one workout is in progress at a time.
type WorkoutService interface {
	Start(ctx context.Context, templateName string) (domain.Workout, error)
	Finish(ctx context.Context) (*domain.Workout, error)
	Update(ctx context.Context, w domain.Workout) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (domain.Workout, error)
	List(ctx context.Context) []domain.Workout
	Active(ctx context.Context) *domain.Workout

	AddExercise(ctx context.Context, workoutID, exerciseID string) (domain.Workout, error)
	RemoveExercise(ctx context.Context, workoutID, workoutExerciseID string) (domain.Workout, error)
	AddSet(ctx context.Context, workoutID, workoutExerciseID string) (domain.Workout, error)
	UpdateSet(ctx context.Context, workoutID, workoutExerciseID, setID string, patch SetPatch) (domain.Workout, error)
	RemoveSet(ctx context.Context, workoutID, workoutExerciseID, setID string) (domain.Workout, error)
	SetNotes(ctx context.Context, workoutID, notes string) (domain.Workout, error)
	SetPhoto(ctx context.Context, workoutID, photoURL string) (domain.Workout, error)

	AddExerciseDefinition(ctx context.Context, ex domain.Exercise) (domain.Exercise, error)
	CreateCustomExercise(ctx context.Context, name, muscleGroup string) (domain.Exercise, error)
	Exercises(ctx context.Context) []domain.Exercise
	ResolveExerciseName(id string) string
}

// SetPatch carries the set fields to change; nil fields are left alone.
type SetPatch struct {
	Reps      *int
	Weight    *float64
	Completed *bool
}

// TimerService drives the shared rest timer / stopwatch and its presets.
type TimerService interface {
	State(ctx context.Context) domain.TimerState
	Display(ctx context.Context) time.Duration
	SetType(ctx context.Context, t domain.TimerType) (domain.TimerState, error)
	Start(ctx context.Context, duration *time.Duration) (domain.TimerState, error)
	Pause(ctx context.Context) (domain.TimerState, error)
	Reset(ctx context.Context) (domain.TimerState, error)

	Presets(ctx context.Context) []domain.TimerPreset
	SavePreset(ctx context.Context, duration time.Duration, label string) (domain.TimerPreset, error)
	UpdatePreset(ctx context.Context, id string, duration time.Duration, label string) (domain.TimerPreset, error)
	DeletePreset(ctx context.Context, id string) error
	StartPreset(ctx context.Context, id string) (domain.TimerState, error)
}

// NoteService manages the global journal, newest note first.
type NoteService interface {
	List(ctx context.Context) []domain.Note
	Add(ctx context.Context, text string) (domain.Note, error)
	Update(ctx context.Context, id, text string) (domain.Note, error)
	Delete(ctx context.Context, id string) error
}

// SettingsService manages user preferences.
type SettingsService interface {
	Units(ctx context.Context) domain.UnitSystem
	SetUnits(ctx context.Context, u domain.UnitSystem) error
	ToggleUnits(ctx context.Context) (domain.UnitSystem, error)
}

// BackupService exports and imports .gymdata backups.
type BackupService interface {
	Snapshot(ctx context.Context, opts importer.ExportOptions) importer.Snapshot
	Write(ctx context.Context, w io.Writer, opts importer.ExportOptions) error
	ExportDefault(ctx context.Context, opts importer.ExportOptions) (string, error)
	ExportTo(ctx context.Context, chooser DestinationChooser, opts importer.ExportOptions) (string, error)
	Import(ctx context.Context, r io.Reader) (ImportResult, error)
}

// ImportResult summarizes a successful import.
type ImportResult struct {
	Workouts      int
	Exercises     int
	Notes         int
	ActiveCleared bool
}
