package testutil

import (
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/google/uuid"
)

// WorkoutOption customizes a test workout.
type WorkoutOption func(*domain.Workout)

func WithName(name string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Name = name
	}
}

func WithID(id string) WorkoutOption {
	return func(w *domain.Workout) {
		w.ID = id
	}
}

// StartedAt sets both date and start time.
func StartedAt(t time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		t = domain.CanonicalTime(t)
		w.Date = t
		w.StartTime = t
	}
}

// FinishedAt ends the workout at the given instant.
func FinishedAt(t time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		t = domain.CanonicalTime(t)
		w.EndTime = &t
	}
}

func WithPhoto(url string) WorkoutOption {
	return func(w *domain.Workout) {
		w.PhotoURL = url
	}
}

// WithExercise appends a performed exercise with the given sets.
func WithExercise(exerciseID string, sets ...domain.WorkoutSet) WorkoutOption {
	return func(w *domain.Workout) {
		if sets == nil {
			sets = []domain.WorkoutSet{}
		}
		w.Exercises = append(w.Exercises, domain.WorkoutExercise{
			ID:         uuid.New().String(),
			ExerciseID: exerciseID,
			Sets:       sets,
		})
	}
}

// NewTestWorkout returns an in-progress workout started an hour ago.
func NewTestWorkout(opts ...WorkoutOption) domain.Workout {
	w := domain.NewWorkout(uuid.New().String(), "Test Workout", time.Now().Add(-time.Hour), nil)
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Set builds a set with a fresh id.
func Set(reps int, weight float64, completed bool) domain.WorkoutSet {
	return domain.WorkoutSet{
		ID:        uuid.New().String(),
		Reps:      reps,
		Weight:    weight,
		Completed: completed,
	}
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Clock is an adjustable test clock.
type Clock struct {
	Now time.Time
}

func NewClock(t time.Time) *Clock {
	return &Clock{Now: t}
}

func (c *Clock) Func() func() time.Time {
	return func() time.Time { return c.Now }
}

func (c *Clock) Advance(d time.Duration) {
	c.Now = c.Now.Add(d)
}
