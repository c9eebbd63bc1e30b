package service

import (
	"errors"
	"fmt"
)

var (
	ErrWorkoutInProgress       = errors.New("a workout is already in progress")
	ErrNoActiveWorkout         = errors.New("no workout in progress")
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutFinished         = errors.New("workout is finished and can no longer be edited")
	ErrLifecycleChange         = errors.New("workout status cannot be changed by an update")
	ErrWorkoutExerciseNotFound = errors.New("exercise is not part of this workout")
	ErrSetNotFound             = errors.New("set not found")
	ErrInvalidSet              = errors.New("reps and weight must be finite and not negative")
	ErrExerciseNotFound        = errors.New("exercise not found")
	ErrDuplicateExercise       = errors.New("an exercise with this id already exists")
	ErrInvalidExercise         = errors.New("exercise name is required")
	ErrNoteNotFound            = errors.New("note not found")
	ErrEmptyNote               = errors.New("note text is required")
	ErrPresetNotFound          = errors.New("timer preset not found")
	ErrInvalidDuration         = errors.New("duration must be positive")

	// ErrCancelled means the user backed out of a prompt. It is not a failure.
	ErrCancelled = errors.New("cancelled")
)

// ActiveWorkoutError is returned when starting a workout while another is
// still in progress. It matches ErrWorkoutInProgress.
type ActiveWorkoutError struct {
	ID   string
	Name string
}

func (e *ActiveWorkoutError) Error() string {
	return fmt.Sprintf("workout %q (%s) is already in progress; finish it first", e.Name, e.ID)
}

func (e *ActiveWorkoutError) Is(target error) bool {
	return target == ErrWorkoutInProgress
}

// IsCancelled reports whether err is a user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
