package service

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/alexanderramin/ironlog/internal/domain"
)

// edit applies fn to a copy of an in-progress workout and persists the
// result. Finished workouts are read-only.
func (s *workoutService) edit(ctx context.Context, useCase, workoutID string, fields map[string]any, fn func(w *domain.Workout) error) (out domain.Workout, err error) {
	startedAt := s.now()
	if fields == nil {
		fields = map[string]any{}
	}
	fields["workout_id"] = workoutID
	defer func() { s.observe(ctx, useCase, startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.state.indexOf(workoutID)
	if i < 0 {
		return domain.Workout{}, fmt.Errorf("workout %s: %w", workoutID, ErrWorkoutNotFound)
	}
	if s.state.Workouts[i].IsFinished() {
		return domain.Workout{}, ErrWorkoutFinished
	}

	next := s.state.Workouts[i].Clone()
	if err = fn(&next); err != nil {
		return domain.Workout{}, err
	}
	if err = s.replace(ctx, i, next); err != nil {
		return domain.Workout{}, err
	}
	return next.Clone(), nil
}

func exerciseAt(w *domain.Workout, workoutExerciseID string) (*domain.WorkoutExercise, error) {
	i := w.FindExercise(workoutExerciseID)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", workoutExerciseID, ErrWorkoutExerciseNotFound)
	}
	return &w.Exercises[i], nil
}

// AddExercise appends a catalog exercise with one empty set.
func (s *workoutService) AddExercise(ctx context.Context, workoutID, exerciseID string) (domain.Workout, error) {
	fields := map[string]any{"exercise_id": exerciseID}
	return s.edit(ctx, "add-exercise", workoutID, fields, func(w *domain.Workout) error {
		if _, ok := domain.FindExercise(s.state.Exercises, exerciseID); !ok {
			return fmt.Errorf("exercise %s: %w", exerciseID, ErrExerciseNotFound)
		}
		w.Exercises = append(w.Exercises, domain.WorkoutExercise{
			ID:         s.newID(),
			ExerciseID: exerciseID,
			Sets:       []domain.WorkoutSet{{ID: s.newID()}},
		})
		return nil
	})
}

func (s *workoutService) RemoveExercise(ctx context.Context, workoutID, workoutExerciseID string) (domain.Workout, error) {
	return s.edit(ctx, "remove-exercise", workoutID, nil, func(w *domain.Workout) error {
		i := w.FindExercise(workoutExerciseID)
		if i < 0 {
			return fmt.Errorf("%s: %w", workoutExerciseID, ErrWorkoutExerciseNotFound)
		}
		w.Exercises = slices.Delete(w.Exercises, i, i+1)
		return nil
	})
}

// AddSet appends a set that copies reps and weight from the previous one.
func (s *workoutService) AddSet(ctx context.Context, workoutID, workoutExerciseID string) (domain.Workout, error) {
	return s.edit(ctx, "add-set", workoutID, nil, func(w *domain.Workout) error {
		we, err := exerciseAt(w, workoutExerciseID)
		if err != nil {
			return err
		}
		set := domain.WorkoutSet{ID: s.newID()}
		if n := len(we.Sets); n > 0 {
			set.Reps = we.Sets[n-1].Reps
			set.Weight = we.Sets[n-1].Weight
		}
		we.Sets = append(we.Sets, set)
		return nil
	})
}

func (s *workoutService) UpdateSet(ctx context.Context, workoutID, workoutExerciseID, setID string, patch SetPatch) (domain.Workout, error) {
	return s.edit(ctx, "update-set", workoutID, map[string]any{"set_id": setID}, func(w *domain.Workout) error {
		we, err := exerciseAt(w, workoutExerciseID)
		if err != nil {
			return err
		}
		i := we.FindSet(setID)
		if i < 0 {
			return fmt.Errorf("set %s: %w", setID, ErrSetNotFound)
		}
		set := &we.Sets[i]
		if patch.Reps != nil {
			if !validReps(*patch.Reps) {
				return ErrInvalidSet
			}
			set.Reps = *patch.Reps
		}
		if patch.Weight != nil {
			if !validWeight(*patch.Weight) {
				return ErrInvalidSet
			}
			set.Weight = *patch.Weight
		}
		if patch.Completed != nil {
			set.Completed = *patch.Completed
		}
		return nil
	})
}

func (s *workoutService) RemoveSet(ctx context.Context, workoutID, workoutExerciseID, setID string) (domain.Workout, error) {
	return s.edit(ctx, "remove-set", workoutID, map[string]any{"set_id": setID}, func(w *domain.Workout) error {
		we, err := exerciseAt(w, workoutExerciseID)
		if err != nil {
			return err
		}
		i := we.FindSet(setID)
		if i < 0 {
			return fmt.Errorf("set %s: %w", setID, ErrSetNotFound)
		}
		we.Sets = slices.Delete(we.Sets, i, i+1)
		return nil
	})
}

func (s *workoutService) SetNotes(ctx context.Context, workoutID, notes string) (domain.Workout, error) {
	return s.edit(ctx, "set-workout-notes", workoutID, nil, func(w *domain.Workout) error {
		w.Notes = notes
		return nil
	})
}

// SetPhoto attaches a photo reference; an empty url removes it.
func (s *workoutService) SetPhoto(ctx context.Context, workoutID, photoURL string) (domain.Workout, error) {
	return s.edit(ctx, "set-workout-photo", workoutID, nil, func(w *domain.Workout) error {
		w.PhotoURL = photoURL
		return nil
	})
}

func validReps(reps int) bool { return reps >= 0 }

// validWeight rejects negatives and the non-finite values JSON cannot store.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}
