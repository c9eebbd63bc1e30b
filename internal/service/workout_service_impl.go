package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/repository"
)

type workoutService struct {
	core
}

func NewWorkoutService(state *State, store *repository.StateStore, opts ...Option) WorkoutService {
	return &workoutService{core: newCore(state, store, opts)}
}

// Start begins a workout seeded from the named template. An unknown or
// empty name starts an empty "Custom Workout". Starting while another
// workout is in progress returns an *ActiveWorkoutError.
func (s *workoutService) Start(ctx context.Context, templateName string) (w domain.Workout, err error) {
	startedAt := s.now()
	fields := map[string]any{"template": templateName}
	defer func() { s.observe(ctx, "start-workout", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if active, ok := s.state.active(); ok {
		return domain.Workout{}, &ActiveWorkoutError{ID: active.ID, Name: active.Name}
	}

	w = s.newWorkout(templateName)
	workouts := append([]domain.Workout{w}, s.state.Workouts...)

	err = s.store.Atomically(ctx, func(ctx context.Context, tx *repository.StateStore) error {
		if err := tx.SaveWorkouts(ctx, workouts); err != nil {
			return err
		}
		return tx.SaveActiveWorkoutID(ctx, w.ID)
	})
	if err != nil {
		return domain.Workout{}, fmt.Errorf("saving new workout: %w", err)
	}

	s.state.Workouts = workouts
	s.state.ActiveWorkoutID = w.ID
	fields["workout_id"] = w.ID
	return w.Clone(), nil
}

func (s *workoutService) newWorkout(templateName string) domain.Workout {
	name := domain.DefaultWorkoutName
	var exercises []domain.WorkoutExercise
	if tpl, ok := domain.FindTemplate(templateName); ok {
		name = tpl.Name
		for _, exID := range tpl.ExerciseIDs {
			exercises = append(exercises, domain.WorkoutExercise{
				ID:         s.newID(),
				ExerciseID: exID,
				Sets:       []domain.WorkoutSet{{ID: s.newID()}},
			})
		}
	}
	return domain.NewWorkout(s.newID(), name, s.stamp(), exercises)
}

// Finish ends the active workout and clears the pointer. It returns nil
// without error when nothing is in progress.
func (s *workoutService) Finish(ctx context.Context) (finished *domain.Workout, err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "finish-workout", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.ActiveWorkoutID == "" {
		return nil, nil
	}
	active, ok := s.state.active()
	if !ok {
		// The pointer outlived its workout.
		fields["stale_id"] = s.state.ActiveWorkoutID
		if err = s.store.SaveActiveWorkoutID(ctx, ""); err != nil {
			return nil, fmt.Errorf("clearing active workout: %w", err)
		}
		s.state.ActiveWorkoutID = ""
		return nil, nil
	}

	done := active.Finished(s.stamp())
	workouts := s.state.withWorkout(s.state.indexOf(active.ID), done)

	err = s.store.Atomically(ctx, func(ctx context.Context, tx *repository.StateStore) error {
		if err := tx.SaveWorkouts(ctx, workouts); err != nil {
			return err
		}
		return tx.SaveActiveWorkoutID(ctx, "")
	})
	if err != nil {
		return nil, fmt.Errorf("saving finished workout: %w", err)
	}

	s.state.Workouts = workouts
	s.state.ActiveWorkoutID = ""
	fields["workout_id"] = done.ID
	out := done.Clone()
	return &out, nil
}

// Update replaces a workout by id. The replacement must keep the same
// lifecycle status; finishing goes through Finish only.
func (s *workoutService) Update(ctx context.Context, w domain.Workout) (err error) {
	startedAt := s.now()
	fields := map[string]any{"workout_id": w.ID}
	defer func() { s.observe(ctx, "update-workout", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.state.indexOf(w.ID)
	if i < 0 {
		return fmt.Errorf("workout %s: %w", w.ID, ErrWorkoutNotFound)
	}
	if s.state.Workouts[i].Status() != w.Status() {
		return ErrLifecycleChange
	}
	next, err := s.prepare(w)
	if err != nil {
		return err
	}
	return s.replace(ctx, i, next)
}

// prepare deep-copies w, names it if blank, fills in missing ids and
// rejects negative or non-finite numbers.
func (s *workoutService) prepare(w domain.Workout) (domain.Workout, error) {
	next := w.Clone()
	if strings.TrimSpace(next.Name) == "" {
		next.Name = importer.UntitledWorkoutName
	}
	for i := range next.Exercises {
		we := &next.Exercises[i]
		if we.ID == "" {
			we.ID = s.newID()
		}
		for j := range we.Sets {
			set := &we.Sets[j]
			if set.ID == "" {
				set.ID = s.newID()
			}
			if !validReps(set.Reps) || !validWeight(set.Weight) {
				return domain.Workout{}, ErrInvalidSet
			}
		}
	}
	return next, nil
}

func (s *workoutService) replace(ctx context.Context, i int, w domain.Workout) error {
	workouts := s.state.withWorkout(i, w)
	if err := s.store.SaveWorkouts(ctx, workouts); err != nil {
		return fmt.Errorf("saving workout: %w", err)
	}
	s.state.Workouts = workouts
	return nil
}

// Delete removes a workout of any status, clearing the active pointer
// when it referred to it.
func (s *workoutService) Delete(ctx context.Context, id string) (err error) {
	startedAt := s.now()
	fields := map[string]any{"workout_id": id}
	defer func() { s.observe(ctx, "delete-workout", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.state.indexOf(id)
	if i < 0 {
		return fmt.Errorf("workout %s: %w", id, ErrWorkoutNotFound)
	}
	workouts := s.state.withoutWorkout(i)
	wasActive := s.state.ActiveWorkoutID == id
	fields["was_active"] = wasActive

	err = s.store.Atomically(ctx, func(ctx context.Context, tx *repository.StateStore) error {
		if wasActive {
			if err := tx.SaveActiveWorkoutID(ctx, ""); err != nil {
				return err
			}
		}
		return tx.SaveWorkouts(ctx, workouts)
	})
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}

	if wasActive {
		s.state.ActiveWorkoutID = ""
	}
	s.state.Workouts = workouts
	return nil
}

func (s *workoutService) Get(ctx context.Context, id string) (domain.Workout, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.state.indexOf(id)
	if i < 0 {
		return domain.Workout{}, fmt.Errorf("workout %s: %w", id, ErrWorkoutNotFound)
	}
	return s.state.Workouts[i].Clone(), nil
}

// List returns the log newest first.
func (s *workoutService) List(ctx context.Context) []domain.Workout {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return domain.CloneWorkouts(s.state.Workouts)
}

// Active returns the workout in progress, or nil.
func (s *workoutService) Active(ctx context.Context) *domain.Workout {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	w, ok := s.state.active()
	if !ok {
		return nil
	}
	out := w.Clone()
	return &out
}

// AddExerciseDefinition appends an exercise to the library. A blank id is
// generated and a blank muscle group becomes "Other".
func (s *workoutService) AddExerciseDefinition(ctx context.Context, ex domain.Exercise) (added domain.Exercise, err error) {
	startedAt := s.now()
	fields := map[string]any{"name": ex.Name}
	defer func() { s.observe(ctx, "add-exercise-definition", startedAt, fields, err) }()

	ex.Name = strings.TrimSpace(ex.Name)
	if ex.Name == "" {
		return domain.Exercise{}, ErrInvalidExercise
	}
	if ex.ID == "" {
		ex.ID = s.newID()
	}
	ex.MuscleGroup = domain.CoalesceStr(strings.TrimSpace(ex.MuscleGroup), domain.DefaultMuscleGroup)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := domain.FindExercise(s.state.Exercises, ex.ID); exists {
		return domain.Exercise{}, fmt.Errorf("exercise %s: %w", ex.ID, ErrDuplicateExercise)
	}
	exercises := append(slices.Clone(s.state.Exercises), ex)
	if err = s.store.SaveExercises(ctx, exercises); err != nil {
		return domain.Exercise{}, fmt.Errorf("saving exercises: %w", err)
	}
	s.state.Exercises = exercises
	fields["exercise_id"] = ex.ID
	return ex, nil
}

// CreateCustomExercise adds a user-defined exercise with a fresh id.
func (s *workoutService) CreateCustomExercise(ctx context.Context, name, muscleGroup string) (domain.Exercise, error) {
	return s.AddExerciseDefinition(ctx, domain.Exercise{Name: name, MuscleGroup: muscleGroup, Custom: true})
}

func (s *workoutService) Exercises(ctx context.Context) []domain.Exercise {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return slices.Clone(s.state.Exercises)
}

// ResolveExerciseName never fails; unknown ids read "Unknown Exercise".
func (s *workoutService) ResolveExerciseName(id string) string {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if ex, ok := domain.FindExercise(s.state.Exercises, id); ok {
		return ex.Name
	}
	return domain.UnknownExerciseName
}
