package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/service"
)

// matchID finds the one id equal to input or, failing that, the one id
// starting with it. Listings show ids cut to 8 characters, so a prefix
// is what users usually type.
func matchID(kind, input string, ids []string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// resolveWorkout returns the workout input names. An empty input means
// the workout in progress.
func resolveWorkout(ctx context.Context, app *App, input string) (domain.Workout, error) {
	if input == "" {
		active := app.Workouts.Active(ctx)
		if active == nil {
			return domain.Workout{}, service.ErrNoActiveWorkout
		}
		return *active, nil
	}
	workouts := app.Workouts.List(ctx)
	ids := make([]string, len(workouts))
	for i, w := range workouts {
		ids[i] = w.ID
	}
	id, err := matchID("workout", input, ids)
	if err != nil {
		return domain.Workout{}, err
	}
	return app.Workouts.Get(ctx, id)
}

// resolveWorkoutExercise accepts a workout-exercise id or prefix, a
// 1-based position, or the name of the exercise.
func resolveWorkoutExercise(app *App, w domain.Workout, input string) (domain.WorkoutExercise, error) {
	if n, ok := position(input, len(w.Exercises)); ok {
		return w.Exercises[n], nil
	}
	for _, we := range w.Exercises {
		if strings.EqualFold(app.Workouts.ResolveExerciseName(we.ExerciseID), input) {
			return we, nil
		}
	}
	ids := make([]string, len(w.Exercises))
	for i, we := range w.Exercises {
		ids[i] = we.ID
	}
	id, err := matchID("workout exercise", input, ids)
	if err != nil {
		return domain.WorkoutExercise{}, err
	}
	return w.Exercises[w.FindExercise(id)], nil
}

// resolveSet accepts a set id or prefix, or its 1-based position.
func resolveSet(we domain.WorkoutExercise, input string) (string, error) {
	if n, ok := position(input, len(we.Sets)); ok {
		return we.Sets[n].ID, nil
	}
	ids := make([]string, len(we.Sets))
	for i, s := range we.Sets {
		ids[i] = s.ID
	}
	return matchID("set", input, ids)
}

// resolveExercise accepts a library id or an exercise name.
func resolveExercise(ctx context.Context, app *App, input string) (string, error) {
	exercises := app.Workouts.Exercises(ctx)
	for _, ex := range exercises {
		if ex.ID == input || strings.EqualFold(ex.Name, input) {
			return ex.ID, nil
		}
	}
	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}
	return matchID("exercise", input, ids)
}

func resolveNote(ctx context.Context, app *App, input string) (string, error) {
	notes := app.Notes.List(ctx)
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return matchID("note", input, ids)
}

func resolvePreset(ctx context.Context, app *App, input string) (string, error) {
	presets := app.Timer.Presets(ctx)
	for _, p := range presets {
		if strings.EqualFold(p.Label, input) {
			return p.ID, nil
		}
	}
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return matchID("preset", input, ids)
}

// position parses a 1-based index no larger than n.
func position(input string, n int) (int, bool) {
	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
