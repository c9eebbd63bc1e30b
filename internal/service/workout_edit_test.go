package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdit_AddSetCopiesPrevious(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "Leg Day")
	require.NoError(t, err)
	we := w.Exercises[0]

	reps, weight, done := 5, 185.0, true
	w, err = svc.UpdateSet(ctx, w.ID, we.ID, we.Sets[0].ID, SetPatch{Reps: &reps, Weight: &weight, Completed: &done})
	require.NoError(t, err)

	w, err = svc.AddSet(ctx, w.ID, we.ID)
	require.NoError(t, err)
	sets := w.Exercises[0].Sets
	require.Len(t, sets, 2)
	assert.Equal(t, 5, sets[1].Reps)
	assert.Equal(t, 185.0, sets[1].Weight)
	assert.False(t, sets[1].Completed)
	assert.NotEqual(t, sets[0].ID, sets[1].ID)
}

func TestEdit_UpdateSetPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "Leg Day")
	require.NoError(t, err)
	we := w.Exercises[0]

	reps := 8
	w, err = svc.UpdateSet(ctx, w.ID, we.ID, we.Sets[0].ID, SetPatch{Reps: &reps})
	require.NoError(t, err)
	assert.Equal(t, 8, w.Exercises[0].Sets[0].Reps)
	assert.Zero(t, w.Exercises[0].Sets[0].Weight)

	neg := -1.0
	_, err = svc.UpdateSet(ctx, w.ID, we.ID, we.Sets[0].ID, SetPatch{Weight: &neg})
	assert.ErrorIs(t, err, ErrInvalidSet)

	_, err = svc.UpdateSet(ctx, w.ID, we.ID, "nope", SetPatch{Reps: &reps})
	assert.ErrorIs(t, err, ErrSetNotFound)
}

func TestEdit_RejectsNonFiniteWeight(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "Leg Day")
	require.NoError(t, err)
	we := w.Exercises[0]

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		weight := v
		_, err = svc.UpdateSet(ctx, w.ID, we.ID, we.Sets[0].ID, SetPatch{Weight: &weight})
		assert.ErrorIs(t, err, ErrInvalidSet, "%v", v)

		edited := w.Clone()
		edited.Exercises[0].Sets[0].Weight = v
		assert.ErrorIs(t, svc.Update(ctx, edited), ErrInvalidSet, "%v", v)
	}

	got, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Exercises[0].Sets[0].Weight)
}

func TestEdit_AddAndRemoveExercise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "")
	require.NoError(t, err)

	w, err = svc.AddExercise(ctx, w.ID, "e3")
	require.NoError(t, err)
	require.Len(t, w.Exercises, 1)
	assert.Equal(t, "e3", w.Exercises[0].ExerciseID)
	assert.Len(t, w.Exercises[0].Sets, 1)

	_, err = svc.AddExercise(ctx, w.ID, "e404")
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	w, err = svc.RemoveSet(ctx, w.ID, w.Exercises[0].ID, w.Exercises[0].Sets[0].ID)
	require.NoError(t, err)
	assert.Empty(t, w.Exercises[0].Sets)

	w, err = svc.RemoveExercise(ctx, w.ID, w.Exercises[0].ID)
	require.NoError(t, err)
	assert.Empty(t, w.Exercises)

	_, err = svc.RemoveExercise(ctx, w.ID, "nope")
	assert.ErrorIs(t, err, ErrWorkoutExerciseNotFound)
}

func TestEdit_NotesAndPhoto(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "")
	require.NoError(t, err)

	w, err = svc.SetNotes(ctx, w.ID, "felt strong")
	require.NoError(t, err)
	assert.Equal(t, "felt strong", w.Notes)

	w, err = svc.SetPhoto(ctx, w.ID, "file:///tmp/pump.jpg")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/pump.jpg", w.PhotoURL)

	w, err = svc.SetPhoto(ctx, w.ID, "")
	require.NoError(t, err)
	assert.Empty(t, w.PhotoURL)
}

func TestEdit_RefusesFinishedWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.workouts()

	w, err := svc.Start(ctx, "Leg Day")
	require.NoError(t, err)
	_, err = svc.Finish(ctx)
	require.NoError(t, err)

	_, err = svc.AddSet(ctx, w.ID, w.Exercises[0].ID)
	assert.ErrorIs(t, err, ErrWorkoutFinished)
	_, err = svc.SetNotes(ctx, w.ID, "late edit")
	assert.ErrorIs(t, err, ErrWorkoutFinished)
}
