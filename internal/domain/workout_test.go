package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorkout() Workout {
	w := NewWorkout("w1", "Push Day", refNow, []WorkoutExercise{
		{ID: "we1", ExerciseID: "e1", Sets: []WorkoutSet{{ID: "s1", Reps: 8, Weight: 185, Completed: true}}},
	})
	return w
}

func TestNewWorkout_InProgress(t *testing.T) {
	w := sampleWorkout()
	assert.Equal(t, WorkoutInProgress, w.Status())
	assert.False(t, w.IsFinished())
	assert.Equal(t, refNow, w.Date)
	assert.Equal(t, refNow, w.StartTime)
}

func TestFinished_SetsEndWithoutMutatingReceiver(t *testing.T) {
	w := sampleWorkout()
	done := w.Finished(refNow.Add(45 * time.Minute))
	assert.Equal(t, WorkoutFinished, done.Status())
	require.NotNil(t, done.EndTime)
	assert.Equal(t, refNow.Add(45*time.Minute), *done.EndTime)
	assert.Nil(t, w.EndTime)
}

func TestClone_IsDeep(t *testing.T) {
	w := sampleWorkout()
	c := w.Clone()
	c.Exercises[0].Sets[0].Reps = 1
	c.Exercises[0].Notes = "changed"
	assert.Equal(t, 8, w.Exercises[0].Sets[0].Reps)
	assert.Empty(t, w.Exercises[0].Notes)
}

func TestWorkoutJSON_EmitsStatus(t *testing.T) {
	w := sampleWorkout().Finished(refNow.Add(time.Hour))
	data, err := json.Marshal(w)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "finished", fields["status"])
	assert.Equal(t, "2025-03-10T19:00:00Z", fields["endTime"])

	var back Workout
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, w, back)
}

func TestWorkoutJSON_StatusWinsOverEndTime(t *testing.T) {
	var finished Workout
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","startTime":"2025-03-10T18:00:00Z","status":"finished"}`), &finished))
	require.NotNil(t, finished.EndTime)
	assert.Equal(t, refNow, *finished.EndTime)

	var open Workout
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b","endTime":"2025-03-10T18:00:00Z","status":"in_progress"}`), &open))
	assert.Nil(t, open.EndTime)
	assert.NotNil(t, open.Exercises)
}

func TestFindExerciseAndSet(t *testing.T) {
	w := sampleWorkout()
	assert.Equal(t, 0, w.FindExercise("we1"))
	assert.Equal(t, -1, w.FindExercise("nope"))
	assert.Equal(t, 0, w.Exercises[0].FindSet("s1"))
	assert.Equal(t, -1, w.Exercises[0].FindSet("s9"))
}

func TestTemplates_ReferenceBuiltInExercises(t *testing.T) {
	catalog := DefaultExercises()
	for _, tpl := range Templates() {
		for _, id := range tpl.ExerciseIDs {
			_, ok := FindExercise(catalog, id)
			assert.True(t, ok, "template %s references %s", tpl.Name, id)
		}
	}
	tpl, ok := FindTemplate("Push Day")
	require.True(t, ok)
	assert.Equal(t, []string{"e1", "e4", "e9"}, tpl.ExerciseIDs)

	_, ok = FindTemplate("push day")
	assert.False(t, ok)
}

func TestUnitSystemToggle(t *testing.T) {
	assert.Equal(t, UnitKg, UnitLb.Toggle())
	assert.Equal(t, UnitLb, UnitKg.Toggle())
	_, err := ParseUnitSystem("stone")
	assert.Error(t, err)
}
