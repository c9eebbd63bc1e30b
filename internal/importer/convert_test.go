package importer

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLibrary() ([]domain.Workout, []domain.Exercise, []domain.Note) {
	w := domain.NewWorkout("w1", "Push Day", testNow.Add(-2*time.Hour), []domain.WorkoutExercise{
		{ID: "we1", ExerciseID: "e1", Sets: []domain.WorkoutSet{{ID: "s1", Reps: 8, Weight: 185, Completed: true}}},
	}).Finished(testNow.Add(-time.Hour))
	w.PhotoURL = "data:image/png;base64,AAAA"
	notes := []domain.Note{{ID: "n1", Text: "Deload next week", Date: testNow}}
	return []domain.Workout{w}, domain.DefaultExercises(), notes
}

func TestBuildSnapshot_StripsPhotosByDefault(t *testing.T) {
	ws, ex, notes := sampleLibrary()

	snap := BuildSnapshot(ws, ex, notes, ExportOptions{}, testNow)
	assert.Equal(t, AppVersion, snap.AppVersion)
	assert.Equal(t, testNow, snap.ExportDate)
	assert.Empty(t, snap.Workouts[0].PhotoURL)
	assert.NotEmpty(t, ws[0].PhotoURL, "source workouts are not modified")

	withPhotos := BuildSnapshot(ws, ex, notes, ExportOptions{IncludePhotos: true}, testNow)
	assert.Equal(t, ws[0].PhotoURL, withPhotos.Workouts[0].PhotoURL)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ws, ex, notes := sampleLibrary()
	data, err := Encode(BuildSnapshot(ws, ex, notes, ExportOptions{IncludePhotos: true}, testNow))
	require.NoError(t, err)

	lib, err := Decode(data, testNow, seqIDs())
	require.NoError(t, err)
	assert.Equal(t, AppVersion, lib.AppVersion)
	assert.Equal(t, ws, lib.Workouts)
	assert.Equal(t, ex, lib.Exercises)
	assert.Equal(t, notes, lib.Notes)
}

func TestDecode_NotesOptional(t *testing.T) {
	lib, err := Decode([]byte(`{"workouts":[],"exercises":[]}`), testNow, seqIDs())
	require.NoError(t, err)
	assert.NotNil(t, lib.Notes)
	assert.Empty(t, lib.Notes)

	lib, err = Decode([]byte(`{"workouts":[],"exercises":[],"globalNotes":"oops"}`), testNow, seqIDs())
	require.NoError(t, err)
	assert.Empty(t, lib.Notes)
}

func TestDecode_ReportsEveryShapeProblem(t *testing.T) {
	_, err := Decode([]byte(`{"workouts":{"a":1}}`), testNow, seqIDs())
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems(), 2)
	assert.Contains(t, err.Error(), "workouts: expected an array")
	assert.Contains(t, err.Error(), "exercises is required")
}

func TestDecode_RejectsNonJSON(t *testing.T) {
	for _, input := range []string{"", "not json", "null", "[1,2]"} {
		_, err := Decode([]byte(input), testNow, seqIDs())
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "input %q", input)
	}
}

func TestDecode_NormalizesLegacyWorkouts(t *testing.T) {
	data := []byte(`{
		"appVersion": "0.9.0",
		"workouts": [{"name":"Old","startTime":"2024-12-01T08:00:00Z","status":"finished","exercises":[{"exerciseId":"e2","sets":[{"reps":"5","weight":"225"}]}]}],
		"exercises": [{"id":"e2","name":"Squat","muscleGroup":"Legs"}]
	}`)
	lib, err := Decode(data, testNow, seqIDs())
	require.NoError(t, err)
	require.Len(t, lib.Workouts, 1)

	w := lib.Workouts[0]
	assert.Equal(t, "0.9.0", lib.AppVersion)
	assert.NotEmpty(t, w.ID)
	assert.True(t, w.IsFinished())
	assert.Equal(t, 5, w.Exercises[0].Sets[0].Reps)
	assert.Equal(t, 225.0, w.Exercises[0].Sets[0].Weight)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "ironlog-2025-03-10.gymdata", FileName(testNow))
}

func TestDecode_OutOfRangeValuesStillEncode(t *testing.T) {
	data := []byte(`{"workouts":[{"id":"w1","startTime":1e16,"endTime":1e16,"exercises":[{"exerciseId":"e1","sets":[{"reps":1e20,"weight":50}]}]}],"exercises":[]}`)

	lib, err := Decode(data, testNow, seqIDs())
	require.NoError(t, err)
	require.Len(t, lib.Workouts, 1)
	w := lib.Workouts[0]
	assert.Equal(t, testNow, w.StartTime)
	assert.Equal(t, 0, w.Exercises[0].Sets[0].Reps)

	_, err = Encode(BuildSnapshot(lib.Workouts, lib.Exercises, lib.Notes, ExportOptions{}, testNow))
	assert.NoError(t, err)
}
