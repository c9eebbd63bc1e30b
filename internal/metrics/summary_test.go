package metrics

import (
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_CompletedSetsOnly(t *testing.T) {
	w := testutil.NewTestWorkout(
		testutil.StartedAt(testNow),
		testutil.FinishedAt(testNow.Add(52*time.Minute+30*time.Second)),
		testutil.WithExercise("e1", testutil.Set(8, 185, true), testutil.Set(6, 185, false)),
		testutil.WithExercise("e4", testutil.Set(5, 100, true)),
	)
	s := Summarize(w)
	assert.Equal(t, 2, s.TotalSets)
	assert.Equal(t, 1980.0, s.TotalVolume)
	assert.Equal(t, 53, s.DurationMinutes, "half minutes round up")
}

func TestSummarize_UnfinishedHasNoDuration(t *testing.T) {
	s := Summarize(testutil.NewTestWorkout())
	assert.Equal(t, Summary{}, s)
}

func TestLastFinishedWorkout_MaxEndTime(t *testing.T) {
	early := testutil.NewTestWorkout(testutil.WithID("early"), testutil.FinishedAt(testNow.Add(-48*time.Hour)))
	late := testutil.NewTestWorkout(testutil.WithID("late"), testutil.FinishedAt(testNow.Add(-time.Hour)))
	open := testutil.NewTestWorkout(testutil.WithID("open"))

	got := LastFinishedWorkout([]domain.Workout{open, early, late})
	require.NotNil(t, got)
	assert.Equal(t, "late", got.ID)

	assert.Nil(t, LastFinishedWorkout([]domain.Workout{open}))
	assert.Nil(t, LastFinishedWorkout(nil))
}

func TestElapsed(t *testing.T) {
	w := testutil.NewTestWorkout(testutil.StartedAt(testNow))
	assert.Equal(t, 90*time.Second, Elapsed(w, testNow.Add(90*time.Second+400*time.Millisecond)))
	assert.Equal(t, time.Duration(0), Elapsed(w, testNow.Add(-time.Minute)))

	done := testutil.NewTestWorkout(testutil.StartedAt(testNow), testutil.FinishedAt(testNow.Add(time.Hour)))
	assert.Equal(t, time.Hour, Elapsed(done, testNow.Add(5*time.Hour)))
}

func TestExerciseSummaryLine(t *testing.T) {
	names := map[string]string{"e1": "Bench Press", "e4": "Overhead Press", "e9": "Tricep Extension"}
	resolve := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return domain.UnknownExerciseName
	}

	assert.Equal(t, "No exercises", ExerciseSummaryLine(testutil.NewTestWorkout(), resolve))

	one := testutil.NewTestWorkout(testutil.WithExercise("e1"))
	assert.Equal(t, "Bench Press", ExerciseSummaryLine(one, resolve))

	three := testutil.NewTestWorkout(testutil.WithExercise("e1"), testutil.WithExercise("e4"), testutil.WithExercise("e9"))
	assert.Equal(t, "Bench Press, Overhead Press +1 more", ExerciseSummaryLine(three, resolve))

	dangling := testutil.NewTestWorkout(testutil.WithExercise("gone"))
	assert.Equal(t, "Unknown Exercise", ExerciseSummaryLine(dangling, resolve))
}

func TestHomeLists(t *testing.T) {
	today := testutil.NewTestWorkout(testutil.WithID("today"), testutil.StartedAt(testNow.Add(-2*time.Hour)),
		testutil.FinishedAt(testNow.Add(-time.Hour)))
	todayOpen := testutil.NewTestWorkout(testutil.WithID("today-open"), testutil.StartedAt(testNow.Add(-10*time.Minute)))
	var older []domain.Workout
	for i := 1; i <= 7; i++ {
		older = append(older, testutil.NewTestWorkout(testutil.StartedAt(daysAgo(i)), testutil.FinishedAt(daysAgo(i).Add(time.Hour))))
	}
	log := append([]domain.Workout{todayOpen, today}, older...)

	onToday := WorkoutsOn(log, testNow)
	require.Len(t, onToday, 2)
	assert.Equal(t, "today-open", onToday[0].ID)

	recent := RecentFinished(log, testNow, 5)
	require.Len(t, recent, 5)
	assert.Equal(t, daysAgo(1), recent[0].Date)

	assert.Equal(t, 8, FinishedCount(log))
}
