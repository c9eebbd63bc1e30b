package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/metrics"
	"github.com/stretchr/testify/assert"
)

var fmtNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func names(id string) string {
	switch id {
	case "e1":
		return "Bench Press"
	case "e4":
		return "Overhead Press"
	case "e9":
		return "Tricep Extension"
	}
	return domain.UnknownExerciseName
}

func pushDay() domain.Workout {
	w := domain.NewWorkout("w-1234567890", "Push Day", fmtNow.Add(-30*time.Minute), []domain.WorkoutExercise{
		{ID: "we-1", ExerciseID: "e1", Sets: []domain.WorkoutSet{{ID: "s-1", Reps: 5, Weight: 185, Completed: true}}},
		{ID: "we-2", ExerciseID: "e4"},
		{ID: "we-3", ExerciseID: "e9"},
	})
	w.Notes = "bench moved well"
	return w
}

func TestFormatWorkout_InProgress(t *testing.T) {
	out := stripANSI(FormatWorkout(pushDay(), names, domain.UnitLb, fmtNow))

	assert.Contains(t, out, "PUSH DAY")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "Elapsed: 30:00")
	assert.Contains(t, out, "Bench Press")
	assert.Contains(t, out, "185 lb")
	assert.Contains(t, out, "no sets")
	assert.Contains(t, out, "bench moved well")
}

func TestFormatWorkout_FinishedShowsDuration(t *testing.T) {
	w := pushDay().Finished(fmtNow)
	out := stripANSI(FormatWorkout(w, names, domain.UnitKg, fmtNow))

	assert.Contains(t, out, "Finished")
	assert.Contains(t, out, "Duration: 30m")
	assert.Contains(t, out, "185 kg")
}

func TestFormatWorkoutList(t *testing.T) {
	out := stripANSI(FormatWorkoutList([]domain.Workout{pushDay()}, names, fmtNow))
	assert.Contains(t, out, "w-123456")
	assert.NotContains(t, out, "w-1234567890")
	assert.Contains(t, out, "Bench Press, Overhead Press +1 more")

	empty := stripANSI(FormatWorkoutList(nil, names, fmtNow))
	assert.Contains(t, empty, "No workouts logged yet")
}

func TestFormatSummary(t *testing.T) {
	w := pushDay().Finished(fmtNow.Add(15 * time.Minute))
	out := stripANSI(FormatSummary(w, domain.UnitLb, fmtNow))

	assert.Contains(t, out, "WORKOUT SUMMARY")
	assert.Contains(t, out, "925 lb")
	assert.Contains(t, out, "45m")
}

func TestFormatHome(t *testing.T) {
	active := pushDay()
	old := domain.NewWorkout("w-old", "Leg Day", fmtNow.AddDate(0, 0, -1), nil).Finished(fmtNow.AddDate(0, 0, -1).Add(time.Hour))
	out := stripANSI(FormatHome(HomeView{
		Active:        &active,
		Today:         []domain.Workout{active},
		Recent:        []domain.Workout{old},
		FinishedCount: 1,
	}, names, fmtNow))

	assert.Contains(t, out, "Active: Push Day")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "No exercises")
	assert.Contains(t, out, "Workouts completed: 1")
}

func TestFormatSeries(t *testing.T) {
	points := []metrics.Point{
		{Date: fmtNow.AddDate(0, 0, -3), Value: 200},
		{Date: fmtNow, Value: 225},
	}
	out := stripANSI(FormatSeries("Bench Press", points, domain.MetricMaxWeight, domain.UnitLb, fmtNow))
	assert.Contains(t, out, "MAX WEIGHT")
	assert.Contains(t, out, "225 lb ★")
	assert.Contains(t, out, "Personal record: 225 lb")
	assert.Contains(t, out, "Sessions: 2")

	empty := stripANSI(FormatSeries("Bench Press", nil, domain.MetricVolume, domain.UnitLb, fmtNow))
	assert.Contains(t, empty, "No data")
}

func TestRenderBar(t *testing.T) {
	full := stripANSI(RenderBar(1, 4))
	assert.Equal(t, "████", full)
	half := stripANSI(RenderBar(0.5, 4))
	assert.Equal(t, "██░░", half)
	assert.Equal(t, "░░", stripANSI(RenderBar(-1, 1)))
}

func TestFormatTimer(t *testing.T) {
	idle := domain.DefaultTimer()
	out := stripANSI(FormatTimer(idle, idle.DurationValue()))
	assert.Contains(t, out, "REST · READY")
	assert.Contains(t, out, "1:00")

	presets := stripANSI(FormatPresets(domain.DefaultPresets()))
	assert.Contains(t, presets, "p90")
	assert.Contains(t, presets, "1:30")
}
