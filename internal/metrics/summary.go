package metrics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
)

// Summary is the post-workout recap.
type Summary struct {
	TotalSets       int
	TotalVolume     float64
	DurationMinutes int
}

// LastFinishedWorkout returns the finished workout with the latest end
// time, or nil when none has finished. Ties go to the earlier entry.
func LastFinishedWorkout(workouts []domain.Workout) *domain.Workout {
	best := -1
	for i, w := range workouts {
		if !w.IsFinished() {
			continue
		}
		if best < 0 || w.EndTime.After(*workouts[best].EndTime) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	w := workouts[best].Clone()
	return &w
}

// Summarize counts completed sets and their volume. Duration is rounded
// to whole minutes, halves up, and is zero for unfinished workouts.
func Summarize(w domain.Workout) Summary {
	var s Summary
	for _, we := range w.Exercises {
		for _, set := range we.Sets {
			if !set.Completed {
				continue
			}
			s.TotalSets++
			s.TotalVolume += set.Volume()
		}
	}
	if w.EndTime != nil {
		minutes := w.EndTime.Sub(w.StartTime).Minutes()
		s.DurationMinutes = int(math.Floor(minutes + 0.5))
	}
	return s
}

// Elapsed is how long a workout has been running at now, or its total
// length once finished. Never negative.
func Elapsed(w domain.Workout, now time.Time) time.Duration {
	end := now
	if w.EndTime != nil {
		end = *w.EndTime
	}
	d := end.Sub(w.StartTime)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// ExerciseSummaryLine lists up to two exercise names followed by a count
// of the rest, e.g. "Bench Press, Overhead Press +1 more".
func ExerciseSummaryLine(w domain.Workout, resolve func(exerciseID string) string) string {
	if len(w.Exercises) == 0 {
		return "No exercises"
	}
	names := make([]string, 0, 2)
	for _, we := range w.Exercises {
		if len(names) == 2 {
			break
		}
		names = append(names, resolve(we.ExerciseID))
	}
	line := strings.Join(names, ", ")
	if extra := len(w.Exercises) - len(names); extra > 0 {
		line += fmt.Sprintf(" +%d more", extra)
	}
	return line
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// WorkoutsOn returns the workouts dated on the same calendar day as now,
// in now's location. The log is kept newest first and so is the result.
func WorkoutsOn(workouts []domain.Workout, now time.Time) []domain.Workout {
	var out []domain.Workout
	for _, w := range workouts {
		if sameDay(w.Date.In(now.Location()), now) {
			out = append(out, w.Clone())
		}
	}
	return out
}

// RecentFinished returns up to limit finished workouts not dated today.
func RecentFinished(workouts []domain.Workout, now time.Time, limit int) []domain.Workout {
	var out []domain.Workout
	for _, w := range workouts {
		if len(out) == limit {
			break
		}
		if !w.IsFinished() || sameDay(w.Date.In(now.Location()), now) {
			continue
		}
		out = append(out, w.Clone())
	}
	return out
}

// FinishedCount is the number of finished workouts.
func FinishedCount(workouts []domain.Workout) int {
	n := 0
	for _, w := range workouts {
		if w.IsFinished() {
			n++
		}
	}
	return n
}
