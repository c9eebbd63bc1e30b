// Package metrics derives progress series and workout summaries from the
// workout log. Every function is pure.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
)

// Point is one workout's value for an exercise.
type Point struct {
	Date  time.Time
	Value float64
}

// rangeWindow returns how far back a range reaches. Zero means unbounded.
func rangeWindow(r domain.TimeRange) time.Duration {
	switch r {
	case domain.RangeWeek:
		return 7 * 24 * time.Hour
	case domain.RangeMonth:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// qualifies reports whether a set counts toward progress: it was ticked
// off, or it carries real numbers.
func qualifies(s domain.WorkoutSet) bool {
	return s.Completed || (s.Weight > 0 && s.Reps > 0)
}

// ExerciseSeries returns one point per workout that performed the exercise
// with at least one qualifying set, ordered by workout date. Only the
// first matching exercise entry of each workout is used, and zero values
// are left out.
func ExerciseSeries(workouts []domain.Workout, exerciseID string, metric domain.Metric, r domain.TimeRange, now time.Time) []Point {
	var cutoff time.Time
	if window := rangeWindow(r); window > 0 {
		cutoff = now.Add(-window)
	}

	var points []Point
	for _, w := range workouts {
		if w.Date.IsZero() {
			continue
		}
		if !cutoff.IsZero() && !w.Date.After(cutoff) {
			continue
		}
		we, ok := firstExercise(w, exerciseID)
		if !ok {
			continue
		}
		value, ok := seriesValue(we.Sets, metric)
		if !ok || value == 0 {
			continue
		}
		points = append(points, Point{Date: w.Date, Value: value})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func firstExercise(w domain.Workout, exerciseID string) (domain.WorkoutExercise, bool) {
	for _, we := range w.Exercises {
		if we.ExerciseID == exerciseID {
			return we, true
		}
	}
	return domain.WorkoutExercise{}, false
}

func seriesValue(sets []domain.WorkoutSet, metric domain.Metric) (float64, bool) {
	var value float64
	found := false
	for _, s := range sets {
		if !qualifies(s) {
			continue
		}
		found = true
		switch metric {
		case domain.MetricVolume:
			value += s.Volume()
		default:
			value = math.Max(value, s.Weight)
		}
	}
	return value, found
}

// PersonalRecord is the best value in a series, or zero when it is empty.
func PersonalRecord(points []Point) float64 {
	best := 0.0
	for _, p := range points {
		best = math.Max(best, p.Value)
	}
	return best
}

// SessionCount is the number of workouts in a series.
func SessionCount(points []Point) int {
	return len(points)
}
