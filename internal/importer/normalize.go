package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/spf13/cast"
	"go.uber.org/multierr"
)

// UntitledWorkoutName replaces a missing or blank workout name.
const UntitledWorkoutName = "Untitled Workout"

// IDFunc produces fresh identifiers for records that arrive without one.
type IDFunc func() string

// NormalizeWorkouts decodes a JSON array of workout records and normalizes
// each element. Elements that are not objects are reported together.
func NormalizeWorkouts(data json.RawMessage, now time.Time, newID IDFunc) ([]domain.Workout, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}
	out := make([]domain.Workout, 0, len(items))
	var errs error
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("workouts[%d]: expected an object", i))
			continue
		}
		out = append(out, NormalizeWorkout(rec, now, newID))
	}
	if errs != nil {
		return nil, errs
	}
	return out, nil
}

// NormalizeWorkout turns a loosely-typed workout record into a valid
// Workout. Missing ids are generated, missing dates fall back to now,
// numbers are coerced with a zero fallback and a recorded status wins
// over the presence of endTime. Normalizing an already-normal record
// returns it unchanged.
func NormalizeWorkout(raw map[string]any, now time.Time, newID IDFunc) domain.Workout {
	now = domain.CanonicalTime(now)

	w := domain.Workout{
		ID:        idOrNew(stringField(raw, "id"), newID),
		Name:      domain.CoalesceStr(stringField(raw, "name"), UntitledWorkoutName),
		Date:      domain.TimeFromPtrWithDefault(now, timeField(raw, "date")),
		StartTime: domain.TimeFromPtrWithDefault(now, timeField(raw, "startTime")),
		EndTime:   timeField(raw, "endTime"),
		Notes:     stringField(raw, "notes"),
		PhotoURL:  stringField(raw, "photoUrl"),
		Exercises: normalizeExercises(raw["exercises"], newID),
	}

	switch domain.WorkoutStatus(stringField(raw, "status")) {
	case domain.WorkoutFinished:
		if w.EndTime == nil {
			end := w.StartTime
			w.EndTime = &end
		}
	case domain.WorkoutInProgress:
		w.EndTime = nil
	}
	return w
}

func normalizeExercises(v any, newID IDFunc) []domain.WorkoutExercise {
	items, _ := v.([]any)
	out := make([]domain.WorkoutExercise, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.WorkoutExercise{
			ID:         idOrNew(stringField(rec, "id"), newID),
			ExerciseID: stringField(rec, "exerciseId"),
			Notes:      stringField(rec, "notes"),
			Sets:       normalizeSets(rec["sets"], newID),
		})
	}
	return out
}

func normalizeSets(v any, newID IDFunc) []domain.WorkoutSet {
	items, _ := v.([]any)
	out := make([]domain.WorkoutSet, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		completed, err := cast.ToBoolE(rec["completed"])
		if err != nil {
			completed = false
		}
		out = append(out, domain.WorkoutSet{
			ID:        idOrNew(stringField(rec, "id"), newID),
			Reps:      repsField(rec, "reps"),
			Weight:    numberField(rec, "weight"),
			Completed: completed,
		})
	}
	return out
}

func idOrNew(id string, newID IDFunc) string {
	if id != "" {
		return id
	}
	return newID()
}

func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// numberField coerces a numeric or numeric-string value. Anything that
// cannot be read as a finite non-negative number becomes zero.
func numberField(raw map[string]any, key string) float64 {
	f, err := cast.ToFloat64E(raw[key])
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// maxReps bounds a rep count so it always fits an int on every platform.
const maxReps = math.MaxInt32

// repsField reads a rep count. Values too large to be a rep count are
// treated like any other unreadable value.
func repsField(raw map[string]any, key string) int {
	f := numberField(raw, key)
	if f > maxReps {
		return 0
	}
	return int(f)
}

// Stored timestamps must render as RFC 3339, which allows years 0 to 9999.
var (
	minEpochMillis = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxEpochMillis = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
)

// timeField reads an ISO-8601 string or an epoch-millisecond number.
func timeField(raw map[string]any, key string) *time.Time {
	var t time.Time
	switch v := raw[key].(type) {
	case string:
		if v == "" {
			return nil
		}
		parsed, err := cast.ToTimeE(v)
		if err != nil {
			return nil
		}
		t = parsed
	case float64:
		if math.IsNaN(v) || v < float64(minEpochMillis) || v > float64(maxEpochMillis) {
			return nil
		}
		t = time.UnixMilli(int64(v))
	default:
		return nil
	}
	t = domain.CanonicalTime(t)
	if y := t.Year(); y < 0 || y > 9999 {
		return nil
	}
	return &t
}
