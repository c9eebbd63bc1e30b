package domain

import (
	"encoding/json"
	"time"
)

// WorkoutSet is one logged set. Reps and weight are never negative.
type WorkoutSet struct {
	ID        string  `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// Volume is weight times reps.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutExercise is an exercise performed within a workout. ExerciseID
// references the catalog and may dangle.
type WorkoutExercise struct {
	ID         string       `json:"id"`
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
	Notes      string       `json:"notes,omitempty"`
}

// FindSet returns the index of the set with the given id, or -1.
func (we WorkoutExercise) FindSet(setID string) int {
	for i, s := range we.Sets {
		if s.ID == setID {
			return i
		}
	}
	return -1
}

// Workout is a single training session. The lifecycle status is derived
// from EndTime: a workout is finished exactly when EndTime is set.
type Workout struct {
	ID        string
	Name      string
	Date      time.Time
	StartTime time.Time
	EndTime   *time.Time
	Exercises []WorkoutExercise
	Notes     string
	PhotoURL  string
}

// NewWorkout builds an in-progress workout dated and started at now.
func NewWorkout(id, name string, now time.Time, exercises []WorkoutExercise) Workout {
	now = CanonicalTime(now)
	if exercises == nil {
		exercises = []WorkoutExercise{}
	}
	return Workout{
		ID:        id,
		Name:      name,
		Date:      now,
		StartTime: now,
		Exercises: exercises,
	}
}

func (w Workout) Status() WorkoutStatus {
	if w.EndTime != nil {
		return WorkoutFinished
	}
	return WorkoutInProgress
}

func (w Workout) IsFinished() bool {
	return w.EndTime != nil
}

// Finished returns a copy of w ended at the given instant.
func (w Workout) Finished(at time.Time) Workout {
	out := w.Clone()
	end := CanonicalTime(at)
	out.EndTime = &end
	return out
}

// FindExercise returns the index of the workout exercise with the given id, or -1.
func (w Workout) FindExercise(workoutExerciseID string) int {
	for i, we := range w.Exercises {
		if we.ID == workoutExerciseID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can edit without touching shared state.
func (w Workout) Clone() Workout {
	out := w
	if w.EndTime != nil {
		end := *w.EndTime
		out.EndTime = &end
	}
	out.Exercises = make([]WorkoutExercise, len(w.Exercises))
	for i, we := range w.Exercises {
		sets := make([]WorkoutSet, len(we.Sets))
		copy(sets, we.Sets)
		we.Sets = sets
		out.Exercises[i] = we
	}
	return out
}

// CloneWorkouts deep-copies a slice of workouts.
func CloneWorkouts(ws []Workout) []Workout {
	out := make([]Workout, len(ws))
	for i, w := range ws {
		out[i] = w.Clone()
	}
	return out
}

type workoutJSON struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Date      time.Time         `json:"date"`
	StartTime time.Time         `json:"startTime"`
	EndTime   *time.Time        `json:"endTime,omitempty"`
	Status    WorkoutStatus     `json:"status"`
	Exercises []WorkoutExercise `json:"exercises"`
	Notes     string            `json:"notes"`
	PhotoURL  string            `json:"photoUrl,omitempty"`
}

// MarshalJSON writes the stored shape, including the derived status.
func (w Workout) MarshalJSON() ([]byte, error) {
	exercises := w.Exercises
	if exercises == nil {
		exercises = []WorkoutExercise{}
	}
	return json.Marshal(workoutJSON{
		ID:        w.ID,
		Name:      w.Name,
		Date:      w.Date,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Status:    w.Status(),
		Exercises: exercises,
		Notes:     w.Notes,
		PhotoURL:  w.PhotoURL,
	})
}

// UnmarshalJSON decodes the stored shape. A recorded status wins over the
// presence of endTime: "finished" without an end is closed at its start,
// and "in_progress" drops any end.
func (w *Workout) UnmarshalJSON(data []byte) error {
	var raw workoutJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*w = Workout{
		ID:        raw.ID,
		Name:      raw.Name,
		Date:      raw.Date,
		StartTime: raw.StartTime,
		EndTime:   raw.EndTime,
		Exercises: raw.Exercises,
		Notes:     raw.Notes,
		PhotoURL:  raw.PhotoURL,
	}
	switch raw.Status {
	case WorkoutFinished:
		if w.EndTime == nil {
			start := w.StartTime
			w.EndTime = &start
		}
	case WorkoutInProgress:
		w.EndTime = nil
	}
	if w.Exercises == nil {
		w.Exercises = []WorkoutExercise{}
	}
	return nil
}
