package domain

// Exercise is a catalog entry. Built-in entries ship with the app; users
// may add custom ones.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Custom      bool   `json:"custom,omitempty"`
}

// DefaultMuscleGroup is assigned to custom exercises created without one.
const DefaultMuscleGroup = "Other"

// UnknownExerciseName is shown for references that do not resolve.
const UnknownExerciseName = "Unknown Exercise"

// DefaultExercises returns the built-in catalog. The ids are stable and
// referenced by the workout templates.
func DefaultExercises() []Exercise {
	return []Exercise{
		{ID: "e1", Name: "Bench Press", MuscleGroup: "Chest"},
		{ID: "e2", Name: "Squat", MuscleGroup: "Legs"},
		{ID: "e3", Name: "Deadlift", MuscleGroup: "Back"},
		{ID: "e4", Name: "Overhead Press", MuscleGroup: "Shoulders"},
		{ID: "e5", Name: "Pull Up", MuscleGroup: "Back"},
		{ID: "e6", Name: "Dumbbell Row", MuscleGroup: "Back"},
		{ID: "e7", Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
		{ID: "e8", Name: "Lateral Raise", MuscleGroup: "Shoulders"},
		{ID: "e9", Name: "Tricep Extension", MuscleGroup: "Arms"},
		{ID: "e10", Name: "Bicep Curl", MuscleGroup: "Arms"},
	}
}

// FindExercise returns the catalog entry with the given id.
func FindExercise(catalog []Exercise, id string) (Exercise, bool) {
	for _, e := range catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// WorkoutTemplate names a fixed list of catalog exercises to seed a workout with.
type WorkoutTemplate struct {
	Name        string
	ExerciseIDs []string
}

// DefaultWorkoutName is used when a workout is started without a template.
const DefaultWorkoutName = "Custom Workout"

// Templates returns the built-in templates in display order.
func Templates() []WorkoutTemplate {
	return []WorkoutTemplate{
		{Name: "Push Day", ExerciseIDs: []string{"e1", "e4", "e9"}},
		{Name: "Pull Day", ExerciseIDs: []string{"e3", "e5", "e10"}},
		{Name: "Leg Day", ExerciseIDs: []string{"e2"}},
	}
}

// FindTemplate looks up a template by exact name.
func FindTemplate(name string) (WorkoutTemplate, bool) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, true
		}
	}
	return WorkoutTemplate{}, false
}
