package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"go.uber.org/multierr"
)

// ExportOptions controls what goes into a backup.
type ExportOptions struct {
	IncludePhotos bool
}

// BuildSnapshot assembles a backup document. Photo references are
// stripped unless requested.
func BuildSnapshot(workouts []domain.Workout, exercises []domain.Exercise, notes []domain.Note, opts ExportOptions, now time.Time) Snapshot {
	ws := domain.CloneWorkouts(workouts)
	if !opts.IncludePhotos {
		for i := range ws {
			ws[i].PhotoURL = ""
		}
	}
	ex := make([]domain.Exercise, len(exercises))
	copy(ex, exercises)
	ns := make([]domain.Note, len(notes))
	copy(ns, notes)

	return Snapshot{
		AppVersion:  AppVersion,
		ExportDate:  domain.CanonicalTime(now),
		Workouts:    ws,
		Exercises:   ex,
		GlobalNotes: ns,
	}
}

// Encode serializes a snapshot as indented JSON.
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// Decode parses and validates a backup document and normalizes every
// workout in it. Any structural problem yields a *ValidationError.
func Decode(data []byte, now time.Time, newID IDFunc) (*Library, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("not a backup document: %w", err)}
	}
	if raw == nil {
		return nil, &ValidationError{Err: fmt.Errorf("not a backup document")}
	}
	if err := ValidateSnapshot(raw); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var errs error
	workouts, err := NormalizeWorkouts(raw["workouts"], now, newID)
	errs = multierr.Append(errs, err)

	var exercises []domain.Exercise
	if err := json.Unmarshal(raw["exercises"], &exercises); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("exercises: %w", err))
	}

	notes := []domain.Note{}
	if v, ok := raw["globalNotes"]; ok && isArray(v) {
		if err := json.Unmarshal(v, &notes); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("globalNotes: %w", err))
		}
	}
	if errs != nil {
		return nil, &ValidationError{Err: errs}
	}

	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	var version string
	_ = json.Unmarshal(raw["appVersion"], &version)

	return &Library{
		AppVersion: version,
		Workouts:   workouts,
		Exercises:  exercises,
		Notes:      notes,
	}, nil
}
