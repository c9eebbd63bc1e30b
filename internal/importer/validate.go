package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ValidationError reports every structural problem found in a backup.
// Nothing is imported when it is returned.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems()))
	for _, err := range e.Problems() {
		msgs = append(msgs, err.Error())
	}
	return "invalid backup file: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Problems returns the individual validation failures.
func (e *ValidationError) Problems() []error {
	return multierr.Errors(e.Err)
}

// ValidateSnapshot checks the top-level shape of a decoded backup.
// workouts and exercises must both be arrays; globalNotes is optional.
func ValidateSnapshot(raw rawSnapshot) error {
	var errs error
	for _, field := range []string{"workouts", "exercises"} {
		v, ok := raw[field]
		switch {
		case !ok:
			errs = multierr.Append(errs, fmt.Errorf("%s is required", field))
		case !isArray(v):
			errs = multierr.Append(errs, fmt.Errorf("%s: expected an array", field))
		}
	}
	return errs
}

func isArray(v json.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) > 0 && trimmed[0] == '['
}
