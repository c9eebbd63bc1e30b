package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
)

// AppVersion is written into every exported backup.
const AppVersion = "1.0.0"

// FileExtension is the extension used for backup files.
const FileExtension = ".gymdata"

// Snapshot is the backup document written on export.
type Snapshot struct {
	AppVersion  string            `json:"appVersion"`
	ExportDate  time.Time         `json:"exportDate"`
	Workouts    []domain.Workout  `json:"workouts"`
	Exercises   []domain.Exercise `json:"exercises"`
	GlobalNotes []domain.Note     `json:"globalNotes"`
}

// Library is the user data recovered from a backup, already normalized.
type Library struct {
	AppVersion string
	Workouts   []domain.Workout
	Exercises  []domain.Exercise
	Notes      []domain.Note
}

// rawSnapshot defers decoding of each section so shape problems can be
// reported per field instead of failing on the first type mismatch.
type rawSnapshot map[string]json.RawMessage

// FileName returns the default backup file name for the given day.
func FileName(day time.Time) string {
	return fmt.Sprintf("ironlog-%s%s", day.Format("2006-01-02"), FileExtension)
}
