package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/repository"
)

type backupService struct {
	core
	backupDir string
}

// NewBackupService returns a BackupService whose default export
// destination is backupDir.
func NewBackupService(state *State, store *repository.StateStore, backupDir string, opts ...Option) BackupService {
	return &backupService{core: newCore(state, store, opts), backupDir: backupDir}
}

func (s *backupService) Snapshot(ctx context.Context, opts importer.ExportOptions) importer.Snapshot {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return importer.BuildSnapshot(s.state.Workouts, s.state.Exercises, s.state.Notes, opts, s.now())
}

func (s *backupService) encode(ctx context.Context, opts importer.ExportOptions) ([]byte, error) {
	return importer.Encode(s.Snapshot(ctx, opts))
}

// Write streams a backup document to w.
func (s *backupService) Write(ctx context.Context, w io.Writer, opts importer.ExportOptions) (err error) {
	startedAt := s.now()
	defer func() { s.observe(ctx, "export-backup", startedAt, map[string]any{"destination": "writer"}, err) }()

	data, err := s.encode(ctx, opts)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// ExportDefault writes today's backup into the backup directory and
// returns its path.
func (s *backupService) ExportDefault(ctx context.Context, opts importer.ExportOptions) (string, error) {
	path := filepath.Join(s.backupDir, importer.FileName(s.now()))
	return path, s.exportFile(ctx, path, opts)
}

// ExportTo lets the chooser pick the destination. A chooser that backs
// out yields ErrCancelled and nothing is written.
func (s *backupService) ExportTo(ctx context.Context, chooser DestinationChooser, opts importer.ExportOptions) (string, error) {
	path, err := chooser.ChooseDestination(ctx, importer.FileName(s.now()))
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, s.exportFile(ctx, path, opts)
}

func (s *backupService) exportFile(ctx context.Context, path string, opts importer.ExportOptions) (err error) {
	startedAt := s.now()
	defer func() { s.observe(ctx, "export-backup", startedAt, map[string]any{"destination": path}, err) }()

	data, err := s.encode(ctx, opts)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic writes to a sibling temp file and renames it into place
// so a reader never sees a partial backup.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ironlog-*.tmp")
	if err != nil {
		return fmt.Errorf("creating backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing backup file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing backup file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving backup into place: %w", err)
	}
	return nil
}

// Import replaces workouts, exercises and notes with the backup's
// contents. Settings and the timer are kept. The active-workout pointer
// survives only if it still names an in-progress workout in the
// imported log. Nothing changes unless the whole import succeeds.
func (s *backupService) Import(ctx context.Context, r io.Reader) (res ImportResult, err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "import-backup", startedAt, fields, err) }()

	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading backup: %w", err)
	}
	lib, err := importer.Decode(data, s.now(), s.newID)
	if err != nil {
		return ImportResult{}, err
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	activeID := s.state.ActiveWorkoutID
	if activeID != "" && !holdsInProgress(lib.Workouts, activeID) {
		activeID = ""
		res.ActiveCleared = true
	}

	err = s.store.Atomically(ctx, func(ctx context.Context, tx *repository.StateStore) error {
		if err := tx.SaveWorkouts(ctx, lib.Workouts); err != nil {
			return err
		}
		if err := tx.SaveExercises(ctx, lib.Exercises); err != nil {
			return err
		}
		if err := tx.SaveNotes(ctx, lib.Notes); err != nil {
			return err
		}
		return tx.SaveActiveWorkoutID(ctx, activeID)
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("saving imported data: %w", err)
	}

	s.state.Workouts = lib.Workouts
	s.state.Exercises = lib.Exercises
	s.state.Notes = lib.Notes
	s.state.ActiveWorkoutID = activeID

	res.Workouts = len(lib.Workouts)
	res.Exercises = len(lib.Exercises)
	res.Notes = len(lib.Notes)
	fields["workouts"] = res.Workouts
	fields["app_version"] = lib.AppVersion
	return res, nil
}

func holdsInProgress(workouts []domain.Workout, id string) bool {
	for _, w := range workouts {
		if w.ID == id {
			return !w.IsFinished()
		}
	}
	return false
}
