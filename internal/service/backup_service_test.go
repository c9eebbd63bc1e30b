package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedLog leaves one finished Leg Day with a completed set and one note.
func seedLog(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()
	workouts := env.workouts()

	w, err := workouts.Start(ctx, "Leg Day")
	require.NoError(t, err)
	reps, weight, done := 5, 225.0, true
	_, err = workouts.UpdateSet(ctx, w.ID, w.Exercises[0].ID, w.Exercises[0].Sets[0].ID,
		SetPatch{Reps: &reps, Weight: &weight, Completed: &done})
	require.NoError(t, err)
	_, err = workouts.SetPhoto(ctx, w.ID, "file:///photos/legs.jpg")
	require.NoError(t, err)
	env.clock.Advance(50 * time.Minute)
	_, err = workouts.Finish(ctx)
	require.NoError(t, err)

	_, err = env.notes().Add(ctx, "squat felt fast")
	require.NoError(t, err)
}

func TestBackup_ExportImportRoundTrip(t *testing.T) {
	src := newTestEnv(t)
	seedLog(t, src)
	ctx := context.Background()

	dir := t.TempDir()
	path, err := src.backups(dir).ExportDefault(ctx, importer.ExportOptions{IncludePhotos: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ironlog-2026-03-10.gymdata"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dst := newTestEnv(t)
	res, err := dst.backups(t.TempDir()).Import(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Workouts: 1, Exercises: 10, Notes: 1}, res)

	assert.Equal(t, src.state.Workouts, dst.state.Workouts)
	assert.Equal(t, src.state.Exercises, dst.state.Exercises)
	assert.Equal(t, src.state.Notes, dst.state.Notes)

	reloaded := dst.reload(t)
	assert.Equal(t, src.state.Workouts, reloaded.Workouts)
}

func TestBackup_PhotosStrippedByDefault(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env)

	var buf bytes.Buffer
	require.NoError(t, env.backups(t.TempDir()).Write(context.Background(), &buf, importer.ExportOptions{}))
	assert.NotContains(t, buf.String(), "legs.jpg")
	assert.Equal(t, "file:///photos/legs.jpg", env.state.Workouts[0].PhotoURL, "export must not touch the log")

	snap := env.backups(t.TempDir()).Snapshot(context.Background(), importer.ExportOptions{IncludePhotos: true})
	assert.Equal(t, "file:///photos/legs.jpg", snap.Workouts[0].PhotoURL)
	assert.Equal(t, importer.AppVersion, snap.AppVersion)
}

func TestBackup_ImportInvalidLeavesStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env)
	before := env.state.Workouts

	_, err := env.backups(t.TempDir()).Import(context.Background(),
		strings.NewReader(`{"appVersion":"1.0.0","workouts":[]}`))
	var verr *importer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "exercises is required")

	assert.Equal(t, before, env.state.Workouts)
	assert.Len(t, env.reload(t).Workouts, 1)
}

func TestBackup_ImportRollsBackOnWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	seedLog(t, env)
	env.failingStore(repository.KeyNotes)

	doc := `{"appVersion":"1.0.0","workouts":[],"exercises":[],"globalNotes":[]}`
	_, err := env.backups(t.TempDir()).Import(context.Background(), strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected failure")

	assert.Len(t, env.state.Workouts, 1)
	assert.Len(t, env.state.Exercises, 10)

	reloaded := env.reload(t)
	assert.Len(t, reloaded.Workouts, 1, "workouts write should have rolled back")
	assert.Len(t, reloaded.Exercises, 10)
	assert.Len(t, reloaded.Notes, 1)
}

func TestBackup_ImportClearsStaleActivePointer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.workouts().Start(ctx, "Push Day")
	require.NoError(t, err)

	doc := `{"appVersion":"1.0.0","workouts":[{"id":"w1","name":"Old","startTime":"2025-01-01T10:00:00Z","endTime":"2025-01-01T11:00:00Z","exercises":[]}],"exercises":[]}`
	res, err := env.backups(t.TempDir()).Import(ctx, strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, res.ActiveCleared)
	assert.Zero(t, res.Notes)
	assert.Nil(t, env.workouts().Active(ctx))

	id, err := env.store.LoadActiveWorkoutID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestBackup_ImportKeepsActiveWorkoutStillInProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	w, err := env.workouts().Start(ctx, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.backups(t.TempDir()).Write(ctx, &buf, importer.ExportOptions{}))

	res, err := env.backups(t.TempDir()).Import(ctx, &buf)
	require.NoError(t, err)
	assert.False(t, res.ActiveCleared)
	active := env.workouts().Active(ctx)
	require.NotNil(t, active)
	assert.Equal(t, w.ID, active.ID)
}
