package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/repository"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/alexanderramin/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var mockNow = time.Date(2026, 5, 2, 7, 30, 0, 0, time.UTC)

func TestAddNote_PersistFailureLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := NewMockKVRepo(ctrl)
	kv.EXPECT().
		Put(gomock.Any(), repository.KeyNotes, gomock.Any()).
		Return(errors.New("disk full"))

	state := service.DefaultState()
	svc := service.NewNoteService(state, repository.NewStateStore(kv), service.WithClock(testutil.FixedClock(mockNow)))

	_, err := svc.Add(context.Background(), "pr attempt friday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Empty(t, svc.List(context.Background()))
}

func TestToggleUnits_PersistFailureKeepsUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := NewMockKVRepo(ctrl)
	kv.EXPECT().
		Put(gomock.Any(), repository.KeyUnitSystem, []byte("kg")).
		Return(errors.New("read-only database"))

	state := service.DefaultState()
	svc := service.NewSettingsService(state, repository.NewStateStore(kv))

	_, err := svc.ToggleUnits(context.Background())
	require.Error(t, err)
	assert.Equal(t, "lb", string(svc.Units(context.Background())))
}

func TestStartTimer_WritesTimerKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := NewMockKVRepo(ctrl)
	kv.EXPECT().
		Put(gomock.Any(), repository.KeyTimer, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte) error {
			assert.Contains(t, string(value), `"isRunning":true`)
			return nil
		})

	state := service.DefaultState()
	svc := service.NewTimerService(state, repository.NewStateStore(kv), service.WithClock(testutil.FixedClock(mockNow)))

	st, err := svc.Start(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, st.IsRunning)
}

func newBackupService(t *testing.T) service.BackupService {
	t.Helper()
	store, _ := testutil.NewTestStateStore(t)
	return service.NewBackupService(service.DefaultState(), store, t.TempDir(), service.WithClock(testutil.FixedClock(mockNow)))
}

func TestExportTo_WritesChosenPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := NewMockDestinationChooser(ctrl)
	dest := filepath.Join(t.TempDir(), "nested", "mine.gymdata")
	chooser.EXPECT().
		ChooseDestination(gomock.Any(), "ironlog-2026-05-02.gymdata").
		Return(dest, nil)

	svc := newBackupService(t)
	path, err := svc.ExportTo(context.Background(), chooser, importer.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, dest, path)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	lib, err := importer.Decode(data, mockNow, func() string { return "x" })
	require.NoError(t, err)
	assert.Len(t, lib.Exercises, 10)
}

func TestExportTo_CancelWritesNothing(t *testing.T) {
	for name, chosen := range map[string]struct {
		path string
		err  error
	}{
		"aborted": {err: service.ErrCancelled},
		"empty":   {path: ""},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chooser := NewMockDestinationChooser(ctrl)
			chooser.EXPECT().ChooseDestination(gomock.Any(), gomock.Any()).Return(chosen.path, chosen.err)

			svc := newBackupService(t)
			path, err := svc.ExportTo(context.Background(), chooser, importer.ExportOptions{})
			assert.True(t, service.IsCancelled(err))
			assert.Empty(t, path)
		})
	}
}
