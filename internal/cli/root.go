package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and runtime settings the commands work against.
type App struct {
	Workouts service.WorkoutService
	Timer    service.TimerService
	Notes    service.NoteService
	Settings service.SettingsService
	Backups  service.BackupService

	// Now is the wall clock used for display. Defaults to time.Now.
	Now func() time.Time

	// PollInterval is how often live timer views refresh.
	PollInterval time.Duration
	// Bell rings the terminal bell when a rest countdown ends.
	Bell bool

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// live clock view are only used when it returns true.
	IsInteractive func() bool

	// Chooser asks where to write a backup. Nil means the huh prompt.
	Chooser service.DestinationChooser
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) currentUnits(cmd *cobra.Command) domain.UnitSystem {
	return a.Settings.Units(cmd.Context())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) pollInterval() time.Duration {
	if a.PollInterval > 0 {
		return a.PollInterval
	}
	return 100 * time.Millisecond
}

// NewRootCmd creates the top-level "ironlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ironlog",
		Short:         "Workout log, rest timer and progress tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, app)
		},
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newSetCmd(app),
		newExerciseCmd(app),
		newNoteCmd(app),
		newTimerCmd(app),
		newProgressCmd(app),
		newSummaryCmd(app),
		newHomeCmd(app),
		newBackupCmd(app),
		newSettingsCmd(app),
	)

	return root
}

// Execute runs the command tree and maps a user cancellation to a clean
// exit.
func Execute(ctx context.Context, root *cobra.Command, args []string) error {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if errors.Is(err, service.ErrCancelled) {
		return nil
	}
	return err
}

func writeln(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}
