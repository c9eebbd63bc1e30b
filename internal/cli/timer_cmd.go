package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/ticker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Rest timer and stopwatch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTimer(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the timer",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showTimer(cmd, app)
			},
		},
		newTimerTypeCmd(app),
		newTimerStartCmd(app),
		&cobra.Command{
			Use:   "pause",
			Short: "Pause the timer",
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := app.Timer.Pause(cmd.Context()); err != nil {
					return err
				}
				return showTimer(cmd, app)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Stop the timer and clear it",
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := app.Timer.Reset(cmd.Context()); err != nil {
					return err
				}
				return showTimer(cmd, app)
			},
		},
		newTimerWatchCmd(app),
		newPresetCmd(app),
	)

	return cmd
}

func showTimer(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	writeln(cmd.OutOrStdout(), formatter.FormatTimer(app.Timer.State(ctx), app.Timer.Display(ctx)))
	return nil
}

func newTimerTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "type rest|stopwatch|toggle",
		Short:     "Switch between rest countdown and stopwatch",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"rest", "stopwatch", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			next := domain.TimerType(args[0])
			if args[0] == "toggle" {
				next = domain.TimerStopwatch
				if app.Timer.State(ctx).Type == domain.TimerStopwatch {
					next = domain.TimerRest
				}
			}
			if _, err := app.Timer.SetType(ctx, next); err != nil {
				return err
			}
			return showTimer(cmd, app)
		},
	}
}

func newTimerStartCmd(app *App) *cobra.Command {
	var durationFlag string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start or resume the timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var d *time.Duration
			if durationFlag != "" {
				parsed, err := parseDuration(durationFlag)
				if err != nil {
					return err
				}
				d = &parsed
			}
			if _, err := app.Timer.Start(cmd.Context(), d); err != nil {
				return err
			}
			return showTimer(cmd, app)
		},
	}

	cmd.Flags().StringVarP(&durationFlag, "duration", "d", "", "Countdown length, e.g. 90, 90s or 2m")
	return cmd
}

func newTimerWatchCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the timer live until the rest is over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain || !app.interactive() {
				return watchPlain(cmd.Context(), app, cmd.OutOrStdout())
			}
			model := newClockModel(cmd.Context(), app)
			_, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain lines instead of the interactive clock")
	return cmd
}

// watchPlain redraws the clock line each poll until a rest countdown runs
// out, the timer stops, or ctx ends.
func watchPlain(ctx context.Context, app *App, out io.Writer) error {
	if st := app.Timer.State(ctx); !st.IsRunning {
		fmt.Fprintf(out, "%s %s\n", formatter.TimerLabel(st), formatter.FormatClock(app.Timer.Display(ctx), st.Type))
		return nil
	}

	var (
		alarm domain.CountdownAlarm
		last  string
	)
	err := ticker.Poll(ctx, app.pollInterval(), func(time.Time) bool {
		now := app.now()
		st := app.Timer.State(ctx)
		d := domain.ComputeDisplayTime(st, now)

		line := formatter.FormatClock(d, st.Type)
		if line != last {
			fmt.Fprintf(out, "\r%s %s", formatter.TimerLabel(st), line)
			last = line
		}
		if alarm.Observe(st, now) {
			fmt.Fprint(out, "\nRest over!")
			if app.Bell {
				fmt.Fprint(out, "\a")
			}
		}
		return !st.IsRunning || (st.Type == domain.TimerRest && d == 0)
	})
	fmt.Fprintln(out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets"},
		Short:   "Manage rest timer presets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List presets",
			RunE: func(cmd *cobra.Command, args []string) error {
				writeln(cmd.OutOrStdout(), formatter.FormatPresets(app.Timer.Presets(cmd.Context())))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add DURATION [LABEL]",
			Short: "Add a preset",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := parseDuration(args[0])
				if err != nil {
					return err
				}
				p, err := app.Timer.SavePreset(cmd.Context(), d, strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added preset %s (%s)\n", formatter.Bold(p.Label), p.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "update ID DURATION [LABEL]",
			Short: "Change a preset",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				id, err := resolvePreset(ctx, app, args[0])
				if err != nil {
					return err
				}
				d, err := parseDuration(args[1])
				if err != nil {
					return err
				}
				p, err := app.Timer.UpdatePreset(ctx, id, d, strings.Join(args[2:], " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated preset %s\n", formatter.Bold(p.Label))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove ID",
			Short: "Delete a preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				id, err := resolvePreset(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Timer.DeletePreset(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "start ID",
			Short: "Restart the rest timer with a preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				id, err := resolvePreset(ctx, app, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Timer.StartPreset(ctx, id); err != nil {
					return err
				}
				return showTimer(cmd, app)
			},
		},
	)

	return cmd
}

// parseDuration reads bare numbers as seconds and anything else as a Go
// duration ("90s", "1m30s").
func parseDuration(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: use seconds (90) or a duration (90s, 2m)", s)
	}
	return d, nil
}
