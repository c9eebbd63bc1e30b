package cli

import (
	"fmt"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/metrics"
	"github.com/spf13/cobra"
)

const recentLimit = 5

func newProgressCmd(app *App) *cobra.Command {
	var exercise string
	metricFlag := newEnumFlag(string(domain.MetricMaxWeight), string(domain.MetricMaxWeight), string(domain.MetricVolume))
	rangeFlag := newEnumFlag(string(domain.RangeMonth), string(domain.RangeWeek), string(domain.RangeMonth), string(domain.RangeAll))

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Chart an exercise's best weight or volume per session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			metric, err := domain.ParseMetric(metricFlag.String())
			if err != nil {
				return err
			}
			timeRange, err := domain.ParseTimeRange(rangeFlag.String())
			if err != nil {
				return err
			}
			exID, err := resolveExercise(ctx, app, exercise)
			if err != nil {
				return err
			}

			now := app.now()
			points := metrics.ExerciseSeries(app.Workouts.List(ctx), exID, metric, timeRange, now)
			title := fmt.Sprintf("%s · %s", app.Workouts.ResolveExerciseName(exID), timeRange)
			writeln(cmd.OutOrStdout(), formatter.FormatSeries(title, points, metric, app.currentUnits(cmd), now))
			return nil
		},
	}

	cmd.Flags().StringVarP(&exercise, "exercise", "e", "", "Exercise id or name")
	cmd.Flags().VarP(metricFlag, "metric", "m", "Metric to chart")
	cmd.Flags().VarP(rangeFlag, "range", "r", "Time window")
	_ = cmd.MarkFlagRequired("exercise")
	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [ID]",
		Short: "Recap a workout (default: the last one finished)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var w domain.Workout
			if len(args) == 1 {
				found, err := resolveWorkout(ctx, app, args[0])
				if err != nil {
					return err
				}
				w = found
			} else {
				last := metrics.LastFinishedWorkout(app.Workouts.List(ctx))
				if last == nil {
					writeln(cmd.OutOrStdout(), "No finished workouts yet.")
					return nil
				}
				w = *last
			}
			writeln(cmd.OutOrStdout(), formatter.FormatSummary(w, app.currentUnits(cmd), app.now()))
			return nil
		},
	}
}

func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the active workout, today's log and recent workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, app)
		},
	}
}

func runHome(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	now := app.now()
	workouts := app.Workouts.List(ctx)

	view := formatter.HomeView{
		Active:        app.Workouts.Active(ctx),
		Today:         metrics.WorkoutsOn(workouts, now),
		Recent:        metrics.RecentFinished(workouts, now, recentLimit),
		FinishedCount: metrics.FinishedCount(workouts),
	}
	writeln(cmd.OutOrStdout(), formatter.FormatHome(view, app.Workouts.ResolveExerciseName, now))
	return nil
}
