package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"w"},
		Short:   "Start, finish and edit workouts",
	}

	cmd.AddCommand(
		newWorkoutStartCmd(app),
		newWorkoutFinishCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutListCmd(app),
		newWorkoutDeleteCmd(app),
		newWorkoutAddExerciseCmd(app),
		newWorkoutRemoveExerciseCmd(app),
		newWorkoutNotesCmd(app),
		newWorkoutPhotoCmd(app),
	)

	return cmd
}

func newWorkoutStartCmd(app *App) *cobra.Command {
	var templateName string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a workout, optionally from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("template") && app.interactive() {
				choice, err := promptTemplate()
				if err != nil {
					return err
				}
				templateName = choice
			}

			w, err := app.Workouts.Start(ctx, templateName)
			var activeErr *service.ActiveWorkoutError
			if errors.As(err, &activeErr) {
				return fmt.Errorf("%q is still in progress; run `ironlog workout finish` first", activeErr.Name)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Started %s (%s)\n", formatter.Bold(w.Name), formatter.TruncID(w.ID))
			writeln(cmd.OutOrStdout(), formatter.FormatWorkout(w, app.Workouts.ResolveExerciseName, app.currentUnits(cmd), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "", "Template name (Push Day, Pull Day, Leg Day); empty for a custom workout")
	return cmd
}

func newWorkoutFinishCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Finish the workout in progress and show its summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			done, err := app.Workouts.Finish(cmd.Context())
			if err != nil {
				return err
			}
			if done == nil {
				writeln(cmd.OutOrStdout(), "No workout in progress.")
				return nil
			}
			writeln(cmd.OutOrStdout(), formatter.FormatSummary(*done, app.currentUnits(cmd), app.now()))
			return nil
		},
	}
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [ID]",
		Short: "Show a workout (default: the one in progress)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := resolveWorkout(cmd.Context(), app, argOrEmpty(args))
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), formatter.FormatWorkout(w, app.Workouts.ResolveExerciseName, app.currentUnits(cmd), app.now()))
			return nil
		},
	}
}

func newWorkoutListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts := app.Workouts.List(cmd.Context())
			if limit > 0 && len(workouts) > limit {
				workouts = workouts[:limit]
			}
			writeln(cmd.OutOrStdout(), formatter.FormatWorkoutList(workouts, app.Workouts.ResolveExerciseName, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many workouts")
	return cmd
}

func newWorkoutDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workouts.Delete(ctx, w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}
}

func newWorkoutAddExerciseCmd(app *App) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "add-exercise EXERCISE",
		Short: "Add an exercise (library id or name) to a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, workoutID)
			if err != nil {
				return err
			}
			exID, err := resolveExercise(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err = app.Workouts.AddExercise(ctx, w.ID, exID)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), formatter.FormatWorkout(w, app.Workouts.ResolveExerciseName, app.currentUnits(cmd), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	return cmd
}

func newWorkoutRemoveExerciseCmd(app *App) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "remove-exercise EXERCISE",
		Short: "Remove an exercise (position, id or name) from a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, workoutID)
			if err != nil {
				return err
			}
			we, err := resolveWorkoutExercise(app, w, args[0])
			if err != nil {
				return err
			}
			if _, err := app.Workouts.RemoveExercise(ctx, w.ID, we.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", app.Workouts.ResolveExerciseName(we.ExerciseID))
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	return cmd
}

func newWorkoutNotesCmd(app *App) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "notes TEXT",
		Short: "Set the notes on a workout (empty text clears them)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := resolveWorkout(ctx, app, workoutID)
			if err != nil {
				return err
			}
			if _, err := app.Workouts.SetNotes(ctx, w.ID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated notes on %s\n", w.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	return cmd
}

func newWorkoutPhotoCmd(app *App) *cobra.Command {
	var workoutID string
	var remove bool

	cmd := &cobra.Command{
		Use:   "photo [URL]",
		Short: "Attach a progress photo reference to a workout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := argOrEmpty(args)
			if url == "" && !remove {
				return fmt.Errorf("a photo URL is required (or --clear to remove it)")
			}
			w, err := resolveWorkout(ctx, app, workoutID)
			if err != nil {
				return err
			}
			if _, err := app.Workouts.SetPhoto(ctx, w.ID, url); err != nil {
				return err
			}
			if url == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed photo from %s\n", w.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Attached photo to %s\n", w.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	cmd.Flags().BoolVar(&remove, "clear", false, "Remove the photo")
	return cmd
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
