package cli

import (
	"fmt"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add, update and remove sets",
	}

	cmd.AddCommand(
		newSetAddCmd(app),
		newSetUpdateCmd(app),
		newSetRemoveCmd(app),
	)

	return cmd
}

func newSetAddCmd(app *App) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "add EXERCISE",
		Short: "Add a set to an exercise, copying the previous set's reps and weight",
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
			w, err = app.Workouts.AddSet(ctx, w.ID, we.ID)
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

func newSetUpdateCmd(app *App) *cobra.Command {
	var workoutID string
	var reps int
	var weight float64
	var done, undone bool

	cmd := &cobra.Command{
		Use:   "update EXERCISE SET",
		Short: "Change a set's reps, weight or completion",
		Long:  "EXERCISE is a position, id or name; SET is a position or id. Only the flags given are changed.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if done && undone {
				return fmt.Errorf("--done and --undone are mutually exclusive")
			}

			var patch service.SetPatch
			if cmd.Flags().Changed("reps") {
				patch.Reps = &reps
			}
			if cmd.Flags().Changed("weight") {
				patch.Weight = &weight
			}
			if done || undone {
				completed := done
				patch.Completed = &completed
			}
			if patch == (service.SetPatch{}) {
				return fmt.Errorf("nothing to update: pass --reps, --weight, --done or --undone")
			}

			w, err := resolveWorkout(ctx, app, workoutID)
			if err != nil {
				return err
			}
			we, err := resolveWorkoutExercise(app, w, args[0])
			if err != nil {
				return err
			}
			setID, err := resolveSet(we, args[1])
			if err != nil {
				return err
			}
			w, err = app.Workouts.UpdateSet(ctx, w.ID, we.ID, setID, patch)
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), formatter.FormatWorkout(w, app.Workouts.ResolveExerciseName, app.currentUnits(cmd), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "Repetitions")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Weight in the current unit")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the set completed")
	cmd.Flags().BoolVar(&undone, "undone", false, "Mark the set not completed")
	return cmd
}

func newSetRemoveCmd(app *App) *cobra.Command {
	var workoutID string

	cmd := &cobra.Command{
		Use:   "remove EXERCISE SET",
		Short: "Remove a set",
		Args:  cobra.ExactArgs(2),
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
			setID, err := resolveSet(we, args[1])
			if err != nil {
				return err
			}
			if _, err := app.Workouts.RemoveSet(ctx, w.ID, we.ID, setID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed set from %s\n", app.Workouts.ResolveExerciseName(we.ExerciseID))
			return nil
		},
	}

	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout ID (default: the one in progress)")
	return cmd
}
