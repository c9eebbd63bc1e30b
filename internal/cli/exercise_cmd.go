package cli

import (
	"fmt"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Aliases: []string{"ex"},
		Short:   "Browse and extend the exercise library",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every exercise",
			RunE: func(cmd *cobra.Command, args []string) error {
				writeln(cmd.OutOrStdout(), formatter.FormatExercises(app.Workouts.Exercises(cmd.Context())))
				return nil
			},
		},
		newExerciseNewCmd(app),
		&cobra.Command{
			Use:   "name ID",
			Short: "Print the name of an exercise id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				writeln(cmd.OutOrStdout(), app.Workouts.ResolveExerciseName(args[0]))
				return nil
			},
		},
	)

	return cmd
}

func newExerciseNewCmd(app *App) *cobra.Command {
	var muscleGroup string

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a custom exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := app.Workouts.CreateCustomExercise(cmd.Context(), args[0], muscleGroup)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s, %s)\n", formatter.Bold(ex.Name), ex.MuscleGroup, ex.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&muscleGroup, "muscle-group", "m", "", "Muscle group (default Other)")
	return cmd
}
