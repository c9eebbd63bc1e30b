package cli

import (
	"fmt"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "units [kg|lb|toggle]",
		Short:     "Show or change the weight unit",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"kg", "lb", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch arg := argOrEmpty(args); arg {
			case "":
			case "toggle":
				if _, err := app.Settings.ToggleUnits(ctx); err != nil {
					return err
				}
			default:
				u, err := domain.ParseUnitSystem(arg)
				if err != nil {
					return err
				}
				if err := app.Settings.SetUnits(ctx, u); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Units: %s\n", app.Settings.Units(ctx))
			return nil
		},
	})

	return cmd
}
