package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/ironlog/internal/importer"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import " + importer.FileExtension + " backups",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string
	var choose, noPhotos bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of workouts, exercises and notes",
		Long: "Writes to the backup directory by default. --out writes to a path " +
			"(\"-\" for stdout); --choose asks for the destination.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := importer.ExportOptions{IncludePhotos: !noPhotos}

			var (
				path string
				err  error
			)
			switch {
			case out == "-":
				return app.Backups.Write(ctx, cmd.OutOrStdout(), opts)
			case out != "":
				path, err = app.Backups.ExportTo(ctx, fixedDestination(out), opts)
			case choose:
				chooser, cerr := app.chooser()
				if cerr != nil {
					return cerr
				}
				path, err = app.Backups.ExportTo(ctx, chooser, opts)
			default:
				path, err = app.Backups.ExportDefault(ctx, opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination path, or - for stdout")
	cmd.Flags().BoolVar(&choose, "choose", false, "Ask where to save the backup")
	cmd.Flags().BoolVar(&noPhotos, "no-photos", false, "Leave progress photo references out")
	cmd.MarkFlagsMutuallyExclusive("out", "choose")
	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace workouts, exercises and notes with a backup's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening backup: %w", err)
			}
			defer f.Close()

			res, err := app.Backups.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d workouts, %d exercises, %d notes\n",
				res.Workouts, res.Exercises, res.Notes)
			if res.ActiveCleared {
				writeln(cmd.OutOrStdout(), "The workout that was in progress is not in the backup; it is no longer active.")
			}
			return nil
		},
	}
}

// fixedDestination is a chooser that always answers with one path.
type fixedDestination string

func (d fixedDestination) ChooseDestination(_ context.Context, _ string) (string, error) {
	return string(d), nil
}

func (a *App) chooser() (service.DestinationChooser, error) {
	if a.Chooser != nil {
		return a.Chooser, nil
	}
	if !a.interactive() {
		return nil, fmt.Errorf("--choose needs an interactive terminal; use --out PATH instead")
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("finding working directory: %w", err)
	}
	return huhChooser{dir: dir}, nil
}
