package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Keep a training journal",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add TEXT...",
			Short: "Add a note",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := app.Notes.Add(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", formatter.TruncID(n.ID))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List notes, newest first",
			RunE: func(cmd *cobra.Command, args []string) error {
				writeln(cmd.OutOrStdout(), formatter.FormatNotes(app.Notes.List(cmd.Context()), app.now()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit ID TEXT...",
			Short: "Replace a note's text",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				id, err := resolveNote(ctx, app, args[0])
				if err != nil {
					return err
				}
				if _, err := app.Notes.Update(ctx, id, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", formatter.TruncID(id))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove ID",
			Short: "Delete a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				id, err := resolveNote(ctx, app, args[0])
				if err != nil {
					return err
				}
				if err := app.Notes.Delete(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", formatter.TruncID(id))
				return nil
			},
		},
	)

	return cmd
}
