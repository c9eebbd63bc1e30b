package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ironlogHuhTheme returns a huh theme matching the formatter palette.
func ironlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// templateOptions lists the built-in templates, then a blank workout.
func templateOptions() []huh.Option[string] {
	templates := domain.Templates()
	options := make([]huh.Option[string], 0, len(templates)+1)
	for _, tpl := range templates {
		label := fmt.Sprintf("%s (%d exercises)", tpl.Name, len(tpl.ExerciseIDs))
		options = append(options, huh.NewOption(label, tpl.Name))
	}
	return append(options, huh.NewOption(domain.DefaultWorkoutName, ""))
}

// wizardPickTemplate builds the form that asks which workout to start.
func wizardPickTemplate(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Start which workout?").
				Options(templateOptions()...).
				Value(result),
		),
	).WithTheme(ironlogHuhTheme())
}

// promptTemplate runs the picker. Backing out yields ErrCancelled.
func promptTemplate() (string, error) {
	var choice string
	if err := wizardPickTemplate(&choice).Run(); err != nil {
		return "", formErr(err)
	}
	return choice, nil
}

// huhChooser asks for a backup path in the terminal, defaulting to the
// suggested file name in dir.
type huhChooser struct {
	dir string
}

func (c huhChooser) ChooseDestination(ctx context.Context, suggestedName string) (string, error) {
	path := filepath.Join(c.dir, suggestedName)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Save backup to").
				Description("Esc to cancel").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a path is required")
					}
					return nil
				}),
		),
	).WithTheme(ironlogHuhTheme())

	if err := form.RunWithContext(ctx); err != nil {
		return "", formErr(err)
	}
	return strings.TrimSpace(path), nil
}

// formErr turns a user abort into ErrCancelled.
func formErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return service.ErrCancelled
	}
	return err
}
