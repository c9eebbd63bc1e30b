package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/metrics"
)

// NameResolver maps an exercise id to its display name.
type NameResolver func(exerciseID string) string

// FormatWorkout renders one workout with every exercise and set.
func FormatWorkout(w domain.Workout, resolve NameResolver, units domain.UnitSystem, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StatusPill(w.Status()), TruncID(w.ID)))
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Date:"), HumanDate(w.Date, now),
		Dim("Started:"), w.StartTime.In(now.Location()).Format("15:04")))
	if w.IsFinished() {
		s := metrics.Summarize(w)
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Duration:"), FormatMinutes(s.DurationMinutes)))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Elapsed:"), FormatElapsed(metrics.Elapsed(w, now))))
	}

	if len(w.Exercises) == 0 {
		b.WriteString("\n" + Dim("No exercises yet.") + "\n")
	}
	for _, we := range w.Exercises {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(resolve(we.ExerciseID)), TruncID(we.ID)))
		if we.Notes != "" {
			b.WriteString(Dim(we.Notes) + "\n")
		}
		if len(we.Sets) == 0 {
			b.WriteString(Dim("  no sets") + "\n")
			continue
		}
		rows := make([][]string, 0, len(we.Sets))
		for i, set := range we.Sets {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", set.Reps),
				FormatWeight(set.Weight, units),
				SetMark(set.Completed),
				TruncID(set.ID),
			})
		}
		b.WriteString(RenderTable([]string{"SET", "REPS", "WEIGHT", "DONE", "ID"}, rows))
	}

	if w.Notes != "" {
		b.WriteString("\n" + Header("Notes") + "\n" + w.Notes + "\n")
	}
	if w.PhotoURL != "" {
		b.WriteString("\n" + Dim("Photo: ") + w.PhotoURL + "\n")
	}
	return RenderBox(w.Name, b.String())
}

// FormatWorkoutList renders the log, newest first.
func FormatWorkoutList(workouts []domain.Workout, resolve NameResolver, now time.Time) string {
	if len(workouts) == 0 {
		return RenderBox("Workouts", Dim("No workouts logged yet. Start one with `ironlog workout start`."))
	}
	rows := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, workoutRow(w, resolve, now))
	}
	headers := []string{"ID", "NAME", "DATE", "STATUS", "EXERCISES"}
	return RenderBox("Workouts", RenderTable(headers, rows))
}

func workoutRow(w domain.Workout, resolve NameResolver, now time.Time) []string {
	return []string{
		TruncID(w.ID),
		Bold(w.Name),
		HumanDate(w.Date, now),
		StatusPill(w.Status()),
		Dim(metrics.ExerciseSummaryLine(w, resolve)),
	}
}

// FormatSummary is the recap shown after a workout ends.
func FormatSummary(w domain.Workout, units domain.UnitSystem, now time.Time) string {
	s := metrics.Summarize(w)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n%s\n\n", Bold(w.Name), Dim(HumanDate(w.Date, now))))
	b.WriteString(fmt.Sprintf("%-10s %s\n", Dim("Sets"), StyleGreen.Render(fmt.Sprintf("%d", s.TotalSets))))
	b.WriteString(fmt.Sprintf("%-10s %s\n", Dim("Volume"), StyleGreen.Render(FormatVolume(s.TotalVolume, units))))
	b.WriteString(fmt.Sprintf("%-10s %s\n", Dim("Duration"), StyleGreen.Render(FormatMinutes(s.DurationMinutes))))
	return RenderBox("Workout Summary", b.String())
}

// HomeView is what the landing screen shows.
type HomeView struct {
	Active        *domain.Workout
	Today         []domain.Workout
	Recent        []domain.Workout
	FinishedCount int
}

func FormatHome(v HomeView, resolve NameResolver, now time.Time) string {
	var b strings.Builder

	if v.Active != nil {
		b.WriteString(fmt.Sprintf("%s %s  %s\n%s\n\n",
			StyleGreen.Render("▶ Active:"), Bold(v.Active.Name),
			FormatElapsed(metrics.Elapsed(*v.Active, now)),
			Dim(metrics.ExerciseSummaryLine(*v.Active, resolve))))
	} else {
		b.WriteString(Dim("No workout in progress.") + "\n\n")
	}

	b.WriteString(Header("Today") + "\n")
	if len(v.Today) == 0 {
		b.WriteString(Dim("Nothing logged today.") + "\n")
	}
	for _, w := range v.Today {
		b.WriteString(fmt.Sprintf("%s  %s\n", StatusPill(w.Status()), w.Name))
	}

	b.WriteString("\n" + Header("Recent") + "\n")
	if len(v.Recent) == 0 {
		b.WriteString(Dim("No earlier workouts.") + "\n")
	} else {
		rows := make([][]string, 0, len(v.Recent))
		for _, w := range v.Recent {
			rows = append(rows, []string{
				HumanDate(w.Date, now),
				Bold(w.Name),
				Dim(metrics.ExerciseSummaryLine(w, resolve)),
			})
		}
		b.WriteString(RenderTable([]string{"DATE", "NAME", "EXERCISES"}, rows))
	}

	b.WriteString(fmt.Sprintf("\n%s %d\n", Dim("Workouts completed:"), v.FinishedCount))
	return RenderBox("ironlog", b.String())
}

// FormatExercises lists the exercise library.
func FormatExercises(exercises []domain.Exercise) string {
	rows := make([][]string, 0, len(exercises))
	for _, ex := range exercises {
		kind := ""
		if ex.Custom {
			kind = StylePurple.Render("custom")
		}
		rows = append(rows, []string{Dim(ex.ID), Bold(ex.Name), ex.MuscleGroup, kind})
	}
	return RenderBox("Exercises", RenderTable([]string{"ID", "NAME", "MUSCLE GROUP", ""}, rows))
}
