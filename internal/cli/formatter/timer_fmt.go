package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
)

// TimerLabel names the timer's mode and run state, e.g. "Rest · paused".
func TimerLabel(t domain.TimerState) string {
	mode := "Rest"
	if t.Type == domain.TimerStopwatch {
		mode = "Stopwatch"
	}
	switch {
	case t.IsRunning:
		return mode + " · running"
	case t.IsPaused():
		return mode + " · paused"
	default:
		return mode + " · ready"
	}
}

// FormatTimer renders the clock face at a given reading.
func FormatTimer(t domain.TimerState, display time.Duration) string {
	clock := FormatClock(display, t.Type)
	style := StyleFg
	switch {
	case t.Type == domain.TimerRest && t.IsRunning && display == 0:
		style = StyleRed
	case t.IsRunning:
		style = StyleGreen
	case t.IsPaused():
		style = StyleYellow
	}
	return RenderBox(TimerLabel(t), style.Bold(true).Render(clock))
}

func FormatPresets(presets []domain.TimerPreset) string {
	if len(presets) == 0 {
		return RenderBox("Rest Presets", Dim("No presets. Add one with `ironlog timer preset add`."))
	}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{Dim(p.ID), Bold(p.Label), FormatClock(p.DurationValue(), domain.TimerRest)})
	}
	return RenderBox("Rest Presets", RenderTable([]string{"ID", "LABEL", "DURATION"}, rows))
}

// FormatNotes renders the journal, newest first.
func FormatNotes(notes []domain.Note, now time.Time) string {
	if len(notes) == 0 {
		return RenderBox("Notes", Dim("No notes yet."))
	}
	var b strings.Builder
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n%s\n", StyleBlue.Render(HumanDate(n.Date, now)), TruncID(n.ID), n.Text))
	}
	return RenderBox("Notes", b.String())
}
