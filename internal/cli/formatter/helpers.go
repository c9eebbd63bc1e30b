package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanDate reads "Today", "Yesterday" or a short calendar date, judged
// in now's location.
func HumanDate(t, now time.Time) string {
	t = t.In(now.Location())
	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	if t.Year() == now.Year() {
		return t.Format("Mon, Jan 2")
	}
	return t.Format("Jan 2, 2006")
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatNumber drops a trailing ".0": 225, 62.5, 1.25.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatWeight renders a load with its unit, e.g. "62.5 kg".
func FormatWeight(v float64, units domain.UnitSystem) string {
	return FormatNumber(v) + " " + string(units)
}

// FormatVolume rounds to a whole number and groups thousands.
func FormatVolume(v float64, units domain.UnitSystem) string {
	n := strconv.FormatFloat(v, 'f', 0, 64)
	var b strings.Builder
	for i, r := range n {
		if i > 0 && (len(n)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + " " + string(units)
}

// FormatClock renders a timer reading. A rest countdown shows m:ss with
// seconds rounded up, so it reads 0:00 only when time is really up. A
// stopwatch shows m:ss.cc rounded down.
func FormatClock(d time.Duration, t domain.TimerType) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	if t == domain.TimerRest {
		secs := (ms + 999) / 1000
		return fmt.Sprintf("%d:%02d", secs/60, secs%60)
	}
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d.%02d", secs/60, secs%60, (ms%1000)/10)
}

// FormatElapsed renders a running workout's length as h:mm:ss, or m:ss
// under an hour.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, (secs/60)%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
