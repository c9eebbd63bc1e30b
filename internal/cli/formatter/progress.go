package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/metrics"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a bar filled to pct of width. The fill is green at
// the top of the range, yellow in the middle and red at the bottom.
func RenderBar(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return style.Render(bar)
}

const seriesBarWidth = 24

// FormatSeries charts one point per session, each bar scaled against the
// personal record.
func FormatSeries(title string, points []metrics.Point, metric domain.Metric, units domain.UnitSystem, now time.Time) string {
	if len(points) == 0 {
		return RenderBox(title, Dim("No data for this exercise in the selected range."))
	}

	pr := metrics.PersonalRecord(points)
	value := func(v float64) string {
		if metric == domain.MetricVolume {
			return FormatVolume(v, units)
		}
		return FormatWeight(v, units)
	}

	headers := []string{"DATE", "", strings.ToUpper(metricLabel(metric))}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		v := value(p.Value)
		if p.Value == pr {
			v = StyleYellow.Render(v + " ★")
		}
		rows = append(rows, []string{HumanDate(p.Date, now), RenderBar(p.Value/pr, seriesBarWidth), v})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %d\n",
		Dim("Personal record:"), Bold(value(pr)),
		Dim("Sessions:"), metrics.SessionCount(points)))
	return RenderBox(title, b.String())
}

func metricLabel(m domain.Metric) string {
	if m == domain.MetricVolume {
		return "Volume"
	}
	return "Max Weight"
}
