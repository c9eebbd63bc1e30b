package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		typ  domain.TimerType
		want string
	}{
		{"rest full minute", 60 * time.Second, domain.TimerRest, "1:00"},
		{"rest rounds up", 59*time.Second + 200*time.Millisecond, domain.TimerRest, "1:00"},
		{"rest last sliver", 10 * time.Millisecond, domain.TimerRest, "0:01"},
		{"rest done", 0, domain.TimerRest, "0:00"},
		{"stopwatch zero", 0, domain.TimerStopwatch, "0:00.00"},
		{"stopwatch centis", 61*time.Second + 239*time.Millisecond, domain.TimerStopwatch, "1:01.23"},
		{"negative clamps", -time.Second, domain.TimerStopwatch, "0:00.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.d, tt.typ))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00", FormatElapsed(0))
	assert.Equal(t, "4:05", FormatElapsed(4*time.Minute+5*time.Second))
	assert.Equal(t, "1:02:03", FormatElapsed(time.Hour+2*time.Minute+3*time.Second))
}

func TestFormatWeightAndVolume(t *testing.T) {
	assert.Equal(t, "225 lb", FormatWeight(225, domain.UnitLb))
	assert.Equal(t, "62.5 kg", FormatWeight(62.5, domain.UnitKg))
	assert.Equal(t, "12,345 lb", FormatVolume(12345.4, domain.UnitLb))
	assert.Equal(t, "1,000,000 kg", FormatVolume(1e6, domain.UnitKg))
	assert.Equal(t, "950 kg", FormatVolume(950, domain.UnitKg))
}

func TestHumanDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDate(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDate(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sun, Mar 1", HumanDate(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Sep 30, 2022", HumanDate(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{Bold("long cell"), "x"}, {"s", "y"}}))
	assert.Contains(t, out, "A          B\n")
	assert.Contains(t, out, "long cell  x\n")
	assert.Contains(t, out, "s          y\n")
}
