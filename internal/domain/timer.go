package domain

import "time"

// DefaultTimerDuration is the countdown length of a fresh rest timer.
const DefaultTimerDuration = 60 * time.Second

// TimerState is the persisted rest timer / stopwatch. Instants are epoch
// milliseconds. A running timer always has StartTime set; a paused one
// has PausedAt set and is not running. All transitions return a new value.
type TimerState struct {
	Type      TimerType `json:"type"`
	StartTime *int64    `json:"startTime"`
	Duration  int64     `json:"duration"`
	PausedAt  *int64    `json:"pausedAt"`
	IsRunning bool      `json:"isRunning"`
}

// DefaultTimer is an idle 60 second rest timer.
func DefaultTimer() TimerState {
	return TimerState{Type: TimerRest, Duration: DefaultTimerDuration.Milliseconds()}
}

func msPtr(v int64) *int64 { return &v }

// DurationValue returns the countdown length.
func (t TimerState) DurationValue() time.Duration {
	return time.Duration(t.Duration) * time.Millisecond
}

// IsPaused reports a timer that was started and then paused.
func (t TimerState) IsPaused() bool {
	return !t.IsRunning && t.PausedAt != nil && t.StartTime != nil
}

// IsIdle reports a timer that has not been started since its last reset.
func (t TimerState) IsIdle() bool {
	return !t.IsRunning && t.StartTime == nil
}

// WithType switches mode and clears run state. Duration is kept.
func (t TimerState) WithType(tt TimerType) TimerState {
	return TimerState{Type: tt, Duration: t.Duration}
}

// Started starts or resumes the timer at now. Resuming from pause shifts
// StartTime forward by the paused interval so elapsed time is preserved.
// A non-nil duration replaces the stored countdown length first.
func (t TimerState) Started(now time.Time, duration *time.Duration) TimerState {
	out := t
	if duration != nil {
		out.Duration = duration.Milliseconds()
	}
	nowMs := now.UnixMilli()
	if t.IsPaused() {
		out.StartTime = msPtr(nowMs - (*t.PausedAt - *t.StartTime))
	} else {
		out.StartTime = msPtr(nowMs)
	}
	out.PausedAt = nil
	out.IsRunning = true
	return out
}

// Paused freezes a running timer. Pausing an idle or paused timer is a no-op.
func (t TimerState) Paused(now time.Time) TimerState {
	if !t.IsRunning {
		return t
	}
	out := t
	out.PausedAt = msPtr(now.UnixMilli())
	out.IsRunning = false
	return out
}

// Reset clears run state and keeps type and duration.
func (t TimerState) Reset() TimerState {
	return TimerState{Type: t.Type, Duration: t.Duration}
}

// Display is the value a clock face shows at now.
func (t TimerState) Display(now time.Time) time.Duration {
	return ComputeDisplayTime(t, now)
}

// ComputeDisplayTime returns elapsed time for a stopwatch, or remaining
// time clamped at zero for a rest timer. An idle rest timer shows its
// full duration and an idle stopwatch shows zero.
func ComputeDisplayTime(t TimerState, now time.Time) time.Duration {
	if t.StartTime == nil {
		if t.Type == TimerRest {
			return t.DurationValue()
		}
		return 0
	}
	ref := now.UnixMilli()
	if !t.IsRunning && t.PausedAt != nil {
		ref = *t.PausedAt
	}
	elapsed := ref - *t.StartTime
	if t.Type == TimerStopwatch {
		if elapsed < 0 {
			return 0
		}
		return time.Duration(elapsed) * time.Millisecond
	}
	remaining := t.Duration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return time.Duration(remaining) * time.Millisecond
}

// Normalize repairs a decoded state so the run-state invariants hold.
func (t TimerState) Normalize() TimerState {
	out := t
	if _, err := ParseTimerType(string(out.Type)); err != nil {
		out.Type = TimerRest
	}
	if out.Duration < 0 {
		out.Duration = 0
	}
	if out.StartTime == nil {
		out.IsRunning = false
		out.PausedAt = nil
	}
	if out.IsRunning {
		out.PausedAt = nil
	}
	return out
}

// TimerPreset is a named rest duration, in milliseconds.
type TimerPreset struct {
	ID       string `json:"id"`
	Duration int64  `json:"duration"`
	Label    string `json:"label"`
}

// DurationValue returns the preset length.
func (p TimerPreset) DurationValue() time.Duration {
	return time.Duration(p.Duration) * time.Millisecond
}

// DefaultPresets returns the presets offered on first run.
func DefaultPresets() []TimerPreset {
	return []TimerPreset{
		{ID: "p30", Duration: 30_000, Label: "30s"},
		{ID: "p60", Duration: 60_000, Label: "60s"},
		{ID: "p90", Duration: 90_000, Label: "90s"},
		{ID: "p120", Duration: 120_000, Label: "2m"},
	}
}

// CountdownAlarm detects the moment a running rest countdown reaches zero.
// Feed it every observed state; it reports true once per countdown.
type CountdownAlarm struct {
	last time.Duration
	seen bool
}

// Observe records the display at now and reports whether the countdown
// just crossed from positive to zero.
func (a *CountdownAlarm) Observe(t TimerState, now time.Time) bool {
	d := ComputeDisplayTime(t, now)
	fired := t.Type == TimerRest && t.IsRunning && a.seen && a.last > 0 && d == 0
	a.last = d
	a.seen = true
	return fired
}
