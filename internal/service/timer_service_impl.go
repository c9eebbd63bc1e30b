package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/repository"
)

type timerService struct {
	core
}

func NewTimerService(state *State, store *repository.StateStore, opts ...Option) TimerService {
	return &timerService{core: newCore(state, store, opts)}
}

func (s *timerService) State(ctx context.Context) domain.TimerState {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Timer
}

// Display is what the clock face shows right now.
func (s *timerService) Display(ctx context.Context) time.Duration {
	return domain.ComputeDisplayTime(s.State(ctx), s.now())
}

// transition persists the state fn derives from the current timer.
func (s *timerService) transition(ctx context.Context, useCase string, fields map[string]any, fn func(t domain.TimerState, now time.Time) domain.TimerState) (next domain.TimerState, err error) {
	startedAt := s.now()
	defer func() { s.observe(ctx, useCase, startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	next = fn(s.state.Timer, startedAt)
	if err = s.store.SaveTimer(ctx, next); err != nil {
		return s.state.Timer, fmt.Errorf("saving timer: %w", err)
	}
	s.state.Timer = next
	return next, nil
}

// SetType switches between rest timer and stopwatch, clearing run state.
func (s *timerService) SetType(ctx context.Context, t domain.TimerType) (domain.TimerState, error) {
	if _, err := domain.ParseTimerType(string(t)); err != nil {
		return s.State(ctx), err
	}
	return s.transition(ctx, "set-timer-type", map[string]any{"type": string(t)},
		func(cur domain.TimerState, _ time.Time) domain.TimerState {
			return cur.WithType(t)
		})
}

// Start starts or resumes the timer. A non-nil duration replaces the
// countdown length.
func (s *timerService) Start(ctx context.Context, duration *time.Duration) (domain.TimerState, error) {
	fields := map[string]any{}
	if duration != nil {
		if *duration <= 0 {
			return s.State(ctx), ErrInvalidDuration
		}
		fields["duration_ms"] = duration.Milliseconds()
	}
	return s.transition(ctx, "start-timer", fields, func(cur domain.TimerState, now time.Time) domain.TimerState {
		return cur.Started(now, duration)
	})
}

func (s *timerService) Pause(ctx context.Context) (domain.TimerState, error) {
	return s.transition(ctx, "pause-timer", nil, func(cur domain.TimerState, now time.Time) domain.TimerState {
		return cur.Paused(now)
	})
}

func (s *timerService) Reset(ctx context.Context) (domain.TimerState, error) {
	return s.transition(ctx, "reset-timer", nil, func(cur domain.TimerState, _ time.Time) domain.TimerState {
		return cur.Reset()
	})
}

// StartPreset restarts the timer from zero with the preset's duration.
func (s *timerService) StartPreset(ctx context.Context, id string) (domain.TimerState, error) {
	preset, ok := s.findPreset(id)
	if !ok {
		return s.State(ctx), fmt.Errorf("preset %s: %w", id, ErrPresetNotFound)
	}
	d := preset.DurationValue()
	return s.transition(ctx, "start-preset", map[string]any{"preset_id": id},
		func(cur domain.TimerState, now time.Time) domain.TimerState {
			return cur.Reset().Started(now, &d)
		})
}

func (s *timerService) findPreset(id string) (domain.TimerPreset, bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := slices.IndexFunc(s.state.Presets, func(p domain.TimerPreset) bool { return p.ID == id })
	if i < 0 {
		return domain.TimerPreset{}, false
	}
	return s.state.Presets[i], true
}

func (s *timerService) Presets(ctx context.Context) []domain.TimerPreset {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return slices.Clone(s.state.Presets)
}

// PresetLabel names a duration the way the default presets do: "45s",
// "2m", "1m30s".
func PresetLabel(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs%60 == 0:
		return fmt.Sprintf("%dm", secs/60)
	default:
		return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
	}
}

func (s *timerService) savePresets(ctx context.Context, presets []domain.TimerPreset) error {
	if err := s.store.SavePresets(ctx, presets); err != nil {
		return fmt.Errorf("saving timer presets: %w", err)
	}
	s.state.Presets = presets
	return nil
}

// SavePreset appends a preset. Labels and durations need not be unique;
// a blank label is derived from the duration.
func (s *timerService) SavePreset(ctx context.Context, duration time.Duration, label string) (preset domain.TimerPreset, err error) {
	startedAt := s.now()
	fields := map[string]any{"duration_ms": duration.Milliseconds()}
	defer func() { s.observe(ctx, "save-preset", startedAt, fields, err) }()

	if duration <= 0 {
		return domain.TimerPreset{}, ErrInvalidDuration
	}
	preset = domain.TimerPreset{
		ID:       s.newID(),
		Duration: duration.Milliseconds(),
		Label:    domain.CoalesceStr(strings.TrimSpace(label), PresetLabel(duration)),
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if err = s.savePresets(ctx, append(slices.Clone(s.state.Presets), preset)); err != nil {
		return domain.TimerPreset{}, err
	}
	fields["preset_id"] = preset.ID
	return preset, nil
}

// UpdatePreset replaces a preset's duration and label in place.
func (s *timerService) UpdatePreset(ctx context.Context, id string, duration time.Duration, label string) (preset domain.TimerPreset, err error) {
	startedAt := s.now()
	fields := map[string]any{"preset_id": id, "duration_ms": duration.Milliseconds()}
	defer func() { s.observe(ctx, "update-preset", startedAt, fields, err) }()

	if duration <= 0 {
		return domain.TimerPreset{}, ErrInvalidDuration
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := slices.IndexFunc(s.state.Presets, func(p domain.TimerPreset) bool { return p.ID == id })
	if i < 0 {
		return domain.TimerPreset{}, fmt.Errorf("preset %s: %w", id, ErrPresetNotFound)
	}
	presets := slices.Clone(s.state.Presets)
	presets[i].Duration = duration.Milliseconds()
	presets[i].Label = domain.CoalesceStr(strings.TrimSpace(label), PresetLabel(duration))

	if err = s.savePresets(ctx, presets); err != nil {
		return domain.TimerPreset{}, err
	}
	return presets[i], nil
}

func (s *timerService) DeletePreset(ctx context.Context, id string) (err error) {
	startedAt := s.now()
	fields := map[string]any{"preset_id": id}
	defer func() { s.observe(ctx, "delete-preset", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := slices.IndexFunc(s.state.Presets, func(p domain.TimerPreset) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("preset %s: %w", id, ErrPresetNotFound)
	}
	return s.savePresets(ctx, slices.Delete(slices.Clone(s.state.Presets), i, i+1))
}
