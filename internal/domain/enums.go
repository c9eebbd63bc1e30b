package domain

import "fmt"

type WorkoutStatus string

const (
	WorkoutInProgress WorkoutStatus = "in_progress"
	WorkoutFinished   WorkoutStatus = "finished"
)

type TimerType string

const (
	TimerStopwatch TimerType = "stopwatch"
	TimerRest      TimerType = "rest"
)

// ParseTimerType accepts "rest" or "stopwatch".
func ParseTimerType(s string) (TimerType, error) {
	switch TimerType(s) {
	case TimerRest, TimerStopwatch:
		return TimerType(s), nil
	}
	return "", fmt.Errorf("invalid timer type %q (expected rest or stopwatch)", s)
}

type UnitSystem string

const (
	UnitKg UnitSystem = "kg"
	UnitLb UnitSystem = "lb"
)

// DefaultUnitSystem is used when nothing valid has been stored.
const DefaultUnitSystem = UnitLb

// ParseUnitSystem accepts "kg" or "lb".
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(s) {
	case UnitKg, UnitLb:
		return UnitSystem(s), nil
	}
	return "", fmt.Errorf("invalid unit system %q (expected kg or lb)", s)
}

// Toggle returns the other unit system.
func (u UnitSystem) Toggle() UnitSystem {
	if u == UnitKg {
		return UnitLb
	}
	return UnitKg
}

type Metric string

const (
	MetricMaxWeight Metric = "maxWeight"
	MetricVolume    Metric = "volume"
)

// ParseMetric accepts the stored metric names plus the "max-weight" CLI spelling.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case string(MetricMaxWeight), "max-weight", "max":
		return MetricMaxWeight, nil
	case string(MetricVolume):
		return MetricVolume, nil
	}
	return "", fmt.Errorf("invalid metric %q (expected maxWeight or volume)", s)
}

type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeAll   TimeRange = "all"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeAll:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("invalid time range %q (expected week, month or all)", s)
}
