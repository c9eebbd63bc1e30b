package service

import (
	"time"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/repository"
	"github.com/google/uuid"
)

// Option configures a service.
type Option func(*core)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(c *core) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDGenerator overrides how new identifiers are made.
func WithIDGenerator(newID func() string) Option {
	return func(c *core) {
		if newID != nil {
			c.newID = newID
		}
	}
}

// WithObserver reports every use case to obs.
func WithObserver(obs UseCaseObserver) Option {
	return func(c *core) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// core is what every service shares: the state it mutates, where that
// state is persisted, and the clock and id source.
type core struct {
	state    *State
	store    *repository.StateStore
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

func newCore(state *State, store *repository.StateStore, opts []Option) core {
	c := core{
		state:    state,
		store:    store,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// stamp is the current instant in stored precision.
func (c *core) stamp() time.Time {
	return domain.CanonicalTime(c.now())
}
