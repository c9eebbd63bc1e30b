package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/repository"
)

type settingsService struct {
	core
}

func NewSettingsService(state *State, store *repository.StateStore, opts ...Option) SettingsService {
	return &settingsService{core: newCore(state, store, opts)}
}

func (s *settingsService) Units(ctx context.Context) domain.UnitSystem {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.Units
}

func (s *settingsService) SetUnits(ctx context.Context, u domain.UnitSystem) (err error) {
	startedAt := s.now()
	fields := map[string]any{"units": string(u)}
	defer func() { s.observe(ctx, "set-units", startedAt, fields, err) }()

	if _, err = domain.ParseUnitSystem(string(u)); err != nil {
		return err
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.setLocked(ctx, u)
}

func (s *settingsService) setLocked(ctx context.Context, u domain.UnitSystem) error {
	if err := s.store.SaveUnitSystem(ctx, u); err != nil {
		return fmt.Errorf("saving unit system: %w", err)
	}
	s.state.Units = u
	return nil
}

func (s *settingsService) ToggleUnits(ctx context.Context) (u domain.UnitSystem, err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "toggle-units", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u = s.state.Units.Toggle()
	fields["units"] = string(u)
	if err = s.setLocked(ctx, u); err != nil {
		return s.state.Units, err
	}
	return u, nil
}
