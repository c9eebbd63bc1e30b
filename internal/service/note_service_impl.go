package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/alexanderramin/ironlog/internal/repository"
)

type noteService struct {
	core
}

func NewNoteService(state *State, store *repository.StateStore, opts ...Option) NoteService {
	return &noteService{core: newCore(state, store, opts)}
}

func (s *noteService) List(ctx context.Context) []domain.Note {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return slices.Clone(s.state.Notes)
}

func (s *noteService) save(ctx context.Context, notes []domain.Note) error {
	if err := s.store.SaveNotes(ctx, notes); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	s.state.Notes = notes
	return nil
}

func (s *noteService) indexOf(id string) int {
	return slices.IndexFunc(s.state.Notes, func(n domain.Note) bool { return n.ID == id })
}

// Add puts a new note at the top of the journal.
func (s *noteService) Add(ctx context.Context, text string) (note domain.Note, err error) {
	startedAt := s.now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "add-note", startedAt, fields, err) }()

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Note{}, ErrEmptyNote
	}
	note = domain.Note{ID: s.newID(), Text: text, Date: s.stamp()}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if err = s.save(ctx, append([]domain.Note{note}, s.state.Notes...)); err != nil {
		return domain.Note{}, err
	}
	fields["note_id"] = note.ID
	return note, nil
}

// Update changes a note's text. Its date and position are kept.
func (s *noteService) Update(ctx context.Context, id, text string) (note domain.Note, err error) {
	startedAt := s.now()
	fields := map[string]any{"note_id": id}
	defer func() { s.observe(ctx, "update-note", startedAt, fields, err) }()

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Note{}, ErrEmptyNote
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Note{}, fmt.Errorf("note %s: %w", id, ErrNoteNotFound)
	}
	notes := slices.Clone(s.state.Notes)
	notes[i].Text = text
	if err = s.save(ctx, notes); err != nil {
		return domain.Note{}, err
	}
	return notes[i], nil
}

func (s *noteService) Delete(ctx context.Context, id string) (err error) {
	startedAt := s.now()
	fields := map[string]any{"note_id": id}
	defer func() { s.observe(ctx, "delete-note", startedAt, fields, err) }()

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("note %s: %w", id, ErrNoteNotFound)
	}
	return s.save(ctx, slices.Delete(slices.Clone(s.state.Notes), i, i+1))
}
