// Package note provides note CRUD and text import. Every successful write
// funnels a save event into the progression store; reward failures never
// fail the save itself.
package note

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/repository"
)

// SavedNote pairs a persisted note with what the save earned.
type SavedNote struct {
	Note   domain.Note             `json:"note"`
	Reward *progression.SaveResult `json:"reward,omitempty"`
}

// Service defines the interface for note operations
type Service interface {
	CreateNote(ctx context.Context, title, body string, tags []string) (*SavedNote, error)
	UpdateNote(ctx context.Context, noteID, title, body string, tags []string) (*SavedNote, error)
	GetNote(ctx context.Context, noteID string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	// ImportText ingests external text (e.g. shared from another app) as a
	// new note, deriving the title from the first line.
	ImportText(ctx context.Context, text string) (*SavedNote, error)
}

type service struct {
	repo        repository.Note
	progression progression.Service
	now         func() time.Time // injected for tests
	newID       func() string
}

// NewService creates a new note service
func NewService(repo repository.Note, progressionService progression.Service) Service {
	return &service{
		repo:        repo,
		progression: progressionService,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

func (s *service) CreateNote(ctx context.Context, title, body string, tags []string) (*SavedNote, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrEmptyBody
	}

	now := s.now()
	note := domain.Note{
		ID:        s.newID(),
		Title:     strings.TrimSpace(title),
		Body:      body,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateNote(ctx, &note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	logger.FromContext(ctx).Info("Note created", "note_id", note.ID)
	return s.rewarded(ctx, note), nil
}

func (s *service) UpdateNote(ctx context.Context, noteID, title, body string, tags []string) (*SavedNote, error) {
	if strings.TrimSpace(body) == "" {
		return nil, domain.ErrEmptyBody
	}

	existing, err := s.repo.GetNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNoteNotFound
	}

	existing.Title = strings.TrimSpace(title)
	existing.Body = body
	existing.Tags = normalizeTags(tags)
	existing.UpdatedAt = s.now()

	if err := s.repo.UpdateNote(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	logger.FromContext(ctx).Info("Note updated", "note_id", noteID)
	return s.rewarded(ctx, *existing), nil
}

func (s *service) GetNote(ctx context.Context, noteID string) (*domain.Note, error) {
	note, err := s.repo.GetNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	if note == nil {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

func (s *service) ListNotes(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *service) DeleteNote(ctx context.Context, noteID string) error {
	note, err := s.repo.GetNote(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to load note: %w", err)
	}
	if note == nil {
		return domain.ErrNoteNotFound
	}

	if err := s.repo.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	logger.FromContext(ctx).Info("Note deleted", "note_id", noteID)
	return nil
}

func (s *service) ImportText(ctx context.Context, text string) (*SavedNote, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.ErrEmptyBody
	}

	title, _, _ := strings.Cut(trimmed, "\n")
	if utf8.RuneCountInString(title) > MaxImportedTitleRunes {
		title = string([]rune(title)[:MaxImportedTitleRunes])
	}

	return s.CreateNote(ctx, title, trimmed, nil)
}

// rewarded reports the save to the progression store. Character count is in
// runes, not bytes.
func (s *service) rewarded(ctx context.Context, note domain.Note) *SavedNote {
	result, err := s.progression.HandleNoteSaved(ctx, note.ID, utf8.RuneCountInString(note.Body))
	if err != nil {
		logger.FromContext(ctx).Error("Failed to apply save reward", "note_id", note.ID, "error", err)
	}
	return &SavedNote{Note: note, Reward: result}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
