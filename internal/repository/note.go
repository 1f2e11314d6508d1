package repository

import (
	"context"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// Note defines the interface for note persistence.
type Note interface {
	CreateNote(ctx context.Context, note *domain.Note) error
	UpdateNote(ctx context.Context, note *domain.Note) error
	GetNote(ctx context.Context, noteID string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}
