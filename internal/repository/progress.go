package repository

import (
	"context"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// Progress defines the interface for progress record persistence.
// There is exactly one record; Get returns nil when none exists yet.
type Progress interface {
	GetProgress(ctx context.Context) (*domain.Progress, error)
	SaveProgress(ctx context.Context, progress *domain.Progress) error
}
