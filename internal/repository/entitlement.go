package repository

import (
	"context"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// Entitlement defines the interface for owned-item persistence.
// Rows are keyed by item id, created lazily and never deleted.
type Entitlement interface {
	ListItems(ctx context.Context, kind string) ([]domain.OwnedItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.OwnedItem, error)
	UpsertItem(ctx context.Context, item domain.OwnedItem) error
}
