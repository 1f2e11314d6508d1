package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// EntitlementRepository implements the entitlement repository for PostgreSQL
type EntitlementRepository struct {
	db *pgxpool.Pool
}

// NewEntitlementRepository creates a new EntitlementRepository
func NewEntitlementRepository(db *pgxpool.Pool) *EntitlementRepository {
	return &EntitlementRepository{db: db}
}

// ListItems returns all owned-item rows of a kind.
func (r *EntitlementRepository) ListItems(ctx context.Context, kind string) ([]domain.OwnedItem, error) {
	query := `
		SELECT item_id, kind, owned, equipped, obtained_at
		FROM owned_items
		WHERE kind = $1
		ORDER BY item_id
	`

	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []domain.OwnedItem
	for rows.Next() {
		var item domain.OwnedItem
		if err := rows.Scan(&item.ID, &item.Kind, &item.Owned, &item.Equipped, &item.ObtainedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// GetItem returns one row, or nil when the item has never been referenced.
func (r *EntitlementRepository) GetItem(ctx context.Context, itemID string) (*domain.OwnedItem, error) {
	query := `
		SELECT item_id, kind, owned, equipped, obtained_at
		FROM owned_items
		WHERE item_id = $1
	`

	var item domain.OwnedItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(&item.ID, &item.Kind, &item.Owned, &item.Equipped, &item.ObtainedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// UpsertItem creates or updates an ownership row. Rows are never deleted.
func (r *EntitlementRepository) UpsertItem(ctx context.Context, item domain.OwnedItem) error {
	query := `
		INSERT INTO owned_items (item_id, kind, owned, equipped, obtained_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (item_id) DO UPDATE SET
			kind = EXCLUDED.kind,
			owned = EXCLUDED.owned,
			equipped = EXCLUDED.equipped,
			obtained_at = EXCLUDED.obtained_at,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, item.ID, item.Kind, item.Owned, item.Equipped, item.ObtainedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}
	return nil
}
