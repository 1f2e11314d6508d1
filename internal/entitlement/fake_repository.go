package entitlement

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// FakeEntitlementRepository is an in-memory repository.Entitlement for tests.
type FakeEntitlementRepository struct {
	mu    sync.Mutex
	items map[string]domain.OwnedItem

	FailWrites  bool
	UpsertCount int
}

func NewFakeEntitlementRepository() *FakeEntitlementRepository {
	return &FakeEntitlementRepository{items: make(map[string]domain.OwnedItem)}
}

func (f *FakeEntitlementRepository) ListItems(ctx context.Context, kind string) ([]domain.OwnedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.OwnedItem
	for _, item := range f.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeEntitlementRepository) GetItem(ctx context.Context, itemID string) (*domain.OwnedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	clone := item
	return &clone, nil
}

func (f *FakeEntitlementRepository) UpsertItem(ctx context.Context, item domain.OwnedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.UpsertCount++
	if f.FailWrites {
		return errors.New("fake write failure")
	}
	f.items[item.ID] = item
	return nil
}

// Seed stores an item directly, bypassing failure injection.
func (f *FakeEntitlementRepository) Seed(item domain.OwnedItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
}
