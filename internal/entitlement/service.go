// Package entitlement manages the owned-item catalog: theme ownership, the
// single-equip invariant and reconciliation against subscription status.
package entitlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/metrics"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/repository"
)

// ThemeStatus is a catalog entry joined with its ownership state.
type ThemeStatus struct {
	ThemeSpec
	Owned    bool `json:"owned"`
	Equipped bool `json:"equipped"`
}

// Service defines the interface for entitlement operations
type Service interface {
	// ListThemes returns the catalog with ownership and equip state.
	ListThemes(ctx context.Context) ([]ThemeStatus, error)

	// CurrentTheme returns the equipped theme.
	CurrentTheme(ctx context.Context) (*ThemeStatus, error)

	// Purchase buys a theme with coins and equips it. Already-owned themes
	// are simply equipped. Subscription-gated themes are never purchasable.
	Purchase(ctx context.Context, themeID string) error

	// Equip makes the theme the equipped one, enforcing ownership and
	// subscription gating.
	Equip(ctx context.Context, themeID string) error

	// Reconcile re-derives valid ownership/equip state from the current
	// subscriber flag. Idempotent.
	Reconcile(ctx context.Context) error

	IsOwned(ctx context.Context, themeID string) (bool, error)
	IsEquipped(ctx context.Context, themeID string) (bool, error)
}

type service struct {
	mu          sync.Mutex
	repo        repository.Entitlement
	progression progression.Service
	bus         event.Bus
	now         func() time.Time // injected for tests
}

// NewService creates a new entitlement service
func NewService(repo repository.Entitlement, progressionService progression.Service, bus event.Bus) Service {
	return &service{
		repo:        repo,
		progression: progressionService,
		bus:         bus,
		now:         time.Now,
	}
}

func (s *service) ListThemes(ctx context.Context) ([]ThemeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]ThemeStatus, 0, len(themeCatalog))
	for _, spec := range themeCatalog {
		item := items[spec.ID]
		statuses = append(statuses, ThemeStatus{
			ThemeSpec: spec,
			Owned:     item.Owned || spec.ID == ThemeDefault,
			Equipped:  item.Equipped,
		})
	}
	return statuses, nil
}

func (s *service) CurrentTheme(ctx context.Context) (*ThemeStatus, error) {
	statuses, err := s.ListThemes(ctx)
	if err != nil {
		return nil, err
	}

	for _, st := range statuses {
		if st.Equipped {
			return &st, nil
		}
	}

	// Nothing equipped yet (fresh install before the first reconcile).
	spec, _ := ThemeByID(ThemeDefault)
	return &ThemeStatus{ThemeSpec: spec, Owned: true, Equipped: true}, nil
}

func (s *service) Purchase(ctx context.Context, themeID string) error {
	log := logger.FromContext(ctx)

	spec, ok := ThemeByID(themeID)
	if !ok {
		return domain.ErrThemeNotFound
	}
	if spec.RequiresSubscription {
		return domain.ErrThemeNotPurchasable
	}

	subscriber, err := s.isSubscriber(ctx)
	if err != nil {
		return err
	}

	// The owned-check, the debit and the ownership write must not interleave
	// with another purchase of the same theme, or both callers pass the check
	// and both get charged. progression serializes on its own mutex and never
	// calls back into entitlement, so holding s.mu across SpendCoins is safe.
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return err
	}

	if items[themeID].Owned || themeID == ThemeDefault {
		// Already owned: no charge, purchasing again just equips.
		return s.equipLocked(ctx, items, spec, subscriber)
	}

	// Debit first; on insufficient funds the policy raises the paywall and
	// no entitlement state changes.
	ok, err = s.progression.SpendCoins(ctx, spec.Price)
	if err != nil {
		return fmt.Errorf("failed to spend coins: %w", err)
	}
	if !ok {
		return domain.ErrInsufficientFunds
	}

	item := itemOrNew(items, themeID)
	item.Owned = true
	if item.ObtainedAt == nil {
		at := s.now()
		item.ObtainedAt = &at
	}
	items[themeID] = item
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("failed to persist purchase: %w", err)
	}

	if err := s.reconcileLocked(ctx, items, subscriber); err != nil {
		return err
	}
	if err := s.equipLocked(ctx, items, spec, subscriber); err != nil {
		return err
	}

	metrics.ThemesPurchased.WithLabelValues(themeID).Inc()
	log.Info("Theme purchased", "theme_id", themeID, "price", spec.Price)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewThemePurchasedEvent(themeID, spec.Price)); err != nil {
			log.Warn("Failed to publish purchase event", "error", err)
		}
	}
	return nil
}

func (s *service) Equip(ctx context.Context, themeID string) error {
	spec, ok := ThemeByID(themeID)
	if !ok {
		return domain.ErrThemeNotFound
	}

	subscriber, err := s.isSubscriber(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return err
	}

	if spec.RequiresSubscription && !subscriber {
		return domain.ErrSubscriptionRequired
	}

	item := items[themeID]
	eligible := item.Owned ||
		themeID == ThemeDefault ||
		(spec.RequiresSubscription && subscriber)
	if !eligible {
		return domain.ErrThemeNotOwned
	}

	return s.equipLocked(ctx, items, spec, subscriber)
}

func (s *service) Reconcile(ctx context.Context) error {
	subscriber, err := s.isSubscriber(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return err
	}
	return s.reconcileLocked(ctx, items, subscriber)
}

func (s *service) IsOwned(ctx context.Context, themeID string) (bool, error) {
	if themeID == ThemeDefault {
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return false, err
	}
	return items[themeID].Owned, nil
}

func (s *service) IsEquipped(ctx context.Context, themeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItemsLocked(ctx)
	if err != nil {
		return false, err
	}
	return items[themeID].Equipped, nil
}

// equipLocked clears every equip flag of the kind and equips the target,
// stamping ownership on the way. Caller must hold s.mu and have validated
// eligibility.
func (s *service) equipLocked(ctx context.Context, items map[string]domain.OwnedItem, spec ThemeSpec, subscriber bool) error {
	for id, item := range items {
		if id == spec.ID || !item.Equipped {
			continue
		}
		item.Equipped = false
		items[id] = item
		if err := s.repo.UpsertItem(ctx, item); err != nil {
			return fmt.Errorf("failed to unequip %s: %w", id, err)
		}
	}

	item := itemOrNew(items, spec.ID)
	item.Owned = true
	item.Equipped = true
	if item.ObtainedAt == nil {
		at := s.now()
		item.ObtainedAt = &at
	}
	items[spec.ID] = item
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("failed to equip %s: %w", spec.ID, err)
	}

	if err := s.reconcileLocked(ctx, items, subscriber); err != nil {
		return err
	}

	metrics.ThemesEquipped.WithLabelValues(spec.ID).Inc()
	logger.FromContext(ctx).Info("Theme equipped", "theme_id", spec.ID)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewThemeEquippedEvent(spec.ID)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish equip event", "error", err)
		}
	}
	return nil
}

// reconcileLocked re-derives valid state: the default is always owned,
// subscription-gated ownership tracks the subscriber flag, and exactly one
// validly-owned item ends up equipped. Rows are only written when they
// actually change, which makes repeated calls no-ops.
func (s *service) reconcileLocked(ctx context.Context, items map[string]domain.OwnedItem, subscriber bool) error {
	for _, spec := range themeCatalog {
		item := itemOrNew(items, spec.ID)
		changed := false

		if spec.ID == ThemeDefault && !item.Owned {
			item.Owned = true
			changed = true
		}

		if spec.RequiresSubscription {
			if subscriber && !item.Owned {
				item.Owned = true
				if item.ObtainedAt == nil {
					at := s.now()
					item.ObtainedAt = &at
				}
				changed = true
			}
			if !subscriber && (item.Owned || item.Equipped) {
				item.Owned = false
				item.Equipped = false
				changed = true
			}
		}

		if changed {
			items[spec.ID] = item
			if err := s.repo.UpsertItem(ctx, item); err != nil {
				return fmt.Errorf("failed to reconcile %s: %w", spec.ID, err)
			}
		}
	}

	// Exactly one validly equipped item; anything else collapses to the
	// default as the source of truth of last resort.
	equipped := make([]string, 0, 1)
	for _, spec := range themeCatalog {
		item := items[spec.ID]
		if item.Equipped && item.Owned && (!spec.RequiresSubscription || subscriber) {
			equipped = append(equipped, spec.ID)
		}
	}
	if len(equipped) == 1 {
		return nil
	}

	logger.FromContext(ctx).Info("Equip state inconsistent, falling back to default", "equipped_count", len(equipped))

	for id, item := range items {
		want := id == ThemeDefault
		if item.Equipped == want && (item.Owned || !want) {
			continue
		}
		item.Equipped = want
		if want {
			item.Owned = true
		}
		items[id] = item
		if err := s.repo.UpsertItem(ctx, item); err != nil {
			return fmt.Errorf("failed to reset equip state for %s: %w", id, err)
		}
	}
	return nil
}

func (s *service) loadItemsLocked(ctx context.Context) (map[string]domain.OwnedItem, error) {
	rows, err := s.repo.ListItems(ctx, domain.ItemKindTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to load owned items: %w", err)
	}

	items := make(map[string]domain.OwnedItem, len(rows))
	for _, row := range rows {
		items[row.ID] = row
	}
	return items, nil
}

func (s *service) isSubscriber(ctx context.Context) (bool, error) {
	snap, err := s.progression.Snapshot(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read subscriber status: %w", err)
	}
	return snap.IsSubscriber, nil
}

func itemOrNew(items map[string]domain.OwnedItem, id string) domain.OwnedItem {
	if item, ok := items[id]; ok {
		return item
	}
	return domain.OwnedItem{ID: id, Kind: domain.ItemKindTheme}
}
