package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	ProgressLevelUp       Type = "progress.level_up"
	ProgressNoteRewarded  Type = "progress.note_rewarded"
	ProgressSaveThrottled Type = "progress.save_throttled"
	DailyRewardClaimed    Type = "progress.daily_reward_claimed"

	ThemePurchased Type = "theme.purchased"
	ThemeEquipped  Type = "theme.equipped"

	PaywallRaised Type = "monetization.paywall_raised"

	SubscriptionActivated Type = "subscription.activated"
	SubscriptionExpired   Type = "subscription.expired"
)

// Typed event payloads for type safety

// LevelUpPayloadV1 is the typed payload for level-up events
type LevelUpPayloadV1 struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// NoteRewardedPayloadV1 is the typed payload for rewarded save events
type NoteRewardedPayloadV1 struct {
	NoteID    string `json:"note_id"`
	CharCount int    `json:"char_count"`
	XPGained  int    `json:"xp_gained"`
	Coins     int    `json:"coins_gained"`
	Timestamp int64  `json:"timestamp"`
}

// PaywallRaisedPayloadV1 is the typed payload for paywall prompt events
type PaywallRaisedPayloadV1 struct {
	Reason    string `json:"reason"` // "level_milestone", "streak_milestone", "insufficient_funds"
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// ThemeChangedPayloadV1 is the typed payload for theme purchase/equip events
type ThemeChangedPayloadV1 struct {
	ThemeID   string `json:"theme_id"`
	Price     int    `json:"price,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SubscriptionStatusPayloadV1 is the typed payload for subscription status events
type SubscriptionStatusPayloadV1 struct {
	Active    bool  `json:"active"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewLevelUpEvent creates a new level-up event
func NewLevelUpEvent(oldLevel, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressLevelUp,
		Payload: LevelUpPayloadV1{
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewNoteRewardedEvent creates a new rewarded save event
func NewNoteRewardedEvent(noteID string, charCount, xpGained, coinsGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ProgressNoteRewarded,
		Payload: NoteRewardedPayloadV1{
			NoteID:    noteID,
			CharCount: charCount,
			XPGained:  xpGained,
			Coins:     coinsGained,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPaywallRaisedEvent creates a new paywall prompt event
func NewPaywallRaisedEvent(reason, title, message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PaywallRaised,
		Payload: PaywallRaisedPayloadV1{
			Reason:    reason,
			Title:     title,
			Message:   message,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewThemePurchasedEvent creates a new theme purchase event
func NewThemePurchasedEvent(themeID string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ThemePurchased,
		Payload: ThemeChangedPayloadV1{
			ThemeID:   themeID,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewThemeEquippedEvent creates a new theme equip event
func NewThemeEquippedEvent(themeID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ThemeEquipped,
		Payload: ThemeChangedPayloadV1{
			ThemeID:   themeID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSubscriptionStatusEvent creates a subscription status change event
func NewSubscriptionStatusEvent(active bool) Event {
	t := SubscriptionExpired
	if active {
		t = SubscriptionActivated
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SubscriptionStatusPayloadV1{
			Active:    active,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	// Handlers run synchronously; with configuration this could dispatch to a
	// worker pool instead.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
