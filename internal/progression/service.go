// Package progression owns the progress record: it applies streak, throttle
// and reward rules to save events, handles the daily reward, coin spending
// and the subscriber flag, and exposes the read-side projection.
package progression

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/metrics"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/repository"
	"github.com/editorbox/EditorBox_Go/internal/reward"
	"github.com/editorbox/EditorBox_Go/internal/streak"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
)

// SaveResult describes what a single save event earned.
type SaveResult struct {
	XPGained    int  `json:"xp_gained"`
	CoinsGained int  `json:"coins_gained"`
	LeveledUp   bool `json:"leveled_up"`
	Throttled   bool `json:"throttled"`
	Level       int  `json:"level"`
	StreakDays  int  `json:"streak_days"`
}

// Service defines the interface for progression operations
type Service interface {
	// HandleNoteSaved processes one successful note save: streak, totals,
	// throttle check and reward. Never fails the save itself.
	HandleNoteSaved(ctx context.Context, noteID string, charCount int) (*SaveResult, error)

	// ClaimDailyReward grants the daily coins once per calendar day.
	// Returns domain.ErrRewardAlreadyClaimed on a same-day second claim.
	ClaimDailyReward(ctx context.Context) (int, error)

	// SpendCoins debits coins. Amounts <= 0 succeed without mutation;
	// insufficient funds returns false and raises the funds paywall.
	SpendCoins(ctx context.Context, amount int) (bool, error)

	// SetSubscriberStatus updates the subscriber flag. Callers must
	// reconcile the entitlement store afterwards; propagation is explicit.
	SetSubscriberStatus(ctx context.Context, isSubscriber bool) error

	// CheckDailyReward evaluates eligibility and raises the daily-reward
	// sheet when claimable.
	CheckDailyReward(ctx context.Context) (bool, error)

	// Snapshot returns the read-only projection of the current record.
	Snapshot(ctx context.Context) (*domain.ProgressSnapshot, error)
}

type service struct {
	mu     sync.Mutex
	repo   repository.Progress
	guard  *throttle.Guard
	policy *monetization.Policy
	bus    event.Bus
	now    func() time.Time // injected for tests

	// cached is the authoritative in-memory record once loaded; persistence
	// failures leave it intact so the next write retries naturally.
	cached *domain.Progress
}

// NewService creates a new progression service
func NewService(repo repository.Progress, guard *throttle.Guard, policy *monetization.Policy, bus event.Bus) Service {
	return &service{
		repo:   repo,
		guard:  guard,
		policy: policy,
		bus:    bus,
		now:    time.Now,
	}
}

func (s *service) HandleNoteSaved(ctx context.Context, noteID string, charCount int) (*SaveResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	record := s.loadOrCreateLocked(ctx)
	now := s.now()

	// Streak must be evaluated before lastSavedAt is overwritten.
	record.StreakDays = streak.Next(record.StreakDays, record.LastSavedAt, now)

	record.TotalSaves++
	if charCount > 0 {
		record.TotalCharsSaved += charCount
	}
	record.LastSavedAt = now

	if id := strings.TrimSpace(noteID); id != "" {
		record.LastSavedNoteID = id
		at := now
		record.LastSavedNoteAt = &at
	}

	result := &SaveResult{}

	if s.guard.Throttled(noteID, now) {
		result.Throttled = true
		metrics.SavesThrottled.Inc()
		log.Info("Save throttled, no reward", "note_id", noteID)
	} else {
		r := reward.ForCharCount(charCount)
		coins := r.Coins * reward.CoinMultiplier(record.IsSubscriber)

		record.XP += r.XP
		record.Coins += coins

		oldLevel := record.Level
		var leveled bool
		record.Level, record.XP, leveled = reward.ApplyLevelUps(record.Level, record.XP)

		result.XPGained = r.XP
		result.CoinsGained = coins
		result.LeveledUp = leveled

		metrics.XPGranted.Add(float64(r.XP))
		metrics.CoinsGranted.Add(float64(coins))

		if s.bus != nil {
			if err := s.bus.Publish(ctx, event.NewNoteRewardedEvent(noteID, charCount, r.XP, coins)); err != nil {
				log.Warn("Failed to publish reward event", "error", err)
			}
		}

		if leveled {
			s.policy.NotifyLevelUp(ctx, oldLevel, record.Level)
		}

		log.Info("Save rewarded",
			"note_id", noteID,
			"char_count", charCount,
			"xp", r.XP,
			"coins", coins,
			"level", record.Level,
			"leveled_up", leveled)
	}

	s.persistLocked(ctx, record)
	result.Level = record.Level
	result.StreakDays = record.StreakDays
	snapshot := *record
	s.mu.Unlock()

	metrics.NotesSaved.Inc()
	s.policy.EvaluateMilestones(ctx, &snapshot)

	return result, nil
}

func (s *service) ClaimDailyReward(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.loadOrCreateLocked(ctx)
	now := s.now()

	if !s.policy.DailyRewardEligible(record, now) {
		return 0, domain.ErrRewardAlreadyClaimed
	}

	granted := reward.DailyRewardCoins * reward.CoinMultiplier(record.IsSubscriber)
	record.Coins += granted
	record.LastRewardClaimedAt = now

	s.persistLocked(ctx, record)
	s.policy.DismissDailyReward()

	metrics.DailyRewardsClaimed.Inc()
	metrics.CoinsGranted.Add(float64(granted))
	log.Info("Daily reward claimed", "coins", granted)

	return granted, nil
}

func (s *service) SpendCoins(ctx context.Context, amount int) (bool, error) {
	if amount <= 0 {
		return true, nil
	}

	log := logger.FromContext(ctx)

	s.mu.Lock()
	record := s.loadOrCreateLocked(ctx)

	if record.Coins < amount {
		// Copy before unlocking; record aliases the shared cached state.
		coins := record.Coins
		s.mu.Unlock()
		log.Info("Spend rejected, insufficient funds", "amount", amount, "coins", coins)
		s.policy.RaiseInsufficientFunds(ctx)
		return false, nil
	}

	record.Coins -= amount
	s.persistLocked(ctx, record)
	remaining := record.Coins
	s.mu.Unlock()

	log.Info("Coins spent", "amount", amount, "remaining", remaining)
	return true, nil
}

func (s *service) SetSubscriberStatus(ctx context.Context, isSubscriber bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.loadOrCreateLocked(ctx)
	if record.IsSubscriber == isSubscriber {
		return nil
	}

	record.IsSubscriber = isSubscriber
	s.persistLocked(ctx, record)

	logger.FromContext(ctx).Info("Subscriber status updated", "is_subscriber", isSubscriber)
	return nil
}

func (s *service) CheckDailyReward(ctx context.Context) (bool, error) {
	s.mu.Lock()
	record := *s.loadOrCreateLocked(ctx)
	now := s.now()
	s.mu.Unlock()

	return s.policy.CheckDailyReward(&record, now), nil
}

func (s *service) Snapshot(ctx context.Context) (*domain.ProgressSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.loadOrCreateLocked(ctx)
	return &domain.ProgressSnapshot{
		Level:           record.Level,
		XP:              record.XP,
		Coins:           record.Coins,
		StreakDays:      record.StreakDays,
		TotalSaves:      record.TotalSaves,
		TotalCharsSaved: record.TotalCharsSaved,
		IsSubscriber:    record.IsSubscriber,
		AvatarStage:     domain.AvatarStageForLevel(record.Level),
	}, nil
}

// loadOrCreateLocked returns the singleton record, creating it with default
// values on first access. Load failures fall back to a fresh record rather
// than blocking note-saving; the caller must hold s.mu.
func (s *service) loadOrCreateLocked(ctx context.Context) *domain.Progress {
	if s.cached != nil {
		return s.cached
	}

	record, err := s.repo.GetProgress(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to load progress record, starting fresh", "error", err)
	}
	if record == nil {
		record = domain.NewProgress()
		s.cached = record
		s.persistLocked(ctx, record)
		return record
	}

	s.cached = record
	return record
}

// persistLocked writes the record, swallowing failures: the in-memory state
// stands and the next successful save retries the write.
func (s *service) persistLocked(ctx context.Context, record *domain.Progress) {
	if err := s.repo.SaveProgress(ctx, record); err != nil {
		metrics.PersistFailures.WithLabelValues("progress").Inc()
		logger.FromContext(ctx).Error("Failed to persist progress record", "error", err)
	}
}
