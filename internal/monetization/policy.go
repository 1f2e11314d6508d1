// Package monetization decides when to surface monetization prompts: the
// milestone paywall, the daily-reward sheet and the transient level-up
// banner. Prompt state is process-local and resets on restart.
package monetization

import (
	"context"
	"sync"
	"time"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/metrics"
	"github.com/editorbox/EditorBox_Go/internal/reward"
	"github.com/editorbox/EditorBox_Go/internal/streak"
)

// Prompts is the read-only projection of current prompt state.
type Prompts struct {
	ShowLevelUpBanner    bool   `json:"show_level_up_banner"`
	ShowDailyRewardSheet bool   `json:"show_daily_reward_sheet"`
	ShowPaywallSheet     bool   `json:"show_paywall_sheet"`
	PaywallTitle         string `json:"paywall_title,omitempty"`
	PaywallMessage       string `json:"paywall_message,omitempty"`
	DailyRewardAmount    int    `json:"daily_reward_amount"`
}

// Policy owns the session-scoped prompt state. The milestone paywall is
// raised at most once per process lifetime.
type Policy struct {
	mu  sync.Mutex
	bus event.Bus

	milestoneShown bool

	showLevelUpBanner    bool
	levelUpTimer         *time.Timer
	showDailyRewardSheet bool
	showPaywallSheet     bool
	paywallTitle         string
	paywallMessage       string

	bannerDuration time.Duration
}

// NewPolicy creates a Policy publishing prompt events to the given bus.
func NewPolicy(bus event.Bus) *Policy {
	return &Policy{
		bus:            bus,
		bannerDuration: LevelUpBannerDuration,
	}
}

// EvaluateMilestones checks the record against the level and streak
// milestones and raises the paywall for the first one met. Subscribers are
// never prompted, and only one milestone paywall is raised per session.
func (p *Policy) EvaluateMilestones(ctx context.Context, record *domain.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if record.IsSubscriber || p.milestoneShown {
		return
	}

	switch {
	case record.Level >= LevelMilestone:
		p.milestoneShown = true
		p.raisePaywallLocked(ctx, ReasonLevelMilestone, PaywallTitleLevelMilestone, PaywallMessageLevelMilestone)
	case record.StreakDays >= StreakMilestone:
		p.milestoneShown = true
		p.raisePaywallLocked(ctx, ReasonStreakMilestone, PaywallTitleStreakMilestone, PaywallMessageStreakMilestone)
	}
}

// DailyRewardEligible reports whether the daily reward can be claimed at now.
func (p *Policy) DailyRewardEligible(record *domain.Progress, now time.Time) bool {
	if record.LastRewardClaimedAt.IsZero() {
		return true
	}
	return !streak.SameDay(record.LastRewardClaimedAt, now)
}

// CheckDailyReward raises the daily-reward sheet when the reward is
// claimable at now.
func (p *Policy) CheckDailyReward(record *domain.Progress, now time.Time) bool {
	eligible := p.DailyRewardEligible(record, now)

	p.mu.Lock()
	p.showDailyRewardSheet = eligible
	p.mu.Unlock()

	return eligible
}

// RaiseInsufficientFunds raises the funds paywall. This path is independent
// of the one-shot milestone flag and can recur.
func (p *Policy) RaiseInsufficientFunds(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.raisePaywallLocked(ctx, ReasonInsufficientFunds, PaywallTitleInsufficientFunds, PaywallMessageInsufficientFunds)
}

// NotifyLevelUp shows the level-up banner and auto-clears it after about a
// second. Purely presentational.
func (p *Policy) NotifyLevelUp(ctx context.Context, oldLevel, newLevel int) {
	p.mu.Lock()
	p.showLevelUpBanner = true
	if p.levelUpTimer != nil {
		p.levelUpTimer.Stop()
	}
	p.levelUpTimer = time.AfterFunc(p.bannerDuration, func() {
		p.mu.Lock()
		p.showLevelUpBanner = false
		p.mu.Unlock()
	})
	p.mu.Unlock()

	metrics.LevelUps.Inc()
	if p.bus != nil {
		if err := p.bus.Publish(ctx, event.NewLevelUpEvent(oldLevel, newLevel)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish level-up event", "error", err)
		}
	}
}

// Snapshot returns the current prompt state.
func (p *Policy) Snapshot() Prompts {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Prompts{
		ShowLevelUpBanner:    p.showLevelUpBanner,
		ShowDailyRewardSheet: p.showDailyRewardSheet,
		ShowPaywallSheet:     p.showPaywallSheet,
		PaywallTitle:         p.paywallTitle,
		PaywallMessage:       p.paywallMessage,
		DailyRewardAmount:    reward.DailyRewardCoins,
	}
}

// DismissPaywall clears the paywall sheet.
func (p *Policy) DismissPaywall() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.showPaywallSheet = false
}

// DismissDailyReward clears the daily-reward sheet.
func (p *Policy) DismissDailyReward() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.showDailyRewardSheet = false
}

func (p *Policy) raisePaywallLocked(ctx context.Context, reason, title, message string) {
	p.paywallTitle = title
	p.paywallMessage = message
	p.showPaywallSheet = true

	metrics.PaywallPromptsRaised.WithLabelValues(reason).Inc()
	logger.FromContext(ctx).Info("Paywall raised", "reason", reason, "title", title)

	if p.bus != nil {
		if err := p.bus.Publish(ctx, event.NewPaywallRaisedEvent(reason, title, message)); err != nil {
			logger.FromContext(ctx).Warn("Failed to publish paywall event", "error", err)
		}
	}
}
