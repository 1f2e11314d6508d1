package monetization

import "time"

// Milestone thresholds
const (
	LevelMilestone  = 3
	StreakMilestone = 3
)

// LevelUpBannerDuration is how long the level-up banner stays visible.
const LevelUpBannerDuration = time.Second

// Paywall reasons (metric labels and event payloads)
const (
	ReasonLevelMilestone    = "level_milestone"
	ReasonStreakMilestone   = "streak_milestone"
	ReasonInsufficientFunds = "insufficient_funds"
)

// Paywall copy
const (
	PaywallTitleLevelMilestone   = "Level 3 reached"
	PaywallMessageLevelMilestone = "Subscribe to remove ads, double your coins and unlock exclusive themes."

	PaywallTitleStreakMilestone   = "3-day streak"
	PaywallMessageStreakMilestone = "Keep the momentum going - subscriber perks boost your progress."

	PaywallTitleInsufficientFunds   = "Not enough coins"
	PaywallMessageInsufficientFunds = "You don't have enough coins. Subscribers earn coins twice as fast."
)
