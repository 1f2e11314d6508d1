// Package reward holds the pure reward math: how many XP and coins a save
// is worth, and how gained XP resolves into level-ups.
package reward

// Reward is the XP/coin yield of a single rewarded save, before the
// subscriber coin multiplier.
type Reward struct {
	XP    int
	Coins int
}

// ForCharCount maps a saved character count to its reward.
// Negative counts are clamped to zero. XP lands in [5,30], coins in [1,6].
func ForCharCount(charCount int) Reward {
	normalized := charCount
	if normalized < 0 {
		normalized = 0
	}

	xp := BaseXPGain + normalized/XPCharsPerStep
	if xp > BaseXPGain+MaxXPBonus {
		xp = BaseXPGain + MaxXPBonus
	}

	coins := BaseCoinGain + normalized/CoinCharsPerStep
	if coins > BaseCoinGain+MaxCoinBonus {
		coins = BaseCoinGain + MaxCoinBonus
	}

	return Reward{XP: xp, Coins: coins}
}

// RequiredXP returns the XP needed to advance past the given level.
func RequiredXP(level int) int {
	return BaseLevelCost + level*LevelCostStep
}

// CoinMultiplier returns the coin multiplier for the subscriber flag.
func CoinMultiplier(isSubscriber bool) int {
	if isSubscriber {
		return SubscriberCoinMultiplier
	}
	return 1
}

// ApplyLevelUps consumes surplus XP into level-ups, possibly several in one
// call, and reports whether any level-up occurred. The returned state always
// satisfies xp < RequiredXP(level).
func ApplyLevelUps(level, xp int) (newLevel, newXP int, leveledUp bool) {
	newLevel, newXP = level, xp
	for newXP >= RequiredXP(newLevel) {
		newXP -= RequiredXP(newLevel)
		newLevel++
		leveledUp = true
	}
	return newLevel, newXP, leveledUp
}
