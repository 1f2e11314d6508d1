package reward

// Reward curve constants
const (
	BaseXPGain     = 5
	XPCharsPerStep = 40
	MaxXPBonus     = 25

	BaseCoinGain     = 1
	CoinCharsPerStep = 200
	MaxCoinBonus     = 5

	SubscriberCoinMultiplier = 2
)

// Level curve constants
const (
	BaseLevelCost = 50
	LevelCostStep = 25
)

// DailyRewardCoins is the fixed daily reward, before the subscriber multiplier.
const DailyRewardCoins = 10
