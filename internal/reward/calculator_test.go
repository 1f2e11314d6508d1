package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForCharCount(t *testing.T) {
	tests := []struct {
		name      string
		charCount int
		wantXP    int
		wantCoins int
	}{
		{"zero chars gives base reward", 0, 5, 1},
		{"negative count clamped to zero", -100, 5, 1},
		{"39 chars still base XP", 39, 5, 1},
		{"40 chars bumps XP", 40, 6, 1},
		{"200 chars bumps coins", 200, 10, 2},
		{"500 chars", 500, 17, 3},
		{"1000 chars caps XP", 1000, 30, 6},
		{"huge note stays capped", 1_000_000, 30, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForCharCount(tt.charCount)
			assert.Equal(t, tt.wantXP, got.XP)
			assert.Equal(t, tt.wantCoins, got.Coins)
		})
	}
}

func TestForCharCountBoundsAndMonotonicity(t *testing.T) {
	prev := ForCharCount(0)
	for c := 0; c <= 2000; c += 7 {
		r := ForCharCount(c)

		assert.GreaterOrEqual(t, r.XP, 5)
		assert.LessOrEqual(t, r.XP, 30)
		assert.GreaterOrEqual(t, r.Coins, 1)
		assert.LessOrEqual(t, r.Coins, 6)

		assert.GreaterOrEqual(t, r.XP, prev.XP)
		assert.GreaterOrEqual(t, r.Coins, prev.Coins)
		prev = r
	}
}

func TestRequiredXP(t *testing.T) {
	assert.Equal(t, 75, RequiredXP(1))
	assert.Equal(t, 100, RequiredXP(2))
	assert.Equal(t, 125, RequiredXP(3))
	assert.Equal(t, 150, RequiredXP(4))
}

func TestCoinMultiplier(t *testing.T) {
	assert.Equal(t, 1, CoinMultiplier(false))
	assert.Equal(t, 2, CoinMultiplier(true))
}

func TestApplyLevelUps(t *testing.T) {
	t.Run("no level up below requirement", func(t *testing.T) {
		level, xp, leveled := ApplyLevelUps(1, 74)
		assert.Equal(t, 1, level)
		assert.Equal(t, 74, xp)
		assert.False(t, leveled)
	})

	t.Run("single level up", func(t *testing.T) {
		level, xp, leveled := ApplyLevelUps(1, 80)
		assert.Equal(t, 2, level)
		assert.Equal(t, 5, xp)
		assert.True(t, leveled)
	})

	t.Run("multi level jump from 400 xp", func(t *testing.T) {
		// Consumes 75+100+125=300, leaving 100 at level 4 (requirement 150).
		level, xp, leveled := ApplyLevelUps(1, 400)
		assert.Equal(t, 4, level)
		assert.Equal(t, 100, xp)
		assert.True(t, leveled)
	})

	t.Run("invariant restored", func(t *testing.T) {
		for gain := 0; gain < 1000; gain += 13 {
			level, xp, _ := ApplyLevelUps(1, gain)
			assert.Less(t, xp, RequiredXP(level))
			assert.GreaterOrEqual(t, xp, 0)
		}
	})
}
