package progression

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/event"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/throttle"
)

func newTestService(t *testing.T, repo *FakeProgressRepository) (*service, *clock) {
	t.Helper()

	c := &clock{t: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)}
	bus := event.NewMemoryBus()
	svc := NewService(repo, throttle.New(throttle.DefaultWindow, throttle.DefaultMaxEntries), monetization.NewPolicy(bus), bus).(*service)
	svc.now = c.Now
	return svc, c
}

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *clock) AdvanceDays(days int)    { c.t = c.t.AddDate(0, 0, days) }

func TestHandleNoteSavedFreshRecord(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, _ := newTestService(t, repo)

	result, err := svc.HandleNoteSaved(context.Background(), "note-1", 500)
	require.NoError(t, err)

	// 500 chars: xp = 5 + 500/40 = 17, coins = 1 + 500/200 = 3.
	assert.Equal(t, 17, result.XPGained)
	assert.Equal(t, 3, result.CoinsGained)
	assert.False(t, result.LeveledUp)
	assert.False(t, result.Throttled)
	assert.Equal(t, 1, result.Level)
	assert.Equal(t, 1, result.StreakDays)

	stored := repo.Stored()
	require.NotNil(t, stored)
	assert.Equal(t, 17, stored.XP)
	assert.Equal(t, 3, stored.Coins)
	assert.Equal(t, 1, stored.TotalSaves)
	assert.Equal(t, 500, stored.TotalCharsSaved)
	assert.Equal(t, "note-1", stored.LastSavedNoteID)
}

func TestHandleNoteSavedSubscriberDoublesCoins(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, _ := newTestService(t, repo)

	require.NoError(t, svc.SetSubscriberStatus(context.Background(), true))

	result, err := svc.HandleNoteSaved(context.Background(), "note-1", 500)
	require.NoError(t, err)

	assert.Equal(t, 17, result.XPGained)
	assert.Equal(t, 6, result.CoinsGained)
}

func TestHandleNoteSavedThrottlesRepeatSaves(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, c := newTestService(t, repo)
	ctx := context.Background()

	first, err := svc.HandleNoteSaved(ctx, "note-1", 100)
	require.NoError(t, err)
	assert.False(t, first.Throttled)

	c.Advance(30 * time.Second)
	second, err := svc.HandleNoteSaved(ctx, "note-1", 100)
	require.NoError(t, err)
	assert.True(t, second.Throttled)
	assert.Zero(t, second.XPGained)
	assert.Zero(t, second.CoinsGained)

	// Totals advance even for throttled saves.
	stored := repo.Stored()
	assert.Equal(t, 2, stored.TotalSaves)
	assert.Equal(t, 200, stored.TotalCharsSaved)

	// A different note within the window is rewarded.
	other, err := svc.HandleNoteSaved(ctx, "note-2", 100)
	require.NoError(t, err)
	assert.False(t, other.Throttled)

	// Past the window the original note earns again.
	c.Advance(61 * time.Second)
	again, err := svc.HandleNoteSaved(ctx, "note-1", 100)
	require.NoError(t, err)
	assert.False(t, again.Throttled)
}

func TestHandleNoteSavedEmptyNoteIDNeverThrottled(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := svc.HandleNoteSaved(ctx, "   ", 100)
		require.NoError(t, err)
		assert.False(t, result.Throttled)
	}

	// Whitespace-only ids never become the last-saved note.
	assert.Empty(t, repo.Stored().LastSavedNoteID)
}

func TestHandleNoteSavedLevelUp(t *testing.T) {
	repo := NewFakeProgressRepository()
	record := domain.NewProgress()
	record.XP = 70
	require.NoError(t, repo.SaveProgress(context.Background(), record))

	svc, _ := newTestService(t, repo)

	// Level 1 needs 75 XP; 70 + 17 = 87 crosses it, leaving 12 at level 2.
	result, err := svc.HandleNoteSaved(context.Background(), "note-1", 500)
	require.NoError(t, err)

	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 12, repo.Stored().XP)
}

func TestHandleNoteSavedStreak(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, c := newTestService(t, repo)
	ctx := context.Background()

	r, _ := svc.HandleNoteSaved(ctx, "a", 10)
	assert.Equal(t, 1, r.StreakDays)

	c.Advance(time.Hour)
	r, _ = svc.HandleNoteSaved(ctx, "b", 10)
	assert.Equal(t, 1, r.StreakDays)

	c.AdvanceDays(1)
	r, _ = svc.HandleNoteSaved(ctx, "c", 10)
	assert.Equal(t, 2, r.StreakDays)

	c.AdvanceDays(3)
	r, _ = svc.HandleNoteSaved(ctx, "d", 10)
	assert.Equal(t, 1, r.StreakDays)
}

func TestClaimDailyReward(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, c := newTestService(t, repo)
	ctx := context.Background()

	granted, err := svc.ClaimDailyReward(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, granted)

	_, err = svc.ClaimDailyReward(ctx)
	assert.ErrorIs(t, err, domain.ErrRewardAlreadyClaimed)

	c.AdvanceDays(1)
	granted, err = svc.ClaimDailyReward(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, granted)

	assert.Equal(t, 20, repo.Stored().Coins)
}

func TestClaimDailyRewardSubscriberMultiplier(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, svc.SetSubscriberStatus(ctx, true))

	granted, err := svc.ClaimDailyReward(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, granted)
}

func TestSpendCoins(t *testing.T) {
	repo := NewFakeProgressRepository()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.ClaimDailyReward(ctx) // record now holds 10 coins
	require.NoError(t, err)

	ok, err := svc.SpendCoins(ctx, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, repo.Stored().Coins)

	ok, err = svc.SpendCoins(ctx, 30)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, repo.Stored().Coins)
	assert.True(t, svc.policy.Snapshot().ShowPaywallSheet)

	ok, err = svc.SpendCoins(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, repo.Stored().Coins)
}

func TestConcurrentSavesAndSpends(t *testing.T) {
	repo := NewFakeProgressRepository()
	record := domain.NewProgress()
	record.Coins = 100
	require.NoError(t, repo.SaveProgress(context.Background(), record))

	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	// Saves grant coins while spends debit them; run under -race.
	const rounds = 50
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.HandleNoteSaved(ctx, fmt.Sprintf("note-%d", i), 0)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			ok, err := svc.SpendCoins(ctx, 1)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	// Each zero-char save grants one coin, each spend takes one.
	assert.Equal(t, 100, repo.Stored().Coins)
}

func TestPersistFailureDoesNotFailSave(t *testing.T) {
	repo := NewFakeProgressRepository()
	repo.FailSaves = true
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	result, err := svc.HandleNoteSaved(ctx, "note-1", 500)
	require.NoError(t, err)
	assert.Equal(t, 17, result.XPGained)

	// In-memory state carries across the failure.
	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, snap.XP)
	assert.Equal(t, 1, snap.TotalSaves)
}

func TestLoadFailureStartsFresh(t *testing.T) {
	repo := NewFakeProgressRepository()
	repo.FailGets = true
	svc, _ := newTestService(t, repo)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.XP)
}

func TestSnapshotAvatarStage(t *testing.T) {
	repo := NewFakeProgressRepository()
	record := domain.NewProgress()
	record.Level = 4
	require.NoError(t, repo.SaveProgress(context.Background(), record))

	svc, _ := newTestService(t, repo)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.AvatarStageAdept, snap.AvatarStage)
}
