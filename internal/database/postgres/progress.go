// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// ProgressRepository implements the progress repository for PostgreSQL
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// GetProgress loads the singleton record. Returns nil without error when no
// record exists yet.
func (r *ProgressRepository) GetProgress(ctx context.Context) (*domain.Progress, error) {
	query := `
		SELECT level, xp, coins, streak_days, last_saved_at, last_reward_claimed_at,
		       total_chars_saved, total_saves, is_subscriber, last_saved_note_id, last_saved_note_at
		FROM player_progress
		WHERE id = 1
	`

	var (
		record          domain.Progress
		lastSavedAt     *time.Time
		lastClaimedAt   *time.Time
		lastSavedNoteID *string
	)
	err := r.db.QueryRow(ctx, query).Scan(
		&record.Level,
		&record.XP,
		&record.Coins,
		&record.StreakDays,
		&lastSavedAt,
		&lastClaimedAt,
		&record.TotalCharsSaved,
		&record.TotalSaves,
		&record.IsSubscriber,
		&lastSavedNoteID,
		&record.LastSavedNoteAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	if lastSavedAt != nil {
		record.LastSavedAt = *lastSavedAt
	}
	if lastClaimedAt != nil {
		record.LastRewardClaimedAt = *lastClaimedAt
	}
	if lastSavedNoteID != nil {
		record.LastSavedNoteID = *lastSavedNoteID
	}
	return &record, nil
}

// SaveProgress writes the full record, creating the singleton row on first use.
func (r *ProgressRepository) SaveProgress(ctx context.Context, record *domain.Progress) error {
	query := `
		INSERT INTO player_progress (
			id, level, xp, coins, streak_days, last_saved_at, last_reward_claimed_at,
			total_chars_saved, total_saves, is_subscriber, last_saved_note_id, last_saved_note_at, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			level = EXCLUDED.level,
			xp = EXCLUDED.xp,
			coins = EXCLUDED.coins,
			streak_days = EXCLUDED.streak_days,
			last_saved_at = EXCLUDED.last_saved_at,
			last_reward_claimed_at = EXCLUDED.last_reward_claimed_at,
			total_chars_saved = EXCLUDED.total_chars_saved,
			total_saves = EXCLUDED.total_saves,
			is_subscriber = EXCLUDED.is_subscriber,
			last_saved_note_id = EXCLUDED.last_saved_note_id,
			last_saved_note_at = EXCLUDED.last_saved_note_at,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		record.Level,
		record.XP,
		record.Coins,
		record.StreakDays,
		nullableTime(record.LastSavedAt),
		nullableTime(record.LastRewardClaimedAt),
		record.TotalCharsSaved,
		record.TotalSaves,
		record.IsSubscriber,
		nullableString(record.LastSavedNoteID),
		record.LastSavedNoteAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
