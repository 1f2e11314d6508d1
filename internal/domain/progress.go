package domain

import "time"

// Progress is the singleton record holding a user's progression state.
// It is mutated only by the progression store; every mutation is a full
// load -> mutate -> persist sequence.
type Progress struct {
	Level               int        `json:"level" db:"level"`
	XP                  int        `json:"xp" db:"xp"`
	Coins               int        `json:"coins" db:"coins"`
	StreakDays          int        `json:"streak_days" db:"streak_days"`
	LastSavedAt         time.Time  `json:"last_saved_at" db:"last_saved_at"`
	LastRewardClaimedAt time.Time  `json:"last_reward_claimed_at" db:"last_reward_claimed_at"`
	TotalCharsSaved     int        `json:"total_chars_saved" db:"total_chars_saved"`
	TotalSaves          int        `json:"total_saves" db:"total_saves"`
	IsSubscriber        bool       `json:"is_subscriber" db:"is_subscriber"`
	LastSavedNoteID     string     `json:"last_saved_note_id,omitempty" db:"last_saved_note_id"`
	LastSavedNoteAt     *time.Time `json:"last_saved_note_at,omitempty" db:"last_saved_note_at"`
}

// NewProgress returns a fresh record with default values (level 1, nothing earned).
func NewProgress() *Progress {
	return &Progress{Level: 1}
}

// ProgressSnapshot is the read-only projection exposed to presentation.
type ProgressSnapshot struct {
	Level           int    `json:"level"`
	XP              int    `json:"xp"`
	Coins           int    `json:"coins"`
	StreakDays      int    `json:"streak_days"`
	TotalSaves      int    `json:"total_saves"`
	TotalCharsSaved int    `json:"total_chars_saved"`
	IsSubscriber    bool   `json:"is_subscriber"`
	AvatarStage     string `json:"avatar_stage"`
}

// Avatar stage names, derived from level.
const (
	AvatarStageNovice  = "novice"
	AvatarStageAdept   = "adept"
	AvatarStageVeteran = "veteran"
)

// AvatarStageForLevel maps a level to its avatar stage.
func AvatarStageForLevel(level int) string {
	switch {
	case level < 3:
		return AvatarStageNovice
	case level < 6:
		return AvatarStageAdept
	default:
		return AvatarStageVeteran
	}
}
