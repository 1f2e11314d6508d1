package handler

import (
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/progression"
)

// DailyRewardResponse reports the outcome of a daily reward claim or check
type DailyRewardResponse struct {
	Claimable bool `json:"claimable"`
	Coins     int  `json:"coins,omitempty"`
}

// HandleGetProgress returns the progress projection
// @Summary Get progression snapshot
// @Description Level, XP, coins, streak, totals and avatar stage
// @Tags progress
// @Produce json
// @Success 200 {object} domain.ProgressSnapshot
// @Router /progress [get]
func HandleGetProgress(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.Snapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleCheckDailyReward reports whether the daily reward is claimable
// @Summary Check daily reward eligibility
// @Tags progress
// @Produce json
// @Success 200 {object} DailyRewardResponse
// @Router /progress/daily-reward [get]
func HandleCheckDailyReward(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claimable, err := svc.CheckDailyReward(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgCheckRewardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DailyRewardResponse{Claimable: claimable})
	}
}

// HandleClaimDailyReward claims the daily reward
// @Summary Claim the daily reward
// @Tags progress
// @Produce json
// @Success 200 {object} DailyRewardResponse
// @Failure 409 {object} ErrorResponse
// @Router /progress/daily-reward/claim [post]
func HandleClaimDailyReward(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coins, err := svc.ClaimDailyReward(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgClaimRewardFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DailyRewardResponse{Claimable: false, Coins: coins})
	}
}
