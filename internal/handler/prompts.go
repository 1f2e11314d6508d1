package handler

import (
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/monetization"
)

// HandleGetPrompts returns the current prompt state
// @Summary Get monetization prompt state
// @Description Level-up banner, daily-reward sheet and paywall sheet flags
// @Tags prompts
// @Produce json
// @Success 200 {object} monetization.Prompts
// @Router /prompts [get]
func HandleGetPrompts(policy *monetization.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, policy.Snapshot())
	}
}

// HandleDismissPaywall clears the paywall sheet
// @Summary Dismiss the paywall sheet
// @Tags prompts
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /prompts/paywall/dismiss [post]
func HandleDismissPaywall(policy *monetization.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policy.DismissPaywall()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPaywallDismissed})
	}
}

// HandleDismissDailyReward clears the daily-reward sheet
// @Summary Dismiss the daily-reward sheet
// @Tags prompts
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /prompts/daily-reward/dismiss [post]
func HandleDismissDailyReward(policy *monetization.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policy.DismissDailyReward()
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDailyRewardDismissed})
	}
}
