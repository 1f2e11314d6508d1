package handler

import (
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/subscription"
)

// SubscriptionEventRequest is the request body for subscription status changes
type SubscriptionEventRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// HandleSubscriptionEvent applies a subscription status change
// @Summary Apply a subscription status change
// @Description Updates the subscriber flag and reconciles entitlements
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body SubscriptionEventRequest true "Subscription state"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /subscription/event [post]
func HandleSubscriptionEvent(svc subscription.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubscriptionEventRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Subscription event"); err != nil {
			return
		}

		if err := svc.HandleStatusChanged(r.Context(), *req.Active); err != nil {
			respondServiceError(w, r, ErrMsgSubscriptionFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSubscriptionApplied})
	}
}
