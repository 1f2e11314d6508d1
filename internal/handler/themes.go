package handler

import (
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/logger"
)

// HandleListThemes returns the theme catalog with ownership state
// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {array} entitlement.ThemeStatus
// @Router /themes [get]
func HandleListThemes(svc entitlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		themes, err := svc.ListThemes(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListThemesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, themes)
	}
}

// HandleCurrentTheme returns the equipped theme
// @Summary Get the current theme
// @Tags themes
// @Produce json
// @Success 200 {object} entitlement.ThemeStatus
// @Router /themes/current [get]
func HandleCurrentTheme(svc entitlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := svc.CurrentTheme(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetThemeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, current)
	}
}

// HandlePurchaseTheme buys a theme with coins and equips it
// @Summary Purchase a theme
// @Tags themes
// @Produce json
// @Param themeID path string true "Theme id"
// @Success 200 {object} SuccessResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /themes/{themeID}/purchase [post]
func HandlePurchaseTheme(svc entitlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		themeID, ok := GetURLParam(r, w, "themeID")
		if !ok {
			return
		}

		if err := svc.Purchase(r.Context(), themeID); err != nil {
			respondServiceError(w, r, ErrMsgPurchaseFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Theme purchased via API", "theme_id", themeID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgThemePurchasedSuccess})
	}
}

// HandleEquipTheme equips an owned theme
// @Summary Equip a theme
// @Tags themes
// @Produce json
// @Param themeID path string true "Theme id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /themes/{themeID}/equip [post]
func HandleEquipTheme(svc entitlement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		themeID, ok := GetURLParam(r, w, "themeID")
		if !ok {
			return
		}

		if err := svc.Equip(r.Context(), themeID); err != nil {
			respondServiceError(w, r, ErrMsgEquipFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgThemeEquippedSuccess})
	}
}
