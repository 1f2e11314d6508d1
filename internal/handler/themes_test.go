package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/entitlement"
)

func TestListThemesEndpoint(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodGet, "/themes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	themes := decodeBody[[]entitlement.ThemeStatus](t, rec)
	require.Len(t, themes, 3)
	assert.Equal(t, entitlement.ThemeDefault, themes[0].ID)
	assert.True(t, themes[0].Owned)
}

func TestPurchaseThemeEndpoint(t *testing.T) {
	stack := newTestStack(t)
	stack.seedCoins(t, 50)

	rec := stack.do(t, http.MethodPost, "/themes/sunset/purchase", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	current := decodeBody[entitlement.ThemeStatus](t, stack.do(t, http.MethodGet, "/themes/current", nil))
	assert.Equal(t, entitlement.ThemeSunset, current.ID)
}

func TestPurchaseUnknownThemeEndpoint(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/themes/neon/purchase", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgThemeNotFoundError, resp.Error)
}

func TestEquipPremiumWithoutSubscription(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/themes/premium_midnight/equip", nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgSubscriptionRequired, resp.Error)
}

func TestSubscriptionEventEndpoint(t *testing.T) {
	stack := newTestStack(t)

	active := true
	rec := stack.do(t, http.MethodPost, "/subscription/event", SubscriptionEventRequest{Active: &active})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = stack.do(t, http.MethodPost, "/themes/premium_midnight/equip", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	current := decodeBody[entitlement.ThemeStatus](t, stack.do(t, http.MethodGet, "/themes/current", nil))
	assert.Equal(t, entitlement.ThemePremiumMidnight, current.ID)

	// Expiry falls back to the default theme.
	inactive := false
	rec = stack.do(t, http.MethodPost, "/subscription/event", SubscriptionEventRequest{Active: &inactive})
	require.Equal(t, http.StatusOK, rec.Code)

	current = decodeBody[entitlement.ThemeStatus](t, stack.do(t, http.MethodGet, "/themes/current", nil))
	assert.Equal(t, entitlement.ThemeDefault, current.ID)
}

func TestSubscriptionEventValidation(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/subscription/event", map[string]string{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
