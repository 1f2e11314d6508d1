package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Progress errors
	ErrMsgProgressNotFound = "progress record not found"

	// Economy errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgRewardAlreadyClaimed = "daily reward already claimed"
	ErrMsgInvalidAmount        = "invalid amount"

	// Theme errors
	ErrMsgThemeNotFound        = "theme not found"
	ErrMsgThemeNotOwned        = "theme is not owned"
	ErrMsgThemeNotPurchasable  = "theme is not purchasable with coins"
	ErrMsgSubscriptionRequired = "subscription required"

	// Note errors
	ErrMsgNoteNotFound = "note not found"
	ErrMsgEmptyBody    = "note body is empty"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Progress errors
	ErrProgressNotFound = errors.New(ErrMsgProgressNotFound)

	// Economy errors
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrRewardAlreadyClaimed = errors.New(ErrMsgRewardAlreadyClaimed)
	ErrInvalidAmount        = errors.New(ErrMsgInvalidAmount)

	// Theme errors
	ErrThemeNotFound        = errors.New(ErrMsgThemeNotFound)
	ErrThemeNotOwned        = errors.New(ErrMsgThemeNotOwned)
	ErrThemeNotPurchasable  = errors.New(ErrMsgThemeNotPurchasable)
	ErrSubscriptionRequired = errors.New(ErrMsgSubscriptionRequired)

	// Note errors
	ErrNoteNotFound = errors.New(ErrMsgNoteNotFound)
	ErrEmptyBody    = errors.New(ErrMsgEmptyBody)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
