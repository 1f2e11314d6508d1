package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingURLParam   = "Missing %s path parameter"

	ErrMsgCreateNoteFailed = "Failed to create note"
	ErrMsgUpdateNoteFailed = "Failed to update note"
	ErrMsgGetNoteFailed    = "Failed to retrieve note"
	ErrMsgListNotesFailed  = "Failed to list notes"
	ErrMsgDeleteNoteFailed = "Failed to delete note"
	ErrMsgImportTextFailed = "Failed to import text"

	ErrMsgGetProgressFailed  = "Failed to retrieve progress"
	ErrMsgClaimRewardFailed  = "Failed to claim daily reward"
	ErrMsgCheckRewardFailed  = "Failed to check daily reward"
	ErrMsgListThemesFailed   = "Failed to list themes"
	ErrMsgGetThemeFailed     = "Failed to retrieve current theme"
	ErrMsgPurchaseFailed     = "Failed to purchase theme"
	ErrMsgEquipFailed        = "Failed to equip theme"
	ErrMsgSubscriptionFailed = "Failed to apply subscription event"
)

// Success messages for API responses
const (
	MsgNoteDeletedSuccess    = "Note deleted successfully"
	MsgRewardClaimedSuccess  = "Daily reward claimed"
	MsgThemePurchasedSuccess = "Theme purchased"
	MsgThemeEquippedSuccess  = "Theme equipped"
	MsgSubscriptionApplied   = "Subscription status applied"
	MsgPaywallDismissed      = "Paywall dismissed"
	MsgDailyRewardDismissed  = "Daily reward sheet dismissed"
)
