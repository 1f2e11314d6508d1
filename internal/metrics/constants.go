package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "editorbox_http_requests_total"
	MetricNameHTTPRequestDuration  = "editorbox_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "editorbox_http_requests_in_flight"

	MetricNameNotesSaved          = "editorbox_notes_saved_total"
	MetricNameSavesThrottled      = "editorbox_saves_throttled_total"
	MetricNameXPGranted           = "editorbox_xp_granted_total"
	MetricNameCoinsGranted        = "editorbox_coins_granted_total"
	MetricNameLevelUps            = "editorbox_level_ups_total"
	MetricNameDailyRewardsClaimed = "editorbox_daily_rewards_claimed_total"

	MetricNameThemesPurchased = "editorbox_themes_purchased_total"
	MetricNameThemesEquipped  = "editorbox_themes_equipped_total"

	MetricNamePaywallPromptsRaised = "editorbox_paywall_prompts_raised_total"

	MetricNameEventsPublished    = "editorbox_events_published_total"
	MetricNameEventHandlerErrors = "editorbox_event_handler_errors_total"

	MetricNamePersistFailures = "editorbox_persist_failures_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextNotesSaved          = "Total number of note save events processed"
	HelpTextSavesThrottled      = "Total number of save events denied a reward by the throttle guard"
	HelpTextXPGranted           = "Total XP granted"
	HelpTextCoinsGranted        = "Total coins granted"
	HelpTextLevelUps            = "Total level-ups"
	HelpTextDailyRewardsClaimed = "Total daily rewards claimed"

	HelpTextThemesPurchased = "Total themes purchased with coins"
	HelpTextThemesEquipped  = "Total theme equips"

	HelpTextPaywallPromptsRaised = "Total paywall prompts raised"

	HelpTextEventsPublished    = "Total events published to the bus"
	HelpTextEventHandlerErrors = "Total event handler errors"

	HelpTextPersistFailures = "Total swallowed persistence failures"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelTheme  = "theme"
	LabelReason = "reason"
	LabelStore  = "store"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
