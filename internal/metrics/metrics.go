package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Progression Metrics
var (
	NotesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotesSaved,
			Help: HelpTextNotesSaved,
		},
	)

	SavesThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesThrottled,
			Help: HelpTextSavesThrottled,
		},
	)

	XPGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
	)

	CoinsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsGranted,
			Help: HelpTextCoinsGranted,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	DailyRewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewardsClaimed,
			Help: HelpTextDailyRewardsClaimed,
		},
	)
)

// Entitlement Metrics
var (
	ThemesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameThemesPurchased,
			Help: HelpTextThemesPurchased,
		},
		[]string{LabelTheme},
	)

	ThemesEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameThemesEquipped,
			Help: HelpTextThemesEquipped,
		},
		[]string{LabelTheme},
	)
)

// Monetization Metrics
var (
	PaywallPromptsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaywallPromptsRaised,
			Help: HelpTextPaywallPromptsRaised,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Persistence Metrics
var (
	PersistFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistFailures,
			Help: HelpTextPersistFailures,
		},
		[]string{LabelStore},
	)
)
