package config

// Default values for environment-driven settings
const (
	DefaultSubscriptionRefreshInterval = "6h"
)
