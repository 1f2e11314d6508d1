package throttle

import "time"

const (
	// DefaultWindow is the reward cooldown per note.
	DefaultWindow = 60 * time.Second

	// DefaultMaxEntries bounds the in-memory throttle map.
	DefaultMaxEntries = 4096
)
