// Package throttle implements the per-note reward cooldown that stops rapid
// repeated saves of the same note from farming XP and coins.
package throttle

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Guard tracks the last rewarded save per note id. State is in-memory and
// process-lifetime only; losing it on restart grants at most one extra
// reward per note.
type Guard struct {
	mu      sync.Mutex
	window  time.Duration
	entries *expirable.LRU[string, time.Time]
}

// New creates a Guard with the given cooldown window and a bounded entry map.
// Entries expire from the map once the window has passed.
func New(window time.Duration, maxEntries int) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Guard{
		window:  window,
		entries: expirable.NewLRU[string, time.Time](maxEntries, nil, window),
	}
}

// Throttled reports whether a save of noteID at now should be denied a
// reward. On the allowed path it records now as the note's last rewarded
// save, including the very first call for a note id, so the window applies
// from the first save onward. Empty or whitespace-only ids never throttle
// and record nothing.
func (g *Guard) Throttled(noteID string, now time.Time) bool {
	id := strings.TrimSpace(noteID)
	if id == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if last, ok := g.entries.Get(id); ok {
		if now.Sub(last) < g.window {
			return true
		}
	}

	g.entries.Add(id, now)
	return false
}

// LastRewardedAt returns when the note was last granted a reward, if known.
func (g *Guard) LastRewardedAt(noteID string) (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.entries.Get(strings.TrimSpace(noteID))
}

// Reset clears all tracked notes (admin/testing).
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries.Purge()
}
