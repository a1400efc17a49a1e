// Package notify keeps the short-lived status messages shown to each
// editor session.
package notify

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3 * time.Second

// Notice is one message and the moment it was raised.
type Notice struct {
	Message string
	At      time.Time
}

// Center stores notices per workspace key and drops them once they are
// older than the TTL.
type Center struct {
	mu    sync.Mutex
	clock clockwork.Clock
	ttl   time.Duration
	byKey map[string][]Notice
}

// NewCenter creates a Center. A zero ttl means DefaultTTL; a nil clock
// means the wall clock.
func NewCenter(ttl time.Duration, clock clockwork.Clock) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Center{clock: clock, ttl: ttl, byKey: make(map[string][]Notice)}
}

// Push records msg for key.
func (c *Center) Push(key, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey[key] = append(c.prune(key), Notice{Message: msg, At: c.clock.Now()})
}

// Active returns the notices for key that have not expired, oldest first.
func (c *Center) Active(key string) []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	live := c.prune(key)
	if len(live) == 0 {
		delete(c.byKey, key)
		return nil
	}
	c.byKey[key] = live
	return append([]Notice(nil), live...)
}

// Forget drops every notice for key.
func (c *Center) Forget(key string) {
	c.mu.Lock()
	delete(c.byKey, key)
	c.mu.Unlock()
}

func (c *Center) prune(key string) []Notice {
	cutoff := c.clock.Now().Add(-c.ttl)
	list := c.byKey[key]
	kept := list[:0]
	for _, n := range list {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	return kept
}
