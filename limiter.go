package pagebuilder

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ExportLimiter rate-limits ZIP exports per client IP.
type ExportLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	clock  clockwork.Clock
	done   chan struct{}
	once   sync.Once
}

// NewExportLimiter creates an ExportLimiter that allows max exports per
// window. A max of zero disables the limit.
func NewExportLimiter(max int, window time.Duration, clock clockwork.Clock) *ExportLimiter {
	if window <= 0 {
		window = time.Minute
	}
	l := &ExportLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		clock:  clock,
		done:   make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *ExportLimiter) cleanup() {
	ticker := l.clock.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.Chan():
		}
		cutoff := l.clock.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.hits {
			if kept := prune(hits, cutoff); len(kept) == 0 {
				delete(l.hits, ip)
			} else {
				l.hits[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Allow reports whether ip may export now and records the attempt if so.
func (l *ExportLimiter) Allow(ip string) bool {
	if l.max <= 0 {
		return true
	}
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.hits[ip], now.Add(-l.window))
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)
	return true
}

// Close stops the background cleanup.
func (l *ExportLimiter) Close() {
	l.once.Do(func() { close(l.done) })
}

func prune(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
