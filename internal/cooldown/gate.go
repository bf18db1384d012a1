// Package cooldown implements the per-command-per-user rate gate. A window is
// recorded on each allowed invocation; while it is active, further calls by
// the same user for the same command are denied with a retry-after hint.
package cooldown

import (
	"context"
	"log"
	"sync"
	"time"
)

type key struct {
	command string
	user    string
}

// Gate tracks active cooldown windows. Check-and-set on a key is atomic, so
// two near-simultaneous invocations can never both be allowed.
type Gate struct {
	mu      sync.Mutex
	windows map[key]time.Time
}

func NewGate() *Gate {
	return &Gate{windows: map[key]time.Time{}}
}

// Check reports whether an invocation is allowed at now. When allowed, a new
// window expiring at now+window is recorded. When denied, the remaining wait
// is returned at millisecond precision. A zero window never denies and
// records nothing.
func (g *Gate) Check(command, user string, window time.Duration, now time.Time) (bool, time.Duration) {
	if window <= 0 {
		return true, 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	k := key{command: command, user: user}
	if expiry, ok := g.windows[k]; ok {
		if now.Before(expiry) {
			return false, expiry.Sub(now)
		}
		// Lazy expiry: the stale window is replaced below.
	}
	g.windows[k] = now.Add(window)
	return true, 0
}

// Active returns the number of unexpired windows at now.
func (g *Gate) Active(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, expiry := range g.windows {
		if now.Before(expiry) {
			n++
		}
	}
	return n
}

// purge drops every window that expired before now and returns how many went.
func (g *Gate) purge(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	removed := 0
	for k, expiry := range g.windows {
		if !now.Before(expiry) {
			delete(g.windows, k)
			removed++
		}
	}
	return removed
}

// Sweep clears expired windows every interval until ctx is done, keeping
// memory bounded for long-lived processes with many distinct users. Run it
// from main.
func (g *Gate) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := g.purge(now); n > 0 {
				log.Printf("[INFO] Cleared %d expired cooldown windows", n)
			}
		}
	}
}
