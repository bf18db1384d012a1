package cooldown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWindow(t *testing.T) {
	g := NewGate()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 5 * time.Second

	allowed, retry := g.Check("ping", "user1", window, base)
	assert.True(t, allowed)
	assert.Zero(t, retry)

	// Two seconds in, the window is still active.
	allowed, retry = g.Check("ping", "user1", window, base.Add(2*time.Second))
	assert.False(t, allowed)
	assert.Equal(t, 3*time.Second, retry)

	// At six seconds the window has lapsed and a fresh one is recorded.
	allowed, retry = g.Check("ping", "user1", window, base.Add(6*time.Second))
	assert.True(t, allowed)
	assert.Zero(t, retry)

	allowed, _ = g.Check("ping", "user1", window, base.Add(7*time.Second))
	assert.False(t, allowed)
}

func TestCheckKeysAreIndependent(t *testing.T) {
	g := NewGate()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 5 * time.Second

	allowed, _ := g.Check("ping", "user1", window, base)
	require.True(t, allowed)

	// Different user, same command.
	allowed, _ = g.Check("ping", "user2", window, base)
	assert.True(t, allowed)

	// Different command, same user.
	allowed, _ = g.Check("help", "user1", window, base)
	assert.True(t, allowed)

	assert.Equal(t, 3, g.Active(base))
}

func TestCheckZeroWindowNeverDenies(t *testing.T) {
	g := NewGate()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		allowed, retry := g.Check("help", "user1", 0, now)
		assert.True(t, allowed)
		assert.Zero(t, retry)
	}
	assert.Zero(t, g.Active(now), "zero windows must not be recorded")
}

// TestCheckConcurrentSameKey hammers one key from many goroutines at the same
// instant; the check-and-set must admit exactly one of them.
func TestCheckConcurrentSameKey(t *testing.T) {
	g := NewGate()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := g.Check("8ball", "user1", time.Minute, now)
			results <- allowed
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for allowed := range results {
		if allowed {
			admitted++
		}
	}
	assert.Equal(t, 1, admitted)
}

func TestPurgeDropsOnlyExpired(t *testing.T) {
	g := NewGate()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	g.Check("ping", "user1", 5*time.Second, base)
	g.Check("ping", "user2", time.Minute, base)

	removed := g.purge(base.Add(10 * time.Second))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, g.Active(base.Add(10*time.Second)))

	// The surviving window still denies.
	allowed, _ := g.Check("ping", "user2", time.Minute, base.Add(10*time.Second))
	assert.False(t, allowed)

	// The purged key is free again.
	allowed, _ = g.Check("ping", "user1", 5*time.Second, base.Add(10*time.Second))
	assert.True(t, allowed)
}
