package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newLimiter(t *testing.T, limit int, w time.Duration) (*FixedWindowRateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewFixedWindowLimiter(limit, w)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	rl, clock := newLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		require.True(t, ok, "request %d", i+1)
	}

	clock.Advance(20 * time.Second)
	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Second, retry)

	// other clients have their own window
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestFixedWindowResets(t *testing.T) {
	rl, clock := newLimiter(t, 1, time.Minute)

	ok, _ := rl.Allow("k")
	require.True(t, ok)
	ok, _ = rl.Allow("k")
	require.False(t, ok)

	clock.Advance(time.Minute)
	ok, _ = rl.Allow("k")
	assert.True(t, ok)
}

func TestFixedWindowConcurrent(t *testing.T) {
	rl, _ := newLimiter(t, 50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
