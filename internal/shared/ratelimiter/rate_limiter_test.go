package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock はテスト用の手動で進める時計です。
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
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(limit int, interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, interval)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter_AllowUpToBurst(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(3, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(1, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(2, time.Minute)

	assert.True(t, rl.Allow("k"))
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	// 2回/分 → 約30秒で1トークン回復
	clock.Advance(31 * time.Second)
	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(5, time.Second)

	rl.Allow("old")
	clock.Advance(20 * time.Second)
	rl.Allow("fresh")

	assert.Equal(t, 1, rl.Sweep())
	assert.Len(t, rl.buckets, 1)
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(50, time.Hour)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
