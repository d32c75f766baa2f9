package requests

import (
	"raidbook/pkg/config"
	"sync"
	"time"
)

// Single rate limit window.
type limitWindow struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter enforces all the configured windows for a source API.
// Both source sites are community run, so the limits are self imposed.
type RateLimiter struct {
	windows []*limitWindow
	mu      sync.Mutex
}

// Create a instance of the rate limiter from the configured limits.
func CreateRateLimiter() *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*limitWindow{
			{
				limit:         config.Limits.Lower.Count,
				resetInterval: config.Limits.Lower.ResetInterval,
				lastReset:     now,
			},
			{
				limit:         config.Limits.Higher.Count,
				resetInterval: config.Limits.Higher.ResetInterval,
				lastReset:     now,
			},
		},
	}
}

// Wait blocks until a request is allowed by every window, then consumes one
// slot on each.
func (r *RateLimiter) Wait() {
	for {
		if r.tryAcquire() {
			return
		}
		time.Sleep(r.timeToNextReset())
	}
}

// tryAcquire consumes a slot on every window if none is at its limit.
func (r *RateLimiter) tryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}

	for _, window := range r.windows {
		window.count++
	}
	return true
}

// Reset any window whose interval has elapsed.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// timeToNextReset returns how long until the most restrictive exhausted
// window resets.
func (r *RateLimiter) timeToNextReset() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var waitTime time.Duration
	for _, window := range r.windows {
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	if waitTime <= 0 {
		// Nothing is exhausted anymore, retry immediately.
		waitTime = time.Millisecond
	}
	return waitTime
}
