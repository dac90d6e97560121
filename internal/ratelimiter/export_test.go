package ratelimiter

import "time"

// SetClock replaces the limiter's time source for tests.
func (cl *ClientLimiters) SetClock(now func() time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.now = now
}
