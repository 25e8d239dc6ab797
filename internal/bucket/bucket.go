// Package bucket implements the blocking token bucket that gates every
// outbound request of the client.
package bucket

import (
	"context"
	"sync"
	"time"
)

// Bucket is a token bucket with a fixed capacity and a steady refill rate.
// Unlike an admission-check limiter it never rejects: Acquire blocks until a
// token is available or the context is cancelled. Safe for concurrent use.
type Bucket struct {
	mu           sync.Mutex
	tokens       float64
	capacity     float64
	refillPerSec float64
	lastRefill   time.Time
}

// New creates a bucket holding capacity tokens, refilled at refillPerSec
// tokens per second. The bucket starts full, allowing an initial burst.
func New(capacity int, refillPerSec float64) *Bucket {
	if capacity < 1 {
		capacity = 1
	}
	if refillPerSec <= 0 {
		refillPerSec = 1
	}
	return &Bucket{
		tokens:       float64(capacity),
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		lastRefill:   time.Now(),
	}
}

// Acquire consumes one token, blocking until one is available. It only fails
// if ctx is cancelled first; the bucket itself never times out.
func (b *Bucket) Acquire(ctx context.Context) error {
	for {
		b.mu.Lock()
		b.refillLocked(time.Now())

		if b.tokens >= 1 {
			b.tokens--
			b.mu.Unlock()
			return nil
		}

		wait := time.Duration((1 - b.tokens) / b.refillPerSec * float64(time.Second))
		b.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Available returns the number of whole tokens currently held.
func (b *Bucket) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refillLocked(time.Now())
	return int(b.tokens)
}

func (b *Bucket) refillLocked(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed <= 0 {
		return
	}
	b.tokens += elapsed.Seconds() * b.refillPerSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}
