// Package lazy provides the at-most-once execution cell backing the client's
// request builders.
package lazy

import (
	"context"
	"sync"
)

// Cell runs a function at most once and caches its result. The first Do call
// starts the function; concurrent Do calls wait for the same in-flight
// execution instead of starting a second one, and later calls return the
// cached result immediately. Safe for concurrent use; the zero value is ready.
type Cell[T any] struct {
	mu      sync.Mutex
	started bool
	done    chan struct{}
	val     T
	err     error
}

// Do returns the cell's result, invoking fn to produce it if no invocation
// has started yet. fn runs on the context of the caller that started it;
// waiters that are cancelled stop waiting but the execution keeps running
// and its result stays cached for subsequent calls.
func (c *Cell[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if !c.started {
		c.started = true
		c.done = make(chan struct{})

		go func() {
			val, err := fn(ctx)
			c.mu.Lock()
			c.val, c.err = val, err
			c.mu.Unlock()
			close(c.done)
		}()
	}
	done := c.done
	c.mu.Unlock()

	select {
	case <-done:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.val, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Started reports whether an execution has begun. Builder configuration is
// only meaningful while this is false.
func (c *Cell[T]) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}
