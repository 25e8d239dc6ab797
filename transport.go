package rosu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
)

// send pushes a built request through the rate limiter and the retry loop.
// One rate-limit token covers all attempts of a send. Each attempt rebuilds
// the network request from the raw bytes and is bounded by the per-attempt
// timeout; only timeouts are retried, any other transport failure propagates
// immediately.
func (c *Client) send(ctx context.Context, req builtRequest) (int, []byte, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return 0, nil, err
	}

	attempt := 0

	for {
		status, body, err := c.attempt(ctx, req)
		if err == nil {
			return status, body, nil
		}

		if ctx.Err() != nil {
			// The caller gave up; not a per-attempt timeout.
			return 0, nil, ctx.Err()
		}

		if isTimeout(err) {
			if attempt < c.maxRetries {
				if c.logger != nil {
					c.logger.Warn("Timed out, retrying", "attempt", attempt, "url", req.url)
				}
				if c.metrics != nil {
					c.metrics.RecordRetry()
				}
				attempt++
				continue
			}
			return 0, nil, ErrRequestTimeout
		}

		return 0, nil, &TransportError{Cause: err}
	}
}

// attempt performs one network exchange, reading the full body while the
// per-attempt timeout is still in effect.
func (c *Client) attempt(ctx context.Context, req builtRequest) (int, []byte, error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(actx, req.method, req.url, bytes.NewReader(req.body))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header = req.header.Clone()
	httpReq.ContentLength = int64(len(req.body))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
