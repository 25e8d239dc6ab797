package rosu

import (
	"context"
	"fmt"

	"github.com/ev3nvy/rosu-v2/internal/lazy"
)

// GetScore requests a single score.
type GetScore struct {
	client  *Client
	fut     lazy.Cell[Score]
	scoreID uint64
	mode    Mode
}

// Score starts building a score request.
func (c *Client) Score(scoreID uint64, mode Mode) *GetScore {
	return &GetScore{client: c, scoreID: scoreID, mode: mode}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetScore) Do(ctx context.Context) (Score, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Score, error) {
		r.client.countRequest("score")

		return request[Score](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("scores/%s/%d", r.mode, r.scoreID),
		})
	})
}

// GetReplayRaw requests the replay of a score as raw bytes. Requires a
// client built with WithAuthorization.
type GetReplayRaw struct {
	client  *Client
	fut     lazy.Cell[[]byte]
	scoreID uint64
	mode    Mode
}

// ReplayRaw starts building a raw replay download request.
func (c *Client) ReplayRaw(mode Mode, scoreID uint64) *GetReplayRaw {
	return &GetReplayRaw{client: c, scoreID: scoreID, mode: mode}
}

// Do sends the request on first call; repeated calls return the same bytes.
func (r *GetReplayRaw) Do(ctx context.Context) ([]byte, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]byte, error) {
		r.client.countRequest("replay_raw")

		return r.client.requestRaw(ctx, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("scores/%s/%d/download", r.mode, r.scoreID),
		})
	})
}
