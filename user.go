package rosu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ev3nvy/rosu-v2/internal/lazy"
)

func userRequest(user UserID, mode *Mode) rawRequest {
	path := "users/" + user.String()
	if mode != nil {
		path += "/" + mode.String()
	}
	return rawRequest{method: "GET", path: path}
}

// GetUser requests a user by id or name.
type GetUser struct {
	client *Client
	fut    lazy.Cell[User]
	user   UserID
	mode   *Mode
}

// User starts building a user request. Nothing is sent until Do.
func (c *Client) User(user UserID) *GetUser {
	return &GetUser{client: c, user: user}
}

// Mode selects the mode the statistics are for; defaults to the user's own.
func (r *GetUser) Mode(mode Mode) *GetUser {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
// A successful fetch feeds the username→id cache.
func (r *GetUser) Do(ctx context.Context) (User, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (User, error) {
		r.client.countRequest("user")

		user, err := request[User](ctx, r.client, userRequest(r.user, r.mode))
		if err != nil {
			return User{}, err
		}

		r.client.updateCache(user.UserID, user.Username)

		return user, nil
	})
}

// GetOwnData requests the authenticated user. Requires the identify scope,
// i.e. a client built with WithAuthorization.
type GetOwnData struct {
	client *Client
	fut    lazy.Cell[User]
	mode   *Mode
}

// OwnData starts building a request for the authenticated user.
func (c *Client) OwnData() *GetOwnData {
	return &GetOwnData{client: c}
}

// Mode selects the mode the statistics are for.
func (r *GetOwnData) Mode(mode Mode) *GetOwnData {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetOwnData) Do(ctx context.Context) (User, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (User, error) {
		r.client.countRequest("own_data")

		path := "me"
		if r.mode != nil {
			path += "/" + r.mode.String()
		}

		return request[User](ctx, r.client, rawRequest{method: "GET", path: path})
	})
}

// GetUserScores requests a user's top, global first, pinned or recent
// scores. The score type defaults to best; the server returns at most 100
// results and defaults to 5.
type GetUserScores struct {
	client       *Client
	fut          lazy.Cell[[]Score]
	user         UserID
	scoreType    ScoreType
	mode         *Mode
	limit        *uint32
	offset       *uint32
	includeFails *bool
}

// UserScores starts building a user scores request.
func (c *Client) UserScores(user UserID) *GetUserScores {
	return &GetUserScores{client: c, user: user, scoreType: ScoreTypeBest}
}

// Best requests the user's top scores. This is the default.
func (r *GetUserScores) Best() *GetUserScores {
	r.scoreType = ScoreTypeBest
	return r
}

// Firsts requests the user's global first place scores.
func (r *GetUserScores) Firsts() *GetUserScores {
	r.scoreType = ScoreTypeFirsts
	return r
}

// Pinned requests the scores the user pinned to their profile.
func (r *GetUserScores) Pinned() *GetUserScores {
	r.scoreType = ScoreTypePinned
	return r
}

// Recent requests the user's recent scores; failed scores are excluded
// unless IncludeFails(true) is set.
func (r *GetUserScores) Recent() *GetUserScores {
	r.scoreType = ScoreTypeRecent
	return r
}

// Mode selects the game mode; defaults to the user's own.
func (r *GetUserScores) Mode(mode Mode) *GetUserScores {
	r.mode = &mode
	return r
}

// Limit caps the number of results; at most 100.
func (r *GetUserScores) Limit(limit uint32) *GetUserScores {
	r.limit = &limit
	return r
}

// Offset skips the first results for pagination.
func (r *GetUserScores) Offset(offset uint32) *GetUserScores {
	r.offset = &offset
	return r
}

// IncludeFails also returns failed scores; only the recent score type
// honors it.
func (r *GetUserScores) IncludeFails(include bool) *GetUserScores {
	r.includeFails = &include
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetUserScores) Do(ctx context.Context) ([]Score, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]Score, error) {
		r.client.countRequest("user_scores")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		query := url.Values{}
		if r.mode != nil {
			query.Set("mode", r.mode.String())
		}
		if r.limit != nil {
			query.Set("limit", fmt.Sprint(*r.limit))
		}
		if r.offset != nil {
			query.Set("offset", fmt.Sprint(*r.offset))
		}
		if r.includeFails != nil {
			include := "0"
			if *r.includeFails {
				include = "1"
			}
			query.Set("include_fails", include)
		}

		return request[[]Score](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("users/%d/scores/%s", userID, r.scoreType),
			query:  query,
		})
	})
}

// GetUserKudosu requests a user's kudosu history.
type GetUserKudosu struct {
	client *Client
	fut    lazy.Cell[[]KudosuHistory]
	user   UserID
	limit  *uint32
	offset *uint32
}

// UserKudosu starts building a kudosu history request.
func (c *Client) UserKudosu(user UserID) *GetUserKudosu {
	return &GetUserKudosu{client: c, user: user}
}

// Limit caps the number of results.
func (r *GetUserKudosu) Limit(limit uint32) *GetUserKudosu {
	r.limit = &limit
	return r
}

// Offset skips the first results for pagination.
func (r *GetUserKudosu) Offset(offset uint32) *GetUserKudosu {
	r.offset = &offset
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetUserKudosu) Do(ctx context.Context) ([]KudosuHistory, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]KudosuHistory, error) {
		r.client.countRequest("user_kudosu")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		return request[[]KudosuHistory](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("users/%d/kudosu", userID),
			query:  limitOffsetQuery(r.limit, r.offset),
		})
	})
}

// GetRecentEvents requests a user's recent activity.
type GetRecentEvents struct {
	client *Client
	fut    lazy.Cell[[]RecentEvent]
	user   UserID
	limit  *uint32
	offset *uint32
}

// RecentEvents starts building a recent activity request.
func (c *Client) RecentEvents(user UserID) *GetRecentEvents {
	return &GetRecentEvents{client: c, user: user}
}

// Limit caps the number of results.
func (r *GetRecentEvents) Limit(limit uint32) *GetRecentEvents {
	r.limit = &limit
	return r
}

// Offset skips the first results for pagination.
func (r *GetRecentEvents) Offset(offset uint32) *GetRecentEvents {
	r.offset = &offset
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetRecentEvents) Do(ctx context.Context) ([]RecentEvent, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]RecentEvent, error) {
		r.client.countRequest("recent_events")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		return request[[]RecentEvent](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("users/%d/recent_activity", userID),
			query:  limitOffsetQuery(r.limit, r.offset),
		})
	})
}

// GetUserMostPlayed requests a user's most played maps. The server returns
// at most 100 results and defaults to 5.
type GetUserMostPlayed struct {
	client *Client
	fut    lazy.Cell[[]MostPlayedMap]
	user   UserID
	limit  *uint32
	offset *uint32
}

// UserMostPlayed starts building a most played maps request.
func (c *Client) UserMostPlayed(user UserID) *GetUserMostPlayed {
	return &GetUserMostPlayed{client: c, user: user}
}

// Limit caps the number of results; at most 100.
func (r *GetUserMostPlayed) Limit(limit uint32) *GetUserMostPlayed {
	r.limit = &limit
	return r
}

// Offset skips the first results for pagination.
func (r *GetUserMostPlayed) Offset(offset uint32) *GetUserMostPlayed {
	r.offset = &offset
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetUserMostPlayed) Do(ctx context.Context) ([]MostPlayedMap, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]MostPlayedMap, error) {
		r.client.countRequest("user_most_played")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		return request[[]MostPlayedMap](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("users/%d/beatmapsets/most_played", userID),
			query:  limitOffsetQuery(r.limit, r.offset),
		})
	})
}

// GetUserBeatmapsets requests the mapsets a user made; the map type defaults
// to ranked.
type GetUserBeatmapsets struct {
	client  *Client
	fut     lazy.Cell[[]Beatmapset]
	user    UserID
	mapType MapType
	limit   *uint32
	offset  *uint32
}

// UserBeatmapsets starts building a user mapsets request.
func (c *Client) UserBeatmapsets(user UserID) *GetUserBeatmapsets {
	return &GetUserBeatmapsets{client: c, user: user, mapType: MapTypeRanked}
}

// MapType selects which kind of mapsets to return.
func (r *GetUserBeatmapsets) MapType(mapType MapType) *GetUserBeatmapsets {
	r.mapType = mapType
	return r
}

// Loved requests the user's loved mapsets.
func (r *GetUserBeatmapsets) Loved() *GetUserBeatmapsets {
	return r.MapType(MapTypeLoved)
}

// Favourite requests the user's favourited mapsets.
func (r *GetUserBeatmapsets) Favourite() *GetUserBeatmapsets {
	return r.MapType(MapTypeFavourite)
}

// Graveyard requests the user's graveyarded mapsets.
func (r *GetUserBeatmapsets) Graveyard() *GetUserBeatmapsets {
	return r.MapType(MapTypeGraveyard)
}

// Ranked requests the user's ranked mapsets. This is the default.
func (r *GetUserBeatmapsets) Ranked() *GetUserBeatmapsets {
	return r.MapType(MapTypeRanked)
}

// Pending requests the user's pending mapsets.
func (r *GetUserBeatmapsets) Pending() *GetUserBeatmapsets {
	return r.MapType(MapTypePending)
}

// Limit caps the number of results.
func (r *GetUserBeatmapsets) Limit(limit uint32) *GetUserBeatmapsets {
	r.limit = &limit
	return r
}

// Offset skips the first results for pagination.
func (r *GetUserBeatmapsets) Offset(offset uint32) *GetUserBeatmapsets {
	r.offset = &offset
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetUserBeatmapsets) Do(ctx context.Context) ([]Beatmapset, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]Beatmapset, error) {
		r.client.countRequest("user_beatmapsets")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		return request[[]Beatmapset](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("users/%d/beatmapsets/%s", userID, r.mapType),
			query:  limitOffsetQuery(r.limit, r.offset),
		})
	})
}

func limitOffsetQuery(limit, offset *uint32) url.Values {
	query := url.Values{}
	if limit != nil {
		query.Set("limit", fmt.Sprint(*limit))
	}
	if offset != nil {
		query.Set("offset", fmt.Sprint(*offset))
	}
	return query
}
