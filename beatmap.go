package rosu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ev3nvy/rosu-v2/internal/lazy"
)

// GetBeatmap requests a single map, addressed by id, checksum or filename.
type GetBeatmap struct {
	client   *Client
	fut      lazy.Cell[Beatmap]
	mapID    *uint32
	checksum string
	filename string
}

// Beatmap starts building a map lookup request. Address the map with MapID,
// Checksum or Filename before calling Do.
func (c *Client) Beatmap() *GetBeatmap {
	return &GetBeatmap{client: c}
}

// MapID addresses the map by id.
func (r *GetBeatmap) MapID(mapID uint32) *GetBeatmap {
	r.mapID = &mapID
	return r
}

// Checksum addresses the map by its MD5 checksum.
func (r *GetBeatmap) Checksum(checksum string) *GetBeatmap {
	r.checksum = checksum
	return r
}

// Filename addresses the map by its .osu filename.
func (r *GetBeatmap) Filename(filename string) *GetBeatmap {
	r.filename = filename
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmap) Do(ctx context.Context) (Beatmap, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Beatmap, error) {
		r.client.countRequest("beatmap")

		query := url.Values{}
		if r.mapID != nil {
			query.Set("id", fmt.Sprint(*r.mapID))
		}
		if r.checksum != "" {
			query.Set("checksum", r.checksum)
		}
		if r.filename != "" {
			query.Set("filename", r.filename)
		}

		return request[Beatmap](ctx, r.client, rawRequest{
			method: "GET",
			path:   "beatmaps/lookup",
			query:  query,
		})
	})
}

type beatmapsEnvelope struct {
	Beatmaps []Beatmap `json:"beatmaps"`
}

// GetBeatmaps requests up to 50 maps at once.
type GetBeatmaps struct {
	client *Client
	fut    lazy.Cell[[]Beatmap]
	mapIDs []uint32
}

// Beatmaps starts building a bulk map request.
func (c *Client) Beatmaps(mapIDs ...uint32) *GetBeatmaps {
	return &GetBeatmaps{client: c, mapIDs: mapIDs}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmaps) Do(ctx context.Context) ([]Beatmap, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]Beatmap, error) {
		r.client.countRequest("beatmaps")

		query := url.Values{}
		for _, id := range r.mapIDs {
			query.Add("ids[]", fmt.Sprint(id))
		}

		envelope, err := request[beatmapsEnvelope](ctx, r.client, rawRequest{
			method: "GET",
			path:   "beatmaps",
			query:  query,
		})
		if err != nil {
			return nil, err
		}

		return envelope.Beatmaps, nil
	})
}

// GetBeatmapScores requests a map's leaderboard.
type GetBeatmapScores struct {
	client *Client
	fut    lazy.Cell[BeatmapScores]
	mapID  uint32
	mode   *Mode
}

// BeatmapScores starts building a map leaderboard request.
func (c *Client) BeatmapScores(mapID uint32) *GetBeatmapScores {
	return &GetBeatmapScores{client: c, mapID: mapID}
}

// Mode selects the game mode; defaults to the map's own.
func (r *GetBeatmapScores) Mode(mode Mode) *GetBeatmapScores {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapScores) Do(ctx context.Context) (BeatmapScores, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (BeatmapScores, error) {
		r.client.countRequest("beatmap_scores")

		query := url.Values{}
		if r.mode != nil {
			query.Set("mode", r.mode.String())
		}

		return request[BeatmapScores](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("beatmaps/%d/scores", r.mapID),
			query:  query,
		})
	})
}

// GetBeatmapUserScore requests a user's best score on a map together with
// its leaderboard position.
type GetBeatmapUserScore struct {
	client *Client
	fut    lazy.Cell[BeatmapUserScore]
	mapID  uint32
	user   UserID
	mode   *Mode
}

// BeatmapUserScore starts building a user map score request.
func (c *Client) BeatmapUserScore(mapID uint32, user UserID) *GetBeatmapUserScore {
	return &GetBeatmapUserScore{client: c, mapID: mapID, user: user}
}

// Mode selects the game mode; defaults to the map's own.
func (r *GetBeatmapUserScore) Mode(mode Mode) *GetBeatmapUserScore {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapUserScore) Do(ctx context.Context) (BeatmapUserScore, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (BeatmapUserScore, error) {
		r.client.countRequest("beatmap_user_score")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return BeatmapUserScore{}, err
		}

		query := url.Values{}
		if r.mode != nil {
			query.Set("mode", r.mode.String())
		}

		return request[BeatmapUserScore](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("beatmaps/%d/scores/users/%d", r.mapID, userID),
			query:  query,
		})
	})
}

// GetBeatmapUserScores requests a user's top score for each mod combination
// on a map.
type GetBeatmapUserScores struct {
	client *Client
	fut    lazy.Cell[[]Score]
	mapID  uint32
	user   UserID
	mode   *Mode
}

// BeatmapUserScores starts building a per-mod user map scores request.
func (c *Client) BeatmapUserScores(mapID uint32, user UserID) *GetBeatmapUserScores {
	return &GetBeatmapUserScores{client: c, mapID: mapID, user: user}
}

// Mode selects the game mode; defaults to the map's own.
func (r *GetBeatmapUserScores) Mode(mode Mode) *GetBeatmapUserScores {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapUserScores) Do(ctx context.Context) ([]Score, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]Score, error) {
		r.client.countRequest("beatmap_user_scores")

		userID, err := r.client.cacheUserID(ctx, r.user)
		if err != nil {
			return nil, err
		}

		query := url.Values{}
		if r.mode != nil {
			query.Set("mode", r.mode.String())
		}

		envelope, err := request[beatmapUserScoresEnvelope](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("beatmaps/%d/scores/users/%d/all", r.mapID, userID),
			query:  query,
		})
		if err != nil {
			return nil, err
		}

		return envelope.Scores, nil
	})
}

// GetBeatmapDifficultyAttributes requests a map's difficulty attributes for
// a mod and mode combination. This is the one POST endpoint of the read API.
type GetBeatmapDifficultyAttributes struct {
	client *Client
	fut    lazy.Cell[DifficultyAttributes]
	mapID  uint32
	mods   *uint32
	mode   *Mode
}

type difficultyAttributesRequest struct {
	Mods      *uint32 `json:"mods,omitempty"`
	RulesetID *uint8  `json:"ruleset_id,omitempty"`
}

// BeatmapDifficultyAttributes starts building a difficulty attributes
// request.
func (c *Client) BeatmapDifficultyAttributes(mapID uint32) *GetBeatmapDifficultyAttributes {
	return &GetBeatmapDifficultyAttributes{client: c, mapID: mapID}
}

// Mods selects the mod combination as legacy bitflags.
func (r *GetBeatmapDifficultyAttributes) Mods(mods uint32) *GetBeatmapDifficultyAttributes {
	r.mods = &mods
	return r
}

// Mode selects the ruleset the attributes are calculated for.
func (r *GetBeatmapDifficultyAttributes) Mode(mode Mode) *GetBeatmapDifficultyAttributes {
	r.mode = &mode
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapDifficultyAttributes) Do(ctx context.Context) (DifficultyAttributes, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (DifficultyAttributes, error) {
		r.client.countRequest("beatmap_difficulty_attributes")

		body := difficultyAttributesRequest{Mods: r.mods}
		if r.mode != nil {
			ruleset := uint8(*r.mode)
			body.RulesetID = &ruleset
		}

		raw, err := encodeJSON(body)
		if err != nil {
			return DifficultyAttributes{}, err
		}

		envelope, err := request[difficultyAttributesEnvelope](ctx, r.client, rawRequest{
			method: "POST",
			path:   fmt.Sprintf("beatmaps/%d/attributes", r.mapID),
			body:   raw,
		})
		if err != nil {
			return DifficultyAttributes{}, err
		}

		return envelope.Attributes, nil
	})
}

// GetBeatmapset requests a mapset with all its difficulties.
type GetBeatmapset struct {
	client   *Client
	fut      lazy.Cell[Beatmapset]
	mapsetID uint32
}

// Beatmapset starts building a mapset request.
func (c *Client) Beatmapset(mapsetID uint32) *GetBeatmapset {
	return &GetBeatmapset{client: c, mapsetID: mapsetID}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapset) Do(ctx context.Context) (Beatmapset, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Beatmapset, error) {
		r.client.countRequest("beatmapset")

		return request[Beatmapset](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("beatmapsets/%d", r.mapsetID),
		})
	})
}

// GetBeatmapsetFromMapID requests the mapset containing a given map.
type GetBeatmapsetFromMapID struct {
	client *Client
	fut    lazy.Cell[Beatmapset]
	mapID  uint32
}

// BeatmapsetFromMapID starts building a mapset lookup by map id.
func (c *Client) BeatmapsetFromMapID(mapID uint32) *GetBeatmapsetFromMapID {
	return &GetBeatmapsetFromMapID{client: c, mapID: mapID}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapsetFromMapID) Do(ctx context.Context) (Beatmapset, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Beatmapset, error) {
		r.client.countRequest("beatmapset_from_map_id")

		query := url.Values{}
		query.Set("beatmap_id", fmt.Sprint(r.mapID))

		return request[Beatmapset](ctx, r.client, rawRequest{
			method: "GET",
			path:   "beatmapsets/lookup",
			query:  query,
		})
	})
}

// GetBeatmapsetSearch requests the first page of mapsets matching a search
// query. Without a query the server returns mapsets with a leaderboard,
// sorted by relevance.
type GetBeatmapsetSearch struct {
	client *Client
	fut    lazy.Cell[BeatmapsetSearchResult]
	query  string
	page   *uint32
}

// BeatmapsetSearch starts building a mapset search request.
func (c *Client) BeatmapsetSearch() *GetBeatmapsetSearch {
	return &GetBeatmapsetSearch{client: c}
}

// Query sets the search query, e.g. "creator=sotarks ar<9".
func (r *GetBeatmapsetSearch) Query(query string) *GetBeatmapsetSearch {
	r.query = query
	return r
}

// Page selects the result page; the server defaults to page 1.
func (r *GetBeatmapsetSearch) Page(page uint32) *GetBeatmapsetSearch {
	r.page = &page
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetBeatmapsetSearch) Do(ctx context.Context) (BeatmapsetSearchResult, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (BeatmapsetSearchResult, error) {
		r.client.countRequest("beatmapset_search")

		query := url.Values{}
		if r.query != "" {
			query.Set("q", r.query)
		}
		if r.page != nil {
			query.Set("page", fmt.Sprint(*r.page))
		}

		return request[BeatmapsetSearchResult](ctx, r.client, rawRequest{
			method: "GET",
			path:   "beatmapsets/search",
			query:  query,
		})
	})
}
