package rosu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ev3nvy/rosu-v2/internal/lazy"
)

// GetWikiPage requests a wiki article in a given locale, e.g. "en" or "de".
type GetWikiPage struct {
	client *Client
	fut    lazy.Cell[WikiPage]
	locale string
	page   string
}

// WikiPage starts building a wiki page request.
func (c *Client) WikiPage(locale string) *GetWikiPage {
	return &GetWikiPage{client: c, locale: locale}
}

// Page selects the article path; defaults to the wiki main page.
func (r *GetWikiPage) Page(page string) *GetWikiPage {
	r.page = page
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetWikiPage) Do(ctx context.Context) (WikiPage, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (WikiPage, error) {
		r.client.countRequest("wiki")

		path := "wiki/" + r.locale
		if r.page != "" {
			path += "/" + r.page
		}

		return request[WikiPage](ctx, r.client, rawRequest{method: "GET", path: path})
	})
}

// GetNews requests the current page of news posts.
type GetNews struct {
	client *Client
	fut    lazy.Cell[News]
}

// News starts building a news request.
func (c *Client) News() *GetNews {
	return &GetNews{client: c}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetNews) Do(ctx context.Context) (News, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (News, error) {
		r.client.countRequest("news")

		return request[News](ctx, r.client, rawRequest{method: "GET", path: "news"})
	})
}

// GetForumPosts requests a forum topic and a page of its posts.
type GetForumPosts struct {
	client     *Client
	fut        lazy.Cell[ForumPosts]
	topicID    uint64
	limit      *uint32
	descending bool
}

// ForumPosts starts building a forum posts request.
func (c *Client) ForumPosts(topicID uint64) *GetForumPosts {
	return &GetForumPosts{client: c, topicID: topicID}
}

// Limit caps the number of posts; at most 50.
func (r *GetForumPosts) Limit(limit uint32) *GetForumPosts {
	r.limit = &limit
	return r
}

// Descending sorts posts newest first; the server defaults to oldest first.
func (r *GetForumPosts) Descending() *GetForumPosts {
	r.descending = true
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetForumPosts) Do(ctx context.Context) (ForumPosts, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (ForumPosts, error) {
		r.client.countRequest("forum_posts")

		query := url.Values{}
		if r.limit != nil {
			query.Set("limit", fmt.Sprint(*r.limit))
		}
		if r.descending {
			query.Set("sort", "id_desc")
		}

		return request[ForumPosts](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("forums/topics/%d", r.topicID),
			query:  query,
		})
	})
}

// GetMatch requests a multiplayer match.
type GetMatch struct {
	client  *Client
	fut     lazy.Cell[Match]
	matchID uint32
}

// Match starts building a match request.
func (c *Client) Match(matchID uint32) *GetMatch {
	return &GetMatch{client: c, matchID: matchID}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetMatch) Do(ctx context.Context) (Match, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Match, error) {
		r.client.countRequest("match")

		return request[Match](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("matches/%d", r.matchID),
		})
	})
}

// GetMatches requests the list of currently open multiplayer lobbies.
type GetMatches struct {
	client *Client
	fut    lazy.Cell[MatchList]
}

// Matches starts building a match list request.
func (c *Client) Matches() *GetMatches {
	return &GetMatches{client: c}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetMatches) Do(ctx context.Context) (MatchList, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (MatchList, error) {
		r.client.countRequest("matches")

		return request[MatchList](ctx, r.client, rawRequest{method: "GET", path: "matches"})
	})
}

// GetSeasonalBackgrounds requests the current seasonal menu backgrounds.
type GetSeasonalBackgrounds struct {
	client *Client
	fut    lazy.Cell[SeasonalBackgrounds]
}

// SeasonalBackgrounds starts building a seasonal backgrounds request.
func (c *Client) SeasonalBackgrounds() *GetSeasonalBackgrounds {
	return &GetSeasonalBackgrounds{client: c}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetSeasonalBackgrounds) Do(ctx context.Context) (SeasonalBackgrounds, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (SeasonalBackgrounds, error) {
		r.client.countRequest("seasonal_backgrounds")

		return request[SeasonalBackgrounds](ctx, r.client, rawRequest{
			method: "GET",
			path:   "seasonal-backgrounds",
		})
	})
}
