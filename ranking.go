package rosu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ev3nvy/rosu-v2/internal/lazy"
)

// GetChartRankings requests a spotlight chart: the spotlight itself, its
// mapsets and the participating users' spotlight statistics ordered by
// ranked score.
type GetChartRankings struct {
	client    *Client
	fut       lazy.Cell[ChartRankings]
	mode      Mode
	spotlight *uint32
}

// ChartRankings starts building a chart rankings request. Nothing is sent
// until Do.
func (c *Client) ChartRankings(mode Mode) *GetChartRankings {
	return &GetChartRankings{client: c, mode: mode}
}

// Spotlight specifies the spotlight id. If none is given, the latest
// spotlight is returned.
func (r *GetChartRankings) Spotlight(spotlightID uint32) *GetChartRankings {
	r.spotlight = &spotlightID
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetChartRankings) Do(ctx context.Context) (ChartRankings, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (ChartRankings, error) {
		r.client.countRequest("chart_rankings")

		query := url.Values{}
		if r.spotlight != nil {
			query.Set("spotlight", fmt.Sprint(*r.spotlight))
		}

		return request[ChartRankings](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("rankings/%s/charts", r.mode),
			query:  query,
		})
	})
}

// GetCountryRankings requests the country leaderboard for a mode, sorted by
// total pp.
type GetCountryRankings struct {
	client *Client
	fut    lazy.Cell[CountryRankings]
	mode   Mode
	page   *uint32
}

// CountryRankings starts building a country rankings request.
func (c *Client) CountryRankings(mode Mode) *GetCountryRankings {
	return &GetCountryRankings{client: c, mode: mode}
}

// Page selects the result page; the server defaults to page 1.
func (r *GetCountryRankings) Page(page uint32) *GetCountryRankings {
	r.page = &page
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetCountryRankings) Do(ctx context.Context) (CountryRankings, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (CountryRankings, error) {
		r.client.countRequest("country_rankings")

		query := url.Values{}
		if r.page != nil {
			query.Set("cursor[page]", fmt.Sprint(*r.page))
		}

		return request[CountryRankings](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("rankings/%s/country", r.mode),
			query:  query,
		})
	})
}

// GetPerformanceRankings requests the pp leaderboard for a mode.
type GetPerformanceRankings struct {
	client  *Client
	fut     lazy.Cell[Rankings]
	mode    Mode
	country string
	variant string
	page    *uint32
}

// PerformanceRankings starts building a performance rankings request.
func (c *Client) PerformanceRankings(mode Mode) *GetPerformanceRankings {
	return &GetPerformanceRankings{client: c, mode: mode}
}

// Country restricts the leaderboard to one country code.
func (r *GetPerformanceRankings) Country(countryCode string) *GetPerformanceRankings {
	r.country = countryCode
	return r
}

// Variant4K restricts to the 4-key variant; only meaningful for mania.
func (r *GetPerformanceRankings) Variant4K() *GetPerformanceRankings {
	if r.mode == ModeMania {
		r.variant = "4k"
	}
	return r
}

// Variant7K restricts to the 7-key variant; only meaningful for mania.
func (r *GetPerformanceRankings) Variant7K() *GetPerformanceRankings {
	if r.mode == ModeMania {
		r.variant = "7k"
	}
	return r
}

// Page selects the result page; pages range from 1 to 200.
func (r *GetPerformanceRankings) Page(page uint32) *GetPerformanceRankings {
	r.page = &page
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetPerformanceRankings) Do(ctx context.Context) (Rankings, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Rankings, error) {
		r.client.countRequest("performance_rankings")

		query := url.Values{}
		if r.country != "" {
			query.Set("country", r.country)
		}
		if r.variant != "" {
			query.Set("variant", r.variant)
		}
		if r.page != nil {
			query.Set("cursor[page]", fmt.Sprint(*r.page))
		}

		return request[Rankings](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("rankings/%s/performance", r.mode),
			query:  query,
		})
	})
}

// GetScoreRankings requests the ranked score leaderboard for a mode.
type GetScoreRankings struct {
	client *Client
	fut    lazy.Cell[Rankings]
	mode   Mode
	page   *uint32
}

// ScoreRankings starts building a ranked score rankings request.
func (c *Client) ScoreRankings(mode Mode) *GetScoreRankings {
	return &GetScoreRankings{client: c, mode: mode}
}

// Page selects the result page; pages range from 1 to 200.
func (r *GetScoreRankings) Page(page uint32) *GetScoreRankings {
	r.page = &page
	return r
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetScoreRankings) Do(ctx context.Context) (Rankings, error) {
	return r.fut.Do(ctx, func(ctx context.Context) (Rankings, error) {
		r.client.countRequest("score_rankings")

		query := url.Values{}
		if r.page != nil {
			query.Set("cursor[page]", fmt.Sprint(*r.page))
		}

		return request[Rankings](ctx, r.client, rawRequest{
			method: "GET",
			path:   fmt.Sprintf("rankings/%s/score", r.mode),
			query:  query,
		})
	})
}

// GetSpotlights requests the list of spotlights.
type GetSpotlights struct {
	client *Client
	fut    lazy.Cell[[]Spotlight]
}

// Spotlights starts building a spotlights request.
func (c *Client) Spotlights() *GetSpotlights {
	return &GetSpotlights{client: c}
}

// Do sends the request on first call; repeated calls return the same result.
func (r *GetSpotlights) Do(ctx context.Context) ([]Spotlight, error) {
	return r.fut.Do(ctx, func(ctx context.Context) ([]Spotlight, error) {
		r.client.countRequest("spotlights")

		envelope, err := request[spotlightsEnvelope](ctx, r.client, rawRequest{
			method: "GET",
			path:   "spotlights",
		})
		if err != nil {
			return nil, err
		}

		return envelope.Spotlights, nil
	})
}
