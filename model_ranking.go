package rosu

import "time"

// Rankings is a leaderboard page of user statistics, sorted by pp or ranked
// score depending on the requested ranking type.
type Rankings struct {
	Ranking []UserStatistics `json:"ranking"`
	Total   uint32           `json:"total"`
}

// ChartRankings contains a spotlight, its mapsets and the participating
// users' spotlight-specific statistics ordered by ranked score.
type ChartRankings struct {
	Mapsets   []Beatmapset     `json:"beatmapsets"`
	Ranking   []UserStatistics `json:"ranking"`
	Spotlight Spotlight        `json:"spotlight"`
}

// CountryRankings is a page of country leaderboard entries sorted by the
// countries' total pp.
type CountryRankings struct {
	Ranking []CountryRanking `json:"ranking"`
	Total   uint32           `json:"total"`
}

// CountryRanking is one country's aggregate entry.
type CountryRanking struct {
	ActiveUsers uint32  `json:"active_users"`
	Code        string  `json:"code"`
	PlayCount   uint64  `json:"play_count"`
	PP          float32 `json:"performance"`
	RankedScore uint64  `json:"ranked_score"`
}

// Spotlight is a timed chart event.
type Spotlight struct {
	ID           uint32    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	ModeSpecific bool      `json:"mode_specific"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type spotlightsEnvelope struct {
	Spotlights []Spotlight `json:"spotlights"`
}
