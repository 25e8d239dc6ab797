package rosu

import "time"

// Beatmap is a single difficulty of a mapset.
type Beatmap struct {
	MapID       uint32      `json:"id"`
	MapsetID    uint32      `json:"beatmapset_id"`
	Mode        string      `json:"mode"`
	Version     string      `json:"version"`
	Stars       float32     `json:"difficulty_rating"`
	AR          float32     `json:"ar"`
	CS          float32     `json:"cs"`
	HP          float32     `json:"drain"`
	OD          float32     `json:"accuracy"`
	BPM         float32     `json:"bpm"`
	MaxCombo    uint32      `json:"max_combo,omitempty"`
	Status      string      `json:"status"`
	TotalLength uint32      `json:"total_length"`
	Checksum    string      `json:"checksum,omitempty"`
	URL         string      `json:"url"`
	DeletedAt   *time.Time  `json:"deleted_at,omitempty"`
	LastUpdated time.Time   `json:"last_updated"`
	Mapset      *Beatmapset `json:"beatmapset,omitempty"`
}

// Beatmapset is a set of difficulties sharing one song.
type Beatmapset struct {
	MapsetID       uint32     `json:"id"`
	Artist         string     `json:"artist"`
	ArtistUnicode  string     `json:"artist_unicode,omitempty"`
	Title          string     `json:"title"`
	TitleUnicode   string     `json:"title_unicode,omitempty"`
	Creator        string     `json:"creator"`
	CreatorID      uint32     `json:"user_id"`
	Status         string     `json:"status"`
	PlayCount      uint32     `json:"play_count"`
	FavouriteCount uint32     `json:"favourite_count"`
	SubmittedDate  *time.Time `json:"submitted_date,omitempty"`
	RankedDate     *time.Time `json:"ranked_date,omitempty"`
	Maps           []Beatmap  `json:"beatmaps,omitempty"`
}

// BeatmapsetSearchResult is the first page of mapsets matching a search.
type BeatmapsetSearchResult struct {
	Mapsets []Beatmapset `json:"beatmapsets"`
	Total   uint32       `json:"total"`
}

// DifficultyAttributes are mode- and mod-dependent difficulty values.
type DifficultyAttributes struct {
	StarRating float64 `json:"star_rating"`
	MaxCombo   uint32  `json:"max_combo"`
}

type difficultyAttributesEnvelope struct {
	Attributes DifficultyAttributes `json:"attributes"`
}
