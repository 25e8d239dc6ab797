package rosu

import "time"

// Score is a single play.
type Score struct {
	ScoreID   uint64       `json:"id"`
	UserID    uint32       `json:"user_id"`
	Accuracy  float64      `json:"accuracy"`
	Mods      []string     `json:"mods"`
	Score     uint64       `json:"score"`
	MaxCombo  uint32       `json:"max_combo"`
	Passed    bool         `json:"passed"`
	Perfect   bool         `json:"perfect"`
	PP        *float32     `json:"pp,omitempty"`
	Rank      string       `json:"rank"`
	CreatedAt time.Time    `json:"created_at"`
	Mode      string       `json:"mode"`
	Map       *Beatmap     `json:"beatmap,omitempty"`
	Mapset    *Beatmapset  `json:"beatmapset,omitempty"`
	User      *UserCompact `json:"user,omitempty"`
	Weight    *ScoreWeight `json:"weight,omitempty"`
}

// ScoreWeight is the weighting a top score contributes with.
type ScoreWeight struct {
	Percentage float32 `json:"percentage"`
	PP         float32 `json:"pp"`
}

// BeatmapScores is a map leaderboard, plus the authenticated user's score if
// present.
type BeatmapScores struct {
	Scores    []Score           `json:"scores"`
	UserScore *BeatmapUserScore `json:"userScore,omitempty"`
}

// BeatmapUserScore is a user's score on a map together with its leaderboard
// position.
type BeatmapUserScore struct {
	Position uint32 `json:"position"`
	Score    Score  `json:"score"`
}

type beatmapUserScoresEnvelope struct {
	Scores []Score `json:"scores"`
}
