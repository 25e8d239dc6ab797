package rosu

import "time"

// User is the full user representation returned by the user endpoints.
type User struct {
	UserID       uint32     `json:"id"`
	Username     string     `json:"username"`
	AvatarURL    string     `json:"avatar_url"`
	CountryCode  string     `json:"country_code"`
	IsActive     bool       `json:"is_active"`
	IsBot        bool       `json:"is_bot"`
	IsDeleted    bool       `json:"is_deleted"`
	IsOnline     bool       `json:"is_online"`
	IsSupporter  bool       `json:"is_supporter"`
	JoinDate     time.Time  `json:"join_date"`
	LastVisit    *time.Time `json:"last_visit"`
	Playmode     string     `json:"playmode"`
	ProfileColor string     `json:"profile_colour"`

	Discord    string `json:"discord,omitempty"`
	Interests  string `json:"interests,omitempty"`
	Location   string `json:"location,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Title      string `json:"title,omitempty"`
	Website    string `json:"website,omitempty"`

	Statistics *UserStatistics `json:"statistics,omitempty"`
}

// UserCompact is the reduced user shape embedded in scores, rankings and
// similar payloads.
type UserCompact struct {
	UserID      uint32     `json:"id"`
	Username    string     `json:"username"`
	AvatarURL   string     `json:"avatar_url"`
	CountryCode string     `json:"country_code"`
	IsActive    bool       `json:"is_active"`
	IsBot       bool       `json:"is_bot"`
	IsOnline    bool       `json:"is_online"`
	IsSupporter bool       `json:"is_supporter"`
	LastVisit   *time.Time `json:"last_visit"`
}

// UserStatistics holds per-mode performance data; inside rankings the User
// option is filled.
type UserStatistics struct {
	Accuracy    float32      `json:"hit_accuracy"`
	CountryRank uint32       `json:"country_rank,omitempty"`
	GlobalRank  uint32       `json:"global_rank,omitempty"`
	Level       UserLevel    `json:"level"`
	MaxCombo    uint32       `json:"maximum_combo"`
	PlayCount   uint32       `json:"play_count"`
	PlayTime    uint32       `json:"play_time"`
	PP          float32      `json:"pp"`
	RankedScore uint64       `json:"ranked_score"`
	TotalHits   uint64       `json:"total_hits"`
	TotalScore  uint64       `json:"total_score"`
	User        *UserCompact `json:"user,omitempty"`
}

// UserLevel is the current level and progress towards the next one.
type UserLevel struct {
	Current  uint32 `json:"current"`
	Progress uint32 `json:"progress"`
}

// KudosuHistory is one entry of a user's kudosu history.
type KudosuHistory struct {
	ID        uint32    `json:"id"`
	Action    string    `json:"action"`
	Amount    int32     `json:"amount"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentEvent is one entry of a user's recent activity.
type RecentEvent struct {
	ID        uint32    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// MostPlayedMap is one entry of a user's most played maps.
type MostPlayedMap struct {
	MapID  uint32      `json:"beatmap_id"`
	Count  uint32      `json:"count"`
	Map    *Beatmap    `json:"beatmap"`
	Mapset *Beatmapset `json:"beatmapset"`
}
