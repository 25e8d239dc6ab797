package rosu

import "fmt"

// Mode is an osu! game mode.
type Mode uint8

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// String returns the API path segment for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "fruits"
	case ModeMania:
		return "mania"
	default:
		return "osu"
	}
}

// Scope is an OAuth2 scope requested during token acquisition.
type Scope string

const (
	ScopePublic   Scope = "public"
	ScopeIdentify Scope = "identify"
)

// UserID addresses a user either by numeric id or by username.
// Exactly one of the fields should be set; the numeric id wins if both are.
//
// Endpoints taking a UserID resolve usernames through the client's
// username→id cache, costing one extra lookup round-trip on a cache miss.
type UserID struct {
	ID   uint32
	Name string
}

// IsName reports whether the UserID addresses a user by name.
func (u UserID) IsName() bool {
	return u.ID == 0 && u.Name != ""
}

func (u UserID) String() string {
	if u.IsName() {
		return "@" + u.Name
	}
	return fmt.Sprint(u.ID)
}

// ScoreType selects which kind of user scores to request.
type ScoreType string

const (
	ScoreTypeBest   ScoreType = "best"
	ScoreTypeFirsts ScoreType = "firsts"
	ScoreTypePinned ScoreType = "pinned"
	ScoreTypeRecent ScoreType = "recent"
)

// MapType selects which kind of user beatmapsets to request.
type MapType string

const (
	MapTypeRanked    MapType = "ranked"
	MapTypeLoved     MapType = "loved"
	MapTypeFavourite MapType = "favourite"
	MapTypeGraveyard MapType = "graveyard"
	MapTypePending   MapType = "pendings"
)

// Option represents a configuration option.
type Option func(*Client)
