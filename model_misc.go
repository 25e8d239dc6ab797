package rosu

import "time"

// WikiPage is a localized wiki article.
type WikiPage struct {
	Layout   string   `json:"layout"`
	Locale   string   `json:"locale"`
	Markdown string   `json:"markdown"`
	Path     string   `json:"path"`
	Tags     []string `json:"tags"`
	Title    string   `json:"title"`
}

// News is a page of news posts.
type News struct {
	Posts []NewsPost `json:"news_posts"`
}

// NewsPost is a single news article.
type NewsPost struct {
	ID          uint32    `json:"id"`
	Author      string    `json:"author"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Preview     string    `json:"preview"`
	PublishedAt time.Time `json:"published_at"`
}

// ForumPosts is a forum topic together with a page of its posts.
type ForumPosts struct {
	Topic ForumTopic  `json:"topic"`
	Posts []ForumPost `json:"posts"`
}

// ForumTopic is a forum thread header.
type ForumTopic struct {
	TopicID   uint64    `json:"id"`
	Title     string    `json:"title"`
	UserID    uint32    `json:"user_id"`
	PostCount uint32    `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumPost is one post within a topic.
type ForumPost struct {
	PostID    uint64    `json:"id"`
	TopicID   uint64    `json:"topic_id"`
	UserID    uint32    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is a multiplayer match with its participants.
type Match struct {
	Info  MatchInfo     `json:"match"`
	Users []UserCompact `json:"users"`
}

// MatchInfo is the header of a multiplayer match.
type MatchInfo struct {
	MatchID   uint32     `json:"id"`
	Name      string     `json:"name"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// MatchList is a page of currently open multiplayer lobbies.
type MatchList struct {
	Matches []MatchInfo `json:"matches"`
}

// SeasonalBackgrounds is the current set of menu backgrounds.
type SeasonalBackgrounds struct {
	EndsAt      time.Time            `json:"ends_at"`
	Backgrounds []SeasonalBackground `json:"backgrounds"`
}

// SeasonalBackground is one seasonal menu background.
type SeasonalBackground struct {
	URL  string      `json:"url"`
	User UserCompact `json:"user"`
}
