package briefing

import "time"

const (
	DefaultTopK        = 15
	DefaultDeepDives   = 3
	DefaultMaxPerTopic = 5

	sourceAuthorityBonus = 50
	bodyLengthDivisor    = 200
	bodyLengthCap        = 50
	keywordBonus         = 5
)

// Article is a normalized item from any upstream source (RSS ingestion,
// patent feeds, market wires). Created once at ingestion; only the topic
// tag may be enriched afterwards.
type Article struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body,omitempty"`
	Topic       string    `json:"topic,omitempty"`
}

type ScoredArticle struct {
	Article
	Score int `json:"score"`
}

// Tables holds the immutable scoring configuration. Components receive it
// by value; tests substitute smaller fixture tables.
type Tables struct {
	AuthoritativeSources []string
	Keywords             []string
}

// WatchlistEntry is the minimal projection shown in topic buckets.
type WatchlistEntry struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Selection is the daily output: a fixed-size ordered deep-dive list plus
// a per-topic capped watchlist. Every topic bucket exists, possibly empty.
type Selection struct {
	DeepDives []ScoredArticle            `json:"deep_dives"`
	Watchlist map[Topic][]WatchlistEntry `json:"watchlist"`
}
