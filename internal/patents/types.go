package patents

const (
	DefaultMaxPatents         = 10
	DefaultRateLimitPerMinute = 40

	TagTopicMatch     = "topic-compute-video-data-cloud"
	TagWatchlistMatch = "watchlist-applicant"

	UnknownOffice = "UNKNOWN"
)

// Record is a single patent publication as delivered by an office
// collaborator. Tags is filled in by the filter, everything else comes
// from the source.
type Record struct {
	Office            string   `json:"office"`
	PublicationNumber string   `json:"publication_number"`
	Title             string   `json:"title"`
	Abstract          string   `json:"abstract"`
	PublicationDate   string   `json:"publication_date"`
	Applicants        []string `json:"applicants"`
	Assignee          string   `json:"assignee,omitempty"`
	SourceURL         string   `json:"source_url,omitempty"`
	Tags              []string `json:"tags,omitempty"`
}

// Tables are the static matching inputs for the filter.
type Tables struct {
	TopicKeywords     []string
	WatchlistEntities []string
}

// FilterConfig controls output size.
type FilterConfig struct {
	MaxItems int
}
