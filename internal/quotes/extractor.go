package quotes

import (
	"regexp"
	"strings"
	"time"

	"github.com/joelkehle/mediawatch/internal/briefing"
)

const (
	DefaultMaxItems = 8

	TopicAI           = "AI"
	TopicSpaceEconomy = "Space Economy"

	TagAI    = "AI"
	TagSpace = "Space"
)

// Straight or curly double quotes around a 20-280 character span,
// non-greedy, allowed to cross newlines.
var quoteRe = regexp.MustCompile(`(?s)["\x{201C}](.{20,280}?)["\x{201D}]`)

// Entity is a person on the quote watchlist.
type Entity struct {
	Name        string `yaml:"name" json:"name"`
	Affiliation string `yaml:"affiliation" json:"affiliation"`
}

// Tables holds the entity list and the two keyword vocabularies used for
// span filtering and classification. Injected, never global.
type Tables struct {
	Entities      []Entity
	AIKeywords    []string
	SpaceKeywords []string
}

// Quote is an attributed quoted span found in an article body.
type Quote struct {
	Entity       string    `json:"entity"`
	Affiliation  string    `json:"affiliation,omitempty"`
	Topic        string    `json:"topic"`
	Text         string    `json:"text"`
	ContextTitle string    `json:"context_title"`
	Source       string    `json:"source"`
	SourceURL    string    `json:"source_url"`
	PublishedAt  time.Time `json:"published_at"`
	Tags         []string  `json:"tags"`
}

// Extract scans items in their given (pre-ranked) order for quoted spans
// attributable to a watched entity. A span survives only if it contains at
// least one AI or Space keyword. The primary topic is "AI" whenever an AI
// keyword is present and "Space Economy" otherwise; the tags field is
// computed independently and may carry both "AI" and "Space". Dedup key is
// (lowercased entity, normalized span text). Extraction stops as soon as
// maxItems quotes have been collected.
func Extract(items []briefing.Article, maxItems int, tables Tables) []Quote {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	out := []Quote{}
	seen := map[string]struct{}{}

	for _, item := range items {
		if len(out) >= maxItems {
			break
		}
		haystack := strings.ToLower(item.Body + " " + item.Title)
		for _, entity := range tables.Entities {
			if len(out) >= maxItems {
				break
			}
			name := strings.TrimSpace(entity.Name)
			if name == "" {
				continue
			}
			if !strings.Contains(haystack, strings.ToLower(name)) {
				continue
			}
			for _, match := range quoteRe.FindAllStringSubmatch(item.Body, -1) {
				span := strings.TrimSpace(match[1])
				lower := strings.ToLower(span)
				ai := containsAny(lower, tables.AIKeywords)
				space := containsAny(lower, tables.SpaceKeywords)
				if !ai && !space {
					continue
				}
				key := strings.ToLower(name) + "\x1f" + briefing.NormalizeTitle(span)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				topic := TopicSpaceEconomy
				if ai {
					topic = TopicAI
				}
				tags := []string{}
				if ai {
					tags = append(tags, TagAI)
				}
				if space {
					tags = append(tags, TagSpace)
				}

				out = append(out, Quote{
					Entity:       name,
					Affiliation:  entity.Affiliation,
					Topic:        topic,
					Text:         span,
					ContextTitle: item.Title,
					Source:       item.Source,
					SourceURL:    item.URL,
					PublishedAt:  item.PublishedAt,
					Tags:         tags,
				})
				if len(out) >= maxItems {
					break
				}
			}
		}
	}

	return out
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
