package patents

import (
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TargetDate resolves the publication day to screen: one day before the
// reference date, or one day before the current date when the reference
// string does not parse.
func TargetDate(reference string, clock func() time.Time) string {
	if clock == nil {
		clock = time.Now
	}
	ref, err := time.Parse(dateLayout, strings.TrimSpace(reference))
	if err != nil {
		ref = clock()
	}
	return ref.AddDate(0, 0, -1).Format(dateLayout)
}

// Filter keeps records that match a topic keyword or a watchlist entity,
// tags them, applies field defaults on the kept records, sorts, and
// truncates to cfg.MaxItems.
func Filter(records []Record, tables Tables, cfg FilterConfig) []Record {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxPatents
	}

	kept := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		topicHit := matchesTopic(rec, tables.TopicKeywords)
		watchHit := matchesWatchlist(rec, tables.WatchlistEntities)
		if !topicHit && !watchHit {
			continue
		}
		if topicHit {
			rec.Tags = appendTag(rec.Tags, TagTopicMatch)
		}
		if watchHit {
			rec.Tags = appendTag(rec.Tags, TagWatchlistMatch)
		}
		applyDefaults(&rec)
		kept = append(kept, rec)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].PublicationDate != kept[j].PublicationDate {
			return kept[i].PublicationDate > kept[j].PublicationDate
		}
		if kept[i].Office != kept[j].Office {
			return kept[i].Office < kept[j].Office
		}
		return kept[i].PublicationNumber < kept[j].PublicationNumber
	})

	if len(kept) > cfg.MaxItems {
		kept = kept[:cfg.MaxItems]
	}
	return kept
}

func matchesTopic(rec Record, keywords []string) bool {
	haystack := strings.ToLower(rec.Title + " " + rec.Abstract)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func matchesWatchlist(rec Record, entities []string) bool {
	names := make([]string, 0, len(rec.Applicants)+1)
	for _, a := range rec.Applicants {
		names = append(names, normalizeName(a))
	}
	if rec.Assignee != "" {
		names = append(names, normalizeName(rec.Assignee))
	}
	for _, e := range entities {
		needle := normalizeName(e)
		if needle == "" {
			continue
		}
		for _, name := range names {
			if strings.Contains(name, needle) {
				return true
			}
		}
	}
	return false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func appendTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func applyDefaults(rec *Record) {
	rec.Office = strings.TrimSpace(rec.Office)
	if rec.Office == "" {
		rec.Office = UnknownOffice
	}
	rec.PublicationNumber = strings.TrimSpace(rec.PublicationNumber)
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Abstract = strings.TrimSpace(rec.Abstract)
	rec.PublicationDate = strings.TrimSpace(rec.PublicationDate)
	if rec.Applicants == nil {
		rec.Applicants = []string{}
	}
}
