// Package weekly merges a trailing window of persisted daily deep-dive
// files into a deduplicated, topic-grouped rollup.
package weekly

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	DefaultGroupTopic = "General"
	WindowDays        = 7

	dateLayout = "2006-01-02"
)

// Item is one deep-dive entry recovered from a daily file.
type Item struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source,omitempty"`
	Topic     string `json:"topic,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// Group is one rendered section of the weekly rollup.
type Group struct {
	Topic string `json:"topic"`
	Items []Item `json:"items"`
}

// FileName returns the persisted daily output name for a YYYY-MM-DD day.
func FileName(day string) string {
	return fmt.Sprintf("deep_dives_%s.json", day)
}

// WindowDates lists the seven days before the reference date, oldest
// first. An unparsable reference falls back to the clock.
func WindowDates(reference string, clock func() time.Time) []string {
	if clock == nil {
		clock = time.Now
	}
	ref, err := time.Parse(dateLayout, strings.TrimSpace(reference))
	if err != nil {
		ref = clock()
	}
	days := make([]string, 0, WindowDays)
	for offset := WindowDays; offset >= 1; offset-- {
		days = append(days, ref.AddDate(0, 0, -offset).Format(dateLayout))
	}
	return days
}

// LoadWindow reads every daily file in the trailing window under dir.
// Missing days are normal; malformed files are logged and skipped. An
// item's own date survives only when it lies inside the window; anything
// else is clamped to its file's day so every returned item dates within
// [reference-7, reference-1].
func LoadWindow(dir, reference string, clock func() time.Time) []Item {
	items := []Item{}
	days := WindowDates(reference, clock)
	inWindow := make(map[string]struct{}, len(days))
	for _, d := range days {
		inWindow[d] = struct{}{}
	}
	for _, day := range days {
		path := filepath.Join(dir, FileName(day))
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("weekly skipping unreadable file path=%s err=%v", path, err)
			}
			continue
		}
		dayItems, err := ParseDayFile(data, day)
		if err != nil {
			log.Printf("weekly skipping malformed file path=%s err=%v", path, err)
			continue
		}
		for _, item := range dayItems {
			if _, ok := inWindow[item.Date]; !ok {
				item.Date = day
			}
			items = append(items, item)
		}
	}
	return items
}

// Aggregate dedups items by URL keeping the most recent date, groups by
// topic, and orders groups alphabetically for rendering.
func Aggregate(items []Item) []Group {
	ordered := make([]Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date > ordered[j].Date
	})

	seen := map[string]struct{}{}
	byTopic := map[string][]Item{}
	for _, item := range ordered {
		if _, dup := seen[item.URL]; dup {
			continue
		}
		seen[item.URL] = struct{}{}
		topic := strings.TrimSpace(item.Topic)
		if topic == "" {
			topic = DefaultGroupTopic
		}
		item.Topic = topic
		byTopic[topic] = append(byTopic[topic], item)
	}

	groups := make([]Group, 0, len(byTopic))
	for topic, members := range byTopic {
		groups = append(groups, Group{Topic: topic, Items: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Topic) < strings.ToLower(groups[j].Topic)
	})
	return groups
}

// Build runs the full weekly rollup over persisted daily outputs.
func Build(dir, reference string, clock func() time.Time) []Group {
	return Aggregate(LoadWindow(dir, reference, clock))
}
