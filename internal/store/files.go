// Package store persists daily briefing outputs: a JSON file per day
// for the weekly rollup to read back, and a SQLite archive for history.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/weekly"
)

// DeepDiveRecord is the persisted per-day shape of one deep-dive story.
type DeepDiveRecord struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Topic     string `json:"topic"`
	Rationale string `json:"rationale,omitempty"`
	Score     int    `json:"score"`
}

type dailyFile struct {
	DeepDives []DeepDiveRecord `json:"deep_dives"`
}

// BuildDailyRecords pairs the selected deep dives with their rationales.
// rationales may be shorter than the selection; missing entries stay
// empty.
func BuildDailyRecords(day string, deepDives []briefing.ScoredArticle, rationales []string) []DeepDiveRecord {
	out := make([]DeepDiveRecord, 0, len(deepDives))
	for i, dd := range deepDives {
		rec := DeepDiveRecord{
			Date:   day,
			Title:  dd.Title,
			URL:    dd.URL,
			Source: dd.Source,
			Topic:  string(briefing.ClassifyTopic(dd.Article)),
			Score:  dd.Score,
		}
		if i < len(rationales) {
			rec.Rationale = rationales[i]
		}
		out = append(out, rec)
	}
	return out
}

// SaveDaily writes the day's deep-dive file atomically under dir.
func SaveDaily(dir, day string, records []DeepDiveRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	blob, err := json.MarshalIndent(dailyFile{DeepDives: records}, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, weekly.FileName(day))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return path, nil
}
