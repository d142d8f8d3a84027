package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Limits.DeepDives != 3 || cfg.Limits.TopK != 15 || cfg.Limits.MaxPerTopic != 5 {
		t.Fatalf("default limits wrong: %+v", cfg.Limits)
	}
	if len(cfg.Feeds) == 0 || len(cfg.QuoteEntities) == 0 {
		t.Fatalf("default tables missing")
	}
}

func TestLoadOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
output_dir: /tmp/briefs
limits:
  deep_dives: 5
feeds:
  - name: Test Feed
    url: https://example.com/rss
    topic: AI/Cloud/Quantum
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/tmp/briefs" || cfg.Limits.DeepDives != 5 {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	if cfg.Limits.TopK != 15 {
		t.Fatalf("top_k not backfilled: %d", cfg.Limits.TopK)
	}
	if len(cfg.Feeds) != 1 || cfg.Feeds[0].Name != "Test Feed" {
		t.Fatalf("feeds wrong: %+v", cfg.Feeds)
	}
	if len(cfg.ScoringKeywords) == 0 {
		t.Fatalf("scoring keywords not backfilled")
	}
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("feeds: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTableProjections(t *testing.T) {
	cfg := Default()
	if got := cfg.BriefingTables(); len(got.AuthoritativeSources) == 0 || len(got.Keywords) == 0 {
		t.Fatalf("briefing tables empty: %+v", got)
	}
	qt := cfg.QuoteTables()
	if len(qt.Entities) != len(cfg.QuoteEntities) {
		t.Fatalf("entity projection lost entries")
	}
	pt := cfg.PatentTables()
	if len(pt.TopicKeywords) == 0 || len(pt.WatchlistEntities) == 0 {
		t.Fatalf("patent tables empty: %+v", pt)
	}
}
