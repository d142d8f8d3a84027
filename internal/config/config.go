// Package config loads the briefing configuration from YAML and
// supplies the built-in source, keyword, and watchlist tables.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/ingest"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
)

type Limits struct {
	TopK        int `yaml:"top_k"`
	DeepDives   int `yaml:"deep_dives"`
	MaxPerTopic int `yaml:"max_per_topic"`
	MaxQuotes   int `yaml:"max_quotes"`
	MaxPatents  int `yaml:"max_patents"`
	LLMQuota    int `yaml:"llm_quota"`
}

type Entity struct {
	Name        string `yaml:"name"`
	Affiliation string `yaml:"affiliation"`
}

type Office struct {
	Code               string `yaml:"code"`
	BaseURL            string `yaml:"base_url"`
	APIKey             string `yaml:"api_key"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type Config struct {
	OutputDir   string `yaml:"output_dir"`
	ArchivePath string `yaml:"archive_path"`
	Schedule    string `yaml:"schedule"`

	Limits Limits `yaml:"limits"`

	Feeds   []ingest.Feed `yaml:"feeds"`
	Offices []Office      `yaml:"offices"`

	AuthoritativeSources []string `yaml:"authoritative_sources"`
	ScoringKeywords      []string `yaml:"scoring_keywords"`
	PatentKeywords       []string `yaml:"patent_keywords"`
	WatchlistEntities    []string `yaml:"watchlist_entities"`
	QuoteEntities        []Entity `yaml:"quote_entities"`
	AIKeywords           []string `yaml:"ai_keywords"`
	SpaceKeywords        []string `yaml:"space_keywords"`

	FeedTimeout     time.Duration `yaml:"feed_timeout"`
	FeedConcurrency int           `yaml:"feed_concurrency"`

	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Load reads the YAML file at path. A missing path yields the built-in
// defaults; a present but unreadable or malformed file is an error.
// Zero-valued fields are backfilled from the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.ArchivePath == "" {
		c.ArchivePath = def.ArchivePath
	}
	if c.Limits.TopK <= 0 {
		c.Limits.TopK = def.Limits.TopK
	}
	if c.Limits.DeepDives <= 0 {
		c.Limits.DeepDives = def.Limits.DeepDives
	}
	if c.Limits.MaxPerTopic <= 0 {
		c.Limits.MaxPerTopic = def.Limits.MaxPerTopic
	}
	if c.Limits.MaxQuotes <= 0 {
		c.Limits.MaxQuotes = def.Limits.MaxQuotes
	}
	if c.Limits.MaxPatents <= 0 {
		c.Limits.MaxPatents = def.Limits.MaxPatents
	}
	if c.Limits.LLMQuota < 0 {
		c.Limits.LLMQuota = def.Limits.LLMQuota
	}
	if len(c.Feeds) == 0 {
		c.Feeds = def.Feeds
	}
	if len(c.AuthoritativeSources) == 0 {
		c.AuthoritativeSources = def.AuthoritativeSources
	}
	if len(c.ScoringKeywords) == 0 {
		c.ScoringKeywords = def.ScoringKeywords
	}
	if len(c.PatentKeywords) == 0 {
		c.PatentKeywords = def.PatentKeywords
	}
	if len(c.WatchlistEntities) == 0 {
		c.WatchlistEntities = def.WatchlistEntities
	}
	if len(c.QuoteEntities) == 0 {
		c.QuoteEntities = def.QuoteEntities
	}
	if len(c.AIKeywords) == 0 {
		c.AIKeywords = def.AIKeywords
	}
	if len(c.SpaceKeywords) == 0 {
		c.SpaceKeywords = def.SpaceKeywords
	}
	if c.FeedTimeout <= 0 {
		c.FeedTimeout = def.FeedTimeout
	}
	if c.FeedConcurrency <= 0 {
		c.FeedConcurrency = def.FeedConcurrency
	}
}

// BriefingTables projects the config into the scorer's table shape.
func (c Config) BriefingTables() briefing.Tables {
	return briefing.Tables{
		AuthoritativeSources: c.AuthoritativeSources,
		Keywords:             c.ScoringKeywords,
	}
}

// QuoteTables projects the config into the quote extractor's shape.
func (c Config) QuoteTables() quotes.Tables {
	entities := make([]quotes.Entity, 0, len(c.QuoteEntities))
	for _, e := range c.QuoteEntities {
		entities = append(entities, quotes.Entity{Name: e.Name, Affiliation: e.Affiliation})
	}
	return quotes.Tables{
		Entities:      entities,
		AIKeywords:    c.AIKeywords,
		SpaceKeywords: c.SpaceKeywords,
	}
}

// PatentTables projects the config into the patent filter's shape.
func (c Config) PatentTables() patents.Tables {
	return patents.Tables{
		TopicKeywords:     c.PatentKeywords,
		WatchlistEntities: c.WatchlistEntities,
	}
}
