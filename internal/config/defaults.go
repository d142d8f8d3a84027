package config

import (
	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/ingest"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
	"github.com/joelkehle/mediawatch/internal/summarize"
)

// Default returns the built-in configuration. Every table can be
// overridden from YAML; tests substitute smaller fixtures directly.
func Default() Config {
	return Config{
		OutputDir:   "out",
		ArchivePath: "out/archive.db",

		Limits: Limits{
			TopK:        briefing.DefaultTopK,
			DeepDives:   briefing.DefaultDeepDives,
			MaxPerTopic: briefing.DefaultMaxPerTopic,
			MaxQuotes:   quotes.DefaultMaxItems,
			MaxPatents:  patents.DefaultMaxPatents,
			LLMQuota:    summarize.DefaultLLMQuota,
		},

		Feeds: []ingest.Feed{
			{Name: "Reuters Technology", URL: "https://feeds.reuters.com/reuters/technologyNews", Topic: "AI/Cloud/Quantum"},
			{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Topic: "AI/Cloud/Quantum"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Topic: "Media/Platforms"},
			{Name: "Light Reading", URL: "https://www.lightreading.com/rss.xml", Topic: "Telco/5G"},
			{Name: "SpaceNews", URL: "https://spacenews.com/feed/", Topic: "Space/Infra"},
			{Name: "Broadband TV News", URL: "https://www.broadbandtvnews.com/feed/", Topic: "TV/Streaming"},
			{Name: "IEEE Spectrum Robotics", URL: "https://spectrum.ieee.org/feeds/topic/robotics.rss", Topic: "Robotics/Automation"},
			{Name: "Via Satellite", URL: "https://www.satellitetoday.com/feed/", Topic: "Satellite/Satcom"},
		},

		AuthoritativeSources: []string{
			"Reuters", "Bloomberg", "Financial Times", "The Wall Street Journal",
			"Ars Technica", "The Verge", "SpaceNews", "Light Reading",
		},

		ScoringKeywords: []string{
			"ai", "artificial intelligence", "gpu", "quantum", "cloud",
			"streaming", "codec", "broadcast", "5g", "spectrum",
			"satellite", "launch", "orbit", "robotics", "automation",
			"data center", "chip", "semiconductor",
		},

		PatentKeywords: []string{
			"gpu", "neural", "machine learning", "video coding", "codec",
			"cloud", "data center", "distributed computing", "compression",
			"transcoding", "inference",
		},

		WatchlistEntities: []string{
			"NVIDIA", "SpaceX", "Netflix", "Comcast", "Ericsson",
			"Nokia", "Qualcomm", "Amazon", "Google", "Microsoft",
		},

		QuoteEntities: []Entity{
			{Name: "Jensen Huang", Affiliation: "NVIDIA"},
			{Name: "Elon Musk", Affiliation: "SpaceX"},
			{Name: "Sundar Pichai", Affiliation: "Google"},
			{Name: "Satya Nadella", Affiliation: "Microsoft"},
			{Name: "Lisa Su", Affiliation: "AMD"},
			{Name: "Sam Altman", Affiliation: "OpenAI"},
		},

		AIKeywords: []string{
			"ai", "artificial intelligence", "gpu", "model", "inference",
			"training", "compute", "data center",
		},

		SpaceKeywords: []string{
			"space", "orbit", "launch", "satellite", "rocket",
			"constellation", "payload",
		},

		FeedTimeout:     ingest.DefaultFeedTimeout,
		FeedConcurrency: ingest.DefaultConcurrency,
	}
}
