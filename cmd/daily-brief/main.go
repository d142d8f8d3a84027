package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/joelkehle/mediawatch/internal/config"
	"github.com/joelkehle/mediawatch/internal/ingest"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/pipeline"
	"github.com/joelkehle/mediawatch/internal/store"
	"github.com/joelkehle/mediawatch/internal/summarize"
	"github.com/joelkehle/mediawatch/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("MEDIAWATCH_CONFIG"), "Path to YAML config")
	date := flag.String("date", "", "Briefing date (YYYY-MM-DD), defaults to today")
	outputDir := flag.String("output", "", "Output directory override")
	schedule := flag.String("schedule", "", "Cron expression; when set, run on schedule instead of once")
	noArchive := flag.Bool("no-archive", false, "Skip the SQLite archive")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdown, err := telemetry.Setup(ctx, "daily-brief", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer shutdown(context.Background())

	daily := buildDaily(cfg, *noArchive)
	if daily.Archive != nil {
		defer daily.Archive.Close()
	}

	if *schedule == "" {
		if _, err := daily.Run(ctx, *date); err != nil {
			log.Fatalf("daily-brief: %v", err)
		}
		return
	}

	c := cron.New()
	_, err = c.AddFunc(*schedule, func() {
		if _, err := daily.Run(ctx, ""); err != nil {
			log.Printf("daily-brief scheduled run failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("invalid schedule %q: %v", *schedule, err)
	}
	log.Printf("daily-brief scheduled expr=%q output=%s", *schedule, cfg.OutputDir)
	c.Start()
	<-ctx.Done()
	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
	}
	log.Println("daily-brief stopped")
}

func buildDaily(cfg config.Config, noArchive bool) *pipeline.Daily {
	fetcher := ingest.NewFetcher(ingest.FetcherConfig{
		FeedTimeout: cfg.FeedTimeout,
		Concurrency: cfg.FeedConcurrency,
	})

	sources := make([]patents.Source, 0, len(cfg.Offices))
	for _, office := range cfg.Offices {
		client, err := patents.NewOfficeClient(patents.OfficeClientConfig{
			Office:             office.Code,
			APIKey:             office.APIKey,
			BaseURL:            office.BaseURL,
			RateLimitPerMinute: office.RateLimitPerMinute,
		})
		if err != nil {
			log.Printf("daily-brief skipping patent office code=%s err=%v", office.Code, err)
			continue
		}
		sources = append(sources, client)
	}

	var summarizer summarize.Summarizer
	if anthropicSum, err := summarize.NewAnthropicSummarizerFromEnv(); err == nil {
		summarizer = summarize.NewBudgeted(anthropicSum, cfg.Limits.LLMQuota)
	} else {
		log.Printf("daily-brief using local summaries: %v", err)
		summarizer = summarize.LocalSummarizer{}
	}

	daily := &pipeline.Daily{
		Cfg:           cfg,
		Source:        pipeline.FeedSource{Fetcher: fetcher, Feeds: cfg.Feeds},
		Summarizer:    summarizer,
		PatentSources: sources,
	}

	if !noArchive {
		archive, err := store.OpenArchive(cfg.ArchivePath)
		if err != nil {
			log.Printf("daily-brief archive disabled: %v", err)
		} else {
			daily.Archive = archive
		}
	}
	return daily
}
