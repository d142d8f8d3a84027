// Package pipeline orchestrates the daily briefing run and the weekly
// rollup over the extracted core stages.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/config"
	"github.com/joelkehle/mediawatch/internal/ingest"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
	"github.com/joelkehle/mediawatch/internal/report"
	"github.com/joelkehle/mediawatch/internal/store"
	"github.com/joelkehle/mediawatch/internal/summarize"
	"github.com/joelkehle/mediawatch/internal/telemetry"
)

const dateLayout = "2006-01-02"

// ArticleSource feeds raw articles into the daily run. Fetch failures
// upstream surface only as a smaller (possibly empty) result.
type ArticleSource interface {
	Fetch(ctx context.Context) []briefing.Article
}

// FeedSource adapts the RSS fetcher to ArticleSource.
type FeedSource struct {
	Fetcher *ingest.Fetcher
	Feeds   []ingest.Feed
}

func (s FeedSource) Fetch(ctx context.Context) []briefing.Article {
	return s.Fetcher.FetchAll(ctx, s.Feeds)
}

// Daily runs the full briefing pipeline for one day.
type Daily struct {
	Cfg           config.Config
	Source        ArticleSource
	Summarizer    summarize.Summarizer
	PatentSources []patents.Source
	Archive       *store.Archive
	Clock         func() time.Time
}

// DailyResult collects the run's outputs and where they were written.
type DailyResult struct {
	Day          string
	ArticleCount int
	Selection    briefing.Selection
	Rationales   []string
	Quotes       []quotes.Quote
	Patents      []patents.Record
	Markdown     string
	JSONPath     string
	MarkdownPath string
	HTMLPath     string
}

// ResolveDay normalizes the reference date, falling back to the clock.
func ResolveDay(reference string, clock func() time.Time) string {
	if clock == nil {
		clock = time.Now
	}
	ref, err := time.Parse(dateLayout, strings.TrimSpace(reference))
	if err != nil {
		ref = clock()
	}
	return ref.Format(dateLayout)
}

func (d *Daily) Run(ctx context.Context, reference string) (DailyResult, error) {
	tracer := telemetry.Tracer("daily-brief")
	day := ResolveDay(reference, d.Clock)
	res := DailyResult{Day: day}

	ctx, span := tracer.Start(ctx, "daily.run")
	defer span.End()

	ingestCtx, ingestSpan := tracer.Start(ctx, "daily.ingest")
	articles := []briefing.Article{}
	if d.Source != nil {
		articles = d.Source.Fetch(ingestCtx)
	}
	ingestSpan.End()
	res.ArticleCount = len(articles)
	log.Printf("daily-brief ingested articles=%d day=%s", len(articles), day)

	_, rankSpan := tracer.Start(ctx, "daily.rank")
	ranked := briefing.Rank(articles, d.Cfg.BriefingTables(), d.Cfg.Limits.TopK)
	res.Selection = briefing.Select(ranked, d.Cfg.Limits.DeepDives, d.Cfg.Limits.MaxPerTopic)
	rankSpan.End()

	sumCtx, sumSpan := tracer.Start(ctx, "daily.summarize")
	res.Rationales = d.summarizeDeepDives(sumCtx, res.Selection.DeepDives)
	sumSpan.End()

	_, quoteSpan := tracer.Start(ctx, "daily.quotes")
	rankedArticles := make([]briefing.Article, 0, len(ranked))
	for _, r := range ranked {
		rankedArticles = append(rankedArticles, r.Article)
	}
	res.Quotes = quotes.Extract(rankedArticles, d.Cfg.Limits.MaxQuotes, d.Cfg.QuoteTables())
	quoteSpan.End()

	patentCtx, patentSpan := tracer.Start(ctx, "daily.patents")
	targetDate := patents.TargetDate(day, d.Clock)
	candidates := patents.Collect(patentCtx, d.PatentSources, targetDate)
	res.Patents = patents.Filter(candidates, d.Cfg.PatentTables(), patents.FilterConfig{MaxItems: d.Cfg.Limits.MaxPatents})
	patentSpan.End()

	_, persistSpan := tracer.Start(ctx, "daily.persist")
	err := d.persist(&res)
	persistSpan.End()
	if err != nil {
		return res, err
	}

	log.Printf("daily-brief completed day=%s deep_dives=%d quotes=%d patents=%d",
		day, len(res.Selection.DeepDives), len(res.Quotes), len(res.Patents))
	return res, nil
}

func (d *Daily) summarizeDeepDives(ctx context.Context, deepDives []briefing.ScoredArticle) []string {
	summarizer := d.Summarizer
	if summarizer == nil {
		summarizer = summarize.LocalSummarizer{}
	}
	out := make([]string, len(deepDives))
	for i, dd := range deepDives {
		text, err := summarizer.Summarize(ctx, dd)
		if err != nil {
			log.Printf("daily-brief summarize failed title=%q err=%v", dd.Title, err)
			text, _ = summarize.LocalSummarizer{}.Summarize(ctx, dd)
		}
		out[i] = text
	}
	return out
}

func (d *Daily) persist(res *DailyResult) error {
	records := store.BuildDailyRecords(res.Day, res.Selection.DeepDives, res.Rationales)
	jsonPath, err := store.SaveDaily(d.Cfg.OutputDir, res.Day, records)
	if err != nil {
		return fmt.Errorf("persist deep dives: %w", err)
	}
	res.JSONPath = jsonPath

	res.Markdown = report.BuildDailyMarkdown(report.DailyInput{
		Day:        res.Day,
		Selection:  res.Selection,
		Rationales: res.Rationales,
		Quotes:     res.Quotes,
		Patents:    res.Patents,
	})
	res.MarkdownPath = filepath.Join(d.Cfg.OutputDir, fmt.Sprintf("daily_brief_%s.md", res.Day))
	if err := os.WriteFile(res.MarkdownPath, []byte(res.Markdown), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	htmlDoc, err := report.RenderHTML("Daily Briefing "+res.Day, res.Markdown)
	if err != nil {
		return err
	}
	res.HTMLPath = filepath.Join(d.Cfg.OutputDir, fmt.Sprintf("daily_brief_%s.html", res.Day))
	if err := os.WriteFile(res.HTMLPath, []byte(htmlDoc), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	if d.Archive != nil {
		err := d.Archive.ArchiveRun(store.RunResult{
			Day:          res.Day,
			ArticleCount: res.ArticleCount,
			Selection:    res.Selection,
			Rationales:   res.Rationales,
			Quotes:       res.Quotes,
			Patents:      res.Patents,
		})
		if err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
	}
	return nil
}
