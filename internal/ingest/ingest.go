// Package ingest pulls configured RSS/Atom feeds and converts their
// entries into raw articles for the briefing pipeline.
package ingest

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/joelkehle/mediawatch/internal/briefing"
)

const (
	DefaultFeedTimeout = 20 * time.Second
	DefaultConcurrency = 4
)

// Feed is one configured source.
type Feed struct {
	Name  string `yaml:"name" json:"name"`
	URL   string `yaml:"url" json:"url"`
	Topic string `yaml:"topic,omitempty" json:"topic,omitempty"`
}

type FetcherConfig struct {
	FeedTimeout time.Duration
	Concurrency int
}

// Fetcher downloads feeds concurrently. A failing feed contributes an
// empty result; fetch errors never propagate past the logger.
type Fetcher struct {
	cfg    FetcherConfig
	parser *gofeed.Parser
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.FeedTimeout <= 0 {
		cfg.FeedTimeout = DefaultFeedTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Fetcher{cfg: cfg, parser: gofeed.NewParser()}
}

// FetchAll gathers the entries of every feed. Order follows the feed
// list, entries within a feed keep their feed order.
func (f *Fetcher) FetchAll(ctx context.Context, feeds []Feed) []briefing.Article {
	results := make([][]briefing.Article, len(feeds))
	sem := make(chan struct{}, f.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, feed := range feeds {
		wg.Add(1)
		go func(i int, feed Feed) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = f.fetchOne(ctx, feed)
		}(i, feed)
	}
	wg.Wait()

	out := []briefing.Article{}
	for _, batch := range results {
		out = append(out, batch...)
	}
	return out
}

func (f *Fetcher) fetchOne(ctx context.Context, feed Feed) []briefing.Article {
	fctx, cancel := context.WithTimeout(ctx, f.cfg.FeedTimeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(feed.URL, fctx)
	if err != nil {
		log.Printf("ingest feed failed name=%s url=%s err=%v", feed.Name, feed.URL, err)
		return nil
	}

	out := make([]briefing.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		art := toArticle(feed, item)
		if art.Title == "" || art.URL == "" {
			continue
		}
		out = append(out, art)
	}
	return out
}

func toArticle(feed Feed, item *gofeed.Item) briefing.Article {
	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}
	art := briefing.Article{
		ID:     strings.TrimSpace(item.GUID),
		Title:  strings.TrimSpace(item.Title),
		URL:    strings.TrimSpace(item.Link),
		Source: feed.Name,
		Body:   HTMLToText(body),
		Topic:  feed.Topic,
	}
	if art.ID == "" {
		art.ID = art.URL
	}
	if item.PublishedParsed != nil {
		art.PublishedAt = item.PublishedParsed.UTC()
	} else if item.UpdatedParsed != nil {
		art.PublishedAt = item.UpdatedParsed.UTC()
	}
	return art
}

// HTMLToText strips markup from a feed entry body and collapses
// whitespace. Unparsable input falls back to the raw string.
func HTMLToText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
