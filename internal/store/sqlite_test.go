package store

import (
	"path/filepath"
	"testing"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := OpenArchive(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func sampleRun(day string) RunResult {
	sel := sampleSelection()
	sel.Watchlist[briefing.TopicSpaceInfra] = []briefing.WatchlistEntry{
		{Title: "Launch roundup", URL: "https://c", Source: "SpaceNews"},
	}
	return RunResult{
		Day:          day,
		ArticleCount: 42,
		Selection:    sel,
		Rationales:   []string{"matters"},
		Quotes: []quotes.Quote{
			{Entity: "Jensen Huang", Topic: quotes.TopicAI, Text: "We are scaling our AI roadmap.", Tags: []string{"AI"}},
		},
		Patents: []patents.Record{
			{Office: "EPO", PublicationNumber: "EP100", Title: "GPU cloud platform", PublicationDate: day, Tags: []string{patents.TagTopicMatch}},
		},
	}
}

func TestArchiveRunAndRecentRuns(t *testing.T) {
	a := openTestArchive(t)
	if err := a.ArchiveRun(sampleRun("2025-12-09")); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := a.ArchiveRun(sampleRun("2025-12-08")); err != nil {
		t.Fatalf("archive: %v", err)
	}
	runs, err := a.RecentRuns(10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 2 || runs[0].Day != "2025-12-09" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if runs[0].DeepDiveCount != 2 || runs[0].QuoteCount != 1 || runs[0].PatentCount != 1 {
		t.Fatalf("counts wrong: %+v", runs[0])
	}
}

func TestArchiveRunReplacesDay(t *testing.T) {
	a := openTestArchive(t)
	if err := a.ArchiveRun(sampleRun("2025-12-09")); err != nil {
		t.Fatalf("first archive: %v", err)
	}
	res := sampleRun("2025-12-09")
	res.ArticleCount = 7
	if err := a.ArchiveRun(res); err != nil {
		t.Fatalf("second archive: %v", err)
	}
	runs, err := a.RecentRuns(10)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ArticleCount != 7 {
		t.Fatalf("rerun did not replace: %+v", runs)
	}
}
