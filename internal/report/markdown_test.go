package report

import (
	"strings"
	"testing"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
	"github.com/joelkehle/mediawatch/internal/weekly"
)

func sampleDailyInput() DailyInput {
	return DailyInput{
		Day: "2025-12-09",
		Selection: briefing.Selection{
			DeepDives: []briefing.ScoredArticle{
				{Article: briefing.Article{Title: "GPU story", URL: "https://a", Source: "Reuters", Topic: "AI/Cloud/Quantum"}, Score: 70},
			},
			Watchlist: map[briefing.Topic][]briefing.WatchlistEntry{
				briefing.TopicSpaceInfra: {{Title: "Launch roundup", URL: "https://c", Source: "SpaceNews"}},
			},
		},
		Rationales: []string{"This matters."},
		Quotes: []quotes.Quote{
			{Entity: "Jensen Huang", Affiliation: "NVIDIA", Topic: quotes.TopicAI, Text: "We are scaling our AI roadmap.", Tags: []string{"AI"}},
		},
		Patents: []patents.Record{
			{Office: "EPO", PublicationNumber: "EP100", Title: "GPU cloud platform", PublicationDate: "2025-12-08", Tags: []string{patents.TagTopicMatch}},
		},
	}
}

func TestBuildDailyMarkdownSections(t *testing.T) {
	md := BuildDailyMarkdown(sampleDailyInput())
	for _, want := range []string{
		"# Daily Media & Technology Briefing",
		"### 1. GPU story",
		"This matters.",
		"### Space/Infra",
		"> We are scaling our AI roadmap.",
		"*Jensen Huang, NVIDIA* (AI) [AI]",
		"| EPO | EP100 |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBuildDailyMarkdownEmptySelection(t *testing.T) {
	md := BuildDailyMarkdown(DailyInput{Day: "2025-12-09", Selection: briefing.Selection{}})
	if !strings.Contains(md, "No stories cleared the bar today.") {
		t.Fatalf("empty-state line missing:\n%s", md)
	}
	if strings.Contains(md, "## Patent Watch") {
		t.Fatalf("patent section should be omitted when empty")
	}
}

func TestBuildWeeklyMarkdown(t *testing.T) {
	groups := []weekly.Group{
		{Topic: "AI", Items: []weekly.Item{{Date: "2025-12-08", Title: "Big story", URL: "https://a", Source: "Reuters", Rationale: "why it matters"}}},
	}
	md := BuildWeeklyMarkdown("2025-12-10", groups)
	for _, want := range []string{
		"# Weekly Deep-Dive Rollup",
		"- Week ending: 2025-12-10",
		"## AI",
		"[Big story](https://a) (Reuters)",
		"why it matters",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("weekly markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	htmlDoc, err := RenderHTML("Daily Briefing", BuildDailyMarkdown(sampleDailyInput()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<title>Daily Briefing</title>", "<h1", "<table>", "<blockquote>"} {
		if !strings.Contains(htmlDoc, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}
