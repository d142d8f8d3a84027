package quotes

import (
	"strings"
	"testing"
	"time"

	"github.com/joelkehle/mediawatch/internal/briefing"
)

func testTables() Tables {
	return Tables{
		Entities: []Entity{
			{Name: "Jensen Huang", Affiliation: "NVIDIA"},
			{Name: "Elon Musk", Affiliation: "SpaceX"},
		},
		AIKeywords:    []string{"ai", "gpu", "model"},
		SpaceKeywords: []string{"orbit", "launch", "satellite"},
	}
}

func TestExtractRequiresEntityPresence(t *testing.T) {
	item := briefing.Article{
		Title: "Chipmaker earnings beat expectations",
		Body:  `He said: "We are scaling our AI and GPU roadmap this year." More text.`,
	}
	got := Extract([]briefing.Article{item}, 10, testTables())
	if len(got) != 0 {
		t.Fatalf("expected no quotes without a literal entity match, got %d", len(got))
	}
}

func TestExtractAttributesAndTagsAI(t *testing.T) {
	item := briefing.Article{
		Title:       "Jensen Huang on the earnings call",
		Body:        `He said: "We are scaling our AI and GPU roadmap this year." More text.`,
		Source:      "Reuters",
		URL:         "https://example.com/earnings",
		PublishedAt: time.Date(2025, 12, 9, 8, 0, 0, 0, time.UTC),
	}
	got := Extract([]briefing.Article{item}, 10, testTables())
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	q := got[0]
	if q.Entity != "Jensen Huang" || q.Affiliation != "NVIDIA" {
		t.Fatalf("bad attribution: %+v", q)
	}
	if q.Topic != TopicAI {
		t.Fatalf("topic = %q, want %q", q.Topic, TopicAI)
	}
	if len(q.Tags) != 1 || q.Tags[0] != TagAI {
		t.Fatalf("tags = %v, want [AI]", q.Tags)
	}
	if q.ContextTitle != item.Title || q.SourceURL != item.URL {
		t.Fatalf("context not carried: %+v", q)
	}
}

func TestExtractTopicExclusiveTagsInclusive(t *testing.T) {
	item := briefing.Article{
		Title: "Elon Musk interview",
		Body:  `Musk noted: "Each launch now carries AI compute payloads into orbit." End.`,
	}
	got := Extract([]briefing.Article{item}, 10, testTables())
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	q := got[0]
	// Primary topic prefers AI even when both keyword sets match; the tags
	// list carries both.
	if q.Topic != TopicAI {
		t.Fatalf("topic = %q, want %q", q.Topic, TopicAI)
	}
	if len(q.Tags) != 2 || q.Tags[0] != TagAI || q.Tags[1] != TagSpace {
		t.Fatalf("tags = %v, want [AI Space]", q.Tags)
	}
}

func TestExtractSpaceOnly(t *testing.T) {
	item := briefing.Article{
		Title: "Elon Musk on launch cadence",
		Body:  `He said: "Another forty satellite missions will reach orbit by June." End.`,
	}
	got := Extract([]briefing.Article{item}, 10, testTables())
	if len(got) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(got))
	}
	if got[0].Topic != TopicSpaceEconomy {
		t.Fatalf("topic = %q, want %q", got[0].Topic, TopicSpaceEconomy)
	}
	if len(got[0].Tags) != 1 || got[0].Tags[0] != TagSpace {
		t.Fatalf("tags = %v, want [Space]", got[0].Tags)
	}
}

func TestExtractSkipsSpansWithoutKeywords(t *testing.T) {
	item := briefing.Article{
		Title: "Jensen Huang profile",
		Body:  `He reflected: "My favorite breakfast is noodles with plenty of chili." End.`,
	}
	if got := Extract([]briefing.Article{item}, 10, testTables()); len(got) != 0 {
		t.Fatalf("expected keywordless span to be dropped, got %d quotes", len(got))
	}
}

func TestExtractDedupByEntityAndText(t *testing.T) {
	body := `He said: "We are scaling our AI and GPU roadmap this year." Later he repeated: "We are   scaling our AI and GPU roadmap this year." End.`
	items := []briefing.Article{
		{Title: "Jensen Huang call", Body: body},
		{Title: "Jensen Huang recap", Body: body},
	}
	got := Extract(items, 10, testTables())
	if len(got) != 1 {
		t.Fatalf("expected whitespace-variant repeats to dedup to 1, got %d", len(got))
	}
}

func TestExtractMaxItemsEarlyExit(t *testing.T) {
	items := []briefing.Article{
		{Title: "Jensen Huang one", Body: `A: "The new GPU cluster doubles training throughput again." B: "Our AI roadmap extends through the next two years." End.`},
		{Title: "Jensen Huang two", Body: `C: "Inference at the edge is the next big GPU market for us." End.`},
	}
	got := Extract(items, 2, testTables())
	if len(got) != 2 {
		t.Fatalf("expected cap at 2, got %d", len(got))
	}
}

func TestExtractLengthBounds(t *testing.T) {
	long := "AI " + strings.Repeat("very ", 60) + "long remark"
	short := briefing.Article{
		Title: "Jensen Huang aside",
		Body:  `Short: "AI is big." and nothing else worth quoting in this piece.`,
	}
	over := briefing.Article{
		Title: "Jensen Huang keynote",
		Body:  `Rambling: "` + long + `" End.`,
	}
	if got := Extract([]briefing.Article{short, over}, 10, testTables()); len(got) != 0 {
		t.Fatalf("expected out-of-bounds spans to be dropped, got %d quotes", len(got))
	}
}
