package briefing

import (
	"strings"
	"testing"
)

func fixtureTables() Tables {
	return Tables{
		AuthoritativeSources: []string{"Reuters", "SpaceNews"},
		Keywords:             []string{"satellite", "gpu", "streaming"},
	}
}

func TestScoreSourceAuthorityNoStacking(t *testing.T) {
	tables := Tables{AuthoritativeSources: []string{"Reuters", "reuters.com"}}
	a := Article{Source: "Reuters.com Technology"}
	// Both list entries match but only the first counts.
	if got := Score(a, tables); got != 50 {
		t.Fatalf("Score = %d, want 50", got)
	}
}

func TestScoreBodyRichnessCapped(t *testing.T) {
	tables := Tables{}
	short := Article{Body: strings.Repeat("x", 399)}
	if got := Score(short, tables); got != 1 {
		t.Fatalf("short body score = %d, want 1", got)
	}
	long := Article{Body: strings.Repeat("x", 100000)}
	if got := Score(long, tables); got != 50 {
		t.Fatalf("long body score = %d, want 50 (capped)", got)
	}
}

func TestScoreKeywordDensityStacks(t *testing.T) {
	tables := fixtureTables()
	a := Article{Body: "A satellite with a GPU for streaming workloads."}
	if got := Score(a, tables); got != 15 {
		t.Fatalf("Score = %d, want 15 (3 distinct keywords)", got)
	}
}

func TestScoreDeterministicAcrossPositions(t *testing.T) {
	tables := fixtureTables()
	a := Article{Title: "A", Source: "Reuters", Body: "satellite launch coverage"}
	alone := Score(a, tables)
	for i := 0; i < 3; i++ {
		if got := Score(a, tables); got != alone {
			t.Fatalf("Score changed across calls: %d != %d", got, alone)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	tables := Tables{}
	articles := []Article{
		{Title: "first", Body: ""},
		{Title: "second", Body: ""},
		{Title: "third", Body: ""},
	}
	ranked := Rank(articles, tables, 10)
	if len(ranked) != 3 {
		t.Fatalf("ranked len = %d, want 3", len(ranked))
	}
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Title != want {
			t.Fatalf("ranked[%d].Title = %q, want %q (ties must keep input order)", i, ranked[i].Title, want)
		}
	}
}

func TestRankDescendingTopK(t *testing.T) {
	tables := fixtureTables()
	articles := []Article{
		{Title: "weak", Body: "nothing relevant"},
		{Title: "strong", Source: "Reuters", Body: strings.Repeat("satellite gpu streaming ", 50)},
		{Title: "middle", Body: "satellite coverage"},
	}
	ranked := Rank(articles, tables, 2)
	if len(ranked) != 2 {
		t.Fatalf("ranked len = %d, want 2", len(ranked))
	}
	if ranked[0].Title != "strong" || ranked[1].Title != "middle" {
		t.Fatalf("unexpected order: %q, %q", ranked[0].Title, ranked[1].Title)
	}
	if ranked[0].Score < ranked[1].Score {
		t.Fatalf("scores not descending: %d < %d", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankDefaultTopK(t *testing.T) {
	articles := make([]Article, 40)
	ranked := Rank(articles, Tables{}, 0)
	if len(ranked) != DefaultTopK {
		t.Fatalf("ranked len = %d, want default %d", len(ranked), DefaultTopK)
	}
}
