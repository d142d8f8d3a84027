package briefing

import (
	"sort"
	"strings"
)

// Score combines three additive signals: source authority (fixed bonus on
// the first authoritative-source match, no stacking), body richness
// (length-derived, capped), and keyword density (per distinct keyword from
// the table, unbounded). Pure function of the article and tables.
func Score(a Article, tables Tables) int {
	score := 0

	source := strings.ToLower(a.Source)
	for _, s := range tables.AuthoritativeSources {
		if s == "" {
			continue
		}
		if strings.Contains(source, strings.ToLower(s)) {
			score += sourceAuthorityBonus
			break
		}
	}

	richness := len(a.Body) / bodyLengthDivisor
	if richness > bodyLengthCap {
		richness = bodyLengthCap
	}
	score += richness

	body := strings.ToLower(a.Body)
	for _, kw := range tables.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(body, strings.ToLower(kw)) {
			score += keywordBonus
		}
	}

	return score
}

// Rank scores every article and returns the top K in descending score
// order. The sort is stable: equal scores keep their input order, so
// identical inputs always produce identical output.
func Rank(articles []Article, tables Tables, topK int) []ScoredArticle {
	if topK <= 0 {
		topK = DefaultTopK
	}
	scored := make([]ScoredArticle, 0, len(articles))
	for _, a := range articles {
		scored = append(scored, ScoredArticle{Article: a, Score: Score(a, tables)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored
}
