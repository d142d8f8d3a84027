package briefing

// Select partitions a ranked sequence into deep dives and the per-topic
// watchlist. The first deepDiveCount items pass through verbatim in rank
// order. Every remaining item is skipped when its normalized title collides
// with a deep-dive title or with any title already accepted anywhere in the
// selection; otherwise it lands in its topic bucket as a minimal projection,
// capped at maxPerTopic per bucket. All topic buckets exist in the output
// even when empty, so downstream rendering is deterministic. An empty input
// yields an empty deep-dive list and all-empty buckets.
func Select(ranked []ScoredArticle, deepDiveCount, maxPerTopic int) Selection {
	if deepDiveCount < 0 {
		deepDiveCount = 0
	}
	if maxPerTopic < 0 {
		maxPerTopic = 0
	}

	sel := Selection{
		DeepDives: []ScoredArticle{},
		Watchlist: make(map[Topic][]WatchlistEntry, len(allTopics)),
	}
	for _, t := range allTopics {
		sel.Watchlist[t] = []WatchlistEntry{}
	}

	seen := map[string]struct{}{}

	n := deepDiveCount
	if n > len(ranked) {
		n = len(ranked)
	}
	for _, item := range ranked[:n] {
		sel.DeepDives = append(sel.DeepDives, item)
		seen[NormalizeTitle(item.Title)] = struct{}{}
	}

	for _, item := range ranked[n:] {
		key := NormalizeTitle(item.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		topic := ClassifyTopic(item.Article)
		if len(sel.Watchlist[topic]) >= maxPerTopic {
			continue
		}
		sel.Watchlist[topic] = append(sel.Watchlist[topic], WatchlistEntry{
			Title:  item.Title,
			URL:    item.URL,
			Source: item.Source,
		})
		seen[key] = struct{}{}
	}

	return sel
}
