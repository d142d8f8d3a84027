// Package report renders daily and weekly briefings to Markdown, HTML,
// and PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
	"github.com/joelkehle/mediawatch/internal/weekly"
)

// DailyInput bundles everything one daily briefing renders.
type DailyInput struct {
	Day        string
	Selection  briefing.Selection
	Rationales []string
	Quotes     []quotes.Quote
	Patents    []patents.Record
}

func BuildDailyMarkdown(in DailyInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Daily Media & Technology Briefing\n\n")
	fmt.Fprintf(&b, "- Date: %s\n", in.Day)
	fmt.Fprintf(&b, "- Deep dives: %d\n", len(in.Selection.DeepDives))
	fmt.Fprintf(&b, "- Quotes: %d\n", len(in.Quotes))
	fmt.Fprintf(&b, "- Patent publications: %d\n\n", len(in.Patents))

	fmt.Fprintf(&b, "## Deep Dives\n\n")
	if len(in.Selection.DeepDives) == 0 {
		fmt.Fprintf(&b, "No stories cleared the bar today.\n\n")
	}
	for i, dd := range in.Selection.DeepDives {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, dd.Title)
		fmt.Fprintf(&b, "- Source: %s\n", dd.Source)
		fmt.Fprintf(&b, "- Topic: %s\n", briefing.ClassifyTopic(dd.Article))
		fmt.Fprintf(&b, "- Link: <%s>\n\n", dd.URL)
		if i < len(in.Rationales) && strings.TrimSpace(in.Rationales[i]) != "" {
			fmt.Fprintf(&b, "%s\n\n", in.Rationales[i])
		}
	}

	fmt.Fprintf(&b, "## Watchlist\n\n")
	for _, topic := range briefing.AllTopics() {
		entries := in.Selection.Watchlist[topic]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", topic)
		for _, e := range entries {
			fmt.Fprintf(&b, "- [%s](%s) (%s)\n", e.Title, e.URL, e.Source)
		}
		b.WriteString("\n")
	}

	if len(in.Quotes) > 0 {
		fmt.Fprintf(&b, "## Notable Quotes\n\n")
		for _, q := range in.Quotes {
			fmt.Fprintf(&b, "> %s\n\n", q.Text)
			attribution := q.Entity
			if q.Affiliation != "" {
				attribution += ", " + q.Affiliation
			}
			fmt.Fprintf(&b, "*%s* (%s)", attribution, q.Topic)
			if len(q.Tags) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(q.Tags, ", "))
			}
			b.WriteString("\n\n")
		}
	}

	if len(in.Patents) > 0 {
		fmt.Fprintf(&b, "## Patent Watch\n\n")
		fmt.Fprintf(&b, "| Office | Publication | Title | Date | Tags |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|\n")
		for _, p := range in.Patents {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				p.Office, p.PublicationNumber, p.Title, p.PublicationDate, strings.Join(p.Tags, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func BuildWeeklyMarkdown(reference string, groups []weekly.Group) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Deep-Dive Rollup\n\n")
	fmt.Fprintf(&b, "- Week ending: %s\n\n", reference)
	if len(groups) == 0 {
		fmt.Fprintf(&b, "No deep dives were recorded this week.\n")
		return b.String()
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "## %s\n\n", g.Topic)
		for _, item := range g.Items {
			fmt.Fprintf(&b, "- %s: [%s](%s)", item.Date, item.Title, item.URL)
			if item.Source != "" {
				fmt.Fprintf(&b, " (%s)", item.Source)
			}
			b.WriteString("\n")
			if strings.TrimSpace(item.Rationale) != "" {
				fmt.Fprintf(&b, "  - %s\n", item.Rationale)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
