package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joelkehle/mediawatch/internal/report"
	"github.com/joelkehle/mediawatch/internal/weekly"
)

// WeeklyResult is the rollup plus where its renderings were written.
type WeeklyResult struct {
	Reference    string
	Groups       []weekly.Group
	Markdown     string
	MarkdownPath string
	HTMLPath     string
}

// RunWeekly aggregates the trailing week of persisted daily outputs
// under outputDir and renders the rollup next to them.
func RunWeekly(outputDir, reference string, clock func() time.Time) (WeeklyResult, error) {
	ref := ResolveDay(reference, clock)
	res := WeeklyResult{Reference: ref}

	res.Groups = weekly.Build(outputDir, ref, clock)
	res.Markdown = report.BuildWeeklyMarkdown(ref, res.Groups)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}
	res.MarkdownPath = filepath.Join(outputDir, fmt.Sprintf("weekly_brief_%s.md", ref))
	if err := os.WriteFile(res.MarkdownPath, []byte(res.Markdown), 0o644); err != nil {
		return res, fmt.Errorf("write markdown: %w", err)
	}

	htmlDoc, err := report.RenderHTML("Weekly Rollup "+ref, res.Markdown)
	if err != nil {
		return res, err
	}
	res.HTMLPath = filepath.Join(outputDir, fmt.Sprintf("weekly_brief_%s.html", ref))
	if err := os.WriteFile(res.HTMLPath, []byte(htmlDoc), 0o644); err != nil {
		return res, fmt.Errorf("write html: %w", err)
	}
	return res, nil
}
