package patents

import (
	"context"
	"log"
)

// Collect gathers the publications of all offices for the target day. A
// failing office contributes nothing; the fetch error never propagates.
func Collect(ctx context.Context, sources []Source, targetDate string) []Record {
	out := []Record{}
	for _, src := range sources {
		recs, err := src.Fetch(ctx, targetDate)
		if err != nil {
			log.Printf("patents fetch failed office=%s date=%s err=%v", src.Office(), targetDate, err)
			continue
		}
		out = append(out, recs...)
	}
	return out
}
