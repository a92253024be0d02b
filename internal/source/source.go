// Package source adapts the external feeds into Findings: keyword and
// recency filtering, name extraction, and collector insertion. Every fetch
// failure is owned here; a source degrades to zero findings and never
// aborts the run.
package source

import (
	"context"
	"strings"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/model"
)

// Scanner feeds one source's findings into the collector and returns the
// number accepted.
type Scanner interface {
	Scan(ctx context.Context, col *collect.Collector) int
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// publishedString maps an upstream timestamp string onto the Finding field,
// substituting the unknown sentinel when the source omitted it.
func publishedString(published string) string {
	if published == "" {
		return model.PublishedUnknown
	}
	return published
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
