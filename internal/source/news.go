package source

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/extract"
	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/internal/throttle"
	"github.com/sells-group/cfo-monitor/pkg/gnews"
)

// ResourceNewsFeed is the throttle resource id for the news feed endpoint.
const ResourceNewsFeed = "news_feed"

// DefaultQueries covers both appointment and departure framings.
var DefaultQueries = []string{
	"CFO appointed",
	"CFO hired",
	"Chief Financial Officer joins",
	"CFO departure",
	"CFO steps down",
	"new CFO",
	"names CFO",
	"appoints Chief Financial Officer",
}

const unknownPublisher = "Unknown"

// NewsConfig bounds the news scan.
type NewsConfig struct {
	Queries  []string
	PerQuery int           // entries considered per query
	MaxAge   time.Duration // entries with a parseable timestamp older than this are dropped
}

// News scans the news search feed for CFO changes across a fixed query list.
type News struct {
	client gnews.Client
	cfg    NewsConfig
	th     throttle.Throttle
	now    func() time.Time
}

// NewNews creates the news scan adapter.
func NewNews(client gnews.Client, cfg NewsConfig, th throttle.Throttle) *News {
	return &News{client: client, cfg: cfg, th: th, now: time.Now}
}

// Scan processes the queries fully sequentially, pacing between them, and
// inserts accepted entries into the collector before moving to the next
// query. An article reachable from two queries is deduplicated on the
// second sighting. A failed query logs and continues; it never aborts the
// remaining queries.
func (s *News) Scan(ctx context.Context, col *collect.Collector) int {
	log := zap.L()
	log.Info("scanning business news", zap.Int("queries", len(s.cfg.Queries)))

	added := 0
	for _, query := range s.cfg.Queries {
		if err := s.th.Wait(ctx, ResourceNewsFeed); err != nil {
			return added
		}

		articles, err := s.client.Search(ctx, query)
		if err != nil {
			log.Warn("news query failed, continuing", zap.String("query", query), zap.Error(err))
			continue
		}
		if len(articles) > s.cfg.PerQuery {
			articles = articles[:s.cfg.PerQuery]
		}

		for _, a := range articles {
			// Only a parseable-and-stale timestamp excludes an entry;
			// a missing timestamp keeps it.
			if a.PublishedAt != nil && s.now().Sub(*a.PublishedAt) > s.cfg.MaxAge {
				continue
			}
			if col.Has(a.Link) {
				continue
			}

			publisher := a.Publisher
			if publisher == "" {
				publisher = unknownPublisher
			}

			f := model.Finding{
				Source:    model.SourceNews,
				Publisher: publisher,
				Company:   extract.CompanyName(a.Title),
				Title:     a.Title,
				URL:       a.Link,
				Published: publishedString(a.Published),
			}
			if m, ok := extract.IndividualName(a.Title, ""); ok {
				f.Individual = m.Name
			}

			if col.Add(f) {
				added++
			}
		}
	}

	log.Info("news scan complete", zap.Int("findings", added))
	return added
}
