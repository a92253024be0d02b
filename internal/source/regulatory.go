package source

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/extract"
	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/pkg/edgar"
)

// cfoKeywords select filings worth keeping; matched against the case-folded
// concatenation of title and summary.
var cfoKeywords = []string{"cfo", "chief financial officer", "financial officer"}

const summaryCap = 300

// Regulatory scans SEC EDGAR current filings for CFO changes.
type Regulatory struct {
	client   edgar.Client
	formType string
	count    int
}

// NewRegulatory creates the EDGAR scan adapter.
func NewRegulatory(client edgar.Client, formType string, count int) *Regulatory {
	return &Regulatory{client: client, formType: formType, count: count}
}

// Scan fetches current filings once and adds keyword-matched entries to the
// collector. A fetch failure logs and yields zero findings.
func (s *Regulatory) Scan(ctx context.Context, col *collect.Collector) int {
	log := zap.L()
	log.Info("scanning SEC EDGAR filings", zap.String("form_type", s.formType))

	filings, err := s.client.CurrentFilings(ctx, s.formType, s.count)
	if err != nil {
		log.Warn("edgar fetch failed, continuing without filings", zap.Error(err))
		return 0
	}

	added := 0
	for _, filing := range filings {
		text := strings.ToLower(filing.Title + " " + filing.Summary)
		if !containsAny(text, cfoKeywords) {
			continue
		}

		f := model.Finding{
			Source:    model.SourceRegulatory,
			Company:   companyFromFilingTitle(filing.Title),
			Title:     filing.Title,
			Summary:   truncateRunes(filing.Summary, summaryCap),
			URL:       filing.Link,
			Published: publishedString(filing.Published),
		}
		if m, ok := extract.IndividualName(filing.Title, filing.Summary); ok {
			f.Individual = m.Name
		}

		if col.Add(f) {
			added++
		}
	}

	log.Info("SEC EDGAR scan complete", zap.Int("findings", added))
	return added
}

// companyFromFilingTitle uses the stable "Name (TICKER)" convention of
// filing titles instead of the generic news heuristic.
func companyFromFilingTitle(title string) string {
	if i := strings.Index(title, "("); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	return strings.TrimSpace(title)
}
