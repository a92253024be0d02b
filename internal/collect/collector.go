// Package collect accumulates Findings from multiple sources with
// intra-run deduplication by URL.
package collect

import "github.com/sells-group/cfo-monitor/internal/model"

// Collector holds accepted Findings in insertion order. The first Finding
// seen for a URL wins; later candidates with the same URL are discarded,
// not merged. Not safe for concurrent use; the pipeline is sequential.
type Collector struct {
	findings []model.Finding
	seen     map[string]bool
}

// New returns an empty Collector.
func New() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

// Add accepts the candidate unless it is missing a required field (URL,
// company) or its URL has already been seen. Reports whether it was accepted.
func (c *Collector) Add(f model.Finding) bool {
	if f.URL == "" || f.Company == "" {
		return false
	}
	if c.seen[f.URL] {
		return false
	}
	c.seen[f.URL] = true
	c.findings = append(c.findings, f)
	return true
}

// Has reports whether a Finding with the given URL has been accepted.
func (c *Collector) Has(url string) bool {
	return c.seen[url]
}

// Len returns the number of accepted Findings.
func (c *Collector) Len() int {
	return len(c.findings)
}

// Findings returns the accepted Findings in insertion order.
func (c *Collector) Findings() []model.Finding {
	out := make([]model.Finding, len(c.findings))
	copy(out, c.findings)
	return out
}

// CountBy returns the number of accepted Findings matching pred.
func (c *Collector) CountBy(pred func(model.Finding) bool) int {
	n := 0
	for _, f := range c.findings {
		if pred(f) {
			n++
		}
	}
	return n
}

// DistinctCompanies returns the number of distinct company names.
func (c *Collector) DistinctCompanies() int {
	companies := make(map[string]bool, len(c.findings))
	for _, f := range c.findings {
		companies[f.Company] = true
	}
	return len(companies)
}

// Stats computes the aggregate counts for the digest.
func (c *Collector) Stats() model.RunStats {
	return model.RunStats{
		Findings:    c.Len(),
		Companies:   c.DistinctCompanies(),
		Individuals: c.CountBy(model.Finding.HasIndividual),
		Regulatory:  c.CountBy(func(f model.Finding) bool { return f.Source == model.SourceRegulatory }),
		News:        c.CountBy(func(f model.Finding) bool { return f.Source == model.SourceNews }),
	}
}
