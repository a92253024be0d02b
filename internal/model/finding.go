package model

import "time"

// SourceKind identifies which feed a Finding came from.
type SourceKind string

const (
	SourceRegulatory SourceKind = "sec_edgar"
	SourceNews       SourceKind = "news"
)

// PublishedUnknown is the sentinel stored when an upstream entry carries no
// usable publication timestamp. Distinct from an absent field: every Finding
// has a Published value.
const PublishedUnknown = "N/A"

// Finding is one detected CFO-change event with provenance metadata.
// Findings are immutable once accepted by the collector and live only for
// the duration of a single run.
type Finding struct {
	Source     SourceKind `json:"source"`
	Publisher  string     `json:"publisher,omitempty"` // news outlet name, news findings only
	Company    string     `json:"company"`             // never empty; extraction falls back to a sentinel
	Individual string     `json:"individual,omitempty"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary,omitempty"`
	URL        string     `json:"url"` // unique within a run; the dedup key
	Published  string     `json:"published"`
}

// HasIndividual reports whether name extraction produced a candidate.
func (f Finding) HasIndividual() bool {
	return f.Individual != ""
}

// SourceLabel is the human-readable source line used in the digest.
func (f Finding) SourceLabel() string {
	if f.Source == SourceNews {
		return "News: " + f.Publisher
	}
	return "SEC EDGAR"
}

// SheetSubject distinguishes the two kinds of tear sheet.
type SheetSubject string

const (
	SheetCompany    SheetSubject = "company"
	SheetIndividual SheetSubject = "individual"
)

// TearSheet is a generated narrative research document derived from one
// Finding. Created during enrichment, consumed once by report assembly.
type TearSheet struct {
	Subject  SheetSubject `json:"subject"`
	Name     string       `json:"name"`    // subject name
	Company  string       `json:"company"` // related company (equals Name for company sheets)
	Body     string       `json:"-"`
	Filename string       `json:"filename"`
}

// RunStats are the aggregate counts reported in the digest.
type RunStats struct {
	Findings    int `json:"findings"`
	Companies   int `json:"companies"` // distinct company names
	Individuals int `json:"individuals"`
	Regulatory  int `json:"regulatory"`
	News        int `json:"news"`
}

// RunContext is the state threaded through the pipeline stages for one run.
// Each stage consumes the full output of the previous stage.
type RunContext struct {
	Date       time.Time   `json:"date"`
	Findings   []Finding   `json:"findings"`
	Stats      RunStats    `json:"stats"`
	TearSheets []TearSheet `json:"tear_sheets,omitempty"`
}

// Attachment is a rendered document ready to be attached to the digest email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Report is the assembled outbound message.
type Report struct {
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}
