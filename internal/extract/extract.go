// Package extract holds the text heuristics that turn raw feed text into
// candidate company and individual names. All functions are pure.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnresolvedCompany is returned when no company name can be derived from a
// title. Callers must tolerate the low precision of company extraction; this
// sentinel is never empty so downstream code can rely on Company being set.
const UnresolvedCompany = "Company in article"

// nameRules are tried in priority order; the first rule that produces an
// acceptable candidate anywhere in the text wins.
var nameRules = []struct {
	Tag string
	re  *regexp.Regexp
}{
	{"verb_then_name", regexp.MustCompile(`(?:appoints|names|hires|welcomes)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)},
	{"name_then_verb", regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s+(?:as|named|appointed|joins)`)},
	{"cfo_then_name", regexp.MustCompile(`CFO\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)},
}

// nameBlocklist rejects role phrases a greedy pattern can capture. The
// full title is listed alongside its fragments because rule 1 matches all
// three title-case words of "names Chief Financial Officer" at once.
var nameBlocklist = map[string]bool{
	"Chief Financial":         true,
	"Financial Officer":       true,
	"Chief Financial Officer": true,
}

// NameMatch is a matched individual name tagged with the rule that found it.
type NameMatch struct {
	Name string
	Rule string
}

// IndividualName scans title and summary for a person's name using the
// prioritized rule list. A candidate needs at least two words and must not
// be a blocklisted fragment; a rule whose candidate is rejected yields to
// the next rule. Returns ok=false when nothing matches.
func IndividualName(title, summary string) (NameMatch, bool) {
	text := title + " " + summary

	for _, rule := range nameRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(strings.Fields(name)) < 2 || nameBlocklist[name] {
			continue
		}
		return NameMatch{Name: name, Rule: rule.Tag}, true
	}

	return NameMatch{}, false
}

// companyVerbs are the announcement verbs a news title is split on.
var companyVerbs = []string{"appoints", "hires", "names", "announces", "welcomes"}

var titleCaser = cases.Title(language.English)

// CompanyName extracts a best-effort company name from a news title: the
// title-cased text preceding the first announcement verb found. Falls back
// to UnresolvedCompany when no verb matches or nothing precedes it.
func CompanyName(title string) string {
	lower := strings.ToLower(title)
	for _, verb := range companyVerbs {
		idx := strings.Index(lower, verb)
		if idx < 0 {
			continue
		}
		prefix := strings.TrimSpace(lower[:idx])
		if prefix == "" {
			continue
		}
		return titleCaser.String(prefix)
	}
	return UnresolvedCompany
}
