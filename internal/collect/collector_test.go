package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/cfo-monitor/internal/model"
)

func finding(url, company string) model.Finding {
	return model.Finding{
		Source:  model.SourceNews,
		Company: company,
		URL:     url,
	}
}

func TestCollector_DedupFirstSeenWins(t *testing.T) {
	c := New()

	first := finding("https://example.com/a", "Acme")
	first.Individual = "Jane Smith"
	dup := finding("https://example.com/a", "Other Corp")

	assert.True(t, c.Add(first))
	assert.False(t, c.Add(dup))
	assert.True(t, c.Add(finding("https://example.com/b", "Globex")))

	got := c.Findings()
	assert.Len(t, got, 2)
	// First-seen entry survives unmodified.
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, "Jane Smith", got[0].Individual)
	assert.Equal(t, "Globex", got[1].Company)
}

func TestCollector_InsertionOrderPreserved(t *testing.T) {
	c := New()
	urls := []string{"u3", "u1", "u2"}
	for _, u := range urls {
		c.Add(finding(u, "Acme"))
	}
	got := c.Findings()
	for i, u := range urls {
		assert.Equal(t, u, got[i].URL)
	}
}

func TestCollector_RequiredFields(t *testing.T) {
	c := New()
	assert.False(t, c.Add(finding("", "Acme")), "missing URL")
	assert.False(t, c.Add(finding("https://example.com/a", "")), "missing company")
	assert.Equal(t, 0, c.Len())
}

func TestCollector_Has(t *testing.T) {
	c := New()
	assert.False(t, c.Has("https://example.com/a"))
	c.Add(finding("https://example.com/a", "Acme"))
	assert.True(t, c.Has("https://example.com/a"))
}

func TestCollector_Stats(t *testing.T) {
	c := New()

	a := finding("u1", "A")
	a.Individual = "X Y"
	a.Source = model.SourceRegulatory
	b := finding("u2", "A")
	d := finding("u3", "B")
	d.Individual = "Y Z"

	c.Add(a)
	c.Add(b)
	c.Add(d)

	stats := c.Stats()
	assert.Equal(t, 3, stats.Findings)
	assert.Equal(t, 2, stats.Companies)
	assert.Equal(t, 2, stats.Individuals)
	assert.Equal(t, 1, stats.Regulatory)
	assert.Equal(t, 2, stats.News)
}

func TestCollector_FindingsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(finding("u1", "Acme"))
	got := c.Findings()
	got[0].Company = "mutated"
	assert.Equal(t, "Acme", c.Findings()[0].Company)
}
