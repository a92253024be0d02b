package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/model"
	"github.com/sells-group/cfo-monitor/pkg/edgar"
)

func TestRegulatory_Scan(t *testing.T) {
	client := &mockEdgarClient{}
	client.On("CurrentFilings", mock.Anything, "8-K", 100).Return([]edgar.Filing{
		{
			Title:     "8-K - ACME CORP (0000123456) (Filer)",
			Summary:   "Item 5.02: Departure of the Chief Financial Officer",
			Link:      "https://www.sec.gov/acme",
			Published: "2026-09-01T09:30:00-04:00",
		},
		{
			Title:   "8-K - GLOBEX INC (0000654321) (Filer)",
			Summary: "Item 8.01: Other Events",
			Link:    "https://www.sec.gov/globex",
		},
		{
			Title:   "8-K - INITECH (0000777777) (Filer)",
			Summary: "The company appoints John Doe as CFO effective immediately",
			Link:    "https://www.sec.gov/initech",
		},
	}, nil)

	col := collect.New()
	added := NewRegulatory(client, "8-K", 100).Scan(context.Background(), col)

	assert.Equal(t, 2, added)
	findings := col.Findings()
	require.Len(t, findings, 2)

	// Company comes from the title prefix before the first paren.
	assert.Equal(t, "8-K - ACME CORP", findings[0].Company)
	assert.Equal(t, model.SourceRegulatory, findings[0].Source)
	assert.Equal(t, "2026-09-01T09:30:00-04:00", findings[0].Published)

	// Second filing ("Other Events") has no CFO keyword and is dropped.
	assert.Equal(t, "8-K - INITECH", findings[1].Company)
	assert.Equal(t, "John Doe", findings[1].Individual)
	assert.Equal(t, model.PublishedUnknown, findings[1].Published)
}

func TestRegulatory_Scan_FetchFailureDegrades(t *testing.T) {
	client := &mockEdgarClient{}
	client.On("CurrentFilings", mock.Anything, "8-K", 100).Return(nil, errors.New("boom"))

	col := collect.New()
	added := NewRegulatory(client, "8-K", 100).Scan(context.Background(), col)

	assert.Equal(t, 0, added)
	assert.Equal(t, 0, col.Len())
}

func TestRegulatory_Scan_SummaryTruncated(t *testing.T) {
	long := strings.Repeat("cfo transition details ", 30)
	client := &mockEdgarClient{}
	client.On("CurrentFilings", mock.Anything, "8-K", 100).Return([]edgar.Filing{
		{Title: "8-K - ACME CORP (0000123456)", Summary: long, Link: "https://www.sec.gov/acme"},
	}, nil)

	col := collect.New()
	NewRegulatory(client, "8-K", 100).Scan(context.Background(), col)

	findings := col.Findings()
	require.Len(t, findings, 1)
	assert.Len(t, []rune(findings[0].Summary), 300)
}

func TestCompanyFromFilingTitle(t *testing.T) {
	assert.Equal(t, "8-K - ACME CORP", companyFromFilingTitle("8-K - ACME CORP (0000123456) (Filer)"))
	assert.Equal(t, "No Paren Title", companyFromFilingTitle("No Paren Title"))
}
