// Package edgar queries the SEC EDGAR current-filings feed.
package edgar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://www.sec.gov"

// Filing is one entry from the current-filings feed.
type Filing struct {
	Title       string
	Summary     string
	Link        string
	Published   string
	PublishedAt *time.Time
}

// Client fetches current filings. Single attempt per call; the SEC asks
// automated clients to identify themselves via User-Agent and not to retry.
type Client interface {
	CurrentFilings(ctx context.Context, formType string, count int) ([]Filing, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default EDGAR base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *httpClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient creates an EDGAR client. userAgent is required by the SEC's
// fair-access policy and should identify the operator.
func NewClient(userAgent string, opts ...Option) Client {
	c := &httpClient{
		baseURL:   defaultBaseURL,
		userAgent: userAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CurrentFilings(ctx context.Context, formType string, count int) ([]Filing, error) {
	q := url.Values{
		"action": {"getcurrent"},
		"type":   {formType},
		"count":  {strconv.Itoa(count)},
		"output": {"atom"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cgi-bin/browse-edgar?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "edgar: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "edgar: fetch current filings")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("edgar: unexpected status %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "edgar: parse feed")
	}

	filings := make([]Filing, 0, len(feed.Items))
	for _, item := range feed.Items {
		filings = append(filings, Filing{
			Title:       item.Title,
			Summary:     item.Description,
			Link:        item.Link,
			Published:   item.Published,
			PublishedAt: item.PublishedParsed,
		})
	}
	return filings, nil
}
