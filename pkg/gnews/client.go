// Package gnews queries the Google News RSS search endpoint.
package gnews

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://news.google.com"

// Article is one entry from a news search feed.
type Article struct {
	Title       string // full raw title, including any publisher suffix
	Link        string
	Publisher   string // outlet name, empty when it cannot be derived
	Published   string
	PublishedAt *time.Time
}

// Client searches the news feed. Single attempt per call.
type Client interface {
	Search(ctx context.Context, query string) ([]Article, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default feed base URL.
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
	baseURL string
	http    *http.Client
}

// NewClient creates a news search client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Search(ctx context.Context, query string) ([]Article, error) {
	q := url.Values{
		"q":    {query},
		"hl":   {"en-US"},
		"gl":   {"US"},
		"ceid": {"US:en"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rss/search?"+q.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "gnews: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "gnews: search %q", query)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("gnews: unexpected status %d for %q", resp.StatusCode, query)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "gnews: parse feed for %q", query)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, Article{
			Title:       item.Title,
			Link:        item.Link,
			Publisher:   publisherFromTitle(item.Title),
			Published:   item.Published,
			PublishedAt: item.PublishedParsed,
		})
	}
	return articles, nil
}

// publisherFromTitle derives the outlet name from the feed's
// "Headline - Publisher" title convention.
func publisherFromTitle(title string) string {
	i := strings.LastIndex(title, " - ")
	if i < 0 || i+3 >= len(title) {
		return ""
	}
	return strings.TrimSpace(title[i+3:])
}
