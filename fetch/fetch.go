package fetch

import (
	"fmt"
	"time"

	"github.com/gocolly/colly"
)

// Client retrieves raw page HTML: one synchronous GET per URL with a fixed
// identifying User-Agent and timeout, no retries.
type Client struct {
	UserAgent string
	Timeout   time.Duration
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{UserAgent: userAgent, Timeout: timeout}
}

// Fetch performs the GET. Transport failures and non-success statuses come
// back as errors; the body is returned as-is and treated as HTML text.
func (c *Client) Fetch(url string) ([]byte, error) {
	collector := colly.NewCollector()
	collector.UserAgent = c.UserAgent
	collector.SetRequestTimeout(c.Timeout)

	var body []byte
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	if err := collector.Visit(url); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return body, nil
}
