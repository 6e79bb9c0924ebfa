package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Client defaults.
const (
	// DefaultURL is the first page of the airportgap catalogue.
	DefaultURL = "https://airportgap.com/api/airports"
	// DefaultRetryWait is the pause after an HTTP 429 reply.
	DefaultRetryWait = 60 * time.Second
	// DefaultMaxRetries bounds consecutive 429 retries for one page.
	DefaultMaxRetries = 5
	// DefaultTimeout is the per-request timeout of the default HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Client pulls the paginated airport catalogue.
type Client struct {
	HTTP       *http.Client
	RetryWait  time.Duration
	MaxRetries int
	Logger     *slog.Logger
}

// NewClient returns a Client with default retry policy. A nil httpClient
// gets DefaultTimeout; a nil logger falls back to slog.Default().
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		HTTP:       httpClient,
		RetryWait:  DefaultRetryWait,
		MaxRetries: DefaultMaxRetries,
		Logger:     logger,
	}
}

// FetchAll walks the catalogue starting at url and returns every airport.
//
// Pages are followed through links.next until it is empty, already visited,
// or the requested URL equals links.last. A 429 reply waits RetryWait and
// retries the same page up to MaxRetries times. On any failure the airports
// collected so far are returned together with the error.
func (c *Client) FetchAll(ctx context.Context, url string) ([]Airport, error) {
	var (
		out     []Airport
		retries int
		visited = make(map[string]bool)
	)
	for {
		p, status, err := c.fetchPage(ctx, url)
		if err != nil {
			return out, err
		}

		switch status {
		case http.StatusOK:
			for _, r := range p.Data {
				out = append(out, r.airport())
			}
			c.Logger.Debug("fetched airports page", "url", url, "count", len(p.Data), "total", len(out))
			visited[url] = true
			retries = 0
			next := p.Links.Next
			if next == "" || url == p.Links.Last || visited[next] {
				return out, nil
			}
			url = next

		case http.StatusTooManyRequests:
			if retries >= c.MaxRetries {
				return out, fmt.Errorf("%w: %s after %d retries", ErrRateLimited, url, retries)
			}
			retries++
			c.Logger.Warn("rate limited, waiting", "url", url, "wait", c.RetryWait, "attempt", retries)
			if err := sleep(ctx, c.RetryWait); err != nil {
				return out, err
			}

		default:
			return out, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, status, url)
		}
	}
}

func (c *Client) fetchPage(ctx context.Context, url string) (page, int, error) {
	var p page
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return p, 0, fmt.Errorf("airports: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return p, 0, fmt.Errorf("airports: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return p, resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return p, resp.StatusCode, fmt.Errorf("airports: decode %s: %w", url, err)
	}

	return p, resp.StatusCode, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
