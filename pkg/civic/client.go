// Package civic provides a client for the Google Civic Information API's
// divisionsByAddress endpoint.
package civic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com/civicinfo/v2"

// Client performs Civic Information API operations.
type Client interface {
	// DivisionsByAddress resolves an address to the Open Civic Data divisions
	// that contain it.
	DivisionsByAddress(ctx context.Context, address string) (*DivisionsResponse, error)
}

// DivisionsResponse is the response from divisionsByAddress.
type DivisionsResponse struct {
	NormalizedInput NormalizedInput     `json:"normalizedInput"`
	Divisions       map[string]Division `json:"divisions"`
}

// NormalizedInput is the address as the API understood it.
type NormalizedInput struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Division is one Open Civic Data division, keyed in the response by its
// OCD identifier (e.g. "ocd-division/country:us/state:ca/cd:12").
type Division struct {
	Name string `json:"name"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL. A trailing slash is
// stripped so the endpoint path joins cleanly.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second rate limit for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Civic Information API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(10, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) DivisionsByAddress(ctx context.Context, address string) (*DivisionsResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "civic: rate limit")
	}

	params := url.Values{
		"address": {address},
		"key":     {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/divisionsByAddress?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "civic: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "civic: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "civic: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("civic: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result DivisionsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "civic: unmarshal response")
	}

	return &result, nil
}
