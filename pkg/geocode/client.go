// Package geocode provides a reverse-geocoding client for the BigDataCloud API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client resolves coordinates into a named place.
type Client interface {
	// Reverse resolves the given coordinates into a Place.
	Reverse(ctx context.Context, lat, lon float64) (*Place, error)
}

// Place holds the reverse-geocoding output for a coordinate pair.
type Place struct {
	Locality             string `json:"locality"`
	City                 string `json:"city"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
}

// Label builds a human-readable place label. The place component prefers
// locality over city; empty components are omitted rather than leaving
// blank segments.
func (p *Place) Label() string {
	place := p.Locality
	if place == "" {
		place = p.City
	}

	parts := make([]string, 0, 3)
	for _, s := range []string{place, p.PrincipalSubdivision, p.CountryName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Option configures the geocode client.
type Option func(*httpClient)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second limit for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a reverse-geocoding Client with the given options.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: "https://api.bigdatacloud.net",
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(10, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reverse resolves coordinates using the client-side reverse geocode endpoint.
func (c *httpClient) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: rate limit")
	}

	params := url.Values{
		"latitude":         {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":        {strconv.FormatFloat(lon, 'f', -1, 64)},
		"localityLanguage": {"en"},
	}
	reqURL := c.baseURL + "/data/reverse-geocode-client?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: read body")
	}

	var place Place
	if err := json.Unmarshal(body, &place); err != nil {
		return nil, eris.Wrap(err, "geocode: parse response")
	}

	return &place, nil
}
