// Package weather provides a client for the Open-Meteo current conditions API.
package weather

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Client fetches current weather conditions for a coordinate pair.
type Client interface {
	// Current returns the current conditions at the given coordinates.
	// Current is nil inside the response when the API omitted the
	// current block; callers must check HasCurrent.
	Current(ctx context.Context, lat, lon float64) (*Conditions, error)
}

// Conditions holds the current reading consumed from the forecast response.
type Conditions struct {
	Temperature float64 // °C
	Humidity    float64 // %
	Rain        float64 // mm

	// HasCurrent reports whether the response carried a current block at all.
	HasCurrent bool
}

// forecastResponse is the subset of the Open-Meteo response we consume.
type forecastResponse struct {
	Current *struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		Rain               float64 `json:"rain"`
	} `json:"current"`
}

// Option configures the weather client.
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

// NewClient creates a weather Client with the given options.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: "https://api.open-meteo.com",
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(10, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current fetches current temperature, humidity and rain for the coordinates.
func (c *httpClient) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "weather: rate limit")
	}

	params := url.Values{
		"latitude":  {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(lon, 'f', -1, 64)},
		"current":   {"temperature_2m,relative_humidity_2m,rain"},
		"timezone":  {"auto"},
	}
	reqURL := c.baseURL + "/v1/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "weather: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "weather: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("weather: returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "weather: read body")
	}

	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "weather: parse response")
	}

	if parsed.Current == nil {
		return &Conditions{HasCurrent: false}, nil
	}

	return &Conditions{
		Temperature: parsed.Current.Temperature2m,
		Humidity:    parsed.Current.RelativeHumidity2m,
		Rain:        parsed.Current.Rain,
		HasCurrent:  true,
	}, nil
}
