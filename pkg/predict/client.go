// Package predict provides a client for the yield prediction backend.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

// ErrBackend indicates the backend processed the request but reported a
// non-success status. Distinct from network-level failures, which are
// returned as plain wrapped errors.
var ErrBackend = eris.New("predict: backend reported failure")

// Client submits normalized soil parameters for yield prediction.
type Client interface {
	// Predict posts the payload and returns the backend's prediction record.
	Predict(ctx context.Context, p Payload) (*Prediction, error)
}

// Payload is the normalized request body. Key names match the backend's
// expected feature names exactly.
type Payload struct {
	Nitrogen    float64 `json:"Nitrogen"`
	Phosphorus  float64 `json:"Phosphorus"`
	Potassium   float64 `json:"Potassium"`
	Temperature float64 `json:"Temperature"`
	Humidity    float64 `json:"Humidity"`
	PH          float64 `json:"pH"`
	Rainfall    float64 `json:"Rainfall"`
	InputCost   float64 `json:"Input_Cost"`
	CropType    string  `json:"Crop_Type"`
}

// Prediction is the record returned by the backend on success. Revenue,
// cost and net profit reflect the backend's default cost assumptions and
// may be overridden downstream when the user supplied their own cost.
type Prediction struct {
	YieldTonHectare float64 `json:"yield_ton_hectare"`
	MarketPriceUsed float64 `json:"market_price_used"`
	Revenue         float64 `json:"revenue"`
	Cost            float64 `json:"cost"`
	NetProfit       float64 `json:"net_profit"`
}

// predictResponse is the backend's response envelope.
type predictResponse struct {
	Status     string      `json:"status"`
	Prediction *Prediction `json:"prediction"`
}

// Option configures the predict client.
type Option func(*httpClient)

// WithURL sets the backend endpoint URL.
func WithURL(u string) Option {
	return func(c *httpClient) {
		c.url = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

type httpClient struct {
	url  string
	http *http.Client
}

// NewClient creates a prediction Client with the given options.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		url:  "http://127.0.0.1:5000/predict",
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Predict posts the payload as JSON and decodes the prediction envelope.
func (c *httpClient) Predict(ctx context.Context, p Payload) (*Prediction, error) {
	reqBody, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "predict: marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, eris.Wrap(err, "predict: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "predict: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "predict: read body")
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "predict: parse response")
	}

	// The backend signals application-level failure through the status
	// discriminator, not HTTP status codes.
	if parsed.Status != "success" || parsed.Prediction == nil {
		return nil, eris.Wrapf(ErrBackend, "status %q", parsed.Status)
	}

	return parsed.Prediction, nil
}
