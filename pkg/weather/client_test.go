package weather

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "28.67", q.Get("latitude"))
		assert.Equal(t, "77.45", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,relative_humidity_2m,rain", q.Get("current"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"current": {"temperature_2m": 31.4, "relative_humidity_2m": 62, "rain": 3.2}
		}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	cond, err := c.Current(context.Background(), 28.67, 77.45)
	require.NoError(t, err)

	assert.True(t, cond.HasCurrent)
	assert.InDelta(t, 31.4, cond.Temperature, 0.0001)
	assert.InDelta(t, 62, cond.Humidity, 0.0001)
	assert.InDelta(t, 3.2, cond.Rain, 0.0001)
}

func TestCurrent_ZeroRain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"current": {"temperature_2m": 18.1, "relative_humidity_2m": 40, "rain": 0}
		}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	cond, err := c.Current(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.True(t, cond.HasCurrent)
	assert.Zero(t, cond.Rain)
}

func TestCurrent_NoCurrentBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"latitude": 1.0, "longitude": 1.0}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	cond, err := c.Current(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.False(t, cond.HasCurrent)
}

func TestCurrent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Current(context.Background(), 1, 1)
	require.Error(t, err)
}

func TestCurrent_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Current(context.Background(), 1, 1)
	require.Error(t, err)
}
