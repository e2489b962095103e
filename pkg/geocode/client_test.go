package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/reverse-geocode-client", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "28.67", q.Get("latitude"))
		assert.Equal(t, "77.45", q.Get("longitude"))
		assert.Equal(t, "en", q.Get("localityLanguage"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"locality": "Ghaziabad",
			"city": "Ghaziabad",
			"principalSubdivision": "Uttar Pradesh",
			"countryName": "India"
		}`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	place, err := c.Reverse(context.Background(), 28.67, 77.45)
	require.NoError(t, err)

	assert.Equal(t, "Ghaziabad", place.Locality)
	assert.Equal(t, "Uttar Pradesh", place.PrincipalSubdivision)
	assert.Equal(t, "India", place.CountryName)
}

func TestReverse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Reverse(context.Background(), 1, 1)
	require.Error(t, err)
}

func TestReverse_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Reverse(context.Background(), 1, 1)
	require.Error(t, err)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		place    Place
		expected string
	}{
		{
			name: "all parts",
			place: Place{
				Locality:             "Ghaziabad",
				PrincipalSubdivision: "Uttar Pradesh",
				CountryName:          "India",
			},
			expected: "Ghaziabad, Uttar Pradesh, India",
		},
		{
			name: "city fallback when locality empty",
			place: Place{
				City:                 "Pune",
				PrincipalSubdivision: "Maharashtra",
				CountryName:          "India",
			},
			expected: "Pune, Maharashtra, India",
		},
		{
			name: "locality wins over city",
			place: Place{
				Locality:    "Andheri",
				City:        "Mumbai",
				CountryName: "India",
			},
			expected: "Andheri, India",
		},
		{
			name:     "subdivision and country only",
			place:    Place{PrincipalSubdivision: "Bavaria", CountryName: "Germany"},
			expected: "Bavaria, Germany",
		},
		{
			name:     "all empty",
			place:    Place{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.place.Label())
		})
	}
}
