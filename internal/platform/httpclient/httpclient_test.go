package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBaseURL_Validates(t *testing.T) {
	for _, bad := range []string{"", "  ", "not a url", "/relative", "ftp://host"} {
		_, err := NewWithBaseURL(bad, 0)
		assert.Error(t, err, bad)
	}

	c, err := NewWithBaseURL("https://auth.example.com/api/", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTimeout, c.http.Timeout)
}

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/echo", r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithBaseURL(srv.URL+"/api", 0)
	require.NoError(t, err)

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "/v1/echo", map[string]string{"X-Api-Key": "k1"}, map[string]string{"msg": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi", out["echo"])
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c, err := NewWithBaseURL(srv.URL, 0)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/v1/me", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "token expired", he.Body)
}

func TestStatusCode_TransportError(t *testing.T) {
	assert.Zero(t, StatusCode(errors.New("dial tcp: connection refused")))
	assert.Zero(t, StatusCode(nil))
}
