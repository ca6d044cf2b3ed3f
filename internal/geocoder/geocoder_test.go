package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "6.5244", r.URL.Query().Get("lat"))
		assert.Equal(t, "3.3792", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name": "Lagos Island, Lagos, Nigeria"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	addr, err := client.ReverseGeocode(context.Background(), 6.5244, 3.3792)

	require.NoError(t, err)
	assert.Equal(t, "Lagos Island, Lagos, Nigeria", addr)
}

func TestReverseGeocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	addr, err := client.ReverseGeocode(context.Background(), 6.5244, 3.3792)

	require.Error(t, err)
	assert.Empty(t, addr)
}

func TestReverseGeocode_DisabledWithoutURL(t *testing.T) {
	client := New("", time.Second)
	addr, err := client.ReverseGeocode(context.Background(), 6.5244, 3.3792)

	require.NoError(t, err)
	assert.Empty(t, addr)
}
