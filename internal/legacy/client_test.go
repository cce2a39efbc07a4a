package legacy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLegacyServer(t *testing.T, data map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[1:]
		v, ok := data[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"key": key, "value": v})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHit(t *testing.T) {
	srv := newLegacyServer(t, map[string]string{"legacy-only": "L"})
	c := New(srv.URL, nil)

	v, ok := c.Fetch(context.Background(), "legacy-only")
	require.True(t, ok)
	assert.Equal(t, []byte("L"), v)
}

func TestFetchMiss(t *testing.T) {
	srv := newLegacyServer(t, nil)
	c := New(srv.URL, nil)

	_, ok := c.Fetch(context.Background(), "absent")
	assert.False(t, ok)
}

func TestFetchEscapesKey(t *testing.T) {
	srv := newLegacyServer(t, map[string]string{"a/b c": "escaped"})
	c := New(srv.URL, nil)

	v, ok := c.Fetch(context.Background(), "a/b c")
	require.True(t, ok)
	assert.Equal(t, []byte("escaped"), v)
}

func TestFetchServerErrorIsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, nil)

	_, ok := c.Fetch(context.Background(), "k")
	assert.False(t, ok)
}

func TestFetchBadBodyIsMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, nil)

	_, ok := c.Fetch(context.Background(), "k")
	assert.False(t, ok)
}

func TestFetchTransportErrorIsMiss(t *testing.T) {
	// Nothing listens here; the fetch must come back as a miss, not an error.
	c := New("http://127.0.0.1:1", nil)

	_, ok := c.Fetch(context.Background(), "k")
	assert.False(t, ok)
}

func TestFetchHonorsDeadline(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})
	c := New(srv.URL, nil)

	start := time.Now()
	_, ok := c.Fetch(context.Background(), "slow")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 2*time.Second)
}
