// Package legacy fetches cold keys from the legacy HTTP source. A hit is
// hydrated into the cluster by the coordinator; every kind of failure here is
// reported as a miss, because the legacy source is an optional fallback and
// must never be able to fail a read.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a fetch end to end.
const DefaultTimeout = 500 * time.Millisecond

// Client fetches keys from the legacy source at GET {base}/{key}.
type Client struct {
	base       string
	httpClient *http.Client
	lgr        *zap.Logger
}

// New creates a Client for the given base URL.
func New(base string, lgr *zap.Logger) *Client {
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Client{
		base:       base,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		lgr:        lgr,
	}
}

// Fetch looks key up in the legacy source. A 200 with a {key, value} body is
// a hit; 404 is a miss; anything else (status, transport, malformed body) is
// logged and treated as a miss.
func (c *Client) Fetch(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s", c.base, url.PathEscape(key)), nil)
	if err != nil {
		c.lgr.Warn("legacy request build failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.lgr.Warn("legacy fetch failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false
	case resp.StatusCode != http.StatusOK:
		c.lgr.Warn("legacy fetch unexpected status",
			zap.String("key", key), zap.Int("status", resp.StatusCode))
		return nil, false
	}

	var body struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.lgr.Warn("legacy fetch bad body", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return []byte(body.Value), true
}
