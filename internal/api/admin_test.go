package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvcluster/internal/cluster"
	"kvcluster/internal/store"
)

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	ring, err := cluster.BuildRing([]string{"node-a:50051", "node-b:50051"}, 64)
	require.NoError(t, err)
	st := store.New()
	return NewHandler("node-a:50051", ring, st, nil).Router(), st
}

func TestHealth(t *testing.T) {
	router, st := newTestRouter(t)
	st.Set("k", []byte("v"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "node-a:50051", body["node"])
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["nodes"])
	assert.Equal(t, float64(1), body["keys"])
}

func TestListNodes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cluster/nodes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Nodes []string `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"node-a:50051", "node-b:50051"}, body.Nodes)
}

func TestRingLookup(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("missing key", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cluster/ring", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lookup", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cluster/ring?key=alpha", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Key        string   `json:"key"`
			Owner      string   `json:"owner"`
			Successors []string `json:"successors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alpha", body.Key)
		require.Len(t, body.Successors, 2)
		assert.Equal(t, body.Owner, body.Successors[0])
	})
}
