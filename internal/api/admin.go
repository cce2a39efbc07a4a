// Package api serves the read-only admin surface: health for probes and load
// balancers, plus ring introspection for debugging key placement. The data
// plane never goes through here.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kvcluster/internal/cluster"
	"kvcluster/internal/store"
)

// Handler holds the node state the admin endpoints read.
type Handler struct {
	nodeID string
	ring   *cluster.Ring
	store  *store.Store
	lgr    *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(nodeID string, ring *cluster.Ring, st *store.Store, lgr *zap.Logger) *Handler {
	if lgr == nil {
		lgr = zap.NewNop()
	}
	return &Handler{nodeID: nodeID, ring: ring, store: st, lgr: lgr}
}

// Router builds the gin engine with all admin routes mounted.
func (h *Handler) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(h.recovery())

	r.GET("/health", h.health)
	clusterGroup := r.Group("/cluster")
	clusterGroup.GET("/nodes", h.listNodes)
	clusterGroup.GET("/ring", h.ringLookup)
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"node":   h.nodeID,
		"status": "ok",
		"nodes":  h.ring.Size(),
		"keys":   h.store.Len(),
	})
}

func (h *Handler) listNodes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"nodes": h.ring.Members()})
}

// ringLookup answers "who owns this key" without touching any value.
func (h *Handler) ringLookup(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing key parameter"})
		return
	}
	succ := h.ring.Successors(key, h.ring.Size())
	c.JSON(http.StatusOK, gin.H{
		"key":        key,
		"owner":      succ[0],
		"successors": succ,
	})
}

func (h *Handler) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				h.lgr.Error("admin panic recovered", zap.Any("panic", err))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
