// Package resultserver exposes a completed enumeration run over a
// small read-only HTTP API. It follows the same shape as
// flxj/graphlib's workflow service: an in-memory, RWMutex-guarded
// store backing a gin.Engine with one route group.
package resultserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flxj/pageloop/pageloop"
)

// Store holds the single completed Result this process ever serves.
// Handlers only ever read it; it is written once, before the server
// starts accepting connections, so the mutex only guards against the
// pathological case of a handler racing the initial Set.
type Store struct {
	mu       sync.RWMutex
	result   pageloop.Result
	elapsed  time.Duration
	have     bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set installs the result to serve, along with how long enumeration
// took, and makes the store ready.
func (s *Store) Set(result pageloop.Result, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.elapsed = elapsed
	s.have = true
}

func (s *Store) snapshot() (pageloop.Result, time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.elapsed, s.have
}

// NewEngine builds the gin.Engine serving /health, /stats and /cycles
// against store. Handlers only read already-computed, immutable
// results: starting this server after enumeration has finished does
// not reintroduce any concurrency into the enumeration core itself.
func NewEngine(store *Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/")
	{
		api.GET("/health", func(c *gin.Context) {
			_, _, have := store.snapshot()
			c.JSON(http.StatusOK, gin.H{"ready": have})
		})
		api.GET("/stats", func(c *gin.Context) {
			result, elapsed, have := store.snapshot()
			if !have {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "not ready"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"inputVertices": result.Stats.InputVertices,
				"inputEdges":    result.Stats.InputEdges,
				"afterPass1":    result.Stats.AfterPass1,
				"afterPass2":    result.Stats.AfterPass2,
				"afterSCC":      result.Stats.AfterSCC,
				"cyclesEmitted": result.Stats.CyclesEmitted,
				"elapsedMillis": elapsed.Milliseconds(),
			})
		})
		api.GET("/cycles", func(c *gin.Context) {
			result, _, have := store.snapshot()
			if !have {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "not ready"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"cycles": result.Cycles})
		})
	}
	return r
}
