package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"erp-lookup/internal/boundary"
	"erp-lookup/pkg/log"
	"erp-lookup/pkg/metrics"
)

// Config sizes the per-client boundary store.
type Config struct {
	BoundarySize int
	BoundaryTTL  time.Duration
}

type Middleware struct {
	l          log.Logger
	boundaries *boundaryStore
	metrics    *metrics.Metrics
}

// New creates the HTTP middlewares. m may be nil to disable metrics.
func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	if cfg.BoundarySize <= 0 {
		cfg.BoundarySize = 10000
	}
	if cfg.BoundaryTTL <= 0 {
		cfg.BoundaryTTL = 30 * time.Minute
	}
	return Middleware{
		l: l,
		boundaries: &boundaryStore{
			lru: expirable.NewLRU[string, *boundary.Boundary[gin.H]](cfg.BoundarySize, nil, cfg.BoundaryTTL),
		},
		metrics: m,
	}
}

// boundaryStore keeps one boundary per client. Idle clients expire.
type boundaryStore struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *boundary.Boundary[gin.H]]
}

func (s *boundaryStore) get(clientID string, create func() *boundary.Boundary[gin.H]) *boundary.Boundary[gin.H] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.lru.Get(clientID); ok {
		return b
	}
	b := create()
	s.lru.Add(clientID, b)
	return b
}
