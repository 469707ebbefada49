package upstream

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig defines the per-collection circuit breaker.
//
// MaxRequests is the number of probes allowed while half-open.
// Interval clears the counts while closed, Timeout is how long the breaker
// stays open. The breaker trips once MinRequests have been seen and the
// failure ratio reaches FailureRatio.
type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

type BreakerState string

const (
	BreakerStateClosed   BreakerState = "closed"
	BreakerStateOpen     BreakerState = "open"
	BreakerStateHalfOpen BreakerState = "half-open"
)

type breakerSet struct {
	config   BreakerConfig
	breakers map[string]*gobreaker.CircuitBreaker
	mu       sync.RWMutex

	onStateChange func(collection string, from, to BreakerState)
}

func newBreakerSet(config BreakerConfig) *breakerSet {
	if config.MinRequests == 0 {
		config = DefaultBreakerConfig()
	}
	return &breakerSet{
		config:   config,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (s *breakerSet) get(collection string) *gobreaker.CircuitBreaker {
	s.mu.RLock()
	cb, exists := s.breakers[collection]
	s.mu.RUnlock()
	if exists {
		return cb
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cb, exists = s.breakers[collection]; exists {
		return cb
	}

	cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        collection,
		MaxRequests: s.config.MaxRequests,
		Interval:    s.config.Interval,
		Timeout:     s.config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.config.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= s.config.FailureRatio
		},
		// The caller's own mistakes must not open the circuit, and neither
		// must a fetch it abandoned.
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var respErr *ResponseError
			if errors.As(err, &respErr) {
				return respErr.Status < http.StatusInternalServerError
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if s.onStateChange != nil {
				s.onStateChange(name, toState(from), toState(to))
			}
		},
	})
	s.breakers[collection] = cb
	return cb
}

func (s *breakerSet) state(collection string) BreakerState {
	return toState(s.get(collection).State())
}

func toState(st gobreaker.State) BreakerState {
	switch st {
	case gobreaker.StateOpen:
		return BreakerStateOpen
	case gobreaker.StateHalfOpen:
		return BreakerStateHalfOpen
	default:
		return BreakerStateClosed
	}
}
