package usecase

import (
	"time"

	"erp-lookup/internal/lookup"
	"erp-lookup/pkg/clock"
)

// Recorder receives fetch telemetry. *metrics.Metrics implements it.
type Recorder interface {
	ObserveFetch(entity, outcome string, d time.Duration)
	ObserveRetry(entity string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(string, string, time.Duration) {}
func (nopRecorder) ObserveRetry(string)                        {}

// Options tunes one orchestrator. Zero values fall back to the defaults
// below.
type Options struct {
	// MaxItems caps retained items; negative disables the cap and zero
	// means lookup.DefaultMaxItems.
	MaxItems      int
	RetryAttempts int
	RetryDelay    time.Duration
	Clock         clock.Clock
	Recorder      Recorder
}

const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 500 * time.Millisecond
)

func (o Options) withDefaults() Options {
	if o.MaxItems == 0 {
		o.MaxItems = lookup.DefaultMaxItems
	}
	if o.RetryAttempts == 0 {
		o.RetryAttempts = DefaultRetryAttempts
	}
	if o.RetryDelay == 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	if o.Clock == nil {
		o.Clock = clock.RealClock{}
	}
	if o.Recorder == nil {
		o.Recorder = nopRecorder{}
	}
	return o
}
