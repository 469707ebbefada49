// Package boundary implements a recovery scope that captures failures of
// the work it guards, serves a fallback while errored and resets either on
// request or when its reset key changes.
package boundary

import "erp-lookup/pkg/apperror"

type State string

const (
	StateHealthy State = "healthy"
	StateErrored State = "errored"
)

// Snapshot is the full state of a boundary.
type Snapshot struct {
	State State
	Err   *apperror.Error
	Key   string
}

// Event drives Transition.
type Event interface {
	event()
}

// RenderFailed records a captured failure.
type RenderFailed struct {
	Err *apperror.Error
}

// ResetRequested clears the error.
type ResetRequested struct{}

// KeyChanged carries the current reset key. A different key clears the
// error.
type KeyChanged struct {
	Key string
}

func (RenderFailed) event()   {}
func (ResetRequested) event() {}
func (KeyChanged) event()     {}

// Transition is the boundary state machine. It is pure.
func Transition(s Snapshot, ev Event) Snapshot {
	switch e := ev.(type) {
	case RenderFailed:
		err := e.Err
		if err == nil {
			err = apperror.New(apperror.KindGlobal, apperror.DefaultMessage)
		}
		s.State = StateErrored
		s.Err = err
	case ResetRequested:
		s.State = StateHealthy
		s.Err = nil
	case KeyChanged:
		if e.Key == s.Key {
			return s
		}
		s.Key = e.Key
		if s.State == StateErrored {
			s.State = StateHealthy
			s.Err = nil
		}
	}
	if s.State == "" {
		s.State = StateHealthy
	}
	return s
}
