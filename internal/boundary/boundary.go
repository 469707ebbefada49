package boundary

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"erp-lookup/pkg/apperror"
	pkgLog "erp-lookup/pkg/log"
)

// FallbackProps is what a fallback renders from.
type FallbackProps struct {
	Error   *apperror.Error
	Message string
	Reset   func()
}

// Fallback renders the errored state.
type Fallback[V any] func(ctx context.Context, props FallbackProps) V

// ErrorHandler is notified of every captured failure.
type ErrorHandler func(ctx context.Context, err *apperror.Error)

type options struct {
	handler ErrorHandler
	l       pkgLog.Logger
}

type Option func(*options)

// WithErrorHandler replaces the default logging of captured failures.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}

func WithLogger(l pkgLog.Logger) Option {
	return func(o *options) {
		o.l = l
	}
}

// Boundary guards a subtree of work. It is safe for concurrent use.
type Boundary[V any] struct {
	fallback Fallback[V]
	handler  ErrorHandler
	l        pkgLog.Logger

	mu   sync.Mutex
	snap Snapshot
}

func New[V any](fallback Fallback[V], opts ...Option) *Boundary[V] {
	o := options{l: pkgLog.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Boundary[V]{
		fallback: fallback,
		handler:  o.handler,
		l:        o.l,
		snap:     Snapshot{State: StateHealthy},
	}
}

// Render runs subtree unless the boundary is errored for key. A panic or an
// error from subtree moves the boundary to errored and the fallback is
// rendered instead.
func (b *Boundary[V]) Render(ctx context.Context, key string, subtree func(ctx context.Context) (V, error)) V {
	snap := b.dispatch(KeyChanged{Key: key})
	if snap.State == StateErrored {
		return b.renderFallback(ctx, snap.Err)
	}

	v, err := b.call(ctx, subtree)
	if err == nil {
		return v
	}
	return b.renderFallback(ctx, b.Fail(ctx, err))
}

// Fail records raw as the captured failure and returns its normalized form.
func (b *Boundary[V]) Fail(ctx context.Context, raw any) *apperror.Error {
	appErr := normalize(raw)
	b.dispatch(RenderFailed{Err: appErr})
	b.notify(ctx, appErr)
	return appErr
}

// Reset returns the boundary to healthy.
func (b *Boundary[V]) Reset() {
	b.dispatch(ResetRequested{})
}

func (b *Boundary[V]) State() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// Err is the captured failure, nil while healthy.
func (b *Boundary[V]) Err() *apperror.Error {
	return b.State().Err
}

func (b *Boundary[V]) dispatch(ev Event) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = Transition(b.snap, ev)
	return b.snap
}

func (b *Boundary[V]) call(ctx context.Context, subtree func(ctx context.Context) (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return subtree(ctx)
}

func (b *Boundary[V]) notify(ctx context.Context, appErr *apperror.Error) {
	if b.handler == nil {
		b.l.Errorf(ctx, "internal.boundary: captured %s: %s", appErr.Kind, appErr.Message)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.l.Errorf(ctx, "internal.boundary: error handler panicked: %v", r)
		}
	}()
	b.handler(ctx, appErr)
}

func (b *Boundary[V]) renderFallback(ctx context.Context, appErr *apperror.Error) (v V) {
	if b.fallback == nil {
		return v
	}
	defer func() {
		if r := recover(); r != nil {
			b.l.Errorf(ctx, "internal.boundary: fallback panicked: %v", r)
		}
	}()
	return b.fallback(ctx, FallbackProps{
		Error:   appErr,
		Message: appErr.Message,
		Reset:   b.Reset,
	})
}

type panicValue struct {
	value any
}

func (p panicValue) Error() string { return fmt.Sprintf("panic: %v", p.value) }

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return panicValue{value: r}
}

// normalize keeps already normalized errors and files everything else
// under GlobalError.
func normalize(raw any) *apperror.Error {
	if err, ok := raw.(error); ok {
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr != nil {
			return appErr
		}
	}

	var n *apperror.Error
	if p, ok := raw.(panicValue); ok {
		n = apperror.Normalize(p.value)
	} else {
		n = apperror.Normalize(raw)
	}

	cause, _ := raw.(error)
	return apperror.Wrap(apperror.KindGlobal, n.Message, cause)
}
