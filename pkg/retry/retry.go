// Package retry runs idempotent operations with a bounded number of attempts
// and a fixed delay between them.
package retry

import (
	"context"
	"time"

	"erp-lookup/pkg/apperror"
	"erp-lookup/pkg/clock"
)

// Operation is a fallible unit of work.
type Operation[T any] func(ctx context.Context) (T, error)

// Option configures a single Do call.
type Option func(*options)

type options struct {
	retryable func(error) bool
	onRetry   func(attempt int, err error)
}

// WithRetryable stops retrying as soon as fn returns false for an error.
func WithRetryable(fn func(error) bool) Option {
	return func(o *options) {
		o.retryable = fn
	}
}

// WithOnRetry is called before each wait with the failed attempt number.
func WithOnRetry(fn func(attempt int, err error)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// Executor runs operations against a Clock.
type Executor struct {
	clock clock.Clock
}

// NewExecutor returns an Executor. A nil clock means the real one.
func NewExecutor(c clock.Clock) *Executor {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Executor{clock: c}
}

var defaultExecutor = NewExecutor(nil)

// Do runs op on the real clock. See Run.
func Do[T any](ctx context.Context, op Operation[T], attempts int, delay time.Duration, failureMessage string, opts ...Option) (T, error) {
	return Run(ctx, defaultExecutor, op, attempts, delay, failureMessage, opts...)
}

// Run calls op up to attempts times, waiting delay between failures. When
// attempts are exhausted it returns an *apperror.Error carrying
// failureMessage, with the last underlying message under Details["cause"].
// attempts <= 0 fails without calling op.
func Run[T any](ctx context.Context, ex *Executor, op Operation[T], attempts int, delay time.Duration, failureMessage string, opts ...Option) (T, error) {
	var zero T
	if ex == nil {
		ex = defaultExecutor
	}

	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var lastErr error
	made := 0
	for remaining := attempts; remaining > 0; remaining-- {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			break
		}

		made++
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if remaining == 1 {
			break
		}
		if cfg.retryable != nil && !cfg.retryable(err) {
			break
		}
		if cfg.onRetry != nil {
			cfg.onRetry(made, err)
		}
		if !ex.wait(ctx, delay) {
			break
		}
	}

	return zero, exhausted(failureMessage, lastErr, made)
}

func (ex *Executor) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ex.clock.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}

func exhausted(failureMessage string, lastErr error, made int) *apperror.Error {
	if failureMessage == "" {
		failureMessage = apperror.DefaultMessage
	}
	if lastErr == nil {
		return apperror.New(apperror.KindUnknown, failureMessage).WithDetail("attempts", made)
	}

	last := apperror.Normalize(lastErr)
	out := apperror.Wrap(last.Kind, failureMessage, lastErr)
	if last.Status > 0 {
		out.Status = last.Status
	}
	return out.WithDetail("cause", last.Message).WithDetail("attempts", made)
}
