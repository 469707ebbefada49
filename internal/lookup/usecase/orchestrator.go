package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
	"erp-lookup/pkg/apperror"
	pkgLog "erp-lookup/pkg/log"
	"erp-lookup/pkg/metrics"
	"erp-lookup/pkg/retry"
)

// Orchestrator owns the cache of one entity and drives its fetch lifecycle.
// All state changes go through the lookup reducers under mu; the transport
// call and the retry delay run without holding it.
type Orchestrator[T lookup.Identifiable] struct {
	cfg       lookup.EntityConfig
	transport repository.Transport[T]
	opts      Options
	executor  *retry.Executor
	normalize apperror.Normalizer
	l         pkgLog.Logger

	mu     sync.Mutex
	state  lookup.Cache[T]
	cancel context.CancelFunc
}

// NewOrchestrator creates the orchestrator of cfg with an initial cache.
func NewOrchestrator[T lookup.Identifiable](cfg lookup.EntityConfig, transport repository.Transport[T], opts Options, l pkgLog.Logger) *Orchestrator[T] {
	opts = opts.withDefaults()
	return &Orchestrator[T]{
		cfg:       cfg,
		transport: transport,
		opts:      opts,
		executor:  retry.NewExecutor(opts.Clock),
		normalize: apperror.NewNormalizer(l),
		l:         l,
		state:     lookup.Initial[T](cfg),
	}
}

// Config returns the entity configuration.
func (o *Orchestrator[T]) Config() lookup.EntityConfig {
	return o.cfg
}

// Fetch issues a fetch for q, superseding any in-flight one. The returned
// error is an *apperror.Error for rejected fetches, or lookup.ErrSuperseded
// when a newer fetch was issued before this one settled; the cache returned
// is the latest state either way.
func (o *Orchestrator[T]) Fetch(ctx context.Context, q lookup.Query) (lookup.Cache[T], error) {
	st, _ := o.start(ctx, q, nil)
	return o.run(ctx, st)
}

// Open performs the first fetch lazily: only when nothing is cached and no
// fetch is running. Otherwise it returns the current cache.
func (o *Orchestrator[T]) Open(ctx context.Context) (lookup.Cache[T], error) {
	st, ok := o.start(ctx, lookup.Query{}, func(c lookup.Cache[T]) bool {
		return len(c.Data) == 0 && !c.Loading
	})
	if !ok {
		return o.Snapshot(), nil
	}
	return o.run(ctx, st)
}

// FetchMore fetches the page after the cached one. It returns
// lookup.ErrNoMorePages with the current cache when hasMore is unset.
func (o *Orchestrator[T]) FetchMore(ctx context.Context) (lookup.Cache[T], error) {
	o.mu.Lock()
	current := o.state
	o.mu.Unlock()

	if !current.HasMore {
		return o.Snapshot(), lookup.ErrNoMorePages
	}

	next := current.Query
	next.Limit = current.Limit
	next.Offset = current.Offset + current.Limit

	st, ok := o.start(ctx, next, func(c lookup.Cache[T]) bool {
		return c.HasMore && c.RequestID == current.RequestID
	})
	if !ok {
		return o.Snapshot(), nil
	}
	return o.run(ctx, st)
}

// InputChange restarts the entity at offset 0 with keyword, keeping the
// current filters. The page size is the last accepted one, so a rejected
// query does not leak into later searches.
func (o *Orchestrator[T]) InputChange(ctx context.Context, keyword string) (lookup.Cache[T], error) {
	o.mu.Lock()
	q := o.state.Query
	q.Limit = o.state.Limit
	o.mu.Unlock()

	q.Keyword = keyword
	q.Offset = 0
	return o.Fetch(ctx, q)
}

// Reset cancels the in-flight fetch, restores the initial cache and drops
// the transport's cached responses for the entity.
func (o *Orchestrator[T]) Reset(ctx context.Context) lookup.Cache[T] {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.state = lookup.Initial[T](o.cfg)
	out := clone(o.state)
	o.mu.Unlock()

	if inv, ok := o.transport.(repository.Invalidator); ok {
		inv.Invalidate(o.cfg)
	}
	o.l.Debugf(ctx, "lookup.usecase.Reset: %s", o.cfg.Name)
	return out
}

// Snapshot returns a copy of the cache that shares nothing with the live
// state.
func (o *Orchestrator[T]) Snapshot() lookup.Cache[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return clone(o.state)
}

type started struct {
	requestID string
	query     lookup.Query
	ctx       context.Context
	cancel    context.CancelFunc
}

// start moves the cache to pending. cond, when set, is evaluated under the
// lock and aborts the start when false.
func (o *Orchestrator[T]) start(ctx context.Context, q lookup.Query, cond func(lookup.Cache[T]) bool) (started, bool) {
	q = lookup.NormalizeQuery(q, lookup.QueryDefaults{
		Limit:   o.cfg.DefaultLimit,
		Filters: o.cfg.Filters,
	})

	o.mu.Lock()
	defer o.mu.Unlock()

	if cond != nil && !cond(o.state) {
		return started{}, false
	}

	if o.cancel != nil {
		o.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	st := started{
		requestID: uuid.NewString(),
		query:     q,
		ctx:       fetchCtx,
		cancel:    cancel,
	}
	o.state = lookup.Pending(o.state, st.requestID, q)
	return st, true
}

func (o *Orchestrator[T]) run(ctx context.Context, st started) (lookup.Cache[T], error) {
	defer st.cancel()
	begin := o.opts.Clock.Now()

	if err := lookup.ValidateQuery(st.query, o.cfg.MaxLimit); err != nil {
		return o.settle(ctx, st, lookup.Page[T]{}, err, begin)
	}

	page, err := retry.Run(st.ctx, o.executor, func(ctx context.Context) (lookup.Page[T], error) {
		return o.transport.FetchPage(ctx, repository.FetchPageOptions{
			Entity: o.cfg,
			Query:  st.query,
		})
	}, o.opts.RetryAttempts, o.opts.RetryDelay, fmt.Sprintf("Failed to fetch %s", o.cfg.Name),
		retry.WithRetryable(isTransient),
		retry.WithOnRetry(func(attempt int, err error) {
			o.opts.Recorder.ObserveRetry(o.cfg.Name)
			o.l.Warnf(ctx, "lookup.usecase.Fetch %s attempt %d: %v", o.cfg.Name, attempt, err)
		}),
	)
	return o.settle(ctx, st, page, err, begin)
}

// settle applies the outcome of st. A stale outcome leaves the cache alone.
func (o *Orchestrator[T]) settle(ctx context.Context, st started, page lookup.Page[T], fetchErr error, begin time.Time) (lookup.Cache[T], error) {
	elapsed := o.opts.Clock.Now().Sub(begin)

	o.mu.Lock()
	var (
		applied bool
		appErr  *apperror.Error
	)
	if fetchErr != nil {
		appErr = o.normalize.Normalize(ctx, fetchErr)
		o.state, applied = lookup.Rejected(o.state, st.requestID, appErr.Message)
	} else {
		o.state, applied = lookup.Fulfilled(o.state, st.requestID, page, o.opts.MaxItems, o.opts.Clock.Now())
	}
	if applied {
		o.cancel = nil
	}
	out := clone(o.state)
	o.mu.Unlock()

	switch {
	case !applied:
		o.opts.Recorder.ObserveFetch(o.cfg.Name, metrics.OutcomeStale, elapsed)
		o.l.Debugf(ctx, "lookup.usecase.Fetch %s: request %s superseded", o.cfg.Name, st.requestID)
		return out, lookup.ErrSuperseded
	case appErr != nil:
		o.opts.Recorder.ObserveFetch(o.cfg.Name, metrics.OutcomeRejected, elapsed)
		o.l.Errorf(ctx, "lookup.usecase.Fetch %s: %v", o.cfg.Name, fetchErr)
		return out, appErr
	default:
		o.opts.Recorder.ObserveFetch(o.cfg.Name, metrics.OutcomeFulfilled, elapsed)
		return out, nil
	}
}

// isTransient keeps caller mistakes out of the retry loop.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch apperror.Normalize(err).Kind {
	case apperror.KindValidation, apperror.KindNotFound:
		return false
	default:
		return true
	}
}

func clone[T any](c lookup.Cache[T]) lookup.Cache[T] {
	data := make([]T, len(c.Data))
	copy(data, c.Data)
	c.Data = data

	if c.Query.Filters != nil {
		filters := make(map[string]any, len(c.Query.Filters))
		for k, v := range c.Query.Filters {
			filters[k] = v
		}
		c.Query.Filters = filters
	}
	return c
}
