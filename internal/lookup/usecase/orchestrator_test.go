package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
	"erp-lookup/internal/lookup/usecase"
	"erp-lookup/internal/model"
	"erp-lookup/pkg/apperror"
	"erp-lookup/pkg/clock"
	"erp-lookup/pkg/metrics"
)

var statuses = lookup.EntityConfig{Name: "order-statuses", Collection: "/lookups/order-statuses", DefaultLimit: 2}

func newOrchestrator(tr *mockTransport, rec *mockRecorder) *usecase.Orchestrator[model.LookupItem] {
	opts := usecase.Options{
		RetryAttempts: 3,
		RetryDelay:    time.Second,
		Clock:         &clock.MockClock{NowTime: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	if rec != nil {
		opts.Recorder = rec
	}
	return usecase.NewOrchestrator[model.LookupItem](statuses, tr, opts, &mockLogger{})
}

func TestOrchestrator_StatusScenario(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "Active"), item("b", "Archived"), item("c", "Pending"))}
	o := newOrchestrator(tr, nil)
	ctx := context.Background()

	c, err := o.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !reflect.DeepEqual(ids(c.Data), []string{"a", "b"}) || !c.HasMore {
		t.Fatalf("unexpected first page: %+v", c)
	}

	c, err = o.FetchMore(ctx)
	if err != nil {
		t.Fatalf("FetchMore failed: %v", err)
	}
	if !reflect.DeepEqual(ids(c.Data), []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", ids(c.Data))
	}
	if c.HasMore || c.Loading || c.Error != "" || c.Status != lookup.StatusFulfilled {
		t.Errorf("unexpected final state: %+v", c)
	}
	if tr.calls[1].Query.Offset != 2 || tr.calls[1].Query.Limit != 2 {
		t.Errorf("FetchMore must request offset 2 limit 2, got %+v", tr.calls[1].Query)
	}

	if _, err := o.FetchMore(ctx); !errors.Is(err, lookup.ErrNoMorePages) {
		t.Errorf("expected ErrNoMorePages, got %v", err)
	}
	if tr.callCount() != 2 {
		t.Errorf("expected 2 transport calls, got %d", tr.callCount())
	}
}

func TestOrchestrator_OpenIsLazy(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "A"))}
	o := newOrchestrator(tr, nil)

	for i := 0; i < 3; i++ {
		if _, err := o.Open(context.Background()); err != nil {
			t.Fatalf("Open failed: %v", err)
		}
	}
	if tr.callCount() != 1 {
		t.Errorf("Open must fetch only once, got %d calls", tr.callCount())
	}
}

func TestOrchestrator_InputChangeReplaces(t *testing.T) {
	tr := &mockTransport{fetchFunc: func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		if opt.Query.Keyword == "ar" {
			return lookup.Page[model.LookupItem]{Items: []model.LookupItem{item("b", "Archived")}, Paginated: true, Limit: 2}, nil
		}
		return pages(item("a", "Active"), item("b", "Archived"), item("c", "Pending"))(ctx, opt)
	}}
	o := newOrchestrator(tr, nil)
	ctx := context.Background()

	if _, err := o.Fetch(ctx, lookup.Query{Filters: map[string]any{"group": "sales"}}); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	c, err := o.InputChange(ctx, "ar")
	if err != nil {
		t.Fatalf("InputChange failed: %v", err)
	}
	if !reflect.DeepEqual(ids(c.Data), []string{"b"}) || c.Offset != 0 {
		t.Errorf("keyword change must replace the list, got %v offset %d", ids(c.Data), c.Offset)
	}
	last := tr.calls[len(tr.calls)-1].Query
	if last.Filters["group"] != "sales" || last.Offset != 0 {
		t.Errorf("InputChange must keep filters and restart at 0, got %+v", last)
	}
}

func TestOrchestrator_RejectedKeepsData(t *testing.T) {
	fail := false
	tr := &mockTransport{fetchFunc: func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		if fail {
			return lookup.Page[model.LookupItem]{}, apperror.New(apperror.KindNetwork, "upstream down")
		}
		return pages(item("a", "A"), item("b", "B"), item("c", "C"))(ctx, opt)
	}}
	rec := &mockRecorder{}
	o := newOrchestrator(tr, rec)
	ctx := context.Background()

	if _, err := o.Open(ctx); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	fail = true
	c, err := o.FetchMore(ctx)
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.Error, got %v", err)
	}
	if appErr.Message != "Failed to fetch order-statuses" || appErr.Details["cause"] != "upstream down" || appErr.Details["attempts"] != 3 {
		t.Errorf("unexpected error %+v", appErr)
	}
	if c.Status != lookup.StatusRejected || c.Loading || c.Error != "Failed to fetch order-statuses" {
		t.Errorf("unexpected rejected state: %+v", c)
	}
	if !reflect.DeepEqual(ids(c.Data), []string{"a", "b"}) {
		t.Errorf("rejected fetch must keep data, got %v", ids(c.Data))
	}
	if rec.retries != 2 {
		t.Errorf("expected 2 retries, got %d", rec.retries)
	}
	if rec.outcomes[len(rec.outcomes)-1] != metrics.OutcomeRejected {
		t.Errorf("expected rejected outcome, got %v", rec.outcomes)
	}
}

func TestOrchestrator_RetrySucceeds(t *testing.T) {
	calls := 0
	tr := &mockTransport{fetchFunc: func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		calls++
		if calls < 3 {
			return lookup.Page[model.LookupItem]{}, errors.New("connection reset")
		}
		return pages(item("a", "A"))(ctx, opt)
	}}
	o := newOrchestrator(tr, nil)

	c, err := o.Fetch(context.Background(), lookup.Query{})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if calls != 3 || !reflect.DeepEqual(ids(c.Data), []string{"a"}) {
		t.Errorf("unexpected result after %d calls: %v", calls, ids(c.Data))
	}
}

func TestOrchestrator_NonTransientNotRetried(t *testing.T) {
	tr := &mockTransport{fetchFunc: func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		return lookup.Page[model.LookupItem]{}, apperror.NotFound("collection missing")
	}}
	o := newOrchestrator(tr, nil)

	_, err := o.Fetch(context.Background(), lookup.Query{})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if tr.callCount() != 1 {
		t.Errorf("NotFound must not be retried, got %d calls", tr.callCount())
	}
}

func TestOrchestrator_ValidationSkipsTransport(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "A"))}
	o := newOrchestrator(tr, nil)

	c, err := o.Fetch(context.Background(), lookup.Query{Limit: -1})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if tr.callCount() != 0 {
		t.Errorf("invalid query must not reach the transport")
	}
	if c.Status != lookup.StatusRejected || c.Error == "" {
		t.Errorf("unexpected state: %+v", c)
	}
}

func TestOrchestrator_SearchAfterRejectedLimit(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "Active"), item("b", "Archived"))}
	cfg := statuses
	cfg.MaxLimit = 100
	o := usecase.NewOrchestrator[model.LookupItem](cfg, tr, usecase.Options{RetryAttempts: 1}, &mockLogger{})
	ctx := context.Background()

	if _, err := o.Fetch(ctx, lookup.Query{Limit: 1000}); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	c, err := o.InputChange(ctx, "act")
	if err != nil {
		t.Fatalf("InputChange after a rejected limit failed: %v", err)
	}
	if tr.callCount() != 1 {
		t.Fatalf("expected the search to reach the transport once, got %d calls", tr.callCount())
	}
	if got := tr.calls[0].Query; got.Limit != statuses.DefaultLimit || got.Keyword != "act" {
		t.Errorf("expected keyword act with the default limit %d, got %+v", statuses.DefaultLimit, got)
	}
	if c.Status != lookup.StatusFulfilled || c.Error != "" {
		t.Errorf("unexpected state: %+v", c)
	}
}

func TestOrchestrator_StaleResponseIgnored(t *testing.T) {
	entered := make(chan struct{})
	tr := &mockTransport{fetchFunc: func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		if opt.Query.Keyword == "old" {
			close(entered)
			<-ctx.Done()
			return lookup.Page[model.LookupItem]{Items: []model.LookupItem{item("old", "Old")}, Paginated: true}, nil
		}
		return lookup.Page[model.LookupItem]{Items: []model.LookupItem{item("new", "New")}, Paginated: true}, nil
	}}
	rec := &mockRecorder{}
	o := newOrchestrator(tr, rec)
	ctx := context.Background()

	type result struct {
		c   lookup.Cache[model.LookupItem]
		err error
	}
	done := make(chan result, 1)
	go func() {
		c, err := o.Fetch(ctx, lookup.Query{Keyword: "old"})
		done <- result{c, err}
	}()
	<-entered

	c, err := o.Fetch(ctx, lookup.Query{Keyword: "new"})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !reflect.DeepEqual(ids(c.Data), []string{"new"}) {
		t.Fatalf("unexpected data %v", ids(c.Data))
	}

	old := <-done
	if !errors.Is(old.err, lookup.ErrSuperseded) {
		t.Errorf("expected ErrSuperseded, got %v", old.err)
	}
	for _, id := range ids(old.c.Data) {
		if id == "old" {
			t.Errorf("superseded fetch must not touch the cache, got %v", ids(old.c.Data))
		}
	}
	if got := o.Snapshot(); !reflect.DeepEqual(ids(got.Data), []string{"new"}) || got.Query.Keyword != "new" {
		t.Errorf("unexpected snapshot %+v", got)
	}
}

func TestOrchestrator_Reset(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "A"), item("b", "B"), item("c", "C"))}
	o := newOrchestrator(tr, nil)

	if _, err := o.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	c := o.Reset(context.Background())
	if len(c.Data) != 0 || c.Data == nil || c.Loading || c.Error != "" || c.Limit != 2 || c.Offset != 0 || c.HasMore {
		t.Errorf("unexpected reset state: %+v", c)
	}
	if c.Status != lookup.StatusIdle {
		t.Errorf("expected idle, got %s", c.Status)
	}
	if !reflect.DeepEqual(tr.invalidated, []string{"order-statuses"}) {
		t.Errorf("Reset must invalidate transport cache, got %v", tr.invalidated)
	}
}

func TestOrchestrator_SnapshotIsCopy(t *testing.T) {
	tr := &mockTransport{fetchFunc: pages(item("a", "A"))}
	o := newOrchestrator(tr, nil)
	if _, err := o.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	snap := o.Snapshot()
	snap.Data[0].Label = "mutated"
	if o.Snapshot().Data[0].Label != "A" {
		t.Error("Snapshot must not share data with the live cache")
	}
}
