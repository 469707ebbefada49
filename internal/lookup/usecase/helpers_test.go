package usecase_test

import (
	"context"
	"sync"
	"time"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
	"erp-lookup/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockTransport records every call and answers with fetchFunc.
type mockTransport struct {
	mu          sync.Mutex
	calls       []repository.FetchPageOptions
	invalidated []string
	fetchFunc   func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error)
}

func (m *mockTransport) FetchPage(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
	m.mu.Lock()
	m.calls = append(m.calls, opt)
	m.mu.Unlock()
	return m.fetchFunc(ctx, opt)
}

func (m *mockTransport) Invalidate(entity lookup.EntityConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, entity.Name)
}

func (m *mockTransport) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type mockRecorder struct {
	mu       sync.Mutex
	outcomes []string
	retries  int
}

func (m *mockRecorder) ObserveFetch(entity, outcome string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *mockRecorder) ObserveRetry(entity string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retries++
}

func item(id, label string) model.LookupItem {
	return model.LookupItem{ID: id, Label: label}
}

func ids(items []model.LookupItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// pages serves items in slices of opt.Query.Limit, like the upstream does.
func pages(items ...model.LookupItem) func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
	return func(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[model.LookupItem], error) {
		start := opt.Query.Offset
		if start > len(items) {
			start = len(items)
		}
		end := start + opt.Query.Limit
		if end > len(items) {
			end = len(items)
		}
		return lookup.Page[model.LookupItem]{
			Items:     append([]model.LookupItem(nil), items[start:end]...),
			Limit:     opt.Query.Limit,
			Offset:    opt.Query.Offset,
			HasMore:   end < len(items),
			Paginated: true,
		}, nil
	}
}
