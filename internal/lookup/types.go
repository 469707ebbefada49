package lookup

import (
	"time"

	"erp-lookup/internal/model"
)

// Identifiable is implemented by every cached item type.
type Identifiable interface {
	LookupID() string
}

// --- Query ---

// Query is a request for one page of a lookup entity.
type Query struct {
	Keyword string
	Limit   int
	Offset  int
	Filters map[string]any
}

// QueryDefaults are the values NormalizeQuery fills in.
type QueryDefaults struct {
	Limit   int
	Filters map[string]any
}

// --- Page ---

// Page is one decoded upstream response. Paginated is false for envelopes
// that carry no pagination fields at all; such pages always replace.
type Page[T any] struct {
	Items     []T
	Limit     int
	Offset    int
	HasMore   bool
	Paginated bool
}

// --- Cache ---

// Status is the fetch lifecycle state of a cache.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

// Cache is the paginated state of one lookup entity. Values are replaced
// wholesale by the reducers; Data is never mutated in place.
type Cache[T any] struct {
	Data        []T
	Loading     bool
	Error       string
	Limit       int
	Offset      int
	HasMore     bool
	Status      Status
	RequestID   string
	Fingerprint string
	Query       Query
	UpdatedAt   time.Time
}

// Pagination implements PaginationSource.
func (c Cache[T]) Pagination() (hasMore bool, limit, offset int) {
	return c.HasMore, c.Limit, c.Offset
}

// Meta is the pagination view consumers use for "load more".
type Meta struct {
	HasMore bool `json:"hasMore"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
}

// --- Entities ---

// EntityConfig instantiates the generic engine for one lookup entity.
// MaxItems 0 means the service default, negative means unbounded.
type EntityConfig struct {
	Name         string
	Collection   string
	DefaultLimit int
	MaxLimit     int
	MaxItems     int
	Permission   string
	Filters      map[string]any
}

// View is what consumers read for one entity.
type View struct {
	Entity string
	Cache  Cache[model.LookupItem]
	Meta   Meta
}
