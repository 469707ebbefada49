package repository

import (
	"context"

	"erp-lookup/internal/lookup"
)

// Transport loads one page of an entity from the upstream ERP.
type Transport[T any] interface {
	FetchPage(ctx context.Context, opt FetchPageOptions) (lookup.Page[T], error)
}

// Invalidator is implemented by transports that keep a response cache.
type Invalidator interface {
	Invalidate(entity lookup.EntityConfig)
}
