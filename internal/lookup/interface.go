package lookup

import (
	"context"

	"erp-lookup/internal/model"
)

// UseCase is the consumer-facing API over all entity caches.
type UseCase interface {
	// Entities lists the configured entities in registration order.
	Entities() []EntityConfig

	// Fetch loads one page for entity with an explicit query.
	Fetch(ctx context.Context, sc model.Scope, entity string, q Query) (View, error)

	// Open fetches the first page only when nothing is cached yet.
	Open(ctx context.Context, sc model.Scope, entity string) (View, error)

	// FetchMore fetches the page after the cached one when hasMore is set.
	FetchMore(ctx context.Context, sc model.Scope, entity string) (View, error)

	// Search restarts the entity at offset 0 with a new keyword.
	Search(ctx context.Context, sc model.Scope, entity string, keyword string) (View, error)

	// Snapshot reads the current cache without fetching.
	Snapshot(ctx context.Context, entity string) (View, error)

	// Reset returns the cache to its initial state.
	Reset(ctx context.Context, entity string) (View, error)
}

// Authorizer decides whether sc may fetch entity. Permission evaluation
// itself lives outside this service.
type Authorizer interface {
	CanFetch(ctx context.Context, sc model.Scope, entity EntityConfig) bool
}

// AuthorizerFunc adapts a function to Authorizer.
type AuthorizerFunc func(ctx context.Context, sc model.Scope, entity EntityConfig) bool

// CanFetch implements Authorizer.
func (f AuthorizerFunc) CanFetch(ctx context.Context, sc model.Scope, entity EntityConfig) bool {
	return f(ctx, sc, entity)
}

// PermissionAuthorizer allows entities without a permission and otherwise
// checks the scope's granted permissions.
var PermissionAuthorizer = AuthorizerFunc(func(ctx context.Context, sc model.Scope, entity EntityConfig) bool {
	return entity.Permission == "" || sc.HasPermission(entity.Permission)
})
