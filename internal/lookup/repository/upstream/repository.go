package upstream

import (
	"context"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository"
	"erp-lookup/internal/model"
	pkgLog "erp-lookup/pkg/log"
)

// Repository is the upstream-backed lookup transport.
type Repository[T any] struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a transport decoding T items from the upstream collections.
func New[T any](client *Client, l pkgLog.Logger) *Repository[T] {
	return &Repository[T]{
		client: client,
		l:      l,
	}
}

var (
	_ repository.Transport[model.LookupItem] = (*Repository[model.LookupItem])(nil)
	_ repository.Invalidator                  = (*Repository[model.LookupItem])(nil)
)

func (r *Repository[T]) FetchPage(ctx context.Context, opt repository.FetchPageOptions) (lookup.Page[T], error) {
	body, err := r.client.Get(ctx, opt.Entity.Collection, lookup.Values(opt.Query))
	if err != nil {
		r.l.Warnf(ctx, "upstream repository: failed to fetch %s: %v", opt.Entity.Name, err)
		return lookup.Page[T]{}, err
	}

	page, err := decodePage[T](body, opt.Query)
	if err != nil {
		r.l.Errorf(ctx, "upstream repository: failed to decode %s: %v", opt.Entity.Name, err)
		return lookup.Page[T]{}, err
	}
	return page, nil
}

func (r *Repository[T]) Invalidate(entity lookup.EntityConfig) {
	r.client.Invalidate(entity.Collection)
}
