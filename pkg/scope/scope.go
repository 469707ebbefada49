// Package scope carries the caller's model.Scope through a request context.
package scope

import (
	"context"

	"erp-lookup/internal/model"
)

type scopeCtxKey struct{}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the zero (anonymous) scope when none is set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc
}
