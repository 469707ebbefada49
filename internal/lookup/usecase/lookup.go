package usecase

import (
	"context"

	"erp-lookup/internal/lookup"
	"erp-lookup/internal/model"
)

var _ lookup.UseCase = (*implUseCase)(nil)

func (uc *implUseCase) Entities() []lookup.EntityConfig {
	out := make([]lookup.EntityConfig, 0, len(uc.order))
	for _, name := range uc.order {
		out = append(out, uc.entities[name].Config())
	}
	return out
}

func (uc *implUseCase) Fetch(ctx context.Context, sc model.Scope, entity string, q lookup.Query) (lookup.View, error) {
	o, err := uc.authorized(ctx, sc, entity)
	if err != nil {
		return lookup.View{}, err
	}
	c, err := o.Fetch(ctx, q)
	return uc.view(ctx, entity, c), err
}

func (uc *implUseCase) Open(ctx context.Context, sc model.Scope, entity string) (lookup.View, error) {
	o, err := uc.authorized(ctx, sc, entity)
	if err != nil {
		return lookup.View{}, err
	}
	c, err := o.Open(ctx)
	return uc.view(ctx, entity, c), err
}

func (uc *implUseCase) FetchMore(ctx context.Context, sc model.Scope, entity string) (lookup.View, error) {
	o, err := uc.authorized(ctx, sc, entity)
	if err != nil {
		return lookup.View{}, err
	}
	c, err := o.FetchMore(ctx)
	return uc.view(ctx, entity, c), err
}

func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, entity string, keyword string) (lookup.View, error) {
	o, err := uc.authorized(ctx, sc, entity)
	if err != nil {
		return lookup.View{}, err
	}
	c, err := o.InputChange(ctx, keyword)
	return uc.view(ctx, entity, c), err
}

func (uc *implUseCase) Snapshot(ctx context.Context, entity string) (lookup.View, error) {
	o, ok := uc.entities[entity]
	if !ok {
		return lookup.View{}, lookup.ErrUnknownEntity
	}
	return uc.view(ctx, entity, o.Snapshot()), nil
}

func (uc *implUseCase) Reset(ctx context.Context, entity string) (lookup.View, error) {
	o, ok := uc.entities[entity]
	if !ok {
		return lookup.View{}, lookup.ErrUnknownEntity
	}
	return uc.view(ctx, entity, o.Reset(ctx)), nil
}

// authorized resolves entity and checks the scope before any cache change.
func (uc *implUseCase) authorized(ctx context.Context, sc model.Scope, entity string) (*Orchestrator[model.LookupItem], error) {
	o, ok := uc.entities[entity]
	if !ok {
		return nil, lookup.ErrUnknownEntity
	}
	if !uc.authorizer.CanFetch(ctx, sc, o.Config()) {
		uc.l.Warnf(ctx, "lookup.usecase: user %q denied fetch of %s", sc.UserID, entity)
		return nil, lookup.ErrPermissionDenied
	}
	return o, nil
}

func (uc *implUseCase) view(ctx context.Context, entity string, c lookup.Cache[model.LookupItem]) lookup.View {
	return lookup.View{
		Entity: entity,
		Cache:  c,
		Meta:   uc.meta.Of(ctx, c),
	}
}
