package http

import (
	"erp-lookup/internal/lookup"
	"erp-lookup/pkg/log"
)

type handler struct {
	l  log.Logger
	uc lookup.UseCase
}

// New creates a new HTTP handler for the lookup domain.
func New(l log.Logger, uc lookup.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
