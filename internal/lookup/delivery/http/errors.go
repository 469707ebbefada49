package http

import (
	"errors"
	"net/http"

	"erp-lookup/internal/lookup"
	"erp-lookup/pkg/apperror"
)

// mapError translates use-case errors into normalized HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, lookup.ErrUnknownEntity):
		return apperror.NotFound("lookup entity not found")
	case errors.Is(err, lookup.ErrPermissionDenied):
		e := apperror.New(apperror.KindValidation, "not allowed to read this lookup")
		e.Status = http.StatusForbidden
		return e
	case errors.Is(err, lookup.ErrSuperseded):
		e := apperror.New(apperror.KindUnknown, "request superseded by a newer one")
		e.Status = http.StatusConflict
		return e
	default:
		return err
	}
}
