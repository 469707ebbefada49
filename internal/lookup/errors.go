package lookup

import "errors"

var (
	ErrUnknownEntity    = errors.New("unknown lookup entity")
	ErrPermissionDenied = errors.New("permission denied for lookup entity")
	ErrSuperseded       = errors.New("fetch superseded by a newer request")
	ErrNoMorePages      = errors.New("no more pages to fetch")
	ErrDuplicateEntity  = errors.New("duplicate lookup entity")
	ErrInvalidEntity    = errors.New("invalid lookup entity config")
)
