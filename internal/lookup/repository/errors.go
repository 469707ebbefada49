package repository

import "errors"

var ErrMalformedEnvelope = errors.New("malformed upstream envelope")
