package apperror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"erp-lookup/pkg/log"
)

// Normalize converts any error or panic value into an *Error. It never panics
// and never returns nil.
func Normalize(raw any) (out *Error) {
	defer func() {
		if r := recover(); r != nil {
			out = New(KindUnknown, DefaultMessage)
		}
	}()

	switch v := raw.(type) {
	case nil:
		return New(KindUnknown, DefaultMessage)
	case *Error:
		if v == nil {
			return New(KindUnknown, DefaultMessage)
		}
		return v
	case error:
		return fromError(v)
	case map[string]any:
		return fromMap(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return New(KindUnknown, DefaultMessage)
		}
		return New(KindUnknown, v)
	case fmt.Stringer:
		return New(KindUnknown, v.String())
	default:
		msg := fmt.Sprint(v)
		if msg == "" {
			msg = DefaultMessage
		}
		return New(KindUnknown, msg)
	}
}

func fromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr
	}

	var payloadErr PayloadError
	if errors.As(err, &payloadErr) {
		msg := payloadErr.PayloadMessage()
		if msg == "" {
			msg = payloadErr.Error()
		}
		status := payloadErr.StatusCode()
		e := Wrap(kindForStatus(status), msg, err)
		if status > 0 {
			e.Status = status
		}
		return e
	}

	msg := err.Error()
	if msg == "" {
		msg = DefaultMessage
	}
	if isNetwork(err) {
		return Wrap(KindNetwork, msg, err)
	}
	return Wrap(KindUnknown, msg, err)
}

// fromMap handles decoded envelopes: {"response":{"data":{"message":...}}}
// first, then a flat {"message":..., "status":...}.
func fromMap(m map[string]any) *Error {
	status := intField(m, "status")
	if resp, ok := m["response"].(map[string]any); ok {
		if s := intField(resp, "status"); s > 0 {
			status = s
		}
		if data, ok := resp["data"].(map[string]any); ok {
			if msg, ok := data["message"].(string); ok && msg != "" {
				return withStatus(New(kindForStatus(status), msg), status)
			}
		}
	}
	if msg, ok := m["message"].(string); ok && msg != "" {
		return withStatus(New(kindForStatus(status), msg), status)
	}
	return withStatus(New(KindUnknown, DefaultMessage), status)
}

func withStatus(e *Error, status int) *Error {
	if status > 0 {
		e.Status = status
	}
	return e
}

func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func isNetwork(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// Normalizer is Normalize plus a diagnostic log line for the raw value.
type Normalizer struct {
	l log.Logger
}

// NewNormalizer creates a Normalizer. A nil logger disables diagnostics.
func NewNormalizer(l log.Logger) Normalizer {
	return Normalizer{l: l}
}

// Normalize logs raw and returns its normalized form.
func (n Normalizer) Normalize(ctx context.Context, raw any) *Error {
	e := Normalize(raw)
	if n.l != nil {
		n.l.Debugf(ctx, "pkg.apperror.Normalize: kind=%s status=%d raw=%v", e.Kind, e.Status, raw)
	}
	return e
}
