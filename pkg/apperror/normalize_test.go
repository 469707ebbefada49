package apperror_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"erp-lookup/pkg/apperror"
)

type payloadErr struct {
	status int
	msg    string
}

func (e payloadErr) Error() string          { return fmt.Sprintf("upstream %d", e.status) }
func (e payloadErr) PayloadMessage() string { return e.msg }
func (e payloadErr) StatusCode() int        { return e.status }

type stringer struct{}

func (stringer) String() string { return "stringer value" }

func TestNormalize(t *testing.T) {
	already := apperror.New(apperror.KindValidation, "keyword too long")

	tests := []struct {
		name       string
		raw        any
		wantKind   apperror.Kind
		wantMsg    string
		wantStatus int
	}{
		{"already normalized", already, apperror.KindValidation, "keyword too long", http.StatusBadRequest},
		{"wrapped normalized", fmt.Errorf("ctx: %w", already), apperror.KindValidation, "keyword too long", http.StatusBadRequest},
		{"payload not found", payloadErr{status: 404, msg: "warehouse not found"}, apperror.KindNotFound, "warehouse not found", 404},
		{"payload without message", payloadErr{status: 500}, apperror.KindUnknown, "upstream 500", 500},
		{"nested response map", map[string]any{"response": map[string]any{"data": map[string]any{"message": "bad keyword"}, "status": float64(422)}}, apperror.KindValidation, "bad keyword", 422},
		{"flat envelope map", map[string]any{"message": "gone", "status": float64(404)}, apperror.KindNotFound, "gone", 404},
		{"empty map", map[string]any{}, apperror.KindUnknown, apperror.DefaultMessage, 500},
		{"plain error", errors.New("boom"), apperror.KindUnknown, "boom", 500},
		{"deadline", context.DeadlineExceeded, apperror.KindNetwork, context.DeadlineExceeded.Error(), http.StatusBadGateway},
		{"url error", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("refused")}, apperror.KindNetwork, `Get "http://x": refused`, http.StatusBadGateway},
		{"string", "something odd", apperror.KindUnknown, "something odd", 500},
		{"blank string", "  ", apperror.KindUnknown, apperror.DefaultMessage, 500},
		{"stringer", stringer{}, apperror.KindUnknown, "stringer value", 500},
		{"number", 42, apperror.KindUnknown, "42", 500},
		{"nil", nil, apperror.KindUnknown, apperror.DefaultMessage, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperror.Normalize(tt.raw)
			if got == nil {
				t.Fatal("expected non-nil error")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("kind: expected %s, got %s", tt.wantKind, got.Kind)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("message: expected %q, got %q", tt.wantMsg, got.Message)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status: expected %d, got %d", tt.wantStatus, got.Status)
			}
		})
	}
}

func TestNormalize_PassThroughKeepsIdentity(t *testing.T) {
	orig := apperror.NotFound("sku %s", "A-1")
	if got := apperror.Normalize(orig); got != orig {
		t.Errorf("expected the same pointer back")
	}
}

func TestNormalize_KeepsCause(t *testing.T) {
	cause := errors.New("root cause")
	got := apperror.Normalize(fmt.Errorf("outer: %w", cause))
	if !errors.Is(got, cause) {
		t.Errorf("expected normalized error to unwrap to cause")
	}
}

func TestWithDetail_DoesNotMutate(t *testing.T) {
	base := apperror.New(apperror.KindUnknown, "x")
	withCause := base.WithDetail("cause", "y")

	if base.Details != nil {
		t.Errorf("expected base details untouched, got %v", base.Details)
	}
	if withCause.Details["cause"] != "y" {
		t.Errorf("unexpected details: %v", withCause.Details)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", apperror.Validation("limit must be positive"))
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Errorf("expected validation kind")
	}
	if apperror.IsKind(errors.New("plain"), apperror.KindValidation) {
		t.Errorf("plain error should not match")
	}
}

type debugLogger struct {
	lines []string
}

func (m *debugLogger) Debug(ctx context.Context, arg ...any) {}
func (m *debugLogger) Debugf(ctx context.Context, template string, arg ...any) {
	m.lines = append(m.lines, fmt.Sprintf(template, arg...))
}
func (m *debugLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *debugLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *debugLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *debugLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *debugLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *debugLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *debugLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *debugLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *debugLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *debugLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *debugLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *debugLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestNormalizer_LogsRawValue(t *testing.T) {
	l := &debugLogger{}
	n := apperror.NewNormalizer(l)

	e := n.Normalize(context.Background(), map[string]any{"message": "not found", "status": 404})
	if e.Kind != apperror.KindNotFound || e.Status != http.StatusNotFound {
		t.Errorf("unexpected normalized error %+v", e)
	}
	if len(l.lines) != 1 || !strings.Contains(l.lines[0], "kind=NotFoundError status=404") {
		t.Errorf("expected one diagnostic line, got %v", l.lines)
	}

	if e := apperror.NewNormalizer(nil).Normalize(context.Background(), "boom"); e.Message != "boom" {
		t.Errorf("nil logger must still normalize, got %+v", e)
	}
}
