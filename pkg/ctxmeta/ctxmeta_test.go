package ctxmeta_test

import (
	"context"
	"testing"

	"grouporder/pkg/ctxmeta"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")

	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-1" {
		t.Fatalf("want req-1, got %q (ok=%v)", got, ok)
	}
}

func TestRequestID_EmptyIgnored(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "")

	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("empty request_id should not be stored")
	}
}

func TestOrderCode_RoundTrip(t *testing.T) {
	ctx := ctxmeta.WithOrderCode(context.Background(), "AB12CD")

	got, ok := ctxmeta.OrderCodeFromContext(ctx)
	if !ok || got != "AB12CD" {
		t.Fatalf("want AB12CD, got %q (ok=%v)", got, ok)
	}
}

func TestTraceID_NoSpan(t *testing.T) {
	if _, ok := ctxmeta.TraceIDFromContext(context.Background()); ok {
		t.Fatalf("context without span should not produce trace_id")
	}
	if _, ok := ctxmeta.SpanIDFromContext(context.Background()); ok {
		t.Fatalf("context without span should not produce span_id")
	}
}

func TestNilContext_Safe(t *testing.T) {
	//nolint:staticcheck // специально передаём nil
	if _, ok := ctxmeta.RequestIDFromContext(nil); ok {
		t.Fatalf("nil context must be safe")
	}
}
