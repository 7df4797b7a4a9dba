// Пакет ctxmeta — нейтральный слой для метаданных, которые прокидываются
// через context.Context (request_id, код заказа, trace/span для логов).
// HTTP-клиент, канал и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	keyRequestID ctxKey = "request_id"
	keyOrderCode ctxKey = "order_code"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(keyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithOrderCode помечает контекст кодом заказа, с которым идёт работа.
func WithOrderCode(ctx context.Context, code string) context.Context {
	if ctx == nil || code == "" {
		return ctx
	}
	return context.WithValue(ctx, keyOrderCode, code)
}

// OrderCodeFromContext достаёт код заказа из контекста.
func OrderCodeFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(keyOrderCode).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// TraceIDFromContext — trace_id активного спана (для строк лога).
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span_id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}
