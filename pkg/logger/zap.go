package logger

import (
	"context"

	"go.uber.org/zap"

	"grouporder/pkg/ctxmeta"
)

// ZapLogger — обёртка над zap, добавляющая в каждую запись метаданные
// из контекста (request_id, trace/span, код наблюдаемого заказа).
type ZapLogger struct {
	base   *zap.Logger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, isProd: isProd}
	cleanup := func() error { return l.base.Sync() }
	return l, cleanup, nil
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.sugarFor(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.sugarFor(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.sugarFor(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }

// sugarFor — обогащает логгер полями из контекста; пустые поля не пишутся.
func (z *ZapLogger) sugarFor(ctx context.Context) *zap.SugaredLogger {
	fields := make([]zap.Field, 0, 3)
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, zap.String("trace_id", tr))
	}
	if code, ok := ctxmeta.OrderCodeFromContext(ctx); ok {
		fields = append(fields, zap.String("order_code", code))
	}
	return z.base.With(fields...).Sugar()
}
