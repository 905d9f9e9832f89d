package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/secmon-lab/shipwright/pkg/domain/types"
)

type ctxFlowIDKey struct{}

// CtxFlowID returns the flow ID from context. If no flow ID is set, it
// returns a new one and a context carrying it.
func CtxFlowID(ctx context.Context) (types.FlowID, context.Context) {
	if id, ok := ctx.Value(ctxFlowIDKey{}).(types.FlowID); ok {
		return id, ctx
	}

	newID := types.NewFlowID()
	return newID, context.WithValue(ctx, ctxFlowIDKey{}, newID)
}

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxTimeKey struct{}
type TimeFunc func() time.Time

// CtxTime returns time from context. If time is not set, return current time.
// Tag computation for calver uses this, so tests can pin the clock.
func CtxTime(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ctxTimeKey{}).(TimeFunc); ok {
		return t()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}
