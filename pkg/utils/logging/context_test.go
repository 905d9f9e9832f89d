package logging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/shipwright/pkg/utils/logging"
)

func TestWith(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	newCtx := logging.With(ctx, logger)
	retrieved := logging.From(newCtx)
	gt.V(t, retrieved).Equal(logger)
}

func TestFrom(t *testing.T) {
	t.Run("get logger from context with logger", func(t *testing.T) {
		ctx := context.Background()
		logger := slog.Default()
		ctx = logging.With(ctx, logger)

		retrieved := logging.From(ctx)
		gt.V(t, retrieved).Equal(logger)
	})

	t.Run("get logger from context without logger", func(t *testing.T) {
		ctx := context.Background()
		retrieved := logging.From(ctx)
		retrieved2 := logging.From(ctx)
		gt.V(t, retrieved).Equal(retrieved2)
		gt.V(t, retrieved.Handler()).Equal(logging.Default().Handler())
	})
}

func TestCtxFlowID(t *testing.T) {
	t.Run("get new flow ID from context", func(t *testing.T) {
		ctx := context.Background()

		flowID, newCtx := logging.CtxFlowID(ctx)
		gt.V(t, flowID.String()).NotEqual("")
		retrievedID, _ := logging.CtxFlowID(newCtx)
		gt.V(t, retrievedID).Equal(flowID)
	})

	t.Run("get existing flow ID from context", func(t *testing.T) {
		ctx := context.Background()

		flowID1, ctx1 := logging.CtxFlowID(ctx)
		flowID2, ctx2 := logging.CtxFlowID(ctx1)

		gt.V(t, flowID1).Equal(flowID2)
		retrievedID1, _ := logging.CtxFlowID(ctx1)
		retrievedID2, _ := logging.CtxFlowID(ctx2)
		gt.V(t, retrievedID1).Equal(flowID1)
		gt.V(t, retrievedID2).Equal(flowID1)
	})
}

func TestCtxTime(t *testing.T) {
	t.Run("get current time from context", func(t *testing.T) {
		ctx := context.Background()

		tm := logging.CtxTime(ctx)
		gt.V(t, tm.IsZero()).Equal(false)
	})
}

func TestCtxWithTime(t *testing.T) {
	t.Run("set and get custom time from context", func(t *testing.T) {
		ctx := context.Background()

		called := false
		ctx = logging.CtxWithTime(ctx, func() time.Time {
			called = true
			return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		})

		tm := logging.CtxTime(ctx)
		gt.True(t, called)
		gt.V(t, tm.Year()).Equal(2024)
	})
}
