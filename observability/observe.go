package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/cursor"
	apperrors "github.com/kbukum/seqkit/errors"
)

// Observe wraps c so every yielded item and every failed pull is counted
// against stage. Items pass through unchanged. m may be nil.
func Observe[T any](c cursor.Cursor[T], stage string, m *CursorMetrics) cursor.Cursor[T] {
	return &observedCursor[T]{source: c, stage: stage, metrics: m}
}

type observedCursor[T any] struct {
	source  cursor.Cursor[T]
	stage   string
	metrics *CursorMetrics
}

func (c *observedCursor[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := c.source.Next(ctx)
	switch {
	case err != nil:
		c.metrics.RecordError(ctx, c.stage, errorCode(err))
	case ok:
		c.metrics.RecordItem(ctx, c.stage)
	}
	return val, ok, err
}

func (c *observedCursor[T]) Close() error { return c.source.Close() }

func (c *observedCursor[T]) Describe() (string, []any) {
	return "observe(" + c.stage + ")", []any{c.source}
}

// CollectTraced collects c inside a cursor.collect span named after the
// pipeline. The span carries the item count and, on failure, the error and
// its code. When ctx belongs to a Run with metrics, the drain time is
// recorded as cursor.materialize.duration.
func CollectTraced[T any](ctx context.Context, c cursor.Cursor[T], name string) ([]T, error) {
	ctx, span := StartSpan(ctx, SpanCollect, trace.WithAttributes(attribute.String(AttrPipeline, name)))
	defer span.End()

	run := RunFromContext(ctx)
	if run != nil {
		span.SetAttributes(attribute.String(AttrRunID, run.ID))
	}

	start := time.Now()
	items, err := cursor.Collect(ctx, c)
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.Int(AttrItems, len(items)),
		attribute.Int64(AttrDurationMs, elapsed.Milliseconds()),
	)
	if run != nil {
		run.Metrics.RecordMaterialize(ctx, name, elapsed)
	}
	if err != nil {
		recordSpanError(span, err)
		return items, err
	}
	span.SetStatus(codes.Ok, "")
	return items, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrErrorCode, errorCode(err)))
}

func errorCode(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}
