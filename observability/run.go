package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// Run statuses.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// Run tracks one execution of a named pipeline.
type Run struct {
	ID        string
	Pipeline  string
	StartTime time.Time
	Metrics   *CursorMetrics

	span trace.Span
}

// NewRun creates a run with a fresh UUID. metrics may be nil.
func NewRun(pipeline string, metrics *CursorMetrics) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Pipeline:  pipeline,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// RunFromContext returns the Run started on ctx, or nil.
func RunFromContext(ctx context.Context) *Run {
	if r, ok := ctx.Value(runContextKey{}).(*Run); ok {
		return r
	}
	return nil
}

// Start opens the pipeline.run span and returns a context carrying the run
// and its ID for logging.
func (r *Run) Start(ctx context.Context) context.Context {
	r.StartTime = time.Now()
	ctx = context.WithValue(ctx, runContextKey{}, r)
	ctx = logger.ContextWithRunID(ctx, r.ID)
	ctx, r.span = StartSpan(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrPipeline, r.Pipeline),
		attribute.String(AttrRunID, r.ID),
	))
	logger.WithContext(ctx).Debug("pipeline started", logger.Fields(logger.FieldPipeline, r.Pipeline))
	return ctx
}

// End closes the run span, counts the run and logs the outcome.
func (r *Run) End(ctx context.Context, items int, err error) {
	status := RunStatus(err)
	elapsed := r.Duration()

	if r.span != nil {
		r.span.SetAttributes(
			attribute.String(AttrStatus, status),
			attribute.Int(AttrItems, items),
			attribute.Int64(AttrDurationMs, elapsed.Milliseconds()),
		)
		if err != nil {
			recordSpanError(r.span, err)
		}
		r.span.End()
	}
	r.Metrics.RecordRun(ctx, r.Pipeline, status)

	log := logger.WithContext(ctx)
	fields := logger.DurationFields(r.Pipeline, elapsed)
	fields[logger.FieldItems] = items
	if err != nil {
		fields[logger.FieldError] = err.Error()
		log.Warn("pipeline failed", fields)
		return
	}
	log.Info("pipeline finished", fields)
}

// Duration returns the time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// RunStatus classifies a run outcome.
func RunStatus(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case apperrors.HasCode(err, apperrors.ErrCodeCanceled):
		return StatusCanceled
	default:
		return StatusError
	}
}
