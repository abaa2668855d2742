package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/seqkit/cursor"
	"github.com/kbukum/seqkit/demo"
	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
)

// PipelineOptions bounds the work a single request may ask for.
type PipelineOptions struct {
	// BufferLimit caps the items a grouping stage may hold. 0 disables it.
	BufferLimit int
	// DefaultTake is used when /v1/fibonacci has no take parameter.
	DefaultTake int
	// MaxLines caps the lines accepted by /v1/wordcount. 0 disables it.
	MaxLines int
}

// Handlers serves the /v1 pipeline routes.
type Handlers struct {
	opts    PipelineOptions
	metrics *observability.CursorMetrics
	log     *logger.Logger
}

// NewHandlers creates the pipeline handlers. metrics may be nil; log is
// used as given, typically logger.Get("handlers").
func NewHandlers(opts PipelineOptions, metrics *observability.CursorMetrics, log *logger.Logger) *Handlers {
	return &Handlers{opts: opts, metrics: metrics, log: log}
}

// Register mounts the /v1 routes.
func (h *Handlers) Register(r gin.IRouter) {
	v1 := r.Group("/v1")
	v1.GET("/fibonacci", h.Fibonacci)
	v1.POST("/wordcount", h.WordCount)
	v1.GET("/explain/:pipeline", h.Explain)
}

// PipelineCheck reports the service down if the smallest Fibonacci
// pipeline cannot run.
func (h *Handlers) PipelineCheck() observability.HealthChecker {
	return observability.CheckFunc{
		Name: "pipeline",
		Check: func(ctx context.Context) error {
			items, err := cursor.Collect(ctx, demo.FibonacciPipeline(1))
			if err != nil {
				return err
			}
			if len(items) != 1 || items[0] != 3 {
				return apperrors.Internal(nil).WithDetail("items", items)
			}
			return nil
		},
	}
}

// Fibonacci handles GET /v1/fibonacci?take=N.
func (h *Handlers) Fibonacci(c *gin.Context) {
	take := h.opts.DefaultTake
	if raw := c.Query("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			RespondWithError(c, apperrors.InvalidInput("take", "take must be an integer"))
			return
		}
		take = n
	}
	if appErr := validation.New().Range("take", take, 0, demo.MaxFibonacciTake).Validate(); appErr != nil {
		RespondWithError(c, appErr)
		return
	}

	items, meta, err := runPipeline(c.Request.Context(), h, demo.PipelineFibonacci, demo.FibonacciPipeline(take))
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOKWithMeta(c, items, meta)
}

type wordCountRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// WordCount handles POST /v1/wordcount. A JSON body carries {"lines": [...]};
// any other content type is read as newline-separated text.
func (h *Handlers) WordCount(c *gin.Context) {
	var lines cursor.Cursor[string]
	if c.ContentType() == gin.MIMEJSON {
		var req wordCountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondWithError(c, bodyError(err))
			return
		}
		if h.opts.MaxLines > 0 {
			if appErr := validation.New().Max("lines", len(req.Lines), h.opts.MaxLines).Validate(); appErr != nil {
				RespondWithError(c, appErr)
				return
			}
		}
		lines = cursor.FromSlice(req.Lines)
	} else {
		lines = demo.Lines(c.Request.Body)
		if h.opts.MaxLines > 0 {
			lines = maxLines(lines, h.opts.MaxLines)
		}
	}

	pipeline := demo.CountWords(lines, cursor.WithLimit(h.opts.BufferLimit))
	items, meta, err := runPipeline(c.Request.Context(), h, demo.PipelineWordCount, pipeline)
	if err != nil {
		RespondWithError(c, bodyError(err))
		return
	}
	RespondOKWithMeta(c, items, meta)
}

// Explain handles GET /v1/explain/:pipeline.
func (h *Handlers) Explain(c *gin.Context) {
	name := c.Param("pipeline")
	tree, err := demo.Explain(name)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	if strings.Contains(c.GetHeader("Accept"), gin.MIMEPlain) {
		c.String(http.StatusOK, tree)
		return
	}
	RespondOK(c, gin.H{"pipeline": name, "tree": tree})
}

// runPipeline drains c inside a traced Run and returns the items with the
// run metadata.
func runPipeline[T any](ctx context.Context, h *Handlers, name string, c cursor.Cursor[T]) ([]T, *Meta, error) {
	run := observability.NewRun(name, h.metrics)
	ctx = run.Start(ctx)
	items, err := observability.CollectTraced(ctx, observability.Observe(c, name, h.metrics), name)
	run.End(ctx, len(items), err)
	if err != nil {
		h.log.WithContext(ctx).Debug("pipeline rejected", logger.ErrorFields(name, err))
		return nil, nil, err
	}
	return items, &Meta{Pipeline: name, RunID: run.ID, Items: len(items)}, nil
}

// maxLines fails the pipeline once more than limit lines arrive.
func maxLines(lines cursor.Cursor[string], limit int) cursor.Cursor[string] {
	seen := 0
	return cursor.TryMap(lines, func(_ context.Context, line string) (string, error) {
		seen++
		if appErr := validation.New().Max("lines", seen, limit).Validate(); appErr != nil {
			return "", appErr
		}
		return line, nil
	})
}

// bodyError maps request body failures to client errors.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "request body too large", http.StatusRequestEntityTooLarge).
			WithDetail("limit", tooLarge.Limit)
	}
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.InvalidInput("body", err.Error()).WithCause(err)
}

func notFoundRoute(path string) error {
	return apperrors.NotFound("route", path)
}
