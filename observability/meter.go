package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/seqkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns defaults for a local collector.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(config.Endpoint)}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// CursorMetrics holds the instruments recorded by Observe, CollectTraced and
// Run. A nil *CursorMetrics records nothing.
type CursorMetrics struct {
	items       metric.Int64Counter
	errors      metric.Int64Counter
	materialize metric.Float64Histogram
	runs        metric.Int64Counter
}

// NewCursorMetrics creates the cursor instruments on meter.
func NewCursorMetrics(meter metric.Meter) (*CursorMetrics, error) {
	items, err := meter.Int64Counter("cursor.items.total",
		metric.WithDescription("Items yielded by a pipeline stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cursor.items.total counter: %w", err)
	}

	errs, err := meter.Int64Counter("cursor.errors.total",
		metric.WithDescription("Failed pulls by stage and error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cursor.errors.total counter: %w", err)
	}

	materialize, err := meter.Float64Histogram("cursor.materialize.duration",
		metric.WithDescription("Time spent draining a pipeline into a slice"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cursor.materialize.duration histogram: %w", err)
	}

	runs, err := meter.Int64Counter("pipeline.runs.total",
		metric.WithDescription("Finished pipeline runs by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.runs.total counter: %w", err)
	}

	return &CursorMetrics{items: items, errors: errs, materialize: materialize, runs: runs}, nil
}

// RecordItem counts one item yielded by stage.
func (m *CursorMetrics) RecordItem(ctx context.Context, stage string) {
	if m == nil {
		return
	}
	m.items.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordError counts one failed pull at stage.
func (m *CursorMetrics) RecordError(ctx context.Context, stage, code string) {
	if m == nil {
		return
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("code", code),
	))
}

// RecordMaterialize records how long a pipeline took to drain.
func (m *CursorMetrics) RecordMaterialize(ctx context.Context, pipeline string, d time.Duration) {
	if m == nil {
		return
	}
	m.materialize.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("pipeline", pipeline)))
}

// RecordRun counts a finished pipeline run.
func (m *CursorMetrics) RecordRun(ctx context.Context, pipeline, status string) {
	if m == nil {
		return
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pipeline", pipeline),
		attribute.String("status", status),
	))
}
