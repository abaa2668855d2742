// Package observability connects cursor pipelines to OpenTelemetry.
//
// Tracing and metrics providers export over OTLP/HTTP:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("seqkit"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("seqkit"))
//	defer mp.Shutdown(ctx)
//
// Pipelines are instrumented by wrapping stages and terminals:
//
//	m, _ := observability.NewCursorMetrics(observability.Meter("seqkit"))
//	c := observability.Observe(cursor.Take(src, 5), "take", m)
//	items, err := observability.CollectTraced(ctx, c, "fib")
//
// A Run ties a pipeline execution to a run ID that appears in logs, span
// attributes and metrics.
//
//	health := observability.NewServiceHealth("seqkit", version.Get().Short())
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
