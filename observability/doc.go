// Package observability provides OpenTelemetry tracing and metrics and the
// service health model.
//
// Setup installs OTLP/HTTP exporters when telemetry is enabled:
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry, "kthmin", version.GetVersion(), cfg.Environment)
//	defer shutdown(ctx)
//
// Operations are wrapped in an OperationContext, which ends the span and
// records duration and status metrics in one call:
//
//	oc := observability.NewOperationContext("kthmin", "find", requestID, metrics)
//	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanFind)
//	status := oc.EndOperation(ctx, span, "finder", err)
package observability
