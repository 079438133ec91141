package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/kthmin/errors"
)

// Operation statuses recorded on spans and metrics.
const (
	StatusOK          = "ok"
	StatusClientError = "client_error"
	StatusError       = "error"
)

// OperationContext tracks the span and timing of one operation.
type OperationContext struct {
	ServiceName   string
	OperationName string
	RequestID     string
	StartTime     time.Time
	Metrics       *Metrics
}

// NewOperationContext creates a new operation context.
// If metrics is nil, metric recording is silently skipped.
func NewOperationContext(serviceName, operationName, requestID string, metrics *Metrics) *OperationContext {
	return &OperationContext{
		ServiceName:   serviceName,
		OperationName: operationName,
		RequestID:     requestID,
		StartTime:     time.Now(),
		Metrics:       metrics,
	}
}

// StartSpanForOperation starts a span tagged with the operation identity.
func (oc *OperationContext) StartSpanForOperation(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrServiceName, oc.ServiceName),
		attribute.String(AttrOperationName, oc.OperationName),
	)
	if oc.RequestID != "" {
		span.SetAttributes(attribute.String(AttrRequestID, oc.RequestID))
	}
	return ctx, span
}

// EndOperation ends the span and records operation metrics. It returns the
// status derived from err.
func (oc *OperationContext) EndOperation(ctx context.Context, span trace.Span, component string, err error) string {
	duration := time.Since(oc.StartTime)
	status := StatusFor(err)

	if err != nil {
		appErr := errors.Wrap(err)
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
		if status == StatusError {
			span.SetStatus(codes.Error, err.Error())
		}
		if oc.Metrics != nil {
			oc.Metrics.RecordError(ctx, string(appErr.Code), component)
		}
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if oc.Metrics != nil {
		oc.Metrics.RecordOperation(ctx, oc.OperationName, status, duration)
	}
	return status
}

// Duration returns the elapsed time since operation start.
func (oc *OperationContext) Duration() time.Duration {
	return time.Since(oc.StartTime)
}

// StatusFor classifies err: nil is ok, 4xx app errors are client errors,
// everything else is an error.
func StatusFor(err error) string {
	if err == nil {
		return StatusOK
	}
	if appErr, ok := errors.AsAppError(err); ok && appErr.HTTPStatus >= 400 && appErr.HTTPStatus < 500 {
		return StatusClientError
	}
	return StatusError
}
