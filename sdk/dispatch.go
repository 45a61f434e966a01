package sdk

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/birbparty/roost-go/sdk"

// clientCore carries everything one dispatched call needs: the
// normalized configuration plus the tracer. Both clients embed one.
type clientCore struct {
	deadline time.Duration
	retry    RetryStrategy
	logger   Logger
	observer Observer
	tracer   trace.Tracer
}

func newClientCore(config *Config) clientCore {
	c := config.normalize()
	return clientCore{
		deadline: c.Deadline,
		retry:    c.RetryStrategy,
		logger:   c.Logger,
		observer: c.Observer,
		tracer:   otel.Tracer(tracerName),
	}
}

// dispatch runs one remote call with the client's deadline, retry
// policy and instrumentation. The call itself is a stub method bound
// to its request; interpretation of the response stays with the
// caller, which sees either the stub's response or a classified
// *Error, never both.
//
// Only calls marked idempotent are retried. A caller-supplied deadline
// wins over the configured one.
func dispatch[Resp any](ctx context.Context, core *clientCore, operation, resource string, idempotent bool, call func(ctx context.Context) (*Resp, error)) (*Resp, *Error) {
	ctx, span := core.tracer.Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("roost.operation", operation),
			attribute.String("roost.resource", resource),
		))
	defer span.End()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, core.deadline)
		defer cancel()
	}

	core.observer.OnRequestStart(operation, resource)
	start := time.Now()

	resp, rerr := invokeWithRetry(ctx, core, operation, resource, idempotent, call)

	elapsed := time.Since(start)
	core.observer.OnRequestEnd(operation, resource, elapsed, rerr)
	if rerr != nil {
		span.RecordError(rerr)
		span.SetStatus(otelcodes.Error, string(rerr.ErrorCode()))
		core.logger.Warnf("%s %s failed after %s: %s", operation, resource, elapsed, rerr.Message())
		return nil, rerr
	}
	core.logger.Tracef("%s %s completed in %s", operation, resource, elapsed)
	return resp, nil
}

func invokeWithRetry[Resp any](ctx context.Context, core *clientCore, operation, resource string, idempotent bool, call func(ctx context.Context) (*Resp, error)) (*Resp, *Error) {
	for attempt := 1; ; attempt++ {
		resp, err := call(ctx)
		if err == nil {
			return resp, nil
		}
		rerr := convertError(err)
		if !idempotent || !core.retry.ShouldRetry(rerr, attempt) {
			return nil, rerr
		}
		delay := core.retry.NextInterval(attempt)
		core.observer.OnRetryAttempt(operation, resource, attempt, delay, rerr)
		core.logger.Debugf("%s %s attempt %d failed with %s, retrying in %s",
			operation, resource, attempt, rerr.ErrorCode(), delay)
		select {
		case <-ctx.Done():
			return nil, convertError(ctx.Err())
		case <-time.After(delay):
		}
	}
}
