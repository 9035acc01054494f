package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records execution metrics for instrumented calls.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordExecution records a call with duration and error status.
	RecordExecution(ctx context.Context, meta CallMeta, duration time.Duration, err error)

	// RecordMemoryDelta records the change in resident memory across a call.
	RecordMemoryDelta(ctx context.Context, meta CallMeta, deltaBytes int64)
}

// NewMetrics creates a Metrics instance backed by the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

// NewNoopMetrics creates a Metrics that records nothing.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	memDeltaHist metric.Int64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"call.exec.total",
		metric.WithDescription("Total number of instrumented calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"call.exec.errors",
		metric.WithDescription("Total number of failed calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"call.exec.duration_ms",
		metric.WithDescription("Call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	memDeltaHist, err := meter.Int64Histogram(
		"call.exec.mem_delta_bytes",
		metric.WithDescription("Resident memory delta across a call"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		memDeltaHist: memDeltaHist,
	}, nil
}

// RecordExecution records metrics for a call.
func (m *metricsImpl) RecordExecution(ctx context.Context, meta CallMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(m.attrs(meta)...)

	// Always increment total counter
	m.totalCount.Add(ctx, 1, opt)

	// Increment error counter on failure
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	// Record duration in milliseconds
	durationMs := float64(duration.Milliseconds())
	m.durationHist.Record(ctx, durationMs, opt)
}

// RecordMemoryDelta records the resident memory delta for a call.
func (m *metricsImpl) RecordMemoryDelta(ctx context.Context, meta CallMeta, deltaBytes int64) {
	m.memDeltaHist.Record(ctx, deltaBytes, metric.WithAttributes(m.attrs(meta)...))
}

func (m *metricsImpl) attrs(meta CallMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("call.id", meta.CallID()),
		attribute.String("call.name", meta.Name),
	}
	if meta.Package != "" {
		attrs = append(attrs, attribute.String("call.package", meta.Package))
	}
	return attrs
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordExecution(ctx context.Context, meta CallMeta, duration time.Duration, err error) {
}

func (m *noopMetrics) RecordMemoryDelta(ctx context.Context, meta CallMeta, deltaBytes int64) {}
