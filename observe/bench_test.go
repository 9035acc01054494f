package observe

import (
	"context"
	"io"
	"testing"
)

// BenchmarkLogger_Info measures logging throughput.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", Field{Key: "iteration", Value: i})
	}
}

// BenchmarkLogger_Info_MultipleFields measures logging with multiple fields.
func BenchmarkLogger_Info_MultipleFields(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()
	fields := []Field{
		{Key: "field1", Value: "value1"},
		{Key: "field2", Value: 42},
		{Key: "field3", Value: true},
		{Key: "field4", Value: 3.14},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", fields...)
	}
}

// BenchmarkLogger_WithCall measures creating call-scoped loggers.
func BenchmarkLogger_WithCall(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	meta := CallMeta{
		Name:    "bench_fn",
		Package: "bench",
		Version: "1.0.0",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.WithCall(meta)
	}
}

// BenchmarkLogger_Filtered measures the cost of a dropped log line.
func BenchmarkLogger_Filtered(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "dropped message", Field{Key: "iteration", Value: i})
	}
}

// BenchmarkTracer_StartEnd measures span lifecycle overhead with a noop tracer.
func BenchmarkTracer_StartEnd(b *testing.B) {
	tracer := newNoopTracer()
	ctx := context.Background()
	meta := CallMeta{Name: "bench_fn", Package: "bench"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := tracer.StartSpan(ctx, meta)
		tracer.EndSpan(span, nil)
	}
}
