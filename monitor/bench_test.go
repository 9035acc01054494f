package monitor

import (
	"context"
	"testing"

	"github.com/jonwraymond/callops/observe"
)

func benchMonitor(b *testing.B, cfg Config) *Monitor {
	b.Helper()
	m, err := New(cfg, WithLogger(observe.NewNoopLogger()))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return m
}

// BenchmarkWrap_Overhead measures full wrapper overhead on a trivial call.
func BenchmarkWrap_Overhead(b *testing.B) {
	m := benchMonitor(b, DefaultConfig())

	fn := func(ctx context.Context, in int) (int, error) { return in, nil }
	wrapped := Wrap(m, observe.CallMeta{Name: "bench"}, fn)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wrapped(ctx, i)
	}
}

// BenchmarkWrap_NoSampling measures overhead without resource sampling.
func BenchmarkWrap_NoSampling(b *testing.B) {
	cfg := DefaultConfig()
	cfg.LogExecution = false
	m, err := New(cfg, WithLogger(observe.NewNoopLogger()))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	m.sampler = nil

	fn := func(ctx context.Context, in int) (int, error) { return in, nil }
	wrapped := Wrap(m, observe.CallMeta{Name: "bench"}, fn)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = wrapped(ctx, i)
	}
}

// BenchmarkInvoke_PanicPath measures the cost of panic recovery.
func BenchmarkInvoke_PanicPath(b *testing.B) {
	fn := func(ctx context.Context, in int) (int, error) { panic("bench") }
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = invoke(ctx, fn, i)
	}
}
