package exporters

import (
	"context"
	"testing"
)

func TestNewTracingExporter_Stdout(t *testing.T) {
	exp, err := NewTracingExporter(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout exporter failed: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

func TestNewTracingExporter_None(t *testing.T) {
	exp, err := NewTracingExporter(context.Background(), "none")
	if err != nil {
		t.Fatalf("none exporter failed: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil discard exporter")
	}
}

func TestNewTracingExporter_Empty(t *testing.T) {
	exp, err := NewTracingExporter(context.Background(), "")
	if err != nil {
		t.Fatalf("empty exporter name failed: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil discard exporter")
	}
}

func TestNewTracingExporter_Unknown(t *testing.T) {
	_, err := NewTracingExporter(context.Background(), "zipkin")
	if err == nil {
		t.Fatal("expected error for unknown exporter")
	}
}

func TestNewTracingExporter_OTLPRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	_, err := NewTracingExporter(context.Background(), "otlp")
	if err == nil {
		t.Fatal("expected error when OTLP endpoint is not configured")
	}
}

func TestNewMetricsReader_Stdout(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout reader failed: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
	_ = reader.Shutdown(context.Background())
}

func TestNewMetricsReader_None(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "none")
	if err != nil {
		t.Fatalf("none reader failed: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
	_ = reader.Shutdown(context.Background())
}

func TestNewMetricsReader_Prometheus(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "prometheus")
	if err != nil {
		t.Fatalf("prometheus reader failed: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
	_ = reader.Shutdown(context.Background())
}

func TestNewMetricsReader_Unknown(t *testing.T) {
	_, err := NewMetricsReader(context.Background(), "statsd")
	if err == nil {
		t.Fatal("expected error for unknown reader")
	}
}

func TestNewMetricsReader_OTLPRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	_, err := NewMetricsReader(context.Background(), "otlp")
	if err == nil {
		t.Fatal("expected error when OTLP endpoint is not configured")
	}
}
