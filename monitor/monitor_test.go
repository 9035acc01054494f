package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/jonwraymond/callops/observe"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ValidateInput {
		t.Error("expected ValidateInput enabled by default")
	}
	if !cfg.ValidateOutput {
		t.Error("expected ValidateOutput enabled by default")
	}
	if !cfg.LogExecution {
		t.Error("expected LogExecution enabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SuppressErrors {
		t.Error("expected SuppressErrors disabled by default")
	}
	if cfg.PropagatePanics {
		t.Error("expected PropagatePanics disabled by default")
	}
}

func TestConfigValidate_BadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if !cfg.ValidateInput || !cfg.ValidateOutput || !cfg.LogExecution {
		t.Errorf("expected defaults enabled, got %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("CALLOPS_VALIDATE_INPUT", "false")
	t.Setenv("CALLOPS_VALIDATE_OUTPUT", "false")
	t.Setenv("CALLOPS_LOG_EXECUTION", "false")
	t.Setenv("CALLOPS_LOG_LEVEL", "debug")
	t.Setenv("CALLOPS_SUPPRESS_ERRORS", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}

	if cfg.ValidateInput || cfg.ValidateOutput || cfg.LogExecution {
		t.Errorf("expected flags disabled, got %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.SuppressErrors {
		t.Error("expected SuppressErrors enabled")
	}
}

func TestConfigFromEnv_Malformed(t *testing.T) {
	t.Setenv("CALLOPS_VALIDATE_INPUT", "not-a-bool")

	_, err := ConfigFromEnv()
	if err == nil {
		t.Fatal("expected error for malformed env value")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	_, err := New(cfg)
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("expected ErrInvalidLogLevel, got %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	m, err := New(DefaultConfig(), WithLogger(observe.NewNoopLogger()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.tracer == nil {
		t.Error("expected default noop tracer")
	}
	if m.metrics == nil {
		t.Error("expected default noop metrics")
	}
	if m.sampler == nil {
		t.Error("expected default process sampler")
	}
}

func TestFromObserver(t *testing.T) {
	obs, err := observe.NewObserver(context.Background(), observe.Config{
		ServiceName: "monitor-test",
	})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}
	defer obs.Shutdown(context.Background())

	m, err := FromObserver(DefaultConfig(), obs)
	if err != nil {
		t.Fatalf("FromObserver failed: %v", err)
	}
	if m == nil {
		t.Fatal("expected non-nil monitor")
	}
}

func TestFromObserver_NilObserver(t *testing.T) {
	_, err := FromObserver(DefaultConfig(), nil)
	if !errors.Is(err, observe.ErrNilObserver) {
		t.Fatalf("expected ErrNilObserver, got %v", err)
	}
}
