package monitor

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/jonwraymond/callops/observe"
	"github.com/jonwraymond/callops/usage"
)

// EnvPrefix is the prefix for all environment variables read by ConfigFromEnv.
const EnvPrefix = "CALLOPS_"

// Config controls what the wrapper does on each call.
type Config struct {
	// ValidateInput validates the input before invoking the function.
	// A validation failure prevents the invocation.
	ValidateInput bool `env:"VALIDATE_INPUT" envDefault:"true"`

	// ValidateOutput validates the result after a successful invocation.
	ValidateOutput bool `env:"VALIDATE_OUTPUT" envDefault:"true"`

	// LogExecution emits a structured log entry per call.
	LogExecution bool `env:"LOG_EXECUTION" envDefault:"true"`

	// LogLevel is the level used for successful calls: debug|info.
	// Failed calls always log at error level.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SuppressErrors swallows call errors after recording them: the caller
	// receives the zero result and a nil error.
	SuppressErrors bool `env:"SUPPRESS_ERRORS" envDefault:"false"`

	// PropagatePanics re-raises recovered panics after telemetry is emitted.
	// When false, a recovered panic is returned as a *PanicError.
	PropagatePanics bool `env:"PROPAGATE_PANICS" envDefault:"false"`
}

// DefaultConfig returns the default wrapper configuration.
func DefaultConfig() Config {
	return Config{
		ValidateInput:  true,
		ValidateOutput: true,
		LogExecution:   true,
		LogLevel:       "info",
	}
}

// ConfigFromEnv builds a Config from CALLOPS_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("monitor: parse env: %w", err)
	}
	return cfg, nil
}

// Valid log levels for successful calls.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"":      true,
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Monitor holds the telemetry plumbing shared by every call it wraps.
//
// Contract:
// - Concurrency: a Monitor and every Func it wraps are safe for concurrent
//   use, provided the wrapped functions are.
// - Errors: instrumentation failures are best-effort and never alter the
//   outcome of a wrapped call.
type Monitor struct {
	cfg       Config
	tracer    observe.Tracer
	metrics   observe.Metrics
	logger    observe.Logger
	sampler   *usage.Sampler
	threshold *usage.Threshold
	onRecord  func(Record)
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithTracer sets the tracer used for per-call spans.
func WithTracer(t observe.Tracer) Option {
	return func(m *Monitor) {
		m.tracer = t
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(mx observe.Metrics) Option {
	return func(m *Monitor) {
		m.metrics = mx
	}
}

// WithLogger sets the logger used for per-call log entries.
func WithLogger(l observe.Logger) Option {
	return func(m *Monitor) {
		m.logger = l
	}
}

// WithSampler sets the resource usage sampler.
func WithSampler(s *usage.Sampler) Option {
	return func(m *Monitor) {
		m.sampler = s
	}
}

// WithThreshold enables memory pressure classification after each call.
// Calls that leave the heap above the configured ratios log a warning.
func WithThreshold(t *usage.Threshold) Option {
	return func(m *Monitor) {
		m.threshold = t
	}
}

// WithOnRecord registers a callback invoked with the Record of every call.
// The callback runs synchronously on the calling goroutine.
func WithOnRecord(fn func(Record)) Option {
	return func(m *Monitor) {
		m.onRecord = fn
	}
}

// New creates a Monitor with the given configuration.
//
// By default tracing and metrics are no-ops, logging follows
// Config.LogExecution, and resource sampling is bound to the current process.
func New(cfg Config, opts ...Option) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Monitor{
		cfg:     cfg,
		tracer:  observe.NewNoopTracer(),
		metrics: observe.NewNoopMetrics(),
	}

	if cfg.LogExecution {
		m.logger = observe.NewLogger(cfg.LogLevel)
	} else {
		m.logger = observe.NewNoopLogger()
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.sampler == nil {
		// Sampling is best-effort: without a process handle the wrapper
		// still runs, reporting zero usage.
		if s, err := usage.NewSampler(); err == nil {
			m.sampler = s
		}
	}

	return m, nil
}

// FromObserver creates a Monitor wired to an Observer's tracer, meter, and
// logger. This is the common production setup.
func FromObserver(cfg Config, obs observe.Observer) (*Monitor, error) {
	if obs == nil {
		return nil, observe.ErrNilObserver
	}

	metrics, err := observe.NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return New(cfg,
		WithTracer(observe.NewTracer(obs.Tracer())),
		WithMetrics(metrics),
		WithLogger(obs.Logger()),
	)
}
