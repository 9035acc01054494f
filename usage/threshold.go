package usage

import (
	"fmt"
	"runtime"
)

// Level classifies memory pressure.
type Level int

const (
	LevelNormal Level = iota
	LevelHigh
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelHigh:
		return "high"
	case LevelCritical:
		return "critical"
	default:
		return "normal"
	}
}

// ThresholdConfig configures memory pressure classification.
type ThresholdConfig struct {
	// WarningRatio is the fraction of MaxAlloc that triggers LevelHigh.
	// Value should be between 0 and 1. Default: 0.8 (80%)
	WarningRatio float64

	// CriticalRatio is the fraction of MaxAlloc that triggers LevelCritical.
	// Value should be between 0 and 1. Default: 0.95 (95%)
	CriticalRatio float64

	// MaxAlloc is the maximum expected allocation in bytes.
	// If zero, the runtime's reserved memory (MemStats.Sys) is used.
	MaxAlloc uint64
}

// Threshold classifies heap usage against configured ratios.
type Threshold struct {
	config ThresholdConfig
}

// NewThreshold creates a memory pressure classifier, clamping nonsensical
// configuration to the defaults.
func NewThreshold(config ThresholdConfig) *Threshold {
	if config.WarningRatio <= 0 || config.WarningRatio >= 1 {
		config.WarningRatio = 0.8
	}
	if config.CriticalRatio <= 0 || config.CriticalRatio >= 1 {
		config.CriticalRatio = 0.95
	}
	if config.CriticalRatio < config.WarningRatio {
		config.CriticalRatio = config.WarningRatio + 0.1
		if config.CriticalRatio > 1 {
			config.CriticalRatio = 0.99
		}
	}

	return &Threshold{config: config}
}

// Assessment is the result of a threshold classification.
type Assessment struct {
	Level   Level
	Message string
	Details map[string]any
}

// Classify reads current heap statistics and classifies memory pressure.
func (t *Threshold) Classify() Assessment {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	maxAlloc := t.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}

	details := map[string]any{
		"alloc_bytes":    stats.Alloc,
		"alloc_mb":       float64(stats.Alloc) / (1024 * 1024),
		"max_alloc":      maxAlloc,
		"heap_alloc":     stats.HeapAlloc,
		"heap_sys":       stats.HeapSys,
		"heap_in_use":    stats.HeapInuse,
		"heap_objects":   stats.HeapObjects,
		"stack_in_use":   stats.StackInuse,
		"gc_pause_total": stats.PauseTotalNs,
		"num_gc":         stats.NumGC,
		"goroutines":     runtime.NumGoroutine(),
	}

	if maxAlloc == 0 {
		return Assessment{
			Level:   LevelNormal,
			Message: "memory stats unavailable",
			Details: details,
		}
	}

	usageRatio := float64(stats.Alloc) / float64(maxAlloc)
	details["usage_percent"] = usageRatio * 100

	switch {
	case usageRatio >= t.config.CriticalRatio:
		return Assessment{
			Level:   LevelCritical,
			Message: fmt.Sprintf("memory usage critical: %.1f%%", usageRatio*100),
			Details: details,
		}
	case usageRatio >= t.config.WarningRatio:
		return Assessment{
			Level:   LevelHigh,
			Message: fmt.Sprintf("memory usage high: %.1f%%", usageRatio*100),
			Details: details,
		}
	default:
		return Assessment{
			Level:   LevelNormal,
			Message: fmt.Sprintf("memory usage normal: %.1f%%", usageRatio*100),
			Details: details,
		}
	}
}

// ForceGC triggers a garbage collection.
// This is useful for tests or when you want accurate memory stats.
func (t *Threshold) ForceGC() {
	runtime.GC()
}
