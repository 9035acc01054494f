package usage

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sync/singleflight"
)

// Snapshot is a point-in-time reading of process and system resource usage.
type Snapshot struct {
	Time            time.Time
	RSS             uint64  // resident set size in bytes
	CPUPercent      float64 // process CPU usage since the previous reading
	HeapAlloc       uint64  // bytes allocated on the Go heap
	Goroutines      int
	SystemUsed      uint64 // system memory in use, bytes
	SystemAvailable uint64 // system memory available, bytes
}

// Sampler reads resource usage for the current process.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Context: Snapshot honors cancellation/deadlines on the underlying reads.
// - Errors: Snapshot returns an error only when the process handle itself is
//   unusable; individual failed readings are left at zero.
type Sampler struct {
	proc  *process.Process
	group singleflight.Group
}

// NewSampler creates a Sampler bound to the current process.
func NewSampler() (*Sampler, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessUnavailable, err)
	}
	return &Sampler{proc: proc}, nil
}

// Snapshot captures current process and system resource usage.
func (s *Sampler) Snapshot(ctx context.Context) (Snapshot, error) {
	if s == nil || s.proc == nil {
		return Snapshot{}, ErrProcessUnavailable
	}

	snap := Snapshot{
		Time:       time.Now(),
		Goroutines: runtime.NumGoroutine(),
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	snap.HeapAlloc = stats.HeapAlloc

	if info, err := s.proc.MemoryInfoWithContext(ctx); err == nil && info != nil {
		snap.RSS = info.RSS
	}

	// CPUPercent is stateful per process handle: it reports usage since the
	// previous call on the same handle.
	if pct, err := s.proc.CPUPercentWithContext(ctx); err == nil {
		snap.CPUPercent = pct
	}

	// System-wide memory is the same for every in-flight caller; collapse
	// concurrent reads into one.
	v, err, _ := s.group.Do("vmem", func() (any, error) {
		return mem.VirtualMemoryWithContext(ctx)
	})
	if err == nil {
		if vmem, ok := v.(*mem.VirtualMemoryStat); ok && vmem != nil {
			snap.SystemUsed = vmem.Used
			snap.SystemAvailable = vmem.Available
		}
	}

	return snap, nil
}

// Memory summarizes resident memory across a call.
type Memory struct {
	Before uint64 `json:"before"`
	After  uint64 `json:"after"`
	Peak   uint64 `json:"peak"`
	Delta  int64  `json:"delta"`
}

// Usage summarizes resource consumption between two snapshots.
type Usage struct {
	Memory     Memory        `json:"memory_usage"`
	CPUPercent float64       `json:"cpu_usage"`
	Elapsed    time.Duration `json:"-"`
}

// Between computes the resource usage between two snapshots.
// CPU is reported as the higher of the two readings.
func Between(before, after Snapshot) Usage {
	peak := after.RSS
	if before.RSS > peak {
		peak = before.RSS
	}

	cpu := after.CPUPercent
	if before.CPUPercent > cpu {
		cpu = before.CPUPercent
	}

	return Usage{
		Memory: Memory{
			Before: before.RSS,
			After:  after.RSS,
			Peak:   peak,
			Delta:  int64(after.RSS) - int64(before.RSS),
		},
		CPUPercent: cpu,
		Elapsed:    after.Time.Sub(before.Time),
	}
}
