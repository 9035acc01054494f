package monitor

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/jonwraymond/callops/observe"
	"github.com/jonwraymond/callops/usage"
)

// Call statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Record is the per-call execution record: what ran, how it went, and what
// it cost. It is logged, handed to the OnRecord callback, and discarded.
type Record struct {
	FunctionName  string       `json:"function_name"`
	Status        string       `json:"status"`
	Result        any          `json:"result,omitempty"`
	Errors        []string     `json:"errors,omitempty"`
	ExecutionTime float64      `json:"execution_time"` // seconds
	Memory        usage.Memory `json:"memory_usage"`
	CPUPercent    float64      `json:"cpu_usage"`
	Timestamp     string       `json:"timestamp"`
}

// JSON serializes the record.
func (r Record) JSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(r)
}

// fields flattens the record into structured log fields. The logger supplies
// its own timestamp, so the record's is omitted.
func (r Record) fields() []observe.Field {
	fields := []observe.Field{
		{Key: "status", Value: r.Status},
		{Key: "duration_ms", Value: r.ExecutionTime * 1000},
		{Key: "mem_before", Value: r.Memory.Before},
		{Key: "mem_after", Value: r.Memory.After},
		{Key: "mem_peak", Value: r.Memory.Peak},
		{Key: "mem_delta", Value: r.Memory.Delta},
		{Key: "cpu_percent", Value: r.CPUPercent},
	}
	if len(r.Errors) > 0 {
		fields = append(fields, observe.Field{Key: "errors", Value: r.Errors})
	}
	return fields
}
