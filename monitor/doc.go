// Package monitor wraps function calls with structured logging, input/output
// validation, resource-usage measurement, and panic capture.
//
// Each wrapped call runs a fixed pre/post sequence: sample resource usage,
// validate the input, invoke the function, sample again, validate the output,
// then emit a Record through the configured telemetry. The wrapped function's
// result and error pass through unchanged unless error suppression is
// configured.
package monitor
