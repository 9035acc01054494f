// Package observe provides observability primitives for instrumented
// function calls.
//
// It is a pure telemetry library: no execution, no transport, no I/O beyond
// exporter setup. Consumers wire the observer into the monitor wrapper.
package observe
