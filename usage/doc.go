// Package usage samples process resource consumption around instrumented
// calls: resident memory, CPU percentage, and system memory, via gopsutil.
//
// Sampling is best-effort. A Snapshot that could not be fully populated
// carries zero values for the missing readings rather than failing the call
// that requested it.
package usage
