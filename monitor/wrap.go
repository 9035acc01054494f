package monitor

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/jonwraymond/callops/observe"
	"github.com/jonwraymond/callops/usage"
	"github.com/jonwraymond/callops/validate"
)

// Func is the signature of an instrumentable function.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Wrap instruments fn with the monitor's logging, validation, resource
// sampling, and panic capture.
//
// Contract:
//   - Pass-through: on success the result and error of fn reach the caller
//     unmodified.
//   - Input validation failure prevents the invocation of fn.
//   - Output validation failure flips the record status but does not discard
//     the result.
//   - The returned Func never panics unless Config.PropagatePanics is set.
//
// A nil Monitor returns fn unwrapped.
func Wrap[In, Out any](m *Monitor, meta observe.CallMeta, fn Func[In, Out]) Func[In, Out] {
	if m == nil {
		return fn
	}

	return func(ctx context.Context, in In) (Out, error) {
		start := time.Now()

		var before usage.Snapshot
		if m.sampler != nil {
			before, _ = m.sampler.Snapshot(ctx)
		}

		ctx, span := m.tracer.StartSpan(ctx, meta)

		var (
			result   Out
			callErr  error
			status   = StatusSuccess
			recorded []string
		)

		// Input validation
		if m.cfg.ValidateInput {
			if verr := validate.Check(in); verr != nil {
				callErr = fmt.Errorf("%w: %w", ErrInputInvalid, verr)
				recorded = append(recorded, callErr.Error())
				status = StatusError
			}
		}

		// Invoke only when input validation passed
		if callErr == nil {
			result, callErr = invoke(ctx, fn, in)

			if callErr != nil {
				status = StatusError
				recorded = append(recorded, fmt.Sprintf("execution error: %v", callErr))
				if pe, ok := callErr.(*PanicError); ok {
					recorded = append(recorded, fmt.Sprintf("stack: %s", pe.Stack))
				}
			} else if m.cfg.ValidateOutput {
				if verr := validate.Check(result); verr != nil {
					callErr = fmt.Errorf("%w: %w", ErrOutputInvalid, verr)
					recorded = append(recorded, callErr.Error())
					status = StatusError
				}
			}
		}

		duration := time.Since(start)

		var after usage.Snapshot
		if m.sampler != nil {
			after, _ = m.sampler.Snapshot(ctx)
		}
		u := usage.Between(before, after)

		m.tracer.EndSpan(span, callErr)
		m.metrics.RecordExecution(ctx, meta, duration, callErr)
		m.metrics.RecordMemoryDelta(ctx, meta, u.Memory.Delta)

		rec := Record{
			FunctionName:  meta.CallID(),
			Status:        status,
			Result:        resultForRecord(result, status),
			Errors:        recorded,
			ExecutionTime: duration.Seconds(),
			Memory:        u.Memory,
			CPUPercent:    u.CPUPercent,
			Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		}

		if m.cfg.LogExecution {
			callLogger := m.logger.WithCall(meta)
			fields := rec.fields()
			if status == StatusSuccess {
				if m.cfg.LogLevel == "debug" {
					callLogger.Debug(ctx, "call completed", fields...)
				} else {
					callLogger.Info(ctx, "call completed", fields...)
				}
			} else {
				callLogger.Error(ctx, "call failed", fields...)
			}
		}

		if m.threshold != nil {
			if a := m.threshold.Classify(); a.Level != usage.LevelNormal {
				m.logger.WithCall(meta).Warn(ctx, a.Message,
					observe.Field{Key: "memory_level", Value: a.Level.String()},
				)
			}
		}

		if m.onRecord != nil {
			m.onRecord(rec)
		}

		if callErr != nil {
			if pe, ok := callErr.(*PanicError); ok && m.cfg.PropagatePanics {
				panic(pe.Value)
			}
			if m.cfg.SuppressErrors {
				var zero Out
				return zero, nil
			}
			// Output validation failures still carry the result.
			return result, callErr
		}

		return result, nil
	}
}

// resultForRecord keeps the result out of error records, matching the
// zero-result contract of failed calls.
func resultForRecord[Out any](result Out, status string) any {
	if status != StatusSuccess {
		return nil
	}
	return result
}

// invoke runs fn, converting a panic into a *PanicError.
func invoke[In, Out any](ctx context.Context, fn Func[In, Out], in In) (out Out, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(ctx, in)
}
