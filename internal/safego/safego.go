// Package safego launches background goroutines with panic recovery.
package safego

import "log/slog"

// Go runs fn in a new goroutine and recovers any panic, logging it instead of
// taking down the process. Use it for long-lived background work such as the
// metrics listener or the pool stats sampler, where an unrecovered panic would
// otherwise kill the goroutine without a trace.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered panic in background goroutine", "panic", r)
			}
		}()
		fn()
	}()
}
