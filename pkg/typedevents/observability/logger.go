// Package observability provides opt-in observability for typedevents
// channels: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// None of them change delivery semantics.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds channel context to a logger.
// Returns a new logger with the channel field set.
//
// Example:
//
//	enriched := EnrichLogger(logger, "cart-updated")
//	enriched.Debug("subscribed") // includes channel
func EnrichLogger(logger *slog.Logger, channel string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("channel", channel))
}

// LogSubscribe logs a new listener registration.
func LogSubscribe(logger *slog.Logger, subscriptionID string, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("listener subscribed",
		slog.String("subscription_id", subscriptionID),
		slog.Int("listeners", listeners),
	)
}

// LogUnsubscribe logs the removal of a listener registration.
func LogUnsubscribe(logger *slog.Logger, subscriptionID string, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("listener unsubscribed",
		slog.String("subscription_id", subscriptionID),
		slog.Int("listeners", listeners),
	)
}

// LogEmitStart logs the start of a broadcast.
func LogEmitStart(logger *slog.Logger, listeners int) {
	if logger == nil {
		return
	}
	logger.Debug("emit starting",
		slog.Int("listeners", listeners),
	)
}

// LogEmitComplete logs a broadcast that visited its whole snapshot.
func LogEmitComplete(logger *slog.Logger, delivered, skipped int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("emit completed",
		slog.Int("delivered", delivered),
		slog.Int("skipped", skipped),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEmitAborted logs a broadcast cut short by a panicking listener.
// The panic itself keeps propagating; this only records where it happened.
func LogEmitAborted(logger *slog.Logger, subscriptionID string, delivered int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("emit aborted",
		slog.String("subscription_id", subscriptionID),
		slog.Int("delivered", delivered),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
