package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records channel metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEmit records a finished or aborted broadcast.
	RecordEmit(ctx context.Context, channel string, delivered, skipped int, duration time.Duration, aborted bool)

	// RecordSubscription records a change in the number of registered listeners.
	RecordSubscription(ctx context.Context, channel string, delta int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	emits         metric.Int64Counter
	emitLatency   metric.Float64Histogram
	deliveries    metric.Int64Counter
	skips         metric.Int64Counter
	aborted       metric.Int64Counter
	subscriptions metric.Int64UpDownCounter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typedevents")

	emits, err := meter.Int64Counter("typedevents.emits",
		metric.WithDescription("Number of broadcasts"),
	)
	if err != nil {
		return nil, err
	}

	emitLatency, err := meter.Float64Histogram("typedevents.emit.latency_ms",
		metric.WithDescription("Broadcast latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter("typedevents.deliveries",
		metric.WithDescription("Number of listener invocations"),
	)
	if err != nil {
		return nil, err
	}

	skips, err := meter.Int64Counter("typedevents.skips",
		metric.WithDescription("Number of snapshot entries skipped because they were unsubscribed mid-broadcast"),
	)
	if err != nil {
		return nil, err
	}

	aborted, err := meter.Int64Counter("typedevents.emit.aborted",
		metric.WithDescription("Number of broadcasts aborted by a panicking listener"),
	)
	if err != nil {
		return nil, err
	}

	subscriptions, err := meter.Int64UpDownCounter("typedevents.subscriptions",
		metric.WithDescription("Number of registered listeners"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		emits:         emits,
		emitLatency:   emitLatency,
		deliveries:    deliveries,
		skips:         skips,
		aborted:       aborted,
		subscriptions: subscriptions,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEmit records a broadcast.
func (m *otelMetrics) RecordEmit(ctx context.Context, channel string, delivered, skipped int, duration time.Duration, aborted bool) {
	attrs := metric.WithAttributes(attribute.String("channel", channel))

	m.emits.Add(ctx, 1, attrs)
	m.emitLatency.Record(ctx, Milliseconds(duration), attrs)
	m.deliveries.Add(ctx, int64(delivered), attrs)

	if skipped > 0 {
		m.skips.Add(ctx, int64(skipped), attrs)
	}
	if aborted {
		m.aborted.Add(ctx, 1, attrs)
	}
}

// RecordSubscription records a listener count change.
func (m *otelMetrics) RecordSubscription(ctx context.Context, channel string, delta int64) {
	m.subscriptions.Add(ctx, delta, metric.WithAttributes(attribute.String("channel", channel)))
}
