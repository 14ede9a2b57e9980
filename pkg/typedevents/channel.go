package typedevents

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/typedevents/pkg/typedevents/observability"
	"github.com/randalmurphal/typedevents/pkg/typedevents/registry"
)

// Listener receives values broadcast on a Channel.
type Listener[T any] func(T)

// Unsubscribe removes the registration it was returned for.
// Calling it more than once is a no-op.
type Unsubscribe func()

// Channel is a synchronous broadcast channel for values of type T.
// The zero value is not usable; create channels with New.
type Channel[T any] struct {
	name      string
	listeners *registry.Ordered[Listener[T]]

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an empty channel.
func New[T any](opts ...Option) *Channel[T] {
	cfg := defaultChannelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var metrics observability.MetricsRecorder = observability.NoopMetrics{}
	if cfg.metricsEnabled {
		metrics = observability.NewMetricsRecorder()
	}

	var spans observability.SpanManager = observability.NoopSpanManager{}
	if cfg.tracingEnabled {
		spans = observability.NewSpanManager()
	}

	return &Channel[T]{
		name:      cfg.name,
		listeners: registry.NewOrdered[Listener[T]](),
		logger:    observability.EnrichLogger(cfg.logger, cfg.name),
		metrics:   metrics,
		spans:     spans,
	}
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.name
}

// Len returns the number of registered listeners.
func (c *Channel[T]) Len() int {
	return c.listeners.Len()
}

// Subscribe appends listener to the channel and returns a handle that
// removes this registration. A nil listener is registered but never called.
func (c *Channel[T]) Subscribe(listener Listener[T]) Unsubscribe {
	entry := c.listeners.Add(listener)
	c.metrics.RecordSubscription(context.Background(), c.name, 1)
	observability.LogSubscribe(c.logger, entry.ID, c.listeners.Len())

	return func() {
		if !c.listeners.Remove(entry) {
			return
		}
		c.metrics.RecordSubscription(context.Background(), c.name, -1)
		observability.LogUnsubscribe(c.logger, entry.ID, c.listeners.Len())
	}
}

// Emit calls every listener registered when Emit starts, in subscription
// order, skipping those unsubscribed before their turn. It returns once the
// whole snapshot has been visited. A panicking listener aborts the broadcast
// and the panic propagates to the caller.
func (c *Channel[T]) Emit(v T) {
	snapshot := c.listeners.Snapshot()

	ctx, span := c.spans.StartEmitSpan(context.Background(), c.name, len(snapshot))
	observability.LogEmitStart(c.logger, len(snapshot))
	elapsed := observability.TimedOperation()

	var (
		delivered, skipped int
		current            *registry.Entry[Listener[T]]
		finished           bool
	)
	defer func() {
		d := elapsed()
		if finished {
			c.metrics.RecordEmit(ctx, c.name, delivered, skipped, d, false)
			observability.LogEmitComplete(c.logger, delivered, skipped, observability.Milliseconds(d))
			c.spans.EndSpanWithError(span, nil)
			return
		}

		// Not recovered: the listener's panic keeps unwinding past us.
		c.metrics.RecordEmit(ctx, c.name, delivered, skipped, d, true)
		observability.LogEmitAborted(c.logger, current.ID, delivered, observability.Milliseconds(d))
		c.spans.EndSpanWithError(span, &AbortError{
			Channel:        c.name,
			SubscriptionID: current.ID,
			Delivered:      delivered,
		})
	}()

	for _, entry := range snapshot {
		if !c.listeners.Contains(entry) {
			skipped++
			c.spans.AddSpanEvent(ctx, "listener.skipped",
				attribute.String("subscription_id", entry.ID))
			continue
		}
		if entry.Value == nil {
			continue
		}

		current = entry
		entry.Value(v)
		delivered++
	}

	finished = true
}
