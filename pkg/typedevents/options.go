package typedevents

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/typedevents/pkg/typedevents/config"
)

// channelConfig holds construction-time settings for a channel.
type channelConfig struct {
	name           string
	logger         *slog.Logger
	metricsEnabled bool
	tracingEnabled bool
}

// defaultChannelConfig returns settings with observability disabled.
func defaultChannelConfig() channelConfig {
	return channelConfig{
		name: "chan-" + uuid.NewString()[:8],
	}
}

// Option configures a channel at construction.
type Option func(*channelConfig)

// WithName sets the channel name used in logs, metrics and spans.
// Default: "chan-" followed by 8 random hex characters.
// Empty names are ignored.
func WithName(name string) Option {
	return func(c *channelConfig) {
		if name != "" {
			c.name = name
		}
	}
}

// WithObservabilityLogger enables structured logging of subscriptions and
// broadcasts. Records are emitted at DEBUG level, aborted broadcasts at
// ERROR level. A nil logger disables logging.
func WithObservabilityLogger(logger *slog.Logger) Option {
	return func(c *channelConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
func WithMetrics(enabled bool) Option {
	return func(c *channelConfig) {
		c.metricsEnabled = enabled
	}
}

// WithTracing enables OpenTelemetry tracing using the global tracer provider.
// Each Emit produces one span.
func WithTracing(enabled bool) Option {
	return func(c *channelConfig) {
		c.tracingEnabled = enabled
	}
}

// OptionsFromConfig translates a config section into channel options.
//
// Recognized keys:
//   - name (string): channel name
//   - metrics (bool): enable metrics
//   - tracing (bool): enable tracing
//   - log_level (string): minimum level for channel logs, default "info"
//   - log_format (string): "json" (default) or "text"
//
// Absent keys produce no option, so options passed before these to New
// keep their effect. Logs are written to w; a nil w disables logging
// regardless of log_level.
func OptionsFromConfig(cfg config.Config, w io.Writer) []Option {
	var opts []Option
	if cfg.Has("name") {
		opts = append(opts, WithName(cfg.String("name", "")))
	}
	if cfg.Has("metrics") {
		opts = append(opts, WithMetrics(cfg.Bool("metrics", false)))
	}
	if cfg.Has("tracing") {
		opts = append(opts, WithTracing(cfg.Bool("tracing", false)))
	}

	if w != nil {
		handlerOpts := &slog.HandlerOptions{Level: cfg.Level("log_level", slog.LevelInfo)}

		var handler slog.Handler
		if cfg.String("log_format", "json") == "text" {
			handler = slog.NewTextHandler(w, handlerOpts)
		} else {
			handler = slog.NewJSONHandler(w, handlerOpts)
		}
		opts = append(opts, WithObservabilityLogger(slog.New(handler)))
	}

	return opts
}
