package sdk

import (
	"time"
)

// Config holds client-wide settings. All fields have defaults; build a
// Config with the fluent pattern:
//
//	config := sdk.DefaultConfig().
//	    WithDeadline(10 * time.Second).
//	    WithLogger(sdk.NewLogrusLogger(l)).
//	    WithObserver(sdk.NewPrometheusObserver(prometheus.DefaultRegisterer))
//
// A Config is read-only after the client is constructed; the With*
// methods return modified copies so one base Config can be shared.
type Config struct {
	// Deadline is the per-call deadline applied when the caller's
	// context carries none. Default: 5s.
	Deadline time.Duration

	// RetryStrategy governs retries of idempotent operations.
	// Default: exponential backoff with jitter, 3 retries.
	RetryStrategy RetryStrategy

	// Logger receives trace-level request logs and warnings.
	// Default: logrus at warn level.
	Logger Logger

	// Observer receives per-operation monitoring events.
	// Default: NoopObserver.
	Observer Observer

	// PlainText disables TLS on the channel. Intended for local
	// development against a plaintext endpoint.
	PlainText bool
}

// DefaultConfig returns the configuration recommended for most
// workloads.
func DefaultConfig() *Config {
	return &Config{
		Deadline:      5 * time.Second,
		RetryStrategy: defaultRetryStrategy(),
		Logger:        defaultLogger(),
		Observer:      NoopObserver{},
	}
}

// LaptopConfig returns a configuration with lenient timeouts, suited to
// development environments with higher latency variance.
func LaptopConfig() *Config {
	c := DefaultConfig()
	c.Deadline = 15 * time.Second
	return c
}

// WithDeadline returns a copy with the given per-call deadline.
func (c *Config) WithDeadline(deadline time.Duration) *Config {
	out := *c
	out.Deadline = deadline
	return &out
}

// WithRetryStrategy returns a copy using the given retry strategy.
func (c *Config) WithRetryStrategy(strategy RetryStrategy) *Config {
	out := *c
	out.RetryStrategy = strategy
	return &out
}

// WithLogger returns a copy that logs through the given Logger.
func (c *Config) WithLogger(logger Logger) *Config {
	out := *c
	out.Logger = logger
	return &out
}

// WithObserver returns a copy that reports to the given Observer.
func (c *Config) WithObserver(observer Observer) *Config {
	out := *c
	out.Observer = observer
	return &out
}

// WithPlainText returns a copy that dials without TLS.
func (c *Config) WithPlainText() *Config {
	out := *c
	out.PlainText = true
	return &out
}

// normalize fills zero-valued fields with defaults so client code can
// rely on every field being usable.
func (c *Config) normalize() *Config {
	out := *c
	if out.Deadline <= 0 {
		out.Deadline = 5 * time.Second
	}
	if out.RetryStrategy == nil {
		out.RetryStrategy = defaultRetryStrategy()
	}
	if out.Logger == nil {
		out.Logger = defaultLogger()
	}
	if out.Observer == nil {
		out.Observer = NoopObserver{}
	}
	return &out
}
