package sdk

import (
	"math"
	"math/rand"
	"time"
)

// RetryStrategy decides whether a failed dispatch is attempted again
// and how long to wait first. Retries apply only to idempotent
// operations; the dispatch loop enforces that before consulting the
// strategy.
type RetryStrategy interface {
	// NextInterval returns the delay before retry number attempt
	// (starting at 1).
	NextInterval(attempt int) time.Duration

	// ShouldRetry reports whether the classified error warrants
	// another attempt.
	ShouldRetry(err *Error, attempt int) bool
}

// retryableCode reports whether an error kind can succeed on retry.
// Validation and semantic errors never can.
func retryableCode(code ErrorCode) bool {
	switch code {
	case ServerUnavailableError, TimeoutError, InternalServerError:
		return true
	default:
		return false
	}
}

// ExponentialBackoffStrategy waits exponentially longer between
// attempts, with jitter to avoid thundering herds.
type ExponentialBackoffStrategy struct {
	// InitialInterval is the base delay before the first retry.
	InitialInterval time.Duration
	// MaxInterval caps the delay.
	MaxInterval time.Duration
	// Multiplier grows the delay each attempt.
	Multiplier float64
	// Jitter is the fraction of the delay randomized (0 to 1).
	Jitter float64
	// MaxAttempts limits total attempts including the first. Zero
	// means 3 retries.
	MaxAttempts int
}

func (s *ExponentialBackoffStrategy) NextInterval(attempt int) time.Duration {
	interval := float64(s.InitialInterval) * math.Pow(s.Multiplier, float64(attempt-1))
	if s.MaxInterval > 0 && interval > float64(s.MaxInterval) {
		interval = float64(s.MaxInterval)
	}
	if s.Jitter > 0 {
		interval += interval * s.Jitter * (rand.Float64()*2 - 1)
	}
	if interval < 0 {
		interval = 0
	}
	return time.Duration(interval)
}

func (s *ExponentialBackoffStrategy) ShouldRetry(err *Error, attempt int) bool {
	max := s.MaxAttempts
	if max == 0 {
		max = 4
	}
	return attempt < max && retryableCode(err.ErrorCode())
}

// ConstantBackoffStrategy waits a fixed interval between attempts.
type ConstantBackoffStrategy struct {
	Interval    time.Duration
	MaxAttempts int
}

func (s *ConstantBackoffStrategy) NextInterval(int) time.Duration { return s.Interval }

func (s *ConstantBackoffStrategy) ShouldRetry(err *Error, attempt int) bool {
	return attempt < s.MaxAttempts && retryableCode(err.ErrorCode())
}

// NoRetryStrategy disables retries entirely.
type NoRetryStrategy struct{}

func (NoRetryStrategy) NextInterval(int) time.Duration  { return 0 }
func (NoRetryStrategy) ShouldRetry(*Error, int) bool    { return false }

func defaultRetryStrategy() RetryStrategy {
	return &ExponentialBackoffStrategy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		Jitter:          0.3,
	}
}
