package sdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 5*time.Second, c.Deadline)
	assert.NotNil(t, c.RetryStrategy)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.Observer)
	assert.False(t, c.PlainText)
}

func TestLaptopConfigHasLenientDeadline(t *testing.T) {
	assert.Equal(t, 15*time.Second, LaptopConfig().Deadline)
}

func TestWithMethodsReturnCopies(t *testing.T) {
	base := DefaultConfig()
	modified := base.
		WithDeadline(time.Second).
		WithRetryStrategy(NoRetryStrategy{}).
		WithPlainText()

	assert.Equal(t, time.Second, modified.Deadline)
	assert.IsType(t, NoRetryStrategy{}, modified.RetryStrategy)
	assert.True(t, modified.PlainText)

	assert.Equal(t, 5*time.Second, base.Deadline)
	assert.False(t, base.PlainText)
}

func TestNormalizeFillsZeroFields(t *testing.T) {
	c := (&Config{}).normalize()
	assert.Equal(t, 5*time.Second, c.Deadline)
	assert.NotNil(t, c.RetryStrategy)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.Observer)
}

func TestExponentialBackoffIntervalGrowth(t *testing.T) {
	s := &ExponentialBackoffStrategy{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2.0,
	}
	assert.Equal(t, 100*time.Millisecond, s.NextInterval(1))
	assert.Equal(t, 200*time.Millisecond, s.NextInterval(2))
	assert.Equal(t, 400*time.Millisecond, s.NextInterval(3))
	// Capped.
	assert.Equal(t, time.Second, s.NextInterval(10))
}

func TestExponentialBackoffOnlyRetriesTransientCodes(t *testing.T) {
	s := &ExponentialBackoffStrategy{InitialInterval: time.Millisecond, Multiplier: 2.0}

	transient := newError(ServerUnavailableError, "down", nil)
	assert.True(t, s.ShouldRetry(transient, 1))
	assert.False(t, s.ShouldRetry(transient, 4), "attempt budget exhausted")

	semantic := invalidArgument("bad request")
	assert.False(t, s.ShouldRetry(semantic, 1))
}

func TestNoRetryStrategy(t *testing.T) {
	s := NoRetryStrategy{}
	assert.False(t, s.ShouldRetry(newError(ServerUnavailableError, "down", nil), 1))
}

func TestCollectionTTLResolution(t *testing.T) {
	defaultTTL := time.Minute

	inherited := CollectionTTLFromCacheTTL()
	assert.Equal(t, defaultTTL, inherited.resolve(defaultTTL))
	assert.True(t, inherited.RefreshTTL())

	explicit := CollectionTTLOf(10 * time.Second)
	assert.Equal(t, 10*time.Second, explicit.resolve(defaultTTL))
	assert.True(t, explicit.RefreshTTL())

	noRefresh := explicit.WithNoRefreshTTLOnUpdates()
	assert.False(t, noRefresh.RefreshTTL())
	// The original is unchanged.
	assert.True(t, explicit.RefreshTTL())

	provided := RefreshTTLIfProvided(5 * time.Second)
	assert.Equal(t, 5*time.Second, provided.resolve(defaultTTL))
	assert.True(t, provided.RefreshTTL())

	notProvided := RefreshTTLIfProvided(0)
	assert.Equal(t, defaultTTL, notProvided.resolve(defaultTTL))
	assert.False(t, notProvided.RefreshTTL())
}
