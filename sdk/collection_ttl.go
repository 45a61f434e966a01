package sdk

import "time"

// CollectionTTL controls the expiry the service applies when writing to
// a dictionary, list or set. It either inherits the client's default
// TTL or carries an explicit duration, and its RefreshTTL flag says
// whether the write should reset the container's remaining expiry.
// Immutable once constructed; the With* methods return copies.
type CollectionTTL struct {
	ttl        time.Duration
	hasTTL     bool
	refreshTTL bool
}

// CollectionTTLFromCacheTTL inherits the client's default TTL and
// refreshes the container's expiry on every update. This is the
// behavior collection writes get when no CollectionTTL is supplied.
func CollectionTTLFromCacheTTL() CollectionTTL {
	return CollectionTTL{refreshTTL: true}
}

// CollectionTTLOf uses an explicit TTL and refreshes on update. The
// duration must be positive; a non-positive value makes every write
// carrying it fail with InvalidArgumentError.
func CollectionTTLOf(ttl time.Duration) CollectionTTL {
	return CollectionTTL{ttl: ttl, hasTTL: true, refreshTTL: true}
}

// RefreshTTLIfProvided uses the given TTL and refreshes only when one
// was actually provided.
func RefreshTTLIfProvided(ttl time.Duration) CollectionTTL {
	if ttl > 0 {
		return CollectionTTL{ttl: ttl, hasTTL: true, refreshTTL: true}
	}
	return CollectionTTL{refreshTTL: false}
}

// WithRefreshTTLOnUpdates returns a copy that resets the container's
// expiry whenever it is written.
func (c CollectionTTL) WithRefreshTTLOnUpdates() CollectionTTL {
	c.refreshTTL = true
	return c
}

// WithNoRefreshTTLOnUpdates returns a copy that leaves the container's
// remaining expiry untouched on write.
func (c CollectionTTL) WithNoRefreshTTLOnUpdates() CollectionTTL {
	c.refreshTTL = false
	return c
}

// RefreshTTL reports whether writes should reset the container expiry.
func (c CollectionTTL) RefreshTTL() bool { return c.refreshTTL }

// resolve returns the effective TTL for a write: the explicit value if
// present, otherwise the client default.
func (c CollectionTTL) resolve(defaultTTL time.Duration) time.Duration {
	if c.hasTTL {
		return c.ttl
	}
	return defaultTTL
}

// resolveMillis resolves the effective TTL and rejects non-positive
// values before any request is built around them.
func (c CollectionTTL) resolveMillis(defaultTTL time.Duration) (int64, *Error) {
	resolved := c.resolve(defaultTTL)
	if err := validateTTL(resolved); err != nil {
		return 0, err
	}
	return resolved.Milliseconds(), nil
}
