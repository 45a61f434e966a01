package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/birbparty/roost-go/internal/protocol"
)

// CacheClient is the entry point for cache operations, control plane
// and data plane alike. It is safe for concurrent use; one client per
// process is the intended pattern. For concurrency, launch operations
// in goroutines; every method is a single blocking call honoring its
// context.
//
// Construction is the only place a plain error is returned. Once a
// client exists, every operation yields a response interface whose
// Error variant carries the failure; methods never return (response,
// error) pairs.
type CacheClient struct {
	core       clientCore
	defaultTTL time.Duration
	control    protocol.ControlStub
	cache      protocol.CacheStub
	channel    *grpcChannel
}

// NewCacheClient dials the cache endpoint carried by the credential.
// defaultTTL applies to every write that does not specify its own TTL
// and must be positive.
func NewCacheClient(config *Config, provider CredentialProvider, defaultTTL time.Duration) (*CacheClient, error) {
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("default TTL must be a positive duration, got %s", defaultTTL)
	}
	cfg := config.normalize()
	channel, err := dialChannel(provider.CacheEndpoint(), provider, cfg)
	if err != nil {
		return nil, err
	}
	client := newCacheClient(cfg, defaultTTL, grpcControlStub{channel}, grpcCacheStub{channel})
	client.channel = channel
	return client, nil
}

// newCacheClient wires a client to explicit stubs. Tests use this to
// substitute the in-memory binding.
func newCacheClient(config *Config, defaultTTL time.Duration, control protocol.ControlStub, cache protocol.CacheStub) *CacheClient {
	return &CacheClient{
		core:       newClientCore(config),
		defaultTTL: defaultTTL,
		control:    control,
		cache:      cache,
	}
}

// Close releases the underlying connection. The client must not be
// used afterwards.
func (c *CacheClient) Close() error {
	return c.channel.Close()
}

// Control plane.

// CreateCache creates a cache. Creating a cache that already exists
// yields *CreateCacheError with AlreadyExistsError.
func (c *CacheClient) CreateCache(ctx context.Context, cacheName string) CreateCacheResponse {
	if err := validateCacheName(cacheName); err != nil {
		return &CreateCacheError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "CreateCache", cacheName, false, func(ctx context.Context) (*protocol.CreateCacheResponse, error) {
		return c.control.CreateCache(ctx, &protocol.CreateCacheRequest{CacheName: cacheName})
	})
	if rerr != nil {
		return &CreateCacheError{errorResponse{err: rerr}}
	}
	return &CreateCacheSuccess{}
}

// DeleteCache deletes a cache and all its contents. Deleting a cache
// that does not exist yields *DeleteCacheError with NotFoundError.
func (c *CacheClient) DeleteCache(ctx context.Context, cacheName string) DeleteCacheResponse {
	if err := validateCacheName(cacheName); err != nil {
		return &DeleteCacheError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "DeleteCache", cacheName, false, func(ctx context.Context) (*protocol.DeleteCacheResponse, error) {
		return c.control.DeleteCache(ctx, &protocol.DeleteCacheRequest{CacheName: cacheName})
	})
	if rerr != nil {
		return &DeleteCacheError{errorResponse{err: rerr}}
	}
	return &DeleteCacheSuccess{}
}

// ListCaches lists the caches visible to the credential.
func (c *CacheClient) ListCaches(ctx context.Context) ListCachesResponse {
	resp, rerr := dispatch(ctx, &c.core, "ListCaches", "", true, func(ctx context.Context) (*protocol.ListCachesResponse, error) {
		return c.control.ListCaches(ctx, &protocol.ListCachesRequest{})
	})
	if rerr != nil {
		return &ListCachesError{errorResponse{err: rerr}}
	}
	caches := make([]CacheInfo, 0, len(resp.Caches))
	for _, info := range resp.Caches {
		caches = append(caches, CacheInfo{Name: info.Name})
	}
	return &ListCachesSuccess{caches: caches, nextToken: resp.NextToken}
}

// Scalar data plane.

// Set stores a value under key with the client's default TTL,
// unconditionally overwriting any previous value.
func (c *CacheClient) Set(ctx context.Context, cacheName string, key, value Value) CacheSetResponse {
	return c.SetWithTTL(ctx, cacheName, key, value, c.defaultTTL)
}

// SetWithTTL stores a value under key with an explicit TTL.
func (c *CacheClient) SetWithTTL(ctx context.Context, cacheName string, key, value Value, ttl time.Duration) CacheSetResponse {
	if err := c.validateKeyed(cacheName, key, value, ttl); err != nil {
		return &CacheSetError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "Set", cacheName, true, func(ctx context.Context) (*protocol.SetResponse, error) {
		return c.cache.Set(ctx, &protocol.SetRequest{
			CacheName:       cacheName,
			CacheKey:        key.asBytes(),
			CacheBody:       value.asBytes(),
			TTLMilliseconds: ttl.Milliseconds(),
		})
	})
	if rerr != nil {
		return &CacheSetError{errorResponse{err: rerr}}
	}
	return &CacheSetSuccess{}
}

// SetIfNotExists stores a value under key only when the key is absent,
// using the client's default TTL. The outcome distinguishes
// *CacheSetIfNotExistsStored from *CacheSetIfNotExistsNotStored.
func (c *CacheClient) SetIfNotExists(ctx context.Context, cacheName string, key, value Value) CacheSetIfNotExistsResponse {
	return c.SetIfNotExistsWithTTL(ctx, cacheName, key, value, c.defaultTTL)
}

// SetIfNotExistsWithTTL is SetIfNotExists with an explicit TTL.
func (c *CacheClient) SetIfNotExistsWithTTL(ctx context.Context, cacheName string, key, value Value, ttl time.Duration) CacheSetIfNotExistsResponse {
	if err := c.validateKeyed(cacheName, key, value, ttl); err != nil {
		return &CacheSetIfNotExistsError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "SetIfNotExists", cacheName, false, func(ctx context.Context) (*protocol.SetIfNotExistsResponse, error) {
		return c.cache.SetIfNotExists(ctx, &protocol.SetIfNotExistsRequest{
			CacheName:       cacheName,
			CacheKey:        key.asBytes(),
			CacheBody:       value.asBytes(),
			TTLMilliseconds: ttl.Milliseconds(),
		})
	})
	if rerr != nil {
		return &CacheSetIfNotExistsError{errorResponse{err: rerr}}
	}
	switch resp.Result {
	case protocol.StoreResultStored:
		return &CacheSetIfNotExistsStored{}
	case protocol.StoreResultNotStored:
		return &CacheSetIfNotExistsNotStored{}
	default:
		return &CacheSetIfNotExistsError{errorResponse{err: unknownResponse("SetIfNotExists")}}
	}
}

// Get looks up a key. An absent or expired key is a *CacheGetMiss, not
// an error.
func (c *CacheClient) Get(ctx context.Context, cacheName string, key Value) CacheGetResponse {
	if err := validateCacheName(cacheName); err != nil {
		return &CacheGetError{errorResponse{err: err}}
	}
	if err := validateValue(key, "key"); err != nil {
		return &CacheGetError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "Get", cacheName, true, func(ctx context.Context) (*protocol.GetResponse, error) {
		return c.cache.Get(ctx, &protocol.GetRequest{CacheName: cacheName, CacheKey: key.asBytes()})
	})
	if rerr != nil {
		return &CacheGetError{errorResponse{err: rerr}}
	}
	switch resp.Result {
	case protocol.ResultHit:
		c.core.observer.OnCacheHit("Get", cacheName)
		return &CacheGetHit{byteValue(resp.CacheBody)}
	case protocol.ResultMiss:
		c.core.observer.OnCacheMiss("Get", cacheName)
		return &CacheGetMiss{}
	default:
		return &CacheGetError{errorResponse{err: unknownResponse("Get")}}
	}
}

// Delete removes a key. Deleting an absent key still succeeds.
func (c *CacheClient) Delete(ctx context.Context, cacheName string, key Value) CacheDeleteResponse {
	if err := validateCacheName(cacheName); err != nil {
		return &CacheDeleteError{errorResponse{err: err}}
	}
	if err := validateValue(key, "key"); err != nil {
		return &CacheDeleteError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "Delete", cacheName, true, func(ctx context.Context) (*protocol.DeleteResponse, error) {
		return c.cache.Delete(ctx, &protocol.DeleteRequest{CacheName: cacheName, CacheKey: key.asBytes()})
	})
	if rerr != nil {
		return &CacheDeleteError{errorResponse{err: rerr}}
	}
	return &CacheDeleteSuccess{}
}

// Increment adds amount to the integer stored under field, creating it
// at amount when absent, with the client's default TTL. A value that
// is not a base-10 integer yields FailedPreconditionError.
func (c *CacheClient) Increment(ctx context.Context, cacheName string, field Value, amount int64) CacheIncrementResponse {
	return c.IncrementWithTTL(ctx, cacheName, field, amount, c.defaultTTL)
}

// IncrementWithTTL is Increment with an explicit TTL.
func (c *CacheClient) IncrementWithTTL(ctx context.Context, cacheName string, field Value, amount int64, ttl time.Duration) CacheIncrementResponse {
	if err := validateCacheName(cacheName); err != nil {
		return &CacheIncrementError{errorResponse{err: err}}
	}
	if err := validateValue(field, "field"); err != nil {
		return &CacheIncrementError{errorResponse{err: err}}
	}
	if err := validateTTL(ttl); err != nil {
		return &CacheIncrementError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "Increment", cacheName, false, func(ctx context.Context) (*protocol.IncrementResponse, error) {
		return c.cache.Increment(ctx, &protocol.IncrementRequest{
			CacheName:       cacheName,
			CacheKey:        field.asBytes(),
			Amount:          amount,
			TTLMilliseconds: ttl.Milliseconds(),
		})
	})
	if rerr != nil {
		return &CacheIncrementError{errorResponse{err: rerr}}
	}
	return &CacheIncrementSuccess{value: resp.Value}
}

func (c *CacheClient) validateKeyed(cacheName string, key, value Value, ttl time.Duration) *Error {
	if err := validateCacheName(cacheName); err != nil {
		return err
	}
	if err := validateValue(key, "key"); err != nil {
		return err
	}
	if err := validateValue(value, "value"); err != nil {
		return err
	}
	return validateTTL(ttl)
}
