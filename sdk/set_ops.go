package sdk

import (
	"context"

	"github.com/birbparty/roost-go/internal/protocol"
)

// Set operations. A set holds unique byte elements under one cache
// key. Adding is a union with the existing elements, so repeated adds
// are harmless.

// SetAddElements adds elements to the set, inheriting the client's
// default TTL.
func (c *CacheClient) SetAddElements(ctx context.Context, cacheName, setName string, elements []Value) CacheSetAddElementsResponse {
	return c.SetAddElementsWithTTL(ctx, cacheName, setName, elements, CollectionTTLFromCacheTTL())
}

// SetAddElementsWithTTL adds elements with explicit TTL behavior.
func (c *CacheClient) SetAddElementsWithTTL(ctx context.Context, cacheName, setName string, elements []Value, ttl CollectionTTL) CacheSetAddElementsResponse {
	raw, err := c.validateSetElements(cacheName, setName, elements)
	if err != nil {
		return &CacheSetAddElementsError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheSetAddElementsError{errorResponse{err: terr}}
	}
	_, rerr := dispatch(ctx, &c.core, "SetAddElements", cacheName, true, func(ctx context.Context) (*protocol.SetUnionResponse, error) {
		return c.cache.SetUnion(ctx, &protocol.SetUnionRequest{
			CacheName:       cacheName,
			SetName:         []byte(setName),
			Elements:        raw,
			TTLMilliseconds: ttlMillis,
			RefreshTTL:      ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheSetAddElementsError{errorResponse{err: rerr}}
	}
	return &CacheSetAddElementsSuccess{}
}

// SetRemoveElements removes elements from the set. Absent elements and
// an absent set still succeed.
func (c *CacheClient) SetRemoveElements(ctx context.Context, cacheName, setName string, elements []Value) CacheSetRemoveElementsResponse {
	raw, err := c.validateSetElements(cacheName, setName, elements)
	if err != nil {
		return &CacheSetRemoveElementsError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "SetRemoveElements", cacheName, true, func(ctx context.Context) (*protocol.SetDifferenceResponse, error) {
		return c.cache.SetDifference(ctx, &protocol.SetDifferenceRequest{
			CacheName: cacheName,
			SetName:   []byte(setName),
			Elements:  raw,
		})
	})
	if rerr != nil {
		return &CacheSetRemoveElementsError{errorResponse{err: rerr}}
	}
	return &CacheSetRemoveElementsSuccess{}
}

// SetFetch retrieves every element of the set. An absent set is a
// miss; element order is unspecified.
func (c *CacheClient) SetFetch(ctx context.Context, cacheName, setName string) CacheSetFetchResponse {
	if err := c.validateCollection(cacheName, setName, "set"); err != nil {
		return &CacheSetFetchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "SetFetch", cacheName, true, func(ctx context.Context) (*protocol.SetFetchResponse, error) {
		return c.cache.SetFetch(ctx, &protocol.SetFetchRequest{CacheName: cacheName, SetName: []byte(setName)})
	})
	if rerr != nil {
		return &CacheSetFetchError{errorResponse{err: rerr}}
	}
	switch resp.Set {
	case protocol.FoundYes:
		c.core.observer.OnCacheHit("SetFetch", cacheName)
		return &CacheSetFetchHit{elements: resp.Elements}
	case protocol.FoundMissing:
		c.core.observer.OnCacheMiss("SetFetch", cacheName)
		return &CacheSetFetchMiss{}
	default:
		return &CacheSetFetchError{errorResponse{err: unknownResponse("SetFetch")}}
	}
}

func (c *CacheClient) validateSetElements(cacheName, setName string, elements []Value) ([][]byte, *Error) {
	if err := c.validateCollection(cacheName, setName, "set"); err != nil {
		return nil, err
	}
	raw, verr := valuesAsBytes(elements, "elements")
	if verr != nil {
		return nil, verr
	}
	if len(raw) == 0 {
		return nil, invalidArgument("elements must not be empty")
	}
	return raw, nil
}
