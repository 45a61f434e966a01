package sdk

import (
	"context"

	"github.com/birbparty/roost-go/internal/protocol"
)

// List operations. A list is an ordered sequence of byte values under
// one cache key. Pushes report the resulting length; the truncate
// options bound the list from the far end so it can serve as a
// fixed-size recent-items buffer.

// ListPushFront prepends a value, inheriting the client's default TTL.
func (c *CacheClient) ListPushFront(ctx context.Context, cacheName, listName string, value Value) CacheListPushFrontResponse {
	return c.ListPushFrontWithOptions(ctx, cacheName, listName, value, 0, CollectionTTLFromCacheTTL())
}

// ListPushFrontWithOptions prepends a value. A non-zero
// truncateBackToSize drops elements from the back until the list is at
// most that long.
func (c *CacheClient) ListPushFrontWithOptions(ctx context.Context, cacheName, listName string, value Value, truncateBackToSize uint32, ttl CollectionTTL) CacheListPushFrontResponse {
	if err := c.validateListWrite(cacheName, listName, value); err != nil {
		return &CacheListPushFrontError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheListPushFrontError{errorResponse{err: terr}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListPushFront", cacheName, false, func(ctx context.Context) (*protocol.ListPushResponse, error) {
		return c.cache.ListPushFront(ctx, &protocol.ListPushFrontRequest{
			CacheName:          cacheName,
			ListName:           []byte(listName),
			Value:              value.asBytes(),
			TruncateBackToSize: truncateBackToSize,
			TTLMilliseconds:    ttlMillis,
			RefreshTTL:         ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheListPushFrontError{errorResponse{err: rerr}}
	}
	return &CacheListPushFrontSuccess{listLength: resp.ListLength}
}

// ListPushBack appends a value, inheriting the client's default TTL.
func (c *CacheClient) ListPushBack(ctx context.Context, cacheName, listName string, value Value) CacheListPushBackResponse {
	return c.ListPushBackWithOptions(ctx, cacheName, listName, value, 0, CollectionTTLFromCacheTTL())
}

// ListPushBackWithOptions appends a value. A non-zero
// truncateFrontToSize drops elements from the front until the list is
// at most that long.
func (c *CacheClient) ListPushBackWithOptions(ctx context.Context, cacheName, listName string, value Value, truncateFrontToSize uint32, ttl CollectionTTL) CacheListPushBackResponse {
	if err := c.validateListWrite(cacheName, listName, value); err != nil {
		return &CacheListPushBackError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheListPushBackError{errorResponse{err: terr}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListPushBack", cacheName, false, func(ctx context.Context) (*protocol.ListPushResponse, error) {
		return c.cache.ListPushBack(ctx, &protocol.ListPushBackRequest{
			CacheName:           cacheName,
			ListName:            []byte(listName),
			Value:               value.asBytes(),
			TruncateFrontToSize: truncateFrontToSize,
			TTLMilliseconds:     ttlMillis,
			RefreshTTL:          ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheListPushBackError{errorResponse{err: rerr}}
	}
	return &CacheListPushBackSuccess{listLength: resp.ListLength}
}

// ListConcatenateFront prepends values in order, inheriting the
// client's default TTL.
func (c *CacheClient) ListConcatenateFront(ctx context.Context, cacheName, listName string, values []Value) CacheListConcatenateFrontResponse {
	return c.ListConcatenateFrontWithOptions(ctx, cacheName, listName, values, 0, CollectionTTLFromCacheTTL())
}

// ListConcatenateFrontWithOptions prepends values in order, optionally
// truncating from the back.
func (c *CacheClient) ListConcatenateFrontWithOptions(ctx context.Context, cacheName, listName string, values []Value, truncateBackToSize uint32, ttl CollectionTTL) CacheListConcatenateFrontResponse {
	raw, err := c.validateListConcat(cacheName, listName, values)
	if err != nil {
		return &CacheListConcatenateFrontError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheListConcatenateFrontError{errorResponse{err: terr}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListConcatenateFront", cacheName, false, func(ctx context.Context) (*protocol.ListPushResponse, error) {
		return c.cache.ListConcatenateFront(ctx, &protocol.ListConcatenateFrontRequest{
			CacheName:          cacheName,
			ListName:           []byte(listName),
			Values:             raw,
			TruncateBackToSize: truncateBackToSize,
			TTLMilliseconds:    ttlMillis,
			RefreshTTL:         ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheListConcatenateFrontError{errorResponse{err: rerr}}
	}
	return &CacheListConcatenateFrontSuccess{listLength: resp.ListLength}
}

// ListConcatenateBack appends values in order, inheriting the client's
// default TTL.
func (c *CacheClient) ListConcatenateBack(ctx context.Context, cacheName, listName string, values []Value) CacheListConcatenateBackResponse {
	return c.ListConcatenateBackWithOptions(ctx, cacheName, listName, values, 0, CollectionTTLFromCacheTTL())
}

// ListConcatenateBackWithOptions appends values in order, optionally
// truncating from the front.
func (c *CacheClient) ListConcatenateBackWithOptions(ctx context.Context, cacheName, listName string, values []Value, truncateFrontToSize uint32, ttl CollectionTTL) CacheListConcatenateBackResponse {
	raw, err := c.validateListConcat(cacheName, listName, values)
	if err != nil {
		return &CacheListConcatenateBackError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheListConcatenateBackError{errorResponse{err: terr}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListConcatenateBack", cacheName, false, func(ctx context.Context) (*protocol.ListPushResponse, error) {
		return c.cache.ListConcatenateBack(ctx, &protocol.ListConcatenateBackRequest{
			CacheName:           cacheName,
			ListName:            []byte(listName),
			Values:              raw,
			TruncateFrontToSize: truncateFrontToSize,
			TTLMilliseconds:     ttlMillis,
			RefreshTTL:          ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheListConcatenateBackError{errorResponse{err: rerr}}
	}
	return &CacheListConcatenateBackSuccess{listLength: resp.ListLength}
}

// ListPopFront removes and returns the first element. An absent or
// empty list is a miss.
func (c *CacheClient) ListPopFront(ctx context.Context, cacheName, listName string) CacheListPopFrontResponse {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return &CacheListPopFrontError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListPopFront", cacheName, false, func(ctx context.Context) (*protocol.ListPopResponse, error) {
		return c.cache.ListPopFront(ctx, &protocol.ListPopRequest{CacheName: cacheName, ListName: []byte(listName)})
	})
	if rerr != nil {
		return &CacheListPopFrontError{errorResponse{err: rerr}}
	}
	switch resp.List {
	case protocol.FoundYes:
		return &CacheListPopFrontHit{byteValue(resp.Value)}
	case protocol.FoundMissing:
		return &CacheListPopFrontMiss{}
	default:
		return &CacheListPopFrontError{errorResponse{err: unknownResponse("ListPopFront")}}
	}
}

// ListPopBack removes and returns the last element. An absent or empty
// list is a miss.
func (c *CacheClient) ListPopBack(ctx context.Context, cacheName, listName string) CacheListPopBackResponse {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return &CacheListPopBackError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListPopBack", cacheName, false, func(ctx context.Context) (*protocol.ListPopResponse, error) {
		return c.cache.ListPopBack(ctx, &protocol.ListPopRequest{CacheName: cacheName, ListName: []byte(listName)})
	})
	if rerr != nil {
		return &CacheListPopBackError{errorResponse{err: rerr}}
	}
	switch resp.List {
	case protocol.FoundYes:
		return &CacheListPopBackHit{byteValue(resp.Value)}
	case protocol.FoundMissing:
		return &CacheListPopBackMiss{}
	default:
		return &CacheListPopBackError{errorResponse{err: unknownResponse("ListPopBack")}}
	}
}

// ListFetch retrieves the whole list, front to back.
func (c *CacheClient) ListFetch(ctx context.Context, cacheName, listName string) CacheListFetchResponse {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return &CacheListFetchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListFetch", cacheName, true, func(ctx context.Context) (*protocol.ListFetchResponse, error) {
		return c.cache.ListFetch(ctx, &protocol.ListFetchRequest{CacheName: cacheName, ListName: []byte(listName)})
	})
	if rerr != nil {
		return &CacheListFetchError{errorResponse{err: rerr}}
	}
	switch resp.List {
	case protocol.FoundYes:
		c.core.observer.OnCacheHit("ListFetch", cacheName)
		return &CacheListFetchHit{values: resp.Values}
	case protocol.FoundMissing:
		c.core.observer.OnCacheMiss("ListFetch", cacheName)
		return &CacheListFetchMiss{}
	default:
		return &CacheListFetchError{errorResponse{err: unknownResponse("ListFetch")}}
	}
}

// ListLength returns the number of elements. An absent list is a miss.
func (c *CacheClient) ListLength(ctx context.Context, cacheName, listName string) CacheListLengthResponse {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return &CacheListLengthError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "ListLength", cacheName, true, func(ctx context.Context) (*protocol.ListLengthResponse, error) {
		return c.cache.ListLength(ctx, &protocol.ListLengthRequest{CacheName: cacheName, ListName: []byte(listName)})
	})
	if rerr != nil {
		return &CacheListLengthError{errorResponse{err: rerr}}
	}
	switch resp.List {
	case protocol.FoundYes:
		return &CacheListLengthHit{length: resp.Length}
	case protocol.FoundMissing:
		return &CacheListLengthMiss{}
	default:
		return &CacheListLengthError{errorResponse{err: unknownResponse("ListLength")}}
	}
}

// ListRemoveValue removes every element equal to value. Removing from
// an absent list still succeeds.
func (c *CacheClient) ListRemoveValue(ctx context.Context, cacheName, listName string, value Value) CacheListRemoveValueResponse {
	if err := c.validateListWrite(cacheName, listName, value); err != nil {
		return &CacheListRemoveValueError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "ListRemoveValue", cacheName, true, func(ctx context.Context) (*protocol.ListRemoveResponse, error) {
		return c.cache.ListRemove(ctx, &protocol.ListRemoveRequest{
			CacheName:            cacheName,
			ListName:             []byte(listName),
			AllElementsWithValue: value.asBytes(),
		})
	})
	if rerr != nil {
		return &CacheListRemoveValueError{errorResponse{err: rerr}}
	}
	return &CacheListRemoveValueSuccess{}
}

func (c *CacheClient) validateListWrite(cacheName, listName string, value Value) *Error {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return err
	}
	return validateValue(value, "value")
}

func (c *CacheClient) validateListConcat(cacheName, listName string, values []Value) ([][]byte, *Error) {
	if err := c.validateCollection(cacheName, listName, "list"); err != nil {
		return nil, err
	}
	raw, verr := valuesAsBytes(values, "values")
	if verr != nil {
		return nil, verr
	}
	if len(raw) == 0 {
		return nil, invalidArgument("values must not be empty")
	}
	return raw, nil
}
