package sdk

import (
	"context"

	"github.com/birbparty/roost-go/internal/protocol"
)

// Dictionary operations. A dictionary is a field-to-value map living
// under one cache key, with a TTL on the container rather than on the
// fields. Writing to an absent dictionary creates it.

// DictionarySetFields writes the given fields, inheriting the client's
// default TTL and refreshing the dictionary's expiry.
func (c *CacheClient) DictionarySetFields(ctx context.Context, cacheName, dictionaryName string, items map[string]Value) CacheDictionarySetFieldsResponse {
	return c.DictionarySetFieldsWithTTL(ctx, cacheName, dictionaryName, items, CollectionTTLFromCacheTTL())
}

// DictionarySetFieldsWithTTL writes the given fields with explicit TTL
// behavior.
func (c *CacheClient) DictionarySetFieldsWithTTL(ctx context.Context, cacheName, dictionaryName string, items map[string]Value, ttl CollectionTTL) CacheDictionarySetFieldsResponse {
	if err := c.validateCollection(cacheName, dictionaryName, "dictionary"); err != nil {
		return &CacheDictionarySetFieldsError{errorResponse{err: err}}
	}
	if len(items) == 0 {
		return &CacheDictionarySetFieldsError{errorResponse{err: invalidArgument("items must not be empty")}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheDictionarySetFieldsError{errorResponse{err: terr}}
	}
	pairs := make([]protocol.FieldValuePair, 0, len(items))
	for field, value := range items {
		if value == nil {
			return &CacheDictionarySetFieldsError{errorResponse{err: invalidArgument("items must not contain nil values")}}
		}
		pairs = append(pairs, protocol.FieldValuePair{Field: []byte(field), Value: value.asBytes()})
	}
	_, rerr := dispatch(ctx, &c.core, "DictionarySetFields", cacheName, true, func(ctx context.Context) (*protocol.DictionarySetResponse, error) {
		return c.cache.DictionarySet(ctx, &protocol.DictionarySetRequest{
			CacheName:       cacheName,
			DictionaryName:  []byte(dictionaryName),
			Items:           pairs,
			TTLMilliseconds: ttlMillis,
			RefreshTTL:      ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheDictionarySetFieldsError{errorResponse{err: rerr}}
	}
	return &CacheDictionarySetFieldsSuccess{}
}

// DictionaryGetFields looks up the given fields. When the dictionary
// exists the hit carries one per-field hit or miss, in request order;
// an absent dictionary is a miss for the whole call.
func (c *CacheClient) DictionaryGetFields(ctx context.Context, cacheName, dictionaryName string, fields []Value) CacheDictionaryGetFieldsResponse {
	if err := c.validateCollection(cacheName, dictionaryName, "dictionary"); err != nil {
		return &CacheDictionaryGetFieldsError{errorResponse{err: err}}
	}
	rawFields, verr := valuesAsBytes(fields, "fields")
	if verr != nil {
		return &CacheDictionaryGetFieldsError{errorResponse{err: verr}}
	}
	if len(rawFields) == 0 {
		return &CacheDictionaryGetFieldsError{errorResponse{err: invalidArgument("fields must not be empty")}}
	}
	resp, rerr := dispatch(ctx, &c.core, "DictionaryGetFields", cacheName, true, func(ctx context.Context) (*protocol.DictionaryGetResponse, error) {
		return c.cache.DictionaryGet(ctx, &protocol.DictionaryGetRequest{
			CacheName:      cacheName,
			DictionaryName: []byte(dictionaryName),
			Fields:         rawFields,
		})
	})
	if rerr != nil {
		return &CacheDictionaryGetFieldsError{errorResponse{err: rerr}}
	}
	switch resp.Dictionary {
	case protocol.FoundYes:
		if len(resp.Items) != len(rawFields) {
			return &CacheDictionaryGetFieldsError{errorResponse{err: unknownResponse("DictionaryGetFields")}}
		}
		responses := make([]CacheDictionaryGetFieldResponse, 0, len(resp.Items))
		for i, part := range resp.Items {
			switch part.Result {
			case protocol.ResultHit:
				responses = append(responses, &CacheDictionaryGetFieldHit{
					field:     rawFields[i],
					byteValue: byteValue(part.CacheBody),
				})
			case protocol.ResultMiss:
				responses = append(responses, &CacheDictionaryGetFieldMiss{field: rawFields[i]})
			default:
				return &CacheDictionaryGetFieldsError{errorResponse{err: unknownResponse("DictionaryGetFields")}}
			}
		}
		c.core.observer.OnCacheHit("DictionaryGetFields", cacheName)
		return &CacheDictionaryGetFieldsHit{responses: responses}
	case protocol.FoundMissing:
		c.core.observer.OnCacheMiss("DictionaryGetFields", cacheName)
		return &CacheDictionaryGetFieldsMiss{}
	default:
		return &CacheDictionaryGetFieldsError{errorResponse{err: unknownResponse("DictionaryGetFields")}}
	}
}

// DictionaryFetch retrieves the entire dictionary.
func (c *CacheClient) DictionaryFetch(ctx context.Context, cacheName, dictionaryName string) CacheDictionaryFetchResponse {
	if err := c.validateCollection(cacheName, dictionaryName, "dictionary"); err != nil {
		return &CacheDictionaryFetchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "DictionaryFetch", cacheName, true, func(ctx context.Context) (*protocol.DictionaryFetchResponse, error) {
		return c.cache.DictionaryFetch(ctx, &protocol.DictionaryFetchRequest{
			CacheName:      cacheName,
			DictionaryName: []byte(dictionaryName),
		})
	})
	if rerr != nil {
		return &CacheDictionaryFetchError{errorResponse{err: rerr}}
	}
	switch resp.Dictionary {
	case protocol.FoundYes:
		items := make(map[string][]byte, len(resp.Items))
		for _, pair := range resp.Items {
			items[string(pair.Field)] = pair.Value
		}
		c.core.observer.OnCacheHit("DictionaryFetch", cacheName)
		return &CacheDictionaryFetchHit{items: items}
	case protocol.FoundMissing:
		c.core.observer.OnCacheMiss("DictionaryFetch", cacheName)
		return &CacheDictionaryFetchMiss{}
	default:
		return &CacheDictionaryFetchError{errorResponse{err: unknownResponse("DictionaryFetch")}}
	}
}

// DictionaryIncrement adds amount to the integer stored under field,
// creating the field at amount when absent. The dictionary inherits
// the client's default TTL.
func (c *CacheClient) DictionaryIncrement(ctx context.Context, cacheName, dictionaryName string, field Value, amount int64) CacheDictionaryIncrementResponse {
	return c.DictionaryIncrementWithTTL(ctx, cacheName, dictionaryName, field, amount, CollectionTTLFromCacheTTL())
}

// DictionaryIncrementWithTTL is DictionaryIncrement with explicit TTL
// behavior. A field holding a non-integer value yields
// FailedPreconditionError.
func (c *CacheClient) DictionaryIncrementWithTTL(ctx context.Context, cacheName, dictionaryName string, field Value, amount int64, ttl CollectionTTL) CacheDictionaryIncrementResponse {
	if err := c.validateCollection(cacheName, dictionaryName, "dictionary"); err != nil {
		return &CacheDictionaryIncrementError{errorResponse{err: err}}
	}
	if err := validateValue(field, "field"); err != nil {
		return &CacheDictionaryIncrementError{errorResponse{err: err}}
	}
	ttlMillis, terr := ttl.resolveMillis(c.defaultTTL)
	if terr != nil {
		return &CacheDictionaryIncrementError{errorResponse{err: terr}}
	}
	resp, rerr := dispatch(ctx, &c.core, "DictionaryIncrement", cacheName, false, func(ctx context.Context) (*protocol.DictionaryIncrementResponse, error) {
		return c.cache.DictionaryIncrement(ctx, &protocol.DictionaryIncrementRequest{
			CacheName:       cacheName,
			DictionaryName:  []byte(dictionaryName),
			Field:           field.asBytes(),
			Amount:          amount,
			TTLMilliseconds: ttlMillis,
			RefreshTTL:      ttl.RefreshTTL(),
		})
	})
	if rerr != nil {
		return &CacheDictionaryIncrementError{errorResponse{err: rerr}}
	}
	return &CacheDictionaryIncrementSuccess{value: resp.Value}
}

// DictionaryRemoveFields removes the given fields. Absent fields and
// an absent dictionary still succeed.
func (c *CacheClient) DictionaryRemoveFields(ctx context.Context, cacheName, dictionaryName string, fields []Value) CacheDictionaryRemoveFieldsResponse {
	if err := c.validateCollection(cacheName, dictionaryName, "dictionary"); err != nil {
		return &CacheDictionaryRemoveFieldsError{errorResponse{err: err}}
	}
	rawFields, verr := valuesAsBytes(fields, "fields")
	if verr != nil {
		return &CacheDictionaryRemoveFieldsError{errorResponse{err: verr}}
	}
	if len(rawFields) == 0 {
		return &CacheDictionaryRemoveFieldsError{errorResponse{err: invalidArgument("fields must not be empty")}}
	}
	_, rerr := dispatch(ctx, &c.core, "DictionaryRemoveFields", cacheName, true, func(ctx context.Context) (*protocol.DictionaryDeleteResponse, error) {
		return c.cache.DictionaryDelete(ctx, &protocol.DictionaryDeleteRequest{
			CacheName:      cacheName,
			DictionaryName: []byte(dictionaryName),
			Fields:         rawFields,
		})
	})
	if rerr != nil {
		return &CacheDictionaryRemoveFieldsError{errorResponse{err: rerr}}
	}
	return &CacheDictionaryRemoveFieldsSuccess{}
}

func (c *CacheClient) validateCollection(cacheName, collectionName, kind string) *Error {
	if err := validateCacheName(cacheName); err != nil {
		return err
	}
	return validateCollectionName(collectionName, kind)
}
