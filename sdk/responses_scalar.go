package sdk

// CacheSetResponse is the outcome of Set: *CacheSetSuccess or
// *CacheSetError.
type CacheSetResponse interface{ isCacheSetResponse() }

type CacheSetSuccess struct{}

func (*CacheSetSuccess) isCacheSetResponse() {}

type CacheSetError struct{ errorResponse }

func (*CacheSetError) isCacheSetResponse() {}

// CacheSetIfNotExistsResponse is the outcome of SetIfNotExists:
// *CacheSetIfNotExistsStored, *CacheSetIfNotExistsNotStored or
// *CacheSetIfNotExistsError.
type CacheSetIfNotExistsResponse interface{ isCacheSetIfNotExistsResponse() }

// CacheSetIfNotExistsStored indicates the key was absent and the value
// was written.
type CacheSetIfNotExistsStored struct{}

func (*CacheSetIfNotExistsStored) isCacheSetIfNotExistsResponse() {}

// CacheSetIfNotExistsNotStored indicates the key already existed; the
// stored value is unchanged.
type CacheSetIfNotExistsNotStored struct{}

func (*CacheSetIfNotExistsNotStored) isCacheSetIfNotExistsResponse() {}

type CacheSetIfNotExistsError struct{ errorResponse }

func (*CacheSetIfNotExistsError) isCacheSetIfNotExistsResponse() {}

// CacheGetResponse is the outcome of Get: *CacheGetHit, *CacheGetMiss
// or *CacheGetError.
type CacheGetResponse interface{ isCacheGetResponse() }

// CacheGetHit carries the stored value as opaque bytes. ValueString
// decodes it as UTF-8 and fails explicitly for non-text payloads.
type CacheGetHit struct{ byteValue }

func (*CacheGetHit) isCacheGetResponse() {}

type CacheGetMiss struct{}

func (*CacheGetMiss) isCacheGetResponse() {}

type CacheGetError struct{ errorResponse }

func (*CacheGetError) isCacheGetResponse() {}

// CacheDeleteResponse is the outcome of Delete: *CacheDeleteSuccess or
// *CacheDeleteError. Deleting an absent key is still a success.
type CacheDeleteResponse interface{ isCacheDeleteResponse() }

type CacheDeleteSuccess struct{}

func (*CacheDeleteSuccess) isCacheDeleteResponse() {}

type CacheDeleteError struct{ errorResponse }

func (*CacheDeleteError) isCacheDeleteResponse() {}

// CacheIncrementResponse is the outcome of Increment:
// *CacheIncrementSuccess or *CacheIncrementError.
type CacheIncrementResponse interface{ isCacheIncrementResponse() }

type CacheIncrementSuccess struct {
	value int64
}

func (*CacheIncrementSuccess) isCacheIncrementResponse() {}

// Value returns the counter value after the increment was applied.
func (s *CacheIncrementSuccess) Value() int64 { return s.value }

type CacheIncrementError struct{ errorResponse }

func (*CacheIncrementError) isCacheIncrementResponse() {}
