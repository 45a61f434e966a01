package sdk

// CacheInfo describes one cache returned by ListCaches.
type CacheInfo struct {
	Name string
}

// CreateCacheResponse is the outcome of CreateCache: *CreateCacheSuccess
// or *CreateCacheError.
type CreateCacheResponse interface{ isCreateCacheResponse() }

type CreateCacheSuccess struct{}

func (*CreateCacheSuccess) isCreateCacheResponse() {}

type CreateCacheError struct{ errorResponse }

func (*CreateCacheError) isCreateCacheResponse() {}

// DeleteCacheResponse is the outcome of DeleteCache: *DeleteCacheSuccess
// or *DeleteCacheError.
type DeleteCacheResponse interface{ isDeleteCacheResponse() }

type DeleteCacheSuccess struct{}

func (*DeleteCacheSuccess) isDeleteCacheResponse() {}

type DeleteCacheError struct{ errorResponse }

func (*DeleteCacheError) isDeleteCacheResponse() {}

// ListCachesResponse is the outcome of ListCaches: *ListCachesSuccess
// or *ListCachesError.
type ListCachesResponse interface{ isListCachesResponse() }

type ListCachesSuccess struct {
	caches []CacheInfo
	// nextToken is reserved for pagination; the service never
	// populates it today.
	nextToken string
}

func (*ListCachesSuccess) isListCachesResponse() {}

// Caches returns the caches visible to the credential.
func (s *ListCachesSuccess) Caches() []CacheInfo { return s.caches }

// NextToken returns the pagination token. Currently always empty.
func (s *ListCachesSuccess) NextToken() string { return s.nextToken }

type ListCachesError struct{ errorResponse }

func (*ListCachesError) isListCachesResponse() {}
