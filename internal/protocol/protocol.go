// Package protocol defines the wire shapes of the Roost service: one
// request/response struct pair per remote operation, plus the stub
// interfaces the SDK dispatches through. The structs mirror the
// service's RPC messages; the SDK treats every payload as opaque bytes.
//
// The stubs are collaborators, not implementations. The production
// binding lives in the sdk package (a gRPC channel); an in-memory
// binding for tests and local development lives in internal/memserver.
package protocol

import "context"

// Result discriminates hit/miss style responses.
type Result int32

const (
	ResultInvalid Result = iota
	ResultHit
	ResultMiss
)

// StoreResult discriminates conditional-write responses.
type StoreResult int32

const (
	StoreResultInvalid StoreResult = iota
	StoreResultStored
	StoreResultNotStored
)

// Found discriminates container responses: the container either exists
// or is missing entirely.
type Found int32

const (
	FoundInvalid Found = iota
	FoundYes
	FoundMissing
)

// FieldValuePair is one dictionary entry on the wire.
type FieldValuePair struct {
	Field []byte `json:"field"`
	Value []byte `json:"value"`
}

// Scalar operations.

type SetRequest struct {
	CacheName       string `json:"cache_name"`
	CacheKey        []byte `json:"cache_key"`
	CacheBody       []byte `json:"cache_body"`
	TTLMilliseconds int64  `json:"ttl_milliseconds"`
}

type SetResponse struct{}

type SetIfNotExistsRequest struct {
	CacheName       string `json:"cache_name"`
	CacheKey        []byte `json:"cache_key"`
	CacheBody       []byte `json:"cache_body"`
	TTLMilliseconds int64  `json:"ttl_milliseconds"`
}

type SetIfNotExistsResponse struct {
	Result StoreResult `json:"result"`
}

type GetRequest struct {
	CacheName string `json:"cache_name"`
	CacheKey  []byte `json:"cache_key"`
}

type GetResponse struct {
	Result    Result `json:"result"`
	CacheBody []byte `json:"cache_body"`
}

type DeleteRequest struct {
	CacheName string `json:"cache_name"`
	CacheKey  []byte `json:"cache_key"`
}

type DeleteResponse struct{}

type IncrementRequest struct {
	CacheName       string `json:"cache_name"`
	CacheKey        []byte `json:"cache_key"`
	Amount          int64  `json:"amount"`
	TTLMilliseconds int64  `json:"ttl_milliseconds"`
}

type IncrementResponse struct {
	Value int64 `json:"value"`
}

// Dictionary operations.

type DictionarySetRequest struct {
	CacheName       string           `json:"cache_name"`
	DictionaryName  []byte           `json:"dictionary_name"`
	Items           []FieldValuePair `json:"items"`
	TTLMilliseconds int64            `json:"ttl_milliseconds"`
	RefreshTTL      bool             `json:"refresh_ttl"`
}

type DictionarySetResponse struct{}

type DictionaryGetRequest struct {
	CacheName      string   `json:"cache_name"`
	DictionaryName []byte   `json:"dictionary_name"`
	Fields         [][]byte `json:"fields"`
}

// DictionaryGetPart is the per-field result inside a found dictionary.
type DictionaryGetPart struct {
	Result    Result `json:"result"`
	CacheBody []byte `json:"cache_body"`
}

type DictionaryGetResponse struct {
	Dictionary Found               `json:"dictionary"`
	Items      []DictionaryGetPart `json:"items"`
}

type DictionaryFetchRequest struct {
	CacheName      string `json:"cache_name"`
	DictionaryName []byte `json:"dictionary_name"`
}

type DictionaryFetchResponse struct {
	Dictionary Found            `json:"dictionary"`
	Items      []FieldValuePair `json:"items"`
}

type DictionaryIncrementRequest struct {
	CacheName       string `json:"cache_name"`
	DictionaryName  []byte `json:"dictionary_name"`
	Field           []byte `json:"field"`
	Amount          int64  `json:"amount"`
	TTLMilliseconds int64  `json:"ttl_milliseconds"`
	RefreshTTL      bool   `json:"refresh_ttl"`
}

type DictionaryIncrementResponse struct {
	Value int64 `json:"value"`
}

type DictionaryDeleteRequest struct {
	CacheName      string   `json:"cache_name"`
	DictionaryName []byte   `json:"dictionary_name"`
	Fields         [][]byte `json:"fields"`
}

type DictionaryDeleteResponse struct{}

// List operations.

type ListPushFrontRequest struct {
	CacheName          string `json:"cache_name"`
	ListName           []byte `json:"list_name"`
	Value              []byte `json:"value"`
	TruncateBackToSize uint32 `json:"truncate_back_to_size"`
	TTLMilliseconds    int64  `json:"ttl_milliseconds"`
	RefreshTTL         bool   `json:"refresh_ttl"`
}

type ListPushBackRequest struct {
	CacheName           string `json:"cache_name"`
	ListName            []byte `json:"list_name"`
	Value               []byte `json:"value"`
	TruncateFrontToSize uint32 `json:"truncate_front_to_size"`
	TTLMilliseconds     int64  `json:"ttl_milliseconds"`
	RefreshTTL          bool   `json:"refresh_ttl"`
}

type ListConcatenateFrontRequest struct {
	CacheName          string   `json:"cache_name"`
	ListName           []byte   `json:"list_name"`
	Values             [][]byte `json:"values"`
	TruncateBackToSize uint32   `json:"truncate_back_to_size"`
	TTLMilliseconds    int64    `json:"ttl_milliseconds"`
	RefreshTTL         bool     `json:"refresh_ttl"`
}

type ListConcatenateBackRequest struct {
	CacheName           string   `json:"cache_name"`
	ListName            []byte   `json:"list_name"`
	Values              [][]byte `json:"values"`
	TruncateFrontToSize uint32   `json:"truncate_front_to_size"`
	TTLMilliseconds     int64    `json:"ttl_milliseconds"`
	RefreshTTL          bool     `json:"refresh_ttl"`
}

type ListLengthResponse struct {
	List   Found  `json:"list"`
	Length uint32 `json:"length"`
}

// ListPushResponse is shared by every list write that reports the
// resulting length.
type ListPushResponse struct {
	ListLength uint32 `json:"list_length"`
}

type ListPopRequest struct {
	CacheName string `json:"cache_name"`
	ListName  []byte `json:"list_name"`
}

type ListPopResponse struct {
	List  Found  `json:"list"`
	Value []byte `json:"value"`
}

type ListFetchRequest struct {
	CacheName string `json:"cache_name"`
	ListName  []byte `json:"list_name"`
}

type ListFetchResponse struct {
	List   Found    `json:"list"`
	Values [][]byte `json:"values"`
}

type ListLengthRequest struct {
	CacheName string `json:"cache_name"`
	ListName  []byte `json:"list_name"`
}

type ListRemoveRequest struct {
	CacheName            string `json:"cache_name"`
	ListName             []byte `json:"list_name"`
	AllElementsWithValue []byte `json:"all_elements_with_value"`
}

type ListRemoveResponse struct{}

// Set operations.

type SetUnionRequest struct {
	CacheName       string   `json:"cache_name"`
	SetName         []byte   `json:"set_name"`
	Elements        [][]byte `json:"elements"`
	TTLMilliseconds int64    `json:"ttl_milliseconds"`
	RefreshTTL      bool     `json:"refresh_ttl"`
}

type SetUnionResponse struct{}

type SetDifferenceRequest struct {
	CacheName string   `json:"cache_name"`
	SetName   []byte   `json:"set_name"`
	Elements  [][]byte `json:"elements"`
}

type SetDifferenceResponse struct{}

type SetFetchRequest struct {
	CacheName string `json:"cache_name"`
	SetName   []byte `json:"set_name"`
}

type SetFetchResponse struct {
	Set      Found    `json:"set"`
	Elements [][]byte `json:"elements"`
}

// Control plane.

type CreateCacheRequest struct {
	CacheName string `json:"cache_name"`
}

type CreateCacheResponse struct{}

type DeleteCacheRequest struct {
	CacheName string `json:"cache_name"`
}

type DeleteCacheResponse struct{}

type ListCachesRequest struct {
	NextToken string `json:"next_token"`
}

type CacheInfo struct {
	Name string `json:"cache_name"`
}

type ListCachesResponse struct {
	Caches []CacheInfo `json:"cache"`
	// NextToken is reserved for pagination. The service does not
	// populate it today.
	NextToken string `json:"next_token"`
}

// Vector index control plane.

type CreateIndexRequest struct {
	IndexName        string `json:"index_name"`
	NumDimensions    uint32 `json:"num_dimensions"`
	SimilarityMetric string `json:"similarity_metric"`
}

type CreateIndexResponse struct{}

type DeleteIndexRequest struct {
	IndexName string `json:"index_name"`
}

type DeleteIndexResponse struct{}

type ListIndexesRequest struct{}

type IndexInfo struct {
	Name             string `json:"index_name"`
	NumDimensions    uint32 `json:"num_dimensions"`
	SimilarityMetric string `json:"similarity_metric"`
}

type ListIndexesResponse struct {
	Indexes []IndexInfo `json:"indexes"`
}

// Vector index data plane.

// Item is one indexed vector with optional metadata. Metadata values
// are restricted to string, bool, int64, float64 and []string; the SDK
// validates this before dispatch.
type Item struct {
	ID       string         `json:"id"`
	Vector   []float32      `json:"vector"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type UpsertItemBatchRequest struct {
	IndexName string `json:"index_name"`
	Items     []Item `json:"items"`
}

type UpsertItemBatchResponse struct{}

type DeleteItemBatchRequest struct {
	IndexName string   `json:"index_name"`
	IDs       []string `json:"ids"`
}

type DeleteItemBatchResponse struct{}

type GetItemBatchRequest struct {
	IndexName string   `json:"index_name"`
	IDs       []string `json:"ids"`
}

type GetItemBatchResponse struct {
	Hits []Item `json:"hits"`
}

type GetItemMetadataBatchRequest struct {
	IndexName string   `json:"index_name"`
	IDs       []string `json:"ids"`
}

type ItemMetadata struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type GetItemMetadataBatchResponse struct {
	Hits []ItemMetadata `json:"hits"`
}

type CountItemsRequest struct {
	IndexName string `json:"index_name"`
}

type CountItemsResponse struct {
	ItemCount uint64 `json:"item_count"`
}

type SearchRequest struct {
	IndexName      string    `json:"index_name"`
	QueryVector    []float32 `json:"query_vector"`
	TopK           uint32    `json:"top_k"`
	MetadataFields []string  `json:"metadata_fields,omitempty"`
	AllMetadata    bool      `json:"all_metadata"`
	ScoreThreshold *float64  `json:"score_threshold,omitempty"`
	FetchVectors   bool      `json:"fetch_vectors"`
}

type SearchHit struct {
	ID       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Vector   []float32      `json:"vector,omitempty"`
}

type SearchResponse struct {
	Hits []SearchHit `json:"hits"`
}

// ControlStub is the cache control-plane surface of the service.
type ControlStub interface {
	CreateCache(ctx context.Context, req *CreateCacheRequest) (*CreateCacheResponse, error)
	DeleteCache(ctx context.Context, req *DeleteCacheRequest) (*DeleteCacheResponse, error)
	ListCaches(ctx context.Context, req *ListCachesRequest) (*ListCachesResponse, error)
}

// CacheStub is the cache data-plane surface of the service.
type CacheStub interface {
	Set(ctx context.Context, req *SetRequest) (*SetResponse, error)
	SetIfNotExists(ctx context.Context, req *SetIfNotExistsRequest) (*SetIfNotExistsResponse, error)
	Get(ctx context.Context, req *GetRequest) (*GetResponse, error)
	Delete(ctx context.Context, req *DeleteRequest) (*DeleteResponse, error)
	Increment(ctx context.Context, req *IncrementRequest) (*IncrementResponse, error)

	DictionarySet(ctx context.Context, req *DictionarySetRequest) (*DictionarySetResponse, error)
	DictionaryGet(ctx context.Context, req *DictionaryGetRequest) (*DictionaryGetResponse, error)
	DictionaryFetch(ctx context.Context, req *DictionaryFetchRequest) (*DictionaryFetchResponse, error)
	DictionaryIncrement(ctx context.Context, req *DictionaryIncrementRequest) (*DictionaryIncrementResponse, error)
	DictionaryDelete(ctx context.Context, req *DictionaryDeleteRequest) (*DictionaryDeleteResponse, error)

	ListPushFront(ctx context.Context, req *ListPushFrontRequest) (*ListPushResponse, error)
	ListPushBack(ctx context.Context, req *ListPushBackRequest) (*ListPushResponse, error)
	ListConcatenateFront(ctx context.Context, req *ListConcatenateFrontRequest) (*ListPushResponse, error)
	ListConcatenateBack(ctx context.Context, req *ListConcatenateBackRequest) (*ListPushResponse, error)
	ListPopFront(ctx context.Context, req *ListPopRequest) (*ListPopResponse, error)
	ListPopBack(ctx context.Context, req *ListPopRequest) (*ListPopResponse, error)
	ListFetch(ctx context.Context, req *ListFetchRequest) (*ListFetchResponse, error)
	ListLength(ctx context.Context, req *ListLengthRequest) (*ListLengthResponse, error)
	ListRemove(ctx context.Context, req *ListRemoveRequest) (*ListRemoveResponse, error)

	SetUnion(ctx context.Context, req *SetUnionRequest) (*SetUnionResponse, error)
	SetDifference(ctx context.Context, req *SetDifferenceRequest) (*SetDifferenceResponse, error)
	SetFetch(ctx context.Context, req *SetFetchRequest) (*SetFetchResponse, error)
}

// VectorStub is the vector-index surface of the service.
type VectorStub interface {
	CreateIndex(ctx context.Context, req *CreateIndexRequest) (*CreateIndexResponse, error)
	DeleteIndex(ctx context.Context, req *DeleteIndexRequest) (*DeleteIndexResponse, error)
	ListIndexes(ctx context.Context, req *ListIndexesRequest) (*ListIndexesResponse, error)

	UpsertItemBatch(ctx context.Context, req *UpsertItemBatchRequest) (*UpsertItemBatchResponse, error)
	DeleteItemBatch(ctx context.Context, req *DeleteItemBatchRequest) (*DeleteItemBatchResponse, error)
	GetItemBatch(ctx context.Context, req *GetItemBatchRequest) (*GetItemBatchResponse, error)
	GetItemMetadataBatch(ctx context.Context, req *GetItemMetadataBatchRequest) (*GetItemMetadataBatchResponse, error)
	CountItems(ctx context.Context, req *CountItemsRequest) (*CountItemsResponse, error)
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}
