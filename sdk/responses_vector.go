package sdk

// IndexInfo describes one index returned by ListIndexes.
type IndexInfo struct {
	Name             string
	NumDimensions    uint32
	SimilarityMetric SimilarityMetric
}

// VectorItem is one vector to upsert, or one returned by GetItemBatch.
// Metadata values may be string, bool, int, int64, float64 or []string.
type VectorItem struct {
	ID       string
	Vector   []float32
	Metadata map[string]any
}

// SearchHit is one scored result. Distance carries the metric's raw
// value: cosine similarity or dot product for the descending metrics,
// squared Euclidean distance for the ascending one.
type SearchHit struct {
	ID       string
	Distance float64
	Metadata map[string]any
}

// SearchAndFetchVectorsHit is a SearchHit that also carries the stored
// vector.
type SearchAndFetchVectorsHit struct {
	SearchHit
	Vector []float32
}

// CreateIndexResponse is the outcome of CreateIndex:
// *CreateIndexSuccess or *CreateIndexError.
type CreateIndexResponse interface{ isCreateIndexResponse() }

type CreateIndexSuccess struct{}

func (*CreateIndexSuccess) isCreateIndexResponse() {}

type CreateIndexError struct{ errorResponse }

func (*CreateIndexError) isCreateIndexResponse() {}

// DeleteIndexResponse is the outcome of DeleteIndex:
// *DeleteIndexSuccess or *DeleteIndexError.
type DeleteIndexResponse interface{ isDeleteIndexResponse() }

type DeleteIndexSuccess struct{}

func (*DeleteIndexSuccess) isDeleteIndexResponse() {}

type DeleteIndexError struct{ errorResponse }

func (*DeleteIndexError) isDeleteIndexResponse() {}

// ListIndexesResponse is the outcome of ListIndexes:
// *ListIndexesSuccess or *ListIndexesError.
type ListIndexesResponse interface{ isListIndexesResponse() }

type ListIndexesSuccess struct {
	indexes []IndexInfo
}

func (*ListIndexesSuccess) isListIndexesResponse() {}

// Indexes returns the indexes visible to the credential.
func (s *ListIndexesSuccess) Indexes() []IndexInfo { return s.indexes }

type ListIndexesError struct{ errorResponse }

func (*ListIndexesError) isListIndexesResponse() {}

// UpsertItemBatchResponse is the outcome of UpsertItemBatch:
// *UpsertItemBatchSuccess or *UpsertItemBatchError.
type UpsertItemBatchResponse interface{ isUpsertItemBatchResponse() }

type UpsertItemBatchSuccess struct{}

func (*UpsertItemBatchSuccess) isUpsertItemBatchResponse() {}

type UpsertItemBatchError struct{ errorResponse }

func (*UpsertItemBatchError) isUpsertItemBatchResponse() {}

// DeleteItemBatchResponse is the outcome of DeleteItemBatch:
// *DeleteItemBatchSuccess or *DeleteItemBatchError.
type DeleteItemBatchResponse interface{ isDeleteItemBatchResponse() }

type DeleteItemBatchSuccess struct{}

func (*DeleteItemBatchSuccess) isDeleteItemBatchResponse() {}

type DeleteItemBatchError struct{ errorResponse }

func (*DeleteItemBatchError) isDeleteItemBatchResponse() {}

// GetItemBatchResponse is the outcome of GetItemBatch:
// *GetItemBatchSuccess or *GetItemBatchError. Requested ids that are
// not in the index are simply absent from the hits.
type GetItemBatchResponse interface{ isGetItemBatchResponse() }

type GetItemBatchSuccess struct {
	hits []VectorItem
}

func (*GetItemBatchSuccess) isGetItemBatchResponse() {}

// Hits returns the found items with vectors and metadata.
func (s *GetItemBatchSuccess) Hits() []VectorItem { return s.hits }

type GetItemBatchError struct{ errorResponse }

func (*GetItemBatchError) isGetItemBatchResponse() {}

// GetItemMetadataBatchResponse is the outcome of GetItemMetadataBatch:
// *GetItemMetadataBatchSuccess or *GetItemMetadataBatchError.
type GetItemMetadataBatchResponse interface{ isGetItemMetadataBatchResponse() }

type GetItemMetadataBatchSuccess struct {
	values map[string]map[string]any
}

func (*GetItemMetadataBatchSuccess) isGetItemMetadataBatchResponse() {}

// Values returns metadata keyed by item id for the found items.
func (s *GetItemMetadataBatchSuccess) Values() map[string]map[string]any { return s.values }

type GetItemMetadataBatchError struct{ errorResponse }

func (*GetItemMetadataBatchError) isGetItemMetadataBatchResponse() {}

// CountItemsResponse is the outcome of CountItems: *CountItemsSuccess
// or *CountItemsError.
type CountItemsResponse interface{ isCountItemsResponse() }

type CountItemsSuccess struct {
	itemCount uint64
}

func (*CountItemsSuccess) isCountItemsResponse() {}

// ItemCount returns the number of items in the index.
func (s *CountItemsSuccess) ItemCount() uint64 { return s.itemCount }

type CountItemsError struct{ errorResponse }

func (*CountItemsError) isCountItemsResponse() {}

// SearchResponse is the outcome of Search: *SearchSuccess or
// *SearchError.
type SearchResponse interface{ isSearchResponse() }

type SearchSuccess struct {
	hits []SearchHit
}

func (*SearchSuccess) isSearchResponse() {}

// Hits returns the results in the metric's ranking order.
func (s *SearchSuccess) Hits() []SearchHit { return s.hits }

type SearchError struct{ errorResponse }

func (*SearchError) isSearchResponse() {}

// SearchAndFetchVectorsResponse is the outcome of
// SearchAndFetchVectors: *SearchAndFetchVectorsSuccess or
// *SearchAndFetchVectorsError.
type SearchAndFetchVectorsResponse interface{ isSearchAndFetchVectorsResponse() }

type SearchAndFetchVectorsSuccess struct {
	hits []SearchAndFetchVectorsHit
}

func (*SearchAndFetchVectorsSuccess) isSearchAndFetchVectorsResponse() {}

// Hits returns the results, each with its stored vector.
func (s *SearchAndFetchVectorsSuccess) Hits() []SearchAndFetchVectorsHit { return s.hits }

type SearchAndFetchVectorsError struct{ errorResponse }

func (*SearchAndFetchVectorsError) isSearchAndFetchVectorsResponse() {}
