package sdk

import (
	"context"
	"fmt"

	"github.com/birbparty/roost-go/internal/protocol"
)

// SimilarityMetric selects how an index scores vectors against a
// query.
type SimilarityMetric string

const (
	// CosineSimilarity ranks by cosine similarity, best first
	// (descending). The default.
	CosineSimilarity SimilarityMetric = SimilarityMetric(protocol.MetricCosineSimilarity)
	// InnerProduct ranks by dot product, best first (descending).
	InnerProduct SimilarityMetric = SimilarityMetric(protocol.MetricInnerProduct)
	// EuclideanSimilarity ranks by squared Euclidean distance, best
	// first (ascending).
	EuclideanSimilarity SimilarityMetric = SimilarityMetric(protocol.MetricEuclideanSimilarity)
)

// VectorIndexClient is the entry point for vector-index operations.
// Safe for concurrent use. As with CacheClient, construction is the
// only plain-error path; every operation yields a response interface.
type VectorIndexClient struct {
	core    clientCore
	vector  protocol.VectorStub
	channel *grpcChannel
}

// NewVectorIndexClient dials the vector endpoint carried by the
// credential.
func NewVectorIndexClient(config *Config, provider CredentialProvider) (*VectorIndexClient, error) {
	cfg := config.normalize()
	channel, err := dialChannel(provider.VectorEndpoint(), provider, cfg)
	if err != nil {
		return nil, err
	}
	client := newVectorIndexClient(cfg, grpcVectorStub{channel})
	client.channel = channel
	return client, nil
}

func newVectorIndexClient(config *Config, vector protocol.VectorStub) *VectorIndexClient {
	return &VectorIndexClient{
		core:   newClientCore(config),
		vector: vector,
	}
}

// Close releases the underlying connection.
func (c *VectorIndexClient) Close() error {
	return c.channel.Close()
}

// CreateIndex creates an index with the given dimensionality and
// metric. An empty metric means CosineSimilarity. Creating an index
// that already exists yields AlreadyExistsError.
func (c *VectorIndexClient) CreateIndex(ctx context.Context, indexName string, numDimensions uint32, metric SimilarityMetric) CreateIndexResponse {
	if err := validateIndexName(indexName); err != nil {
		return &CreateIndexError{errorResponse{err: err}}
	}
	if err := validateNumDimensions(numDimensions); err != nil {
		return &CreateIndexError{errorResponse{err: err}}
	}
	if metric == "" {
		metric = CosineSimilarity
	}
	switch metric {
	case CosineSimilarity, InnerProduct, EuclideanSimilarity:
	default:
		return &CreateIndexError{errorResponse{err: invalidArgument(fmt.Sprintf("unknown similarity metric %q", metric))}}
	}
	_, rerr := dispatch(ctx, &c.core, "CreateIndex", indexName, false, func(ctx context.Context) (*protocol.CreateIndexResponse, error) {
		return c.vector.CreateIndex(ctx, &protocol.CreateIndexRequest{
			IndexName:        indexName,
			NumDimensions:    numDimensions,
			SimilarityMetric: string(metric),
		})
	})
	if rerr != nil {
		return &CreateIndexError{errorResponse{err: rerr}}
	}
	return &CreateIndexSuccess{}
}

// DeleteIndex deletes an index and all its items. Deleting an absent
// index yields NotFoundError.
func (c *VectorIndexClient) DeleteIndex(ctx context.Context, indexName string) DeleteIndexResponse {
	if err := validateIndexName(indexName); err != nil {
		return &DeleteIndexError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "DeleteIndex", indexName, false, func(ctx context.Context) (*protocol.DeleteIndexResponse, error) {
		return c.vector.DeleteIndex(ctx, &protocol.DeleteIndexRequest{IndexName: indexName})
	})
	if rerr != nil {
		return &DeleteIndexError{errorResponse{err: rerr}}
	}
	return &DeleteIndexSuccess{}
}

// ListIndexes lists the indexes visible to the credential.
func (c *VectorIndexClient) ListIndexes(ctx context.Context) ListIndexesResponse {
	resp, rerr := dispatch(ctx, &c.core, "ListIndexes", "", true, func(ctx context.Context) (*protocol.ListIndexesResponse, error) {
		return c.vector.ListIndexes(ctx, &protocol.ListIndexesRequest{})
	})
	if rerr != nil {
		return &ListIndexesError{errorResponse{err: rerr}}
	}
	indexes := make([]IndexInfo, 0, len(resp.Indexes))
	for _, info := range resp.Indexes {
		indexes = append(indexes, IndexInfo{
			Name:             info.Name,
			NumDimensions:    info.NumDimensions,
			SimilarityMetric: SimilarityMetric(info.SimilarityMetric),
		})
	}
	return &ListIndexesSuccess{indexes: indexes}
}

// UpsertItemBatch inserts or replaces items wholesale. An existing item
// with the same id is replaced entirely, metadata included. Vectors
// whose dimensionality does not match the index are rejected with
// InvalidArgumentError.
func (c *VectorIndexClient) UpsertItemBatch(ctx context.Context, indexName string, items []VectorItem) UpsertItemBatchResponse {
	if err := validateIndexName(indexName); err != nil {
		return &UpsertItemBatchError{errorResponse{err: err}}
	}
	if len(items) == 0 {
		return &UpsertItemBatchError{errorResponse{err: invalidArgument("items must not be empty")}}
	}
	if err := validateItems(items, 0); err != nil {
		return &UpsertItemBatchError{errorResponse{err: err}}
	}
	wire := make([]protocol.Item, 0, len(items))
	for _, item := range items {
		wire = append(wire, protocol.Item{ID: item.ID, Vector: item.Vector, Metadata: item.Metadata})
	}
	_, rerr := dispatch(ctx, &c.core, "UpsertItemBatch", indexName, true, func(ctx context.Context) (*protocol.UpsertItemBatchResponse, error) {
		return c.vector.UpsertItemBatch(ctx, &protocol.UpsertItemBatchRequest{IndexName: indexName, Items: wire})
	})
	if rerr != nil {
		return &UpsertItemBatchError{errorResponse{err: rerr}}
	}
	return &UpsertItemBatchSuccess{}
}

// DeleteItemBatch removes items by id. Absent ids are ignored.
func (c *VectorIndexClient) DeleteItemBatch(ctx context.Context, indexName string, ids []string) DeleteItemBatchResponse {
	if err := validateIndexName(indexName); err != nil {
		return &DeleteItemBatchError{errorResponse{err: err}}
	}
	_, rerr := dispatch(ctx, &c.core, "DeleteItemBatch", indexName, true, func(ctx context.Context) (*protocol.DeleteItemBatchResponse, error) {
		return c.vector.DeleteItemBatch(ctx, &protocol.DeleteItemBatchRequest{IndexName: indexName, IDs: ids})
	})
	if rerr != nil {
		return &DeleteItemBatchError{errorResponse{err: rerr}}
	}
	return &DeleteItemBatchSuccess{}
}

// GetItemBatch fetches items by id, vectors and metadata included.
// Absent ids are simply missing from the hits.
func (c *VectorIndexClient) GetItemBatch(ctx context.Context, indexName string, ids []string) GetItemBatchResponse {
	if err := validateIndexName(indexName); err != nil {
		return &GetItemBatchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "GetItemBatch", indexName, true, func(ctx context.Context) (*protocol.GetItemBatchResponse, error) {
		return c.vector.GetItemBatch(ctx, &protocol.GetItemBatchRequest{IndexName: indexName, IDs: ids})
	})
	if rerr != nil {
		return &GetItemBatchError{errorResponse{err: rerr}}
	}
	hits := make([]VectorItem, 0, len(resp.Hits))
	for _, item := range resp.Hits {
		hits = append(hits, VectorItem{ID: item.ID, Vector: item.Vector, Metadata: item.Metadata})
	}
	return &GetItemBatchSuccess{hits: hits}
}

// GetItemMetadataBatch fetches metadata by id, without the vectors.
func (c *VectorIndexClient) GetItemMetadataBatch(ctx context.Context, indexName string, ids []string) GetItemMetadataBatchResponse {
	if err := validateIndexName(indexName); err != nil {
		return &GetItemMetadataBatchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "GetItemMetadataBatch", indexName, true, func(ctx context.Context) (*protocol.GetItemMetadataBatchResponse, error) {
		return c.vector.GetItemMetadataBatch(ctx, &protocol.GetItemMetadataBatchRequest{IndexName: indexName, IDs: ids})
	})
	if rerr != nil {
		return &GetItemMetadataBatchError{errorResponse{err: rerr}}
	}
	values := make(map[string]map[string]any, len(resp.Hits))
	for _, item := range resp.Hits {
		values[item.ID] = item.Metadata
	}
	return &GetItemMetadataBatchSuccess{values: values}
}

// CountItems returns the number of items in the index.
func (c *VectorIndexClient) CountItems(ctx context.Context, indexName string) CountItemsResponse {
	if err := validateIndexName(indexName); err != nil {
		return &CountItemsError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "CountItems", indexName, true, func(ctx context.Context) (*protocol.CountItemsResponse, error) {
		return c.vector.CountItems(ctx, &protocol.CountItemsRequest{IndexName: indexName})
	})
	if rerr != nil {
		return &CountItemsError{errorResponse{err: rerr}}
	}
	return &CountItemsSuccess{itemCount: resp.ItemCount}
}

// SearchOption tunes a Search or SearchAndFetchVectors call.
type SearchOption func(*searchOptions)

type searchOptions struct {
	topK           uint32
	metadataFields []string
	allMetadata    bool
	scoreThreshold *float64
}

func defaultSearchOptions() searchOptions {
	return searchOptions{topK: 10}
}

// WithTopK bounds the number of results. The default is 10.
func WithTopK(topK uint32) SearchOption {
	return func(o *searchOptions) { o.topK = topK }
}

// WithMetadataFields selects which metadata fields each hit carries.
// Without this option hits carry no metadata.
func WithMetadataFields(fields ...string) SearchOption {
	return func(o *searchOptions) { o.metadataFields = fields }
}

// WithAllMetadata makes every hit carry its full metadata.
func WithAllMetadata() SearchOption {
	return func(o *searchOptions) { o.allMetadata = true }
}

// WithScoreThreshold filters hits by score without reordering them:
// descending metrics keep hits scoring at least threshold, the
// ascending metric keeps hits scoring at most threshold.
func WithScoreThreshold(threshold float64) SearchOption {
	return func(o *searchOptions) { o.scoreThreshold = &threshold }
}

// Search ranks the indexed items against queryVector using the index's
// metric and returns the best topK.
func (c *VectorIndexClient) Search(ctx context.Context, indexName string, queryVector []float32, opts ...SearchOption) SearchResponse {
	req, err := c.buildSearchRequest(indexName, queryVector, false, opts)
	if err != nil {
		return &SearchError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "Search", indexName, true, func(ctx context.Context) (*protocol.SearchResponse, error) {
		return c.vector.Search(ctx, req)
	})
	if rerr != nil {
		return &SearchError{errorResponse{err: rerr}}
	}
	hits := make([]SearchHit, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		hits = append(hits, SearchHit{ID: hit.ID, Distance: hit.Score, Metadata: hit.Metadata})
	}
	return &SearchSuccess{hits: hits}
}

// SearchAndFetchVectors is Search with the stored vectors included in
// each hit.
func (c *VectorIndexClient) SearchAndFetchVectors(ctx context.Context, indexName string, queryVector []float32, opts ...SearchOption) SearchAndFetchVectorsResponse {
	req, err := c.buildSearchRequest(indexName, queryVector, true, opts)
	if err != nil {
		return &SearchAndFetchVectorsError{errorResponse{err: err}}
	}
	resp, rerr := dispatch(ctx, &c.core, "SearchAndFetchVectors", indexName, true, func(ctx context.Context) (*protocol.SearchResponse, error) {
		return c.vector.Search(ctx, req)
	})
	if rerr != nil {
		return &SearchAndFetchVectorsError{errorResponse{err: rerr}}
	}
	hits := make([]SearchAndFetchVectorsHit, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		hits = append(hits, SearchAndFetchVectorsHit{
			SearchHit: SearchHit{ID: hit.ID, Distance: hit.Score, Metadata: hit.Metadata},
			Vector:    hit.Vector,
		})
	}
	return &SearchAndFetchVectorsSuccess{hits: hits}
}

func (c *VectorIndexClient) buildSearchRequest(indexName string, queryVector []float32, fetchVectors bool, opts []SearchOption) (*protocol.SearchRequest, *Error) {
	if err := validateIndexName(indexName); err != nil {
		return nil, err
	}
	if len(queryVector) == 0 {
		return nil, invalidArgument("query vector must not be empty")
	}
	options := defaultSearchOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := validateTopK(options.topK); err != nil {
		return nil, err
	}
	return &protocol.SearchRequest{
		IndexName:      indexName,
		QueryVector:    queryVector,
		TopK:           options.topK,
		MetadataFields: options.metadataFields,
		AllMetadata:    options.allMetadata,
		ScoreThreshold: options.scoreThreshold,
		FetchVectors:   fetchVectors,
	}, nil
}
