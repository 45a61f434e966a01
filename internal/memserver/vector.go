package memserver

import (
	"context"
	"math"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/birbparty/roost-go/internal/protocol"
)

// vectorIndex is one named index: a fixed dimension count, a similarity
// metric and the current items keyed by id. Upserting an existing id
// replaces the item wholesale, metadata included.
type vectorIndex struct {
	dimensions uint32
	metric     string
	items      map[string]protocol.Item
	order      []string
}

func errDimensionMismatch() error {
	return status.Error(codes.InvalidArgument,
		"invalid parameter: vector, vector dimension has to match the index's dimension")
}

func (s *Server) CreateIndex(ctx context.Context, req *protocol.CreateIndexRequest) (*protocol.CreateIndexResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.indexes[req.IndexName]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "index with name %q already exists", req.IndexName)
	}
	metric := req.SimilarityMetric
	if metric == "" {
		metric = protocol.MetricCosineSimilarity
	}
	switch metric {
	case protocol.MetricCosineSimilarity, protocol.MetricInnerProduct, protocol.MetricEuclideanSimilarity:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unsupported similarity metric %q", metric)
	}
	s.indexes[req.IndexName] = &vectorIndex{
		dimensions: req.NumDimensions,
		metric:     metric,
		items:      make(map[string]protocol.Item),
	}
	return &protocol.CreateIndexResponse{}, nil
}

func (s *Server) DeleteIndex(ctx context.Context, req *protocol.DeleteIndexRequest) (*protocol.DeleteIndexResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.indexes[req.IndexName]; !ok {
		return nil, status.Errorf(codes.NotFound, "index with name %q not found", req.IndexName)
	}
	delete(s.indexes, req.IndexName)
	return &protocol.DeleteIndexResponse{}, nil
}

func (s *Server) ListIndexes(ctx context.Context, req *protocol.ListIndexesRequest) (*protocol.ListIndexesResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := &protocol.ListIndexesResponse{}
	for name, idx := range s.indexes {
		resp.Indexes = append(resp.Indexes, protocol.IndexInfo{
			Name:             name,
			NumDimensions:    idx.dimensions,
			SimilarityMetric: idx.metric,
		})
	}
	return resp, nil
}

func (s *Server) UpsertItemBatch(ctx context.Context, req *protocol.UpsertItemBatchRequest) (*protocol.UpsertItemBatchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range req.Items {
		if uint32(len(item.Vector)) != idx.dimensions {
			return nil, errDimensionMismatch()
		}
	}
	for _, item := range req.Items {
		if _, exists := idx.items[item.ID]; !exists {
			idx.order = append(idx.order, item.ID)
		}
		idx.items[item.ID] = item
	}
	return &protocol.UpsertItemBatchResponse{}, nil
}

func (s *Server) DeleteItemBatch(ctx context.Context, req *protocol.DeleteItemBatchRequest) (*protocol.DeleteItemBatchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range req.IDs {
		delete(idx.items, id)
	}
	return &protocol.DeleteItemBatchResponse{}, nil
}

func (s *Server) GetItemBatch(ctx context.Context, req *protocol.GetItemBatchRequest) (*protocol.GetItemBatchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := &protocol.GetItemBatchResponse{}
	for _, id := range req.IDs {
		if item, ok := idx.items[id]; ok {
			resp.Hits = append(resp.Hits, item)
		}
	}
	return resp, nil
}

func (s *Server) GetItemMetadataBatch(ctx context.Context, req *protocol.GetItemMetadataBatchRequest) (*protocol.GetItemMetadataBatchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := &protocol.GetItemMetadataBatchResponse{}
	for _, id := range req.IDs {
		if item, ok := idx.items[id]; ok {
			resp.Hits = append(resp.Hits, protocol.ItemMetadata{ID: item.ID, Metadata: item.Metadata})
		}
	}
	return resp, nil
}

func (s *Server) CountItems(ctx context.Context, req *protocol.CountItemsRequest) (*protocol.CountItemsResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &protocol.CountItemsResponse{ItemCount: uint64(len(idx.items))}, nil
}

func (s *Server) Search(ctx context.Context, req *protocol.SearchRequest) (*protocol.SearchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	idx, err := s.index(req.IndexName)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if uint32(len(req.QueryVector)) != idx.dimensions {
		return nil, errDimensionMismatch()
	}

	ascending := idx.metric == protocol.MetricEuclideanSimilarity

	hits := make([]protocol.SearchHit, 0, len(idx.items))
	for _, id := range idx.order {
		item, ok := idx.items[id]
		if !ok {
			continue
		}
		score := similarity(idx.metric, req.QueryVector, item.Vector)
		if req.ScoreThreshold != nil {
			if ascending && score > *req.ScoreThreshold {
				continue
			}
			if !ascending && score < *req.ScoreThreshold {
				continue
			}
		}
		hit := protocol.SearchHit{ID: item.ID, Score: score}
		hit.Metadata = selectMetadata(item.Metadata, req.MetadataFields, req.AllMetadata)
		if req.FetchVectors {
			hit.Vector = item.Vector
		}
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if ascending {
			return hits[i].Score < hits[j].Score
		}
		return hits[i].Score > hits[j].Score
	})
	if req.TopK > 0 && uint32(len(hits)) > req.TopK {
		hits = hits[:req.TopK]
	}
	return &protocol.SearchResponse{Hits: hits}, nil
}

// similarity scores one candidate against the query. Cosine and inner
// product rank descending; euclidean is the squared L2 distance and
// ranks ascending.
func similarity(metric string, query, candidate []float32) float64 {
	switch metric {
	case protocol.MetricInnerProduct:
		return dot(query, candidate)
	case protocol.MetricEuclideanSimilarity:
		var sum float64
		for i := range query {
			d := float64(query[i]) - float64(candidate[i])
			sum += d * d
		}
		return sum
	default: // cosine
		denom := math.Sqrt(dot(query, query)) * math.Sqrt(dot(candidate, candidate))
		if denom == 0 {
			return 0
		}
		return dot(query, candidate) / denom
	}
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func selectMetadata(metadata map[string]any, fields []string, all bool) map[string]any {
	if metadata == nil {
		return nil
	}
	if all {
		out := make(map[string]any, len(metadata))
		for k, v := range metadata {
			out[k] = v
		}
		return out
	}
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]any)
	for _, f := range fields {
		if v, ok := metadata[f]; ok {
			out[f] = v
		}
	}
	return out
}
