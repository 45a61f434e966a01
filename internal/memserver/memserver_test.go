package memserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/birbparty/roost-go/internal/protocol"
)

func TestOperationsAgainstAbsentCacheReturnNotFound(t *testing.T) {
	s := New()
	_, err := s.Get(context.Background(), &protocol.GetRequest{CacheName: "nope", CacheKey: []byte("k")})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Contains(t, st.Message(), "nope")
}

func TestScalarExpiryIsLazy(t *testing.T) {
	s := New()
	now := time.Now()
	s.SetClock(func() time.Time { return now })

	_, err := s.CreateCache(context.Background(), &protocol.CreateCacheRequest{CacheName: "c"})
	require.NoError(t, err)

	_, err = s.Set(context.Background(), &protocol.SetRequest{
		CacheName:       "c",
		CacheKey:        []byte("k"),
		CacheBody:       []byte("v"),
		TTLMilliseconds: 1000,
	})
	require.NoError(t, err)

	resp, err := s.Get(context.Background(), &protocol.GetRequest{CacheName: "c", CacheKey: []byte("k")})
	require.NoError(t, err)
	assert.Equal(t, protocol.ResultHit, resp.Result)

	now = now.Add(1500 * time.Millisecond)
	resp, err = s.Get(context.Background(), &protocol.GetRequest{CacheName: "c", CacheKey: []byte("k")})
	require.NoError(t, err)
	assert.Equal(t, protocol.ResultMiss, resp.Result)
}

func TestCanceledContextMapsToStatusError(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListCaches(ctx, &protocol.ListCachesRequest{})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Canceled, st.Code())
}

func TestSearchQueryDimensionMismatch(t *testing.T) {
	s := New()
	_, err := s.CreateIndex(context.Background(), &protocol.CreateIndexRequest{
		IndexName:     "idx",
		NumDimensions: 2,
	})
	require.NoError(t, err)

	_, err = s.Search(context.Background(), &protocol.SearchRequest{
		IndexName:   "idx",
		QueryVector: []float32{1, 2, 3},
		TopK:        10,
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestSearchPreservesInsertionOrderForEqualScores(t *testing.T) {
	s := New()
	_, err := s.CreateIndex(context.Background(), &protocol.CreateIndexRequest{
		IndexName:        "idx",
		NumDimensions:    2,
		SimilarityMetric: protocol.MetricInnerProduct,
	})
	require.NoError(t, err)

	_, err = s.UpsertItemBatch(context.Background(), &protocol.UpsertItemBatchRequest{
		IndexName: "idx",
		Items: []protocol.Item{
			{ID: "first", Vector: []float32{1, 0}},
			{ID: "second", Vector: []float32{0, 1}},
		},
	})
	require.NoError(t, err)

	resp, err := s.Search(context.Background(), &protocol.SearchRequest{
		IndexName:   "idx",
		QueryVector: []float32{1, 1},
		TopK:        10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Hits, 2)
	assert.Equal(t, "first", resp.Hits[0].ID)
	assert.Equal(t, "second", resp.Hits[1].ID)
}
