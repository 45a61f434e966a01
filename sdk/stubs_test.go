package sdk

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/birbparty/roost-go/internal/memserver"
	"github.com/birbparty/roost-go/internal/protocol"
)

// countingCache wraps a CacheStub and counts calls, so validation
// tests can assert that rejected input never reaches the transport.
type countingCache struct {
	inner protocol.CacheStub
	calls atomic.Int64
}

func (c *countingCache) count() int64 { return c.calls.Load() }

func (c *countingCache) Set(ctx context.Context, req *protocol.SetRequest) (*protocol.SetResponse, error) {
	c.calls.Add(1)
	return c.inner.Set(ctx, req)
}

func (c *countingCache) SetIfNotExists(ctx context.Context, req *protocol.SetIfNotExistsRequest) (*protocol.SetIfNotExistsResponse, error) {
	c.calls.Add(1)
	return c.inner.SetIfNotExists(ctx, req)
}

func (c *countingCache) Get(ctx context.Context, req *protocol.GetRequest) (*protocol.GetResponse, error) {
	c.calls.Add(1)
	return c.inner.Get(ctx, req)
}

func (c *countingCache) Delete(ctx context.Context, req *protocol.DeleteRequest) (*protocol.DeleteResponse, error) {
	c.calls.Add(1)
	return c.inner.Delete(ctx, req)
}

func (c *countingCache) Increment(ctx context.Context, req *protocol.IncrementRequest) (*protocol.IncrementResponse, error) {
	c.calls.Add(1)
	return c.inner.Increment(ctx, req)
}

func (c *countingCache) DictionarySet(ctx context.Context, req *protocol.DictionarySetRequest) (*protocol.DictionarySetResponse, error) {
	c.calls.Add(1)
	return c.inner.DictionarySet(ctx, req)
}

func (c *countingCache) DictionaryGet(ctx context.Context, req *protocol.DictionaryGetRequest) (*protocol.DictionaryGetResponse, error) {
	c.calls.Add(1)
	return c.inner.DictionaryGet(ctx, req)
}

func (c *countingCache) DictionaryFetch(ctx context.Context, req *protocol.DictionaryFetchRequest) (*protocol.DictionaryFetchResponse, error) {
	c.calls.Add(1)
	return c.inner.DictionaryFetch(ctx, req)
}

func (c *countingCache) DictionaryIncrement(ctx context.Context, req *protocol.DictionaryIncrementRequest) (*protocol.DictionaryIncrementResponse, error) {
	c.calls.Add(1)
	return c.inner.DictionaryIncrement(ctx, req)
}

func (c *countingCache) DictionaryDelete(ctx context.Context, req *protocol.DictionaryDeleteRequest) (*protocol.DictionaryDeleteResponse, error) {
	c.calls.Add(1)
	return c.inner.DictionaryDelete(ctx, req)
}

func (c *countingCache) ListPushFront(ctx context.Context, req *protocol.ListPushFrontRequest) (*protocol.ListPushResponse, error) {
	c.calls.Add(1)
	return c.inner.ListPushFront(ctx, req)
}

func (c *countingCache) ListPushBack(ctx context.Context, req *protocol.ListPushBackRequest) (*protocol.ListPushResponse, error) {
	c.calls.Add(1)
	return c.inner.ListPushBack(ctx, req)
}

func (c *countingCache) ListConcatenateFront(ctx context.Context, req *protocol.ListConcatenateFrontRequest) (*protocol.ListPushResponse, error) {
	c.calls.Add(1)
	return c.inner.ListConcatenateFront(ctx, req)
}

func (c *countingCache) ListConcatenateBack(ctx context.Context, req *protocol.ListConcatenateBackRequest) (*protocol.ListPushResponse, error) {
	c.calls.Add(1)
	return c.inner.ListConcatenateBack(ctx, req)
}

func (c *countingCache) ListPopFront(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	c.calls.Add(1)
	return c.inner.ListPopFront(ctx, req)
}

func (c *countingCache) ListPopBack(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	c.calls.Add(1)
	return c.inner.ListPopBack(ctx, req)
}

func (c *countingCache) ListFetch(ctx context.Context, req *protocol.ListFetchRequest) (*protocol.ListFetchResponse, error) {
	c.calls.Add(1)
	return c.inner.ListFetch(ctx, req)
}

func (c *countingCache) ListLength(ctx context.Context, req *protocol.ListLengthRequest) (*protocol.ListLengthResponse, error) {
	c.calls.Add(1)
	return c.inner.ListLength(ctx, req)
}

func (c *countingCache) ListRemove(ctx context.Context, req *protocol.ListRemoveRequest) (*protocol.ListRemoveResponse, error) {
	c.calls.Add(1)
	return c.inner.ListRemove(ctx, req)
}

func (c *countingCache) SetUnion(ctx context.Context, req *protocol.SetUnionRequest) (*protocol.SetUnionResponse, error) {
	c.calls.Add(1)
	return c.inner.SetUnion(ctx, req)
}

func (c *countingCache) SetDifference(ctx context.Context, req *protocol.SetDifferenceRequest) (*protocol.SetDifferenceResponse, error) {
	c.calls.Add(1)
	return c.inner.SetDifference(ctx, req)
}

func (c *countingCache) SetFetch(ctx context.Context, req *protocol.SetFetchRequest) (*protocol.SetFetchResponse, error) {
	c.calls.Add(1)
	return c.inner.SetFetch(ctx, req)
}

var _ protocol.CacheStub = (*countingCache)(nil)

// flakyGet fails the first failures Get calls with the given error and
// delegates afterwards.
type flakyGet struct {
	protocol.CacheStub
	failures int
	err      error
	attempts atomic.Int64
}

func (f *flakyGet) Get(ctx context.Context, req *protocol.GetRequest) (*protocol.GetResponse, error) {
	n := f.attempts.Add(1)
	if n <= int64(f.failures) {
		return nil, f.err
	}
	return f.CacheStub.Get(ctx, req)
}

// oversizedDictionaryGet answers every DictionaryGet with one more
// per-field part than the request asked for, standing in for a
// misbehaving service.
type oversizedDictionaryGet struct {
	protocol.CacheStub
}

func (s *oversizedDictionaryGet) DictionaryGet(ctx context.Context, req *protocol.DictionaryGetRequest) (*protocol.DictionaryGetResponse, error) {
	parts := make([]protocol.DictionaryGetPart, len(req.Fields)+1)
	for i := range parts {
		parts[i] = protocol.DictionaryGetPart{Result: protocol.ResultHit, CacheBody: []byte("v")}
	}
	return &protocol.DictionaryGetResponse{Dictionary: protocol.FoundYes, Items: parts}, nil
}

// flakyIncrement always fails, recording attempts, so tests can show
// non-idempotent operations are never retried.
type flakyIncrement struct {
	protocol.CacheStub
	err      error
	attempts atomic.Int64
}

func (f *flakyIncrement) Increment(ctx context.Context, req *protocol.IncrementRequest) (*protocol.IncrementResponse, error) {
	f.attempts.Add(1)
	return nil, f.err
}

const testDefaultTTL = time.Minute

type cacheFixture struct {
	server   *memserver.Server
	counting *countingCache
	client   *CacheClient
}

// newCacheFixture wires a client to a fresh in-memory service with a
// no-retry config so failure tests see exactly one attempt unless they
// opt in.
func newCacheFixture() *cacheFixture {
	server := memserver.New()
	counting := &countingCache{inner: server}
	config := DefaultConfig().WithRetryStrategy(NoRetryStrategy{})
	return &cacheFixture{
		server:   server,
		counting: counting,
		client:   newCacheClient(config, testDefaultTTL, server, counting),
	}
}

func newVectorFixture() (*memserver.Server, *VectorIndexClient) {
	server := memserver.New()
	config := DefaultConfig().WithRetryStrategy(NoRetryStrategy{})
	return server, newVectorIndexClient(config, server)
}
