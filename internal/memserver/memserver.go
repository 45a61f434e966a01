// Package memserver is an in-process implementation of the Roost
// protocol stubs. It exists so the SDK's tests and local development
// can exercise the full façade → stub → response path with real TTL
// and similarity-search semantics, without a network.
//
// Failures are reported as gRPC status errors with the same codes the
// managed service uses, so the SDK's error converter sees identical
// inputs either way.
package memserver

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/birbparty/roost-go/internal/protocol"
)

// Server holds every cache and vector index created through it. The
// zero value is not usable; call New.
type Server struct {
	mu      sync.RWMutex
	caches  map[string]*cacheStore
	indexes map[string]*vectorIndex

	// clock is swappable so expiry tests don't have to sleep.
	clock func() time.Time
}

// New returns an empty in-memory service.
func New() *Server {
	return &Server{
		caches:  make(map[string]*cacheStore),
		indexes: make(map[string]*vectorIndex),
		clock:   time.Now,
	}
}

// SetClock replaces the time source used for TTL bookkeeping.
func (s *Server) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

func (s *Server) now() time.Time {
	s.mu.RLock()
	clock := s.clock
	s.mu.RUnlock()
	return clock()
}

func cacheNotFound(name string) error {
	return status.Errorf(codes.NotFound, "cache with name %q not found", name)
}

func (s *Server) cache(name string) (*cacheStore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.caches[name]
	if !ok {
		return nil, cacheNotFound(name)
	}
	return c, nil
}

func (s *Server) index(name string) (*vectorIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.indexes[name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "index with name %q not found", name)
	}
	return idx, nil
}

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return status.FromContextError(ctx.Err()).Err()
	default:
		return nil
	}
}

// Control plane.

func (s *Server) CreateCache(ctx context.Context, req *protocol.CreateCacheRequest) (*protocol.CreateCacheResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.caches[req.CacheName]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "cache with name %q already exists", req.CacheName)
	}
	s.caches[req.CacheName] = newCacheStore()
	return &protocol.CreateCacheResponse{}, nil
}

func (s *Server) DeleteCache(ctx context.Context, req *protocol.DeleteCacheRequest) (*protocol.DeleteCacheResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.caches[req.CacheName]; !ok {
		return nil, cacheNotFound(req.CacheName)
	}
	delete(s.caches, req.CacheName)
	return &protocol.DeleteCacheResponse{}, nil
}

func (s *Server) ListCaches(ctx context.Context, req *protocol.ListCachesRequest) (*protocol.ListCachesResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	resp := &protocol.ListCachesResponse{}
	for name := range s.caches {
		resp.Caches = append(resp.Caches, protocol.CacheInfo{Name: name})
	}
	return resp, nil
}

// Scalar data plane.

func (s *Server) Set(ctx context.Context, req *protocol.SetRequest) (*protocol.SetResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.setScalar(req.CacheKey, req.CacheBody, s.expiry(req.TTLMilliseconds))
	return &protocol.SetResponse{}, nil
}

func (s *Server) SetIfNotExists(ctx context.Context, req *protocol.SetIfNotExistsRequest) (*protocol.SetIfNotExistsResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	stored := c.setScalarIfAbsent(req.CacheKey, req.CacheBody, s.expiry(req.TTLMilliseconds), s.now())
	result := protocol.StoreResultNotStored
	if stored {
		result = protocol.StoreResultStored
	}
	return &protocol.SetIfNotExistsResponse{Result: result}, nil
}

func (s *Server) Get(ctx context.Context, req *protocol.GetRequest) (*protocol.GetResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	body, ok := c.getScalar(req.CacheKey, s.now())
	if !ok {
		return &protocol.GetResponse{Result: protocol.ResultMiss}, nil
	}
	return &protocol.GetResponse{Result: protocol.ResultHit, CacheBody: body}, nil
}

func (s *Server) Delete(ctx context.Context, req *protocol.DeleteRequest) (*protocol.DeleteResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.deleteScalar(req.CacheKey)
	return &protocol.DeleteResponse{}, nil
}

func (s *Server) Increment(ctx context.Context, req *protocol.IncrementRequest) (*protocol.IncrementResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	value, err := c.increment(req.CacheKey, req.Amount, s.expiry(req.TTLMilliseconds), s.now())
	if err != nil {
		return nil, err
	}
	return &protocol.IncrementResponse{Value: value}, nil
}

// expiry converts a TTL in milliseconds to an absolute deadline.
func (s *Server) expiry(ttlMillis int64) time.Time {
	return s.now().Add(time.Duration(ttlMillis) * time.Millisecond)
}

// cacheStore is one named cache: scalars plus the three container kinds,
// each entry carrying its own expiry. Expired entries are dropped lazily
// on access.
type cacheStore struct {
	mu      sync.Mutex
	scalars map[string]*scalarEntry
	dicts   map[string]*dictEntry
	lists   map[string]*listEntry
	sets    map[string]*setEntry
}

func newCacheStore() *cacheStore {
	return &cacheStore{
		scalars: make(map[string]*scalarEntry),
		dicts:   make(map[string]*dictEntry),
		lists:   make(map[string]*listEntry),
		sets:    make(map[string]*setEntry),
	}
}

type scalarEntry struct {
	body      []byte
	expiresAt time.Time
}

func (c *cacheStore) setScalar(key, body []byte, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scalars[string(key)] = &scalarEntry{body: body, expiresAt: expiresAt}
}

func (c *cacheStore) setScalarIfAbsent(key, body []byte, expiresAt, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.scalars[string(key)]; ok && now.Before(e.expiresAt) {
		return false
	}
	c.scalars[string(key)] = &scalarEntry{body: body, expiresAt: expiresAt}
	return true
}

func (c *cacheStore) getScalar(key []byte, now time.Time) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.scalars[string(key)]
	if !ok {
		return nil, false
	}
	if !now.Before(e.expiresAt) {
		delete(c.scalars, string(key))
		return nil, false
	}
	return e.body, true
}

func (c *cacheStore) deleteScalar(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scalars, string(key))
}

func (c *cacheStore) increment(key []byte, amount int64, expiresAt, now time.Time) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var current int64
	if e, ok := c.scalars[string(key)]; ok && now.Before(e.expiresAt) {
		parsed, err := parseInt(e.body)
		if err != nil {
			return 0, status.Error(codes.FailedPrecondition, "existing value is not an integer")
		}
		current = parsed
		expiresAt = e.expiresAt
	}
	current += amount
	c.scalars[string(key)] = &scalarEntry{body: []byte(fmt.Sprintf("%d", current)), expiresAt: expiresAt}
	return current, nil
}

func parseInt(b []byte) (int64, error) {
	var v int64
	_, err := fmt.Sscanf(string(b), "%d", &v)
	return v, err
}

// Dictionary data plane.

type dictEntry struct {
	items     map[string][]byte
	order     []string
	expiresAt time.Time
}

func (c *cacheStore) dict(name []byte, now time.Time) (*dictEntry, bool) {
	d, ok := c.dicts[string(name)]
	if !ok {
		return nil, false
	}
	if !now.Before(d.expiresAt) {
		delete(c.dicts, string(name))
		return nil, false
	}
	return d, true
}

func (s *Server) DictionarySet(ctx context.Context, req *protocol.DictionarySetRequest) (*protocol.DictionarySetResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dict(req.DictionaryName, now)
	if !ok {
		d = &dictEntry{items: make(map[string][]byte), expiresAt: s.expiry(req.TTLMilliseconds)}
		c.dicts[string(req.DictionaryName)] = d
	} else if req.RefreshTTL {
		d.expiresAt = s.expiry(req.TTLMilliseconds)
	}
	for _, item := range req.Items {
		if _, exists := d.items[string(item.Field)]; !exists {
			d.order = append(d.order, string(item.Field))
		}
		d.items[string(item.Field)] = item.Value
	}
	return &protocol.DictionarySetResponse{}, nil
}

func (s *Server) DictionaryGet(ctx context.Context, req *protocol.DictionaryGetRequest) (*protocol.DictionaryGetResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dict(req.DictionaryName, s.now())
	if !ok {
		return &protocol.DictionaryGetResponse{Dictionary: protocol.FoundMissing}, nil
	}
	resp := &protocol.DictionaryGetResponse{Dictionary: protocol.FoundYes}
	for _, field := range req.Fields {
		if value, ok := d.items[string(field)]; ok {
			resp.Items = append(resp.Items, protocol.DictionaryGetPart{Result: protocol.ResultHit, CacheBody: value})
		} else {
			resp.Items = append(resp.Items, protocol.DictionaryGetPart{Result: protocol.ResultMiss})
		}
	}
	return resp, nil
}

func (s *Server) DictionaryFetch(ctx context.Context, req *protocol.DictionaryFetchRequest) (*protocol.DictionaryFetchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dict(req.DictionaryName, s.now())
	if !ok {
		return &protocol.DictionaryFetchResponse{Dictionary: protocol.FoundMissing}, nil
	}
	resp := &protocol.DictionaryFetchResponse{Dictionary: protocol.FoundYes}
	for _, field := range d.order {
		if value, ok := d.items[field]; ok {
			resp.Items = append(resp.Items, protocol.FieldValuePair{Field: []byte(field), Value: value})
		}
	}
	return resp, nil
}

func (s *Server) DictionaryIncrement(ctx context.Context, req *protocol.DictionaryIncrementRequest) (*protocol.DictionaryIncrementResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.dict(req.DictionaryName, now)
	if !ok {
		d = &dictEntry{items: make(map[string][]byte), expiresAt: s.expiry(req.TTLMilliseconds)}
		c.dicts[string(req.DictionaryName)] = d
	} else if req.RefreshTTL {
		d.expiresAt = s.expiry(req.TTLMilliseconds)
	}
	var current int64
	if existing, ok := d.items[string(req.Field)]; ok {
		parsed, err := parseInt(existing)
		if err != nil {
			return nil, status.Error(codes.FailedPrecondition, "existing field value is not an integer")
		}
		current = parsed
	} else {
		d.order = append(d.order, string(req.Field))
	}
	current += req.Amount
	d.items[string(req.Field)] = []byte(fmt.Sprintf("%d", current))
	return &protocol.DictionaryIncrementResponse{Value: current}, nil
}

func (s *Server) DictionaryDelete(ctx context.Context, req *protocol.DictionaryDeleteRequest) (*protocol.DictionaryDeleteResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.dict(req.DictionaryName, s.now()); ok {
		for _, field := range req.Fields {
			delete(d.items, string(field))
		}
	}
	return &protocol.DictionaryDeleteResponse{}, nil
}

// List data plane.

type listEntry struct {
	values    [][]byte
	expiresAt time.Time
}

func (c *cacheStore) list(name []byte, now time.Time) (*listEntry, bool) {
	l, ok := c.lists[string(name)]
	if !ok {
		return nil, false
	}
	if !now.Before(l.expiresAt) {
		delete(c.lists, string(name))
		return nil, false
	}
	return l, true
}

func (c *cacheStore) listForWrite(name []byte, refreshTTL bool, expiresAt, now time.Time) *listEntry {
	l, ok := c.list(name, now)
	if !ok {
		l = &listEntry{expiresAt: expiresAt}
		c.lists[string(name)] = l
	} else if refreshTTL {
		l.expiresAt = expiresAt
	}
	return l
}

func (s *Server) ListPushFront(ctx context.Context, req *protocol.ListPushFrontRequest) (*protocol.ListPushResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.listForWrite(req.ListName, req.RefreshTTL, s.expiry(req.TTLMilliseconds), s.now())
	l.values = append([][]byte{req.Value}, l.values...)
	truncateBack(l, req.TruncateBackToSize)
	return &protocol.ListPushResponse{ListLength: uint32(len(l.values))}, nil
}

func (s *Server) ListPushBack(ctx context.Context, req *protocol.ListPushBackRequest) (*protocol.ListPushResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.listForWrite(req.ListName, req.RefreshTTL, s.expiry(req.TTLMilliseconds), s.now())
	l.values = append(l.values, req.Value)
	truncateFront(l, req.TruncateFrontToSize)
	return &protocol.ListPushResponse{ListLength: uint32(len(l.values))}, nil
}

func (s *Server) ListConcatenateFront(ctx context.Context, req *protocol.ListConcatenateFrontRequest) (*protocol.ListPushResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.listForWrite(req.ListName, req.RefreshTTL, s.expiry(req.TTLMilliseconds), s.now())
	l.values = append(append([][]byte{}, req.Values...), l.values...)
	truncateBack(l, req.TruncateBackToSize)
	return &protocol.ListPushResponse{ListLength: uint32(len(l.values))}, nil
}

func (s *Server) ListConcatenateBack(ctx context.Context, req *protocol.ListConcatenateBackRequest) (*protocol.ListPushResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l := c.listForWrite(req.ListName, req.RefreshTTL, s.expiry(req.TTLMilliseconds), s.now())
	l.values = append(l.values, req.Values...)
	truncateFront(l, req.TruncateFrontToSize)
	return &protocol.ListPushResponse{ListLength: uint32(len(l.values))}, nil
}

func truncateFront(l *listEntry, size uint32) {
	if size > 0 && uint32(len(l.values)) > size {
		l.values = l.values[uint32(len(l.values))-size:]
	}
}

func truncateBack(l *listEntry, size uint32) {
	if size > 0 && uint32(len(l.values)) > size {
		l.values = l.values[:size]
	}
}

func (s *Server) ListPopFront(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.list(req.ListName, s.now())
	if !ok || len(l.values) == 0 {
		return &protocol.ListPopResponse{List: protocol.FoundMissing}, nil
	}
	value := l.values[0]
	l.values = l.values[1:]
	return &protocol.ListPopResponse{List: protocol.FoundYes, Value: value}, nil
}

func (s *Server) ListPopBack(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.list(req.ListName, s.now())
	if !ok || len(l.values) == 0 {
		return &protocol.ListPopResponse{List: protocol.FoundMissing}, nil
	}
	value := l.values[len(l.values)-1]
	l.values = l.values[:len(l.values)-1]
	return &protocol.ListPopResponse{List: protocol.FoundYes, Value: value}, nil
}

func (s *Server) ListFetch(ctx context.Context, req *protocol.ListFetchRequest) (*protocol.ListFetchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.list(req.ListName, s.now())
	if !ok || len(l.values) == 0 {
		return &protocol.ListFetchResponse{List: protocol.FoundMissing}, nil
	}
	values := make([][]byte, len(l.values))
	copy(values, l.values)
	return &protocol.ListFetchResponse{List: protocol.FoundYes, Values: values}, nil
}

func (s *Server) ListLength(ctx context.Context, req *protocol.ListLengthRequest) (*protocol.ListLengthResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.list(req.ListName, s.now())
	if !ok || len(l.values) == 0 {
		return &protocol.ListLengthResponse{List: protocol.FoundMissing}, nil
	}
	return &protocol.ListLengthResponse{List: protocol.FoundYes, Length: uint32(len(l.values))}, nil
}

func (s *Server) ListRemove(ctx context.Context, req *protocol.ListRemoveRequest) (*protocol.ListRemoveResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.list(req.ListName, s.now()); ok {
		kept := l.values[:0]
		for _, v := range l.values {
			if !bytes.Equal(v, req.AllElementsWithValue) {
				kept = append(kept, v)
			}
		}
		l.values = kept
	}
	return &protocol.ListRemoveResponse{}, nil
}

// Set data plane.

type setEntry struct {
	elements  map[string]struct{}
	expiresAt time.Time
}

func (c *cacheStore) set(name []byte, now time.Time) (*setEntry, bool) {
	e, ok := c.sets[string(name)]
	if !ok {
		return nil, false
	}
	if !now.Before(e.expiresAt) {
		delete(c.sets, string(name))
		return nil, false
	}
	return e, true
}

func (s *Server) SetUnion(ctx context.Context, req *protocol.SetUnionRequest) (*protocol.SetUnionResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.set(req.SetName, now)
	if !ok {
		e = &setEntry{elements: make(map[string]struct{}), expiresAt: s.expiry(req.TTLMilliseconds)}
		c.sets[string(req.SetName)] = e
	} else if req.RefreshTTL {
		e.expiresAt = s.expiry(req.TTLMilliseconds)
	}
	for _, elem := range req.Elements {
		e.elements[string(elem)] = struct{}{}
	}
	return &protocol.SetUnionResponse{}, nil
}

func (s *Server) SetDifference(ctx context.Context, req *protocol.SetDifferenceRequest) (*protocol.SetDifferenceResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.set(req.SetName, s.now()); ok {
		for _, elem := range req.Elements {
			delete(e.elements, string(elem))
		}
		if len(e.elements) == 0 {
			delete(c.sets, string(req.SetName))
		}
	}
	return &protocol.SetDifferenceResponse{}, nil
}

func (s *Server) SetFetch(ctx context.Context, req *protocol.SetFetchRequest) (*protocol.SetFetchResponse, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	c, err := s.cache(req.CacheName)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.set(req.SetName, s.now())
	if !ok {
		return &protocol.SetFetchResponse{Set: protocol.FoundMissing}, nil
	}
	resp := &protocol.SetFetchResponse{Set: protocol.FoundYes}
	for elem := range e.elements {
		resp.Elements = append(resp.Elements, []byte(elem))
	}
	return resp, nil
}

var _ protocol.ControlStub = (*Server)(nil)
var _ protocol.CacheStub = (*Server)(nil)
var _ protocol.VectorStub = (*Server)(nil)
