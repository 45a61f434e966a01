package sdk

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birbparty/roost-go/internal/memserver"
)

func TestDictionarySetGetFields(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	set := f.client.DictionarySetFields(context.Background(), cache, "profile", map[string]Value{
		"name":  String("ada"),
		"email": String("ada@example.com"),
	})
	require.IsType(t, &CacheDictionarySetFieldsSuccess{}, set)

	get := f.client.DictionaryGetFields(context.Background(), cache, "profile",
		[]Value{String("name"), String("missing"), String("email")})
	hit, ok := get.(*CacheDictionaryGetFieldsHit)
	require.True(t, ok)
	require.Len(t, hit.Responses(), 3)

	first, ok := hit.Responses()[0].(*CacheDictionaryGetFieldHit)
	require.True(t, ok)
	assert.Equal(t, []byte("name"), first.FieldByte())
	assert.Equal(t, []byte("ada"), first.ValueByte())

	miss, ok := hit.Responses()[1].(*CacheDictionaryGetFieldMiss)
	require.True(t, ok)
	assert.Equal(t, []byte("missing"), miss.FieldByte())

	assert.IsType(t, &CacheDictionaryGetFieldHit{}, hit.Responses()[2])
	assert.Equal(t, map[string][]byte{
		"name":  []byte("ada"),
		"email": []byte("ada@example.com"),
	}, hit.ValueMap())
}

func TestDictionaryGetFieldsOnAbsentDictionaryIsMiss(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	resp := f.client.DictionaryGetFields(context.Background(), cache, "nope", []Value{String("f")})
	assert.IsType(t, &CacheDictionaryGetFieldsMiss{}, resp)
}

func TestDictionaryFetch(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.DictionarySetFields(context.Background(), cache, "d", map[string]Value{
		"a": String("1"),
		"b": String("2"),
	})

	fetch := f.client.DictionaryFetch(context.Background(), cache, "d")
	hit, ok := fetch.(*CacheDictionaryFetchHit)
	require.True(t, ok)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, hit.ValueMap())

	assert.IsType(t, &CacheDictionaryFetchMiss{}, f.client.DictionaryFetch(context.Background(), cache, "absent"))
}

func TestDictionaryIncrementAndRemove(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	first, ok := f.client.DictionaryIncrement(context.Background(), cache, "counters", String("hits"), 2).(*CacheDictionaryIncrementSuccess)
	require.True(t, ok)
	assert.Equal(t, int64(2), first.Value())

	second, ok := f.client.DictionaryIncrement(context.Background(), cache, "counters", String("hits"), 3).(*CacheDictionaryIncrementSuccess)
	require.True(t, ok)
	assert.Equal(t, int64(5), second.Value())

	remove := f.client.DictionaryRemoveFields(context.Background(), cache, "counters", []Value{String("hits")})
	require.IsType(t, &CacheDictionaryRemoveFieldsSuccess{}, remove)

	get := f.client.DictionaryGetFields(context.Background(), cache, "counters", []Value{String("hits")})
	hit, ok := get.(*CacheDictionaryGetFieldsHit)
	require.True(t, ok)
	assert.IsType(t, &CacheDictionaryGetFieldMiss{}, hit.Responses()[0])
}

func TestDictionaryIncrementNonIntegerFieldIsFailedPrecondition(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.DictionarySetFields(context.Background(), cache, "d", map[string]Value{"f": String("text")})
	resp := f.client.DictionaryIncrement(context.Background(), cache, "d", String("f"), 1)
	errResp, ok := resp.(*CacheDictionaryIncrementError)
	require.True(t, ok)
	assert.Equal(t, FailedPreconditionError, errResp.ErrorCode())
}

func TestDictionaryTTLRefreshBehavior(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	now := time.Now()
	f.server.SetClock(func() time.Time { return now })

	f.client.DictionarySetFieldsWithTTL(context.Background(), cache, "d",
		map[string]Value{"a": String("1")}, CollectionTTLOf(10*time.Second))

	// A later write with refresh disabled must leave the original
	// expiry in place.
	now = now.Add(8 * time.Second)
	f.client.DictionarySetFieldsWithTTL(context.Background(), cache, "d",
		map[string]Value{"b": String("2")}, CollectionTTLOf(10*time.Second).WithNoRefreshTTLOnUpdates())

	now = now.Add(4 * time.Second)
	assert.IsType(t, &CacheDictionaryFetchMiss{}, f.client.DictionaryFetch(context.Background(), cache, "d"))
}

func TestListPushAndFetchOrdering(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	push, ok := f.client.ListPushBack(context.Background(), cache, "l", String("b")).(*CacheListPushBackSuccess)
	require.True(t, ok)
	assert.Equal(t, uint32(1), push.ListLength())

	front, ok := f.client.ListPushFront(context.Background(), cache, "l", String("a")).(*CacheListPushFrontSuccess)
	require.True(t, ok)
	assert.Equal(t, uint32(2), front.ListLength())

	back, ok := f.client.ListConcatenateBack(context.Background(), cache, "l", []Value{String("c"), String("d")}).(*CacheListConcatenateBackSuccess)
	require.True(t, ok)
	assert.Equal(t, uint32(4), back.ListLength())

	fetch, ok := f.client.ListFetch(context.Background(), cache, "l").(*CacheListFetchHit)
	require.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}, fetch.ValueListByte())

	strs, err := fetch.ValueListString()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, strs)
}

func TestListConcatenateFrontPrependsInOrder(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.ListPushBack(context.Background(), cache, "l", String("z"))
	f.client.ListConcatenateFront(context.Background(), cache, "l", []Value{String("a"), String("b")})

	fetch, ok := f.client.ListFetch(context.Background(), cache, "l").(*CacheListFetchHit)
	require.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("z")}, fetch.ValueListByte())
}

func TestListPushTruncation(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	for _, v := range []string{"1", "2", "3"} {
		f.client.ListPushBack(context.Background(), cache, "recent", String(v))
	}
	push, ok := f.client.ListPushBackWithOptions(context.Background(), cache, "recent",
		String("4"), 2, CollectionTTLFromCacheTTL()).(*CacheListPushBackSuccess)
	require.True(t, ok)
	assert.Equal(t, uint32(2), push.ListLength())

	fetch, ok := f.client.ListFetch(context.Background(), cache, "recent").(*CacheListFetchHit)
	require.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("3"), []byte("4")}, fetch.ValueListByte())
}

func TestListPopBothEnds(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.ListConcatenateBack(context.Background(), cache, "l", []Value{String("a"), String("b"), String("c")})

	popFront, ok := f.client.ListPopFront(context.Background(), cache, "l").(*CacheListPopFrontHit)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), popFront.ValueByte())

	popBack, ok := f.client.ListPopBack(context.Background(), cache, "l").(*CacheListPopBackHit)
	require.True(t, ok)
	assert.Equal(t, []byte("c"), popBack.ValueByte())

	length, ok := f.client.ListLength(context.Background(), cache, "l").(*CacheListLengthHit)
	require.True(t, ok)
	assert.Equal(t, uint32(1), length.Length())
}

func TestListPopOnAbsentListIsMiss(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	assert.IsType(t, &CacheListPopFrontMiss{}, f.client.ListPopFront(context.Background(), cache, "nope"))
	assert.IsType(t, &CacheListPopBackMiss{}, f.client.ListPopBack(context.Background(), cache, "nope"))
	assert.IsType(t, &CacheListLengthMiss{}, f.client.ListLength(context.Background(), cache, "nope"))
	assert.IsType(t, &CacheListFetchMiss{}, f.client.ListFetch(context.Background(), cache, "nope"))
}

func TestListRemoveValueRemovesAllMatches(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.ListConcatenateBack(context.Background(), cache, "l",
		[]Value{String("x"), String("keep"), String("x"), String("x")})
	remove := f.client.ListRemoveValue(context.Background(), cache, "l", String("x"))
	require.IsType(t, &CacheListRemoveValueSuccess{}, remove)

	fetch, ok := f.client.ListFetch(context.Background(), cache, "l").(*CacheListFetchHit)
	require.True(t, ok)
	assert.Equal(t, [][]byte{[]byte("keep")}, fetch.ValueListByte())
}

func TestSetAddFetchRemove(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	add := f.client.SetAddElements(context.Background(), cache, "tags",
		[]Value{String("red"), String("blue"), String("red")})
	require.IsType(t, &CacheSetAddElementsSuccess{}, add)

	fetch, ok := f.client.SetFetch(context.Background(), cache, "tags").(*CacheSetFetchHit)
	require.True(t, ok)
	elements, err := fetch.ValueSetString()
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"red": {}, "blue": {}}, elements)

	remove := f.client.SetRemoveElements(context.Background(), cache, "tags", []Value{String("red")})
	require.IsType(t, &CacheSetRemoveElementsSuccess{}, remove)

	fetch, ok = f.client.SetFetch(context.Background(), cache, "tags").(*CacheSetFetchHit)
	require.True(t, ok)
	elements, err = fetch.ValueSetString()
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"blue": {}}, elements)
}

func TestSetFetchOnAbsentSetIsMiss(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	assert.IsType(t, &CacheSetFetchMiss{}, f.client.SetFetch(context.Background(), cache, "nope"))
}

func TestCollectionValidationFailsBeforeTransport(t *testing.T) {
	f := newCacheFixture()

	assert.Equal(t, InvalidArgumentError,
		f.client.DictionarySetFields(context.Background(), "c", "", map[string]Value{"f": String("v")}).(*CacheDictionarySetFieldsError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.DictionarySetFields(context.Background(), "c", "d", nil).(*CacheDictionarySetFieldsError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListPushFront(context.Background(), "c", "l", nil).(*CacheListPushFrontError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListConcatenateBack(context.Background(), "c", "l", nil).(*CacheListConcatenateBackError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.SetAddElements(context.Background(), "c", "s", []Value{nil}).(*CacheSetAddElementsError).ErrorCode())

	assert.Zero(t, f.counting.count())
}

func TestNonPositiveCollectionTTLFailsBeforeTransport(t *testing.T) {
	f := newCacheFixture()
	negative := CollectionTTLOf(-time.Second)
	zero := CollectionTTLOf(0)

	assert.Equal(t, InvalidArgumentError,
		f.client.DictionarySetFieldsWithTTL(context.Background(), "c", "d", map[string]Value{"f": String("v")}, negative).(*CacheDictionarySetFieldsError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.DictionaryIncrementWithTTL(context.Background(), "c", "d", String("f"), 1, zero).(*CacheDictionaryIncrementError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListPushFrontWithOptions(context.Background(), "c", "l", String("v"), 0, negative).(*CacheListPushFrontError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListPushBackWithOptions(context.Background(), "c", "l", String("v"), 0, zero).(*CacheListPushBackError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListConcatenateFrontWithOptions(context.Background(), "c", "l", []Value{String("v")}, 0, negative).(*CacheListConcatenateFrontError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.ListConcatenateBackWithOptions(context.Background(), "c", "l", []Value{String("v")}, 0, zero).(*CacheListConcatenateBackError).ErrorCode())
	assert.Equal(t, InvalidArgumentError,
		f.client.SetAddElementsWithTTL(context.Background(), "c", "s", []Value{String("v")}, negative).(*CacheSetAddElementsError).ErrorCode())

	assert.Zero(t, f.counting.count())
}

func TestDictionaryGetFieldsWithMismatchedPartCountIsError(t *testing.T) {
	server := memserver.New()
	config := DefaultConfig().WithRetryStrategy(NoRetryStrategy{})
	client := newCacheClient(config, testDefaultTTL, server, &oversizedDictionaryGet{CacheStub: server})

	cache := uuid.NewString()
	require.IsType(t, &CreateCacheSuccess{}, client.CreateCache(context.Background(), cache))

	resp := client.DictionaryGetFields(context.Background(), cache, "d", []Value{String("f")})
	errResp, ok := resp.(*CacheDictionaryGetFieldsError)
	require.True(t, ok)
	assert.Equal(t, UnknownError, errResp.ErrorCode())
}
