package sdk

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/birbparty/roost-go/internal/memserver"
)

func mustCreateCache(t *testing.T, f *cacheFixture, name string) {
	t.Helper()
	resp := f.client.CreateCache(context.Background(), name)
	require.IsType(t, &CreateCacheSuccess{}, resp)
}

func TestCreateCacheTwiceIsAlreadyExists(t *testing.T) {
	f := newCacheFixture()
	name := uuid.NewString()
	mustCreateCache(t, f, name)

	resp := f.client.CreateCache(context.Background(), name)
	errResp, ok := resp.(*CreateCacheError)
	require.True(t, ok)
	assert.Equal(t, AlreadyExistsError, errResp.ErrorCode())
}

func TestDeleteCacheTwiceIsNotFound(t *testing.T) {
	f := newCacheFixture()
	name := uuid.NewString()
	mustCreateCache(t, f, name)

	first := f.client.DeleteCache(context.Background(), name)
	require.IsType(t, &DeleteCacheSuccess{}, first)

	second := f.client.DeleteCache(context.Background(), name)
	errResp, ok := second.(*DeleteCacheError)
	require.True(t, ok)
	assert.Equal(t, NotFoundError, errResp.ErrorCode())
}

func TestListCaches(t *testing.T) {
	f := newCacheFixture()
	names := map[string]bool{uuid.NewString(): true, uuid.NewString(): true}
	for name := range names {
		mustCreateCache(t, f, name)
	}

	resp := f.client.ListCaches(context.Background())
	success, ok := resp.(*ListCachesSuccess)
	require.True(t, ok)
	assert.Len(t, success.Caches(), 2)
	for _, info := range success.Caches() {
		assert.True(t, names[info.Name], "unexpected cache %q", info.Name)
	}
	assert.Empty(t, success.NextToken())
}

func TestSetGetRoundTrip(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	set := f.client.Set(context.Background(), cache, String("greeting"), String("hello"))
	require.IsType(t, &CacheSetSuccess{}, set)

	get := f.client.Get(context.Background(), cache, String("greeting"))
	hit, ok := get.(*CacheGetHit)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), hit.ValueByte())
	text, err := hit.ValueString()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestGetMissOnAbsentKey(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	resp := f.client.Get(context.Background(), cache, String("nope"))
	assert.IsType(t, &CacheGetMiss{}, resp)
}

func TestGetAgainstAbsentCacheIsNotFound(t *testing.T) {
	f := newCacheFixture()
	resp := f.client.Get(context.Background(), uuid.NewString(), String("key"))
	errResp, ok := resp.(*CacheGetError)
	require.True(t, ok)
	assert.Equal(t, NotFoundError, errResp.ErrorCode())
}

func TestSetOverwritesExistingValue(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.Set(context.Background(), cache, String("k"), String("one"))
	f.client.Set(context.Background(), cache, String("k"), String("two"))

	hit, ok := f.client.Get(context.Background(), cache, String("k")).(*CacheGetHit)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), hit.ValueByte())
}

func TestSetIfNotExists(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	first := f.client.SetIfNotExists(context.Background(), cache, String("k"), String("one"))
	assert.IsType(t, &CacheSetIfNotExistsStored{}, first)

	second := f.client.SetIfNotExists(context.Background(), cache, String("k"), String("two"))
	assert.IsType(t, &CacheSetIfNotExistsNotStored{}, second)

	hit, ok := f.client.Get(context.Background(), cache, String("k")).(*CacheGetHit)
	require.True(t, ok)
	assert.Equal(t, []byte("one"), hit.ValueByte())
}

func TestDeleteIsIdempotentOnAbsentKey(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.Set(context.Background(), cache, String("k"), String("v"))
	require.IsType(t, &CacheDeleteSuccess{}, f.client.Delete(context.Background(), cache, String("k")))
	require.IsType(t, &CacheDeleteSuccess{}, f.client.Delete(context.Background(), cache, String("k")))
	assert.IsType(t, &CacheGetMiss{}, f.client.Get(context.Background(), cache, String("k")))
}

func TestIncrement(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	first, ok := f.client.Increment(context.Background(), cache, String("counter"), 5).(*CacheIncrementSuccess)
	require.True(t, ok)
	assert.Equal(t, int64(5), first.Value())

	second, ok := f.client.Increment(context.Background(), cache, String("counter"), -2).(*CacheIncrementSuccess)
	require.True(t, ok)
	assert.Equal(t, int64(3), second.Value())
}

func TestIncrementNonIntegerValueIsFailedPrecondition(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	f.client.Set(context.Background(), cache, String("k"), String("not a number"))
	resp := f.client.Increment(context.Background(), cache, String("k"), 1)
	errResp, ok := resp.(*CacheIncrementError)
	require.True(t, ok)
	assert.Equal(t, FailedPreconditionError, errResp.ErrorCode())
}

func TestTTLExpiryTurnsHitIntoMiss(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	now := time.Now()
	f.server.SetClock(func() time.Time { return now })

	set := f.client.SetWithTTL(context.Background(), cache, String("k"), String("v"), time.Second)
	require.IsType(t, &CacheSetSuccess{}, set)
	assert.IsType(t, &CacheGetHit{}, f.client.Get(context.Background(), cache, String("k")))

	f.server.SetClock(func() time.Time { return now.Add(2 * time.Second) })
	assert.IsType(t, &CacheGetMiss{}, f.client.Get(context.Background(), cache, String("k")))
}

func TestSetIfNotExistsStoresOverExpiredValue(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	now := time.Now()
	f.server.SetClock(func() time.Time { return now })
	f.client.SetWithTTL(context.Background(), cache, String("k"), String("old"), time.Second)

	f.server.SetClock(func() time.Time { return now.Add(5 * time.Second) })
	resp := f.client.SetIfNotExists(context.Background(), cache, String("k"), String("new"))
	assert.IsType(t, &CacheSetIfNotExistsStored{}, resp)
}

func TestValidationFailsBeforeTransport(t *testing.T) {
	f := newCacheFixture()

	cases := []struct {
		name string
		call func() ErrorCode
	}{
		{"empty cache name on get", func() ErrorCode {
			return f.client.Get(context.Background(), "", String("k")).(*CacheGetError).ErrorCode()
		}},
		{"blank cache name on set", func() ErrorCode {
			return f.client.Set(context.Background(), "   ", String("k"), String("v")).(*CacheSetError).ErrorCode()
		}},
		{"nil key on get", func() ErrorCode {
			return f.client.Get(context.Background(), "c", nil).(*CacheGetError).ErrorCode()
		}},
		{"nil value on set", func() ErrorCode {
			return f.client.Set(context.Background(), "c", String("k"), nil).(*CacheSetError).ErrorCode()
		}},
		{"zero ttl on set", func() ErrorCode {
			return f.client.SetWithTTL(context.Background(), "c", String("k"), String("v"), 0).(*CacheSetError).ErrorCode()
		}},
		{"negative ttl on increment", func() ErrorCode {
			return f.client.IncrementWithTTL(context.Background(), "c", String("k"), 1, -time.Second).(*CacheIncrementError).ErrorCode()
		}},
		{"empty cache name on create", func() ErrorCode {
			return f.client.CreateCache(context.Background(), "").(*CreateCacheError).ErrorCode()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, InvalidArgumentError, tc.call())
		})
	}
	assert.Zero(t, f.counting.count(), "validation failures must not reach the transport")
}

func TestCanceledContextYieldsCanceledError(t *testing.T) {
	f := newCacheFixture()
	cache := uuid.NewString()
	mustCreateCache(t, f, cache)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := f.client.Get(ctx, cache, String("k"))
	errResp, ok := resp.(*CacheGetError)
	require.True(t, ok)
	assert.Equal(t, CanceledError, errResp.ErrorCode())
}

func TestIdempotentGetIsRetried(t *testing.T) {
	server := memserver.New()
	flaky := &flakyGet{
		CacheStub: server,
		failures:  2,
		err:       status.Error(codes.Unavailable, "connection reset"),
	}
	config := DefaultConfig().WithRetryStrategy(&ConstantBackoffStrategy{
		Interval:    time.Millisecond,
		MaxAttempts: 3,
	})
	client := newCacheClient(config, testDefaultTTL, server, flaky)

	cache := uuid.NewString()
	require.IsType(t, &CreateCacheSuccess{}, client.CreateCache(context.Background(), cache))
	require.IsType(t, &CacheSetSuccess{}, client.Set(context.Background(), cache, String("k"), String("v")))

	resp := client.Get(context.Background(), cache, String("k"))
	require.IsType(t, &CacheGetHit{}, resp)
	assert.Equal(t, int64(3), flaky.attempts.Load())
}

func TestNonIdempotentIncrementIsNotRetried(t *testing.T) {
	server := memserver.New()
	flaky := &flakyIncrement{
		CacheStub: server,
		err:       status.Error(codes.Unavailable, "connection reset"),
	}
	config := DefaultConfig().WithRetryStrategy(&ConstantBackoffStrategy{
		Interval:    time.Millisecond,
		MaxAttempts: 5,
	})
	client := newCacheClient(config, testDefaultTTL, server, flaky)

	cache := uuid.NewString()
	require.IsType(t, &CreateCacheSuccess{}, client.CreateCache(context.Background(), cache))

	resp := client.Increment(context.Background(), cache, String("n"), 1)
	errResp, ok := resp.(*CacheIncrementError)
	require.True(t, ok)
	assert.Equal(t, ServerUnavailableError, errResp.ErrorCode())
	assert.Equal(t, int64(1), flaky.attempts.Load())
}

func TestNewCacheClientRejectsNonPositiveTTL(t *testing.T) {
	provider, err := NewCredentialProviderFromString("legacy-key")
	require.NoError(t, err)
	_, err = NewCacheClient(DefaultConfig(), provider.WithEndpoints("localhost:5000", "localhost:5001"), 0)
	assert.Error(t, err)
}
