package sdk

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	grpccreds "google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/metadata"

	"github.com/birbparty/roost-go/internal/protocol"
)

const sdkAgent = "roost-go:0.1"

// jsonCodec lets the channel speak the service's JSON content subtype.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// grpcChannel owns one client connection to a service endpoint. Both
// clients hold their own channel; control and data planes share it.
type grpcChannel struct {
	conn *grpc.ClientConn
}

func dialChannel(endpoint string, provider CredentialProvider, config *Config) (*grpcChannel, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("credential provider carries no endpoint")
	}
	transport := grpc.WithTransportCredentials(grpccreds.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}))
	if config.PlainText {
		transport = grpc.WithTransportCredentials(insecure.NewCredentials())
	}
	conn, err := grpc.NewClient(endpoint,
		transport,
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(jsonCodec{}.Name())),
		grpc.WithUnaryInterceptor(authInterceptor(provider.authToken())),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &grpcChannel{conn: conn}, nil
}

func (c *grpcChannel) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// authInterceptor attaches the credential and agent headers to every
// outgoing call.
func authInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx,
			protocol.AuthorizationHeader, token,
			protocol.AgentHeader, sdkAgent,
		)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// withCacheName labels a data-plane call with its cache, mirroring the
// request body so the service can route before decoding.
func withCacheName(ctx context.Context, name string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, protocol.CacheNameHeader, name)
}

func invoke[Resp any](ctx context.Context, c *grpcChannel, method string, req any) (*Resp, error) {
	out := new(Resp)
	if err := c.conn.Invoke(ctx, method, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// grpcControlStub binds protocol.ControlStub to a channel.
type grpcControlStub struct{ channel *grpcChannel }

func (s grpcControlStub) CreateCache(ctx context.Context, req *protocol.CreateCacheRequest) (*protocol.CreateCacheResponse, error) {
	return invoke[protocol.CreateCacheResponse](ctx, s.channel, protocol.MethodCreateCache, req)
}

func (s grpcControlStub) DeleteCache(ctx context.Context, req *protocol.DeleteCacheRequest) (*protocol.DeleteCacheResponse, error) {
	return invoke[protocol.DeleteCacheResponse](ctx, s.channel, protocol.MethodDeleteCache, req)
}

func (s grpcControlStub) ListCaches(ctx context.Context, req *protocol.ListCachesRequest) (*protocol.ListCachesResponse, error) {
	return invoke[protocol.ListCachesResponse](ctx, s.channel, protocol.MethodListCaches, req)
}

// grpcCacheStub binds protocol.CacheStub to a channel.
type grpcCacheStub struct{ channel *grpcChannel }

func (s grpcCacheStub) Set(ctx context.Context, req *protocol.SetRequest) (*protocol.SetResponse, error) {
	return invoke[protocol.SetResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodSet, req)
}

func (s grpcCacheStub) SetIfNotExists(ctx context.Context, req *protocol.SetIfNotExistsRequest) (*protocol.SetIfNotExistsResponse, error) {
	return invoke[protocol.SetIfNotExistsResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodSetIfNotExists, req)
}

func (s grpcCacheStub) Get(ctx context.Context, req *protocol.GetRequest) (*protocol.GetResponse, error) {
	return invoke[protocol.GetResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodGet, req)
}

func (s grpcCacheStub) Delete(ctx context.Context, req *protocol.DeleteRequest) (*protocol.DeleteResponse, error) {
	return invoke[protocol.DeleteResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDelete, req)
}

func (s grpcCacheStub) Increment(ctx context.Context, req *protocol.IncrementRequest) (*protocol.IncrementResponse, error) {
	return invoke[protocol.IncrementResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodIncrement, req)
}

func (s grpcCacheStub) DictionarySet(ctx context.Context, req *protocol.DictionarySetRequest) (*protocol.DictionarySetResponse, error) {
	return invoke[protocol.DictionarySetResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDictionarySet, req)
}

func (s grpcCacheStub) DictionaryGet(ctx context.Context, req *protocol.DictionaryGetRequest) (*protocol.DictionaryGetResponse, error) {
	return invoke[protocol.DictionaryGetResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDictionaryGet, req)
}

func (s grpcCacheStub) DictionaryFetch(ctx context.Context, req *protocol.DictionaryFetchRequest) (*protocol.DictionaryFetchResponse, error) {
	return invoke[protocol.DictionaryFetchResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDictionaryFetch, req)
}

func (s grpcCacheStub) DictionaryIncrement(ctx context.Context, req *protocol.DictionaryIncrementRequest) (*protocol.DictionaryIncrementResponse, error) {
	return invoke[protocol.DictionaryIncrementResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDictionaryIncrement, req)
}

func (s grpcCacheStub) DictionaryDelete(ctx context.Context, req *protocol.DictionaryDeleteRequest) (*protocol.DictionaryDeleteResponse, error) {
	return invoke[protocol.DictionaryDeleteResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodDictionaryDelete, req)
}

func (s grpcCacheStub) ListPushFront(ctx context.Context, req *protocol.ListPushFrontRequest) (*protocol.ListPushResponse, error) {
	return invoke[protocol.ListPushResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListPushFront, req)
}

func (s grpcCacheStub) ListPushBack(ctx context.Context, req *protocol.ListPushBackRequest) (*protocol.ListPushResponse, error) {
	return invoke[protocol.ListPushResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListPushBack, req)
}

func (s grpcCacheStub) ListConcatenateFront(ctx context.Context, req *protocol.ListConcatenateFrontRequest) (*protocol.ListPushResponse, error) {
	return invoke[protocol.ListPushResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListConcatenateFront, req)
}

func (s grpcCacheStub) ListConcatenateBack(ctx context.Context, req *protocol.ListConcatenateBackRequest) (*protocol.ListPushResponse, error) {
	return invoke[protocol.ListPushResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListConcatenateBack, req)
}

func (s grpcCacheStub) ListPopFront(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	return invoke[protocol.ListPopResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListPopFront, req)
}

func (s grpcCacheStub) ListPopBack(ctx context.Context, req *protocol.ListPopRequest) (*protocol.ListPopResponse, error) {
	return invoke[protocol.ListPopResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListPopBack, req)
}

func (s grpcCacheStub) ListFetch(ctx context.Context, req *protocol.ListFetchRequest) (*protocol.ListFetchResponse, error) {
	return invoke[protocol.ListFetchResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListFetch, req)
}

func (s grpcCacheStub) ListLength(ctx context.Context, req *protocol.ListLengthRequest) (*protocol.ListLengthResponse, error) {
	return invoke[protocol.ListLengthResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListLength, req)
}

func (s grpcCacheStub) ListRemove(ctx context.Context, req *protocol.ListRemoveRequest) (*protocol.ListRemoveResponse, error) {
	return invoke[protocol.ListRemoveResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodListRemove, req)
}

func (s grpcCacheStub) SetUnion(ctx context.Context, req *protocol.SetUnionRequest) (*protocol.SetUnionResponse, error) {
	return invoke[protocol.SetUnionResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodSetUnion, req)
}

func (s grpcCacheStub) SetDifference(ctx context.Context, req *protocol.SetDifferenceRequest) (*protocol.SetDifferenceResponse, error) {
	return invoke[protocol.SetDifferenceResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodSetDifference, req)
}

func (s grpcCacheStub) SetFetch(ctx context.Context, req *protocol.SetFetchRequest) (*protocol.SetFetchResponse, error) {
	return invoke[protocol.SetFetchResponse](withCacheName(ctx, req.CacheName), s.channel, protocol.MethodSetFetch, req)
}

// grpcVectorStub binds protocol.VectorStub to a channel.
type grpcVectorStub struct{ channel *grpcChannel }

func (s grpcVectorStub) CreateIndex(ctx context.Context, req *protocol.CreateIndexRequest) (*protocol.CreateIndexResponse, error) {
	return invoke[protocol.CreateIndexResponse](ctx, s.channel, protocol.MethodCreateIndex, req)
}

func (s grpcVectorStub) DeleteIndex(ctx context.Context, req *protocol.DeleteIndexRequest) (*protocol.DeleteIndexResponse, error) {
	return invoke[protocol.DeleteIndexResponse](ctx, s.channel, protocol.MethodDeleteIndex, req)
}

func (s grpcVectorStub) ListIndexes(ctx context.Context, req *protocol.ListIndexesRequest) (*protocol.ListIndexesResponse, error) {
	return invoke[protocol.ListIndexesResponse](ctx, s.channel, protocol.MethodListIndexes, req)
}

func (s grpcVectorStub) UpsertItemBatch(ctx context.Context, req *protocol.UpsertItemBatchRequest) (*protocol.UpsertItemBatchResponse, error) {
	return invoke[protocol.UpsertItemBatchResponse](ctx, s.channel, protocol.MethodUpsertItemBatch, req)
}

func (s grpcVectorStub) DeleteItemBatch(ctx context.Context, req *protocol.DeleteItemBatchRequest) (*protocol.DeleteItemBatchResponse, error) {
	return invoke[protocol.DeleteItemBatchResponse](ctx, s.channel, protocol.MethodDeleteItemBatch, req)
}

func (s grpcVectorStub) GetItemBatch(ctx context.Context, req *protocol.GetItemBatchRequest) (*protocol.GetItemBatchResponse, error) {
	return invoke[protocol.GetItemBatchResponse](ctx, s.channel, protocol.MethodGetItemBatch, req)
}

func (s grpcVectorStub) GetItemMetadataBatch(ctx context.Context, req *protocol.GetItemMetadataBatchRequest) (*protocol.GetItemMetadataBatchResponse, error) {
	return invoke[protocol.GetItemMetadataBatchResponse](ctx, s.channel, protocol.MethodGetItemMetadataBatch, req)
}

func (s grpcVectorStub) CountItems(ctx context.Context, req *protocol.CountItemsRequest) (*protocol.CountItemsResponse, error) {
	return invoke[protocol.CountItemsResponse](ctx, s.channel, protocol.MethodCountItems, req)
}

func (s grpcVectorStub) Search(ctx context.Context, req *protocol.SearchRequest) (*protocol.SearchResponse, error) {
	return invoke[protocol.SearchResponse](ctx, s.channel, protocol.MethodSearch, req)
}

var (
	_ protocol.ControlStub = grpcControlStub{}
	_ protocol.CacheStub   = grpcCacheStub{}
	_ protocol.VectorStub  = grpcVectorStub{}
)
