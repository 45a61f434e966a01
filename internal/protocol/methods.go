package protocol

// Fully qualified RPC method names, used by the gRPC binding when
// invoking the service and by interceptors when labeling calls.
const (
	MethodCreateCache = "/roost.control.ScsControl/CreateCache"
	MethodDeleteCache = "/roost.control.ScsControl/DeleteCache"
	MethodListCaches  = "/roost.control.ScsControl/ListCaches"

	MethodSet                  = "/roost.cache.Scs/Set"
	MethodSetIfNotExists       = "/roost.cache.Scs/SetIfNotExists"
	MethodGet                  = "/roost.cache.Scs/Get"
	MethodDelete               = "/roost.cache.Scs/Delete"
	MethodIncrement            = "/roost.cache.Scs/Increment"
	MethodDictionarySet        = "/roost.cache.Scs/DictionarySet"
	MethodDictionaryGet        = "/roost.cache.Scs/DictionaryGet"
	MethodDictionaryFetch      = "/roost.cache.Scs/DictionaryFetch"
	MethodDictionaryIncrement  = "/roost.cache.Scs/DictionaryIncrement"
	MethodDictionaryDelete     = "/roost.cache.Scs/DictionaryDelete"
	MethodListPushFront        = "/roost.cache.Scs/ListPushFront"
	MethodListPushBack         = "/roost.cache.Scs/ListPushBack"
	MethodListConcatenateFront = "/roost.cache.Scs/ListConcatenateFront"
	MethodListConcatenateBack  = "/roost.cache.Scs/ListConcatenateBack"
	MethodListPopFront         = "/roost.cache.Scs/ListPopFront"
	MethodListPopBack          = "/roost.cache.Scs/ListPopBack"
	MethodListFetch            = "/roost.cache.Scs/ListFetch"
	MethodListLength           = "/roost.cache.Scs/ListLength"
	MethodListRemove           = "/roost.cache.Scs/ListRemove"
	MethodSetUnion             = "/roost.cache.Scs/SetUnion"
	MethodSetDifference        = "/roost.cache.Scs/SetDifference"
	MethodSetFetch             = "/roost.cache.Scs/SetFetch"

	MethodCreateIndex          = "/roost.vectorindex.VectorIndex/CreateIndex"
	MethodDeleteIndex          = "/roost.vectorindex.VectorIndex/DeleteIndex"
	MethodListIndexes          = "/roost.vectorindex.VectorIndex/ListIndexes"
	MethodUpsertItemBatch      = "/roost.vectorindex.VectorIndex/UpsertItemBatch"
	MethodDeleteItemBatch      = "/roost.vectorindex.VectorIndex/DeleteItemBatch"
	MethodGetItemBatch         = "/roost.vectorindex.VectorIndex/GetItemBatch"
	MethodGetItemMetadataBatch = "/roost.vectorindex.VectorIndex/GetItemMetadataBatch"
	MethodCountItems           = "/roost.vectorindex.VectorIndex/CountItems"
	MethodSearch               = "/roost.vectorindex.VectorIndex/Search"
)

// Metadata keys attached to every call by the SDK's channel binding.
const (
	AuthorizationHeader = "authorization"
	CacheNameHeader     = "cache"
	AgentHeader         = "agent"
)

// Similarity metric names accepted by CreateIndex.
const (
	MetricCosineSimilarity    = "cosine_similarity"
	MetricInnerProduct        = "inner_product"
	MetricEuclideanSimilarity = "euclidean_similarity"
)
