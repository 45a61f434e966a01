package sdk

// CacheSetAddElementsResponse is the outcome of SetAddElements:
// *CacheSetAddElementsSuccess or *CacheSetAddElementsError.
type CacheSetAddElementsResponse interface{ isCacheSetAddElementsResponse() }

type CacheSetAddElementsSuccess struct{}

func (*CacheSetAddElementsSuccess) isCacheSetAddElementsResponse() {}

type CacheSetAddElementsError struct{ errorResponse }

func (*CacheSetAddElementsError) isCacheSetAddElementsResponse() {}

// CacheSetRemoveElementsResponse is the outcome of SetRemoveElements:
// *CacheSetRemoveElementsSuccess or *CacheSetRemoveElementsError.
type CacheSetRemoveElementsResponse interface{ isCacheSetRemoveElementsResponse() }

type CacheSetRemoveElementsSuccess struct{}

func (*CacheSetRemoveElementsSuccess) isCacheSetRemoveElementsResponse() {}

type CacheSetRemoveElementsError struct{ errorResponse }

func (*CacheSetRemoveElementsError) isCacheSetRemoveElementsResponse() {}

// CacheSetFetchResponse is the outcome of SetFetch: *CacheSetFetchHit,
// *CacheSetFetchMiss or *CacheSetFetchError.
type CacheSetFetchResponse interface{ isCacheSetFetchResponse() }

type CacheSetFetchHit struct {
	elements [][]byte
}

func (*CacheSetFetchHit) isCacheSetFetchResponse() {}

// ValueSetByte returns the set's elements. Order is unspecified.
func (h *CacheSetFetchHit) ValueSetByte() [][]byte { return h.elements }

// ValueSetString returns the elements decoded as UTF-8, failing if any
// element is not valid text.
func (h *CacheSetFetchHit) ValueSetString() (map[string]struct{}, error) {
	out := make(map[string]struct{}, len(h.elements))
	for _, e := range h.elements {
		s, err := byteValue(e).ValueString()
		if err != nil {
			return nil, err
		}
		out[s] = struct{}{}
	}
	return out, nil
}

type CacheSetFetchMiss struct{}

func (*CacheSetFetchMiss) isCacheSetFetchResponse() {}

type CacheSetFetchError struct{ errorResponse }

func (*CacheSetFetchError) isCacheSetFetchResponse() {}
