package sdk

// CacheListPushFrontResponse is the outcome of ListPushFront:
// *CacheListPushFrontSuccess or *CacheListPushFrontError.
type CacheListPushFrontResponse interface{ isCacheListPushFrontResponse() }

type CacheListPushFrontSuccess struct {
	listLength uint32
}

func (*CacheListPushFrontSuccess) isCacheListPushFrontResponse() {}

// ListLength returns the list's length after the push.
func (s *CacheListPushFrontSuccess) ListLength() uint32 { return s.listLength }

type CacheListPushFrontError struct{ errorResponse }

func (*CacheListPushFrontError) isCacheListPushFrontResponse() {}

// CacheListPushBackResponse is the outcome of ListPushBack:
// *CacheListPushBackSuccess or *CacheListPushBackError.
type CacheListPushBackResponse interface{ isCacheListPushBackResponse() }

type CacheListPushBackSuccess struct {
	listLength uint32
}

func (*CacheListPushBackSuccess) isCacheListPushBackResponse() {}

func (s *CacheListPushBackSuccess) ListLength() uint32 { return s.listLength }

type CacheListPushBackError struct{ errorResponse }

func (*CacheListPushBackError) isCacheListPushBackResponse() {}

// CacheListConcatenateFrontResponse is the outcome of
// ListConcatenateFront: *CacheListConcatenateFrontSuccess or
// *CacheListConcatenateFrontError.
type CacheListConcatenateFrontResponse interface{ isCacheListConcatenateFrontResponse() }

type CacheListConcatenateFrontSuccess struct {
	listLength uint32
}

func (*CacheListConcatenateFrontSuccess) isCacheListConcatenateFrontResponse() {}

func (s *CacheListConcatenateFrontSuccess) ListLength() uint32 { return s.listLength }

type CacheListConcatenateFrontError struct{ errorResponse }

func (*CacheListConcatenateFrontError) isCacheListConcatenateFrontResponse() {}

// CacheListConcatenateBackResponse is the outcome of
// ListConcatenateBack: *CacheListConcatenateBackSuccess or
// *CacheListConcatenateBackError.
type CacheListConcatenateBackResponse interface{ isCacheListConcatenateBackResponse() }

type CacheListConcatenateBackSuccess struct {
	listLength uint32
}

func (*CacheListConcatenateBackSuccess) isCacheListConcatenateBackResponse() {}

func (s *CacheListConcatenateBackSuccess) ListLength() uint32 { return s.listLength }

type CacheListConcatenateBackError struct{ errorResponse }

func (*CacheListConcatenateBackError) isCacheListConcatenateBackResponse() {}

// CacheListPopFrontResponse is the outcome of ListPopFront:
// *CacheListPopFrontHit, *CacheListPopFrontMiss or
// *CacheListPopFrontError.
type CacheListPopFrontResponse interface{ isCacheListPopFrontResponse() }

type CacheListPopFrontHit struct{ byteValue }

func (*CacheListPopFrontHit) isCacheListPopFrontResponse() {}

type CacheListPopFrontMiss struct{}

func (*CacheListPopFrontMiss) isCacheListPopFrontResponse() {}

type CacheListPopFrontError struct{ errorResponse }

func (*CacheListPopFrontError) isCacheListPopFrontResponse() {}

// CacheListPopBackResponse is the outcome of ListPopBack:
// *CacheListPopBackHit, *CacheListPopBackMiss or *CacheListPopBackError.
type CacheListPopBackResponse interface{ isCacheListPopBackResponse() }

type CacheListPopBackHit struct{ byteValue }

func (*CacheListPopBackHit) isCacheListPopBackResponse() {}

type CacheListPopBackMiss struct{}

func (*CacheListPopBackMiss) isCacheListPopBackResponse() {}

type CacheListPopBackError struct{ errorResponse }

func (*CacheListPopBackError) isCacheListPopBackResponse() {}

// CacheListFetchResponse is the outcome of ListFetch:
// *CacheListFetchHit, *CacheListFetchMiss or *CacheListFetchError.
type CacheListFetchResponse interface{ isCacheListFetchResponse() }

type CacheListFetchHit struct {
	values [][]byte
}

func (*CacheListFetchHit) isCacheListFetchResponse() {}

// ValueListByte returns the list contents front to back.
func (h *CacheListFetchHit) ValueListByte() [][]byte { return h.values }

// ValueListString returns the list contents decoded as UTF-8, failing
// if any element is not valid text.
func (h *CacheListFetchHit) ValueListString() ([]string, error) {
	out := make([]string, 0, len(h.values))
	for _, v := range h.values {
		s, err := byteValue(v).ValueString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type CacheListFetchMiss struct{}

func (*CacheListFetchMiss) isCacheListFetchResponse() {}

type CacheListFetchError struct{ errorResponse }

func (*CacheListFetchError) isCacheListFetchResponse() {}

// CacheListLengthResponse is the outcome of ListLength:
// *CacheListLengthHit, *CacheListLengthMiss or *CacheListLengthError.
type CacheListLengthResponse interface{ isCacheListLengthResponse() }

type CacheListLengthHit struct {
	length uint32
}

func (*CacheListLengthHit) isCacheListLengthResponse() {}

// Length returns the number of elements in the list.
func (h *CacheListLengthHit) Length() uint32 { return h.length }

type CacheListLengthMiss struct{}

func (*CacheListLengthMiss) isCacheListLengthResponse() {}

type CacheListLengthError struct{ errorResponse }

func (*CacheListLengthError) isCacheListLengthResponse() {}

// CacheListRemoveValueResponse is the outcome of ListRemoveValue:
// *CacheListRemoveValueSuccess or *CacheListRemoveValueError.
type CacheListRemoveValueResponse interface{ isCacheListRemoveValueResponse() }

type CacheListRemoveValueSuccess struct{}

func (*CacheListRemoveValueSuccess) isCacheListRemoveValueResponse() {}

type CacheListRemoveValueError struct{ errorResponse }

func (*CacheListRemoveValueError) isCacheListRemoveValueResponse() {}
