package sdk

// CacheDictionarySetFieldsResponse is the outcome of
// DictionarySetFields: *CacheDictionarySetFieldsSuccess or
// *CacheDictionarySetFieldsError.
type CacheDictionarySetFieldsResponse interface{ isCacheDictionarySetFieldsResponse() }

type CacheDictionarySetFieldsSuccess struct{}

func (*CacheDictionarySetFieldsSuccess) isCacheDictionarySetFieldsResponse() {}

type CacheDictionarySetFieldsError struct{ errorResponse }

func (*CacheDictionarySetFieldsError) isCacheDictionarySetFieldsResponse() {}

// CacheDictionaryGetFieldResponse is the per-field outcome inside a
// DictionaryGetFields hit: *CacheDictionaryGetFieldHit or
// *CacheDictionaryGetFieldMiss.
type CacheDictionaryGetFieldResponse interface{ isCacheDictionaryGetFieldResponse() }

// CacheDictionaryGetFieldHit carries one found field and its value.
type CacheDictionaryGetFieldHit struct {
	field []byte
	byteValue
}

func (*CacheDictionaryGetFieldHit) isCacheDictionaryGetFieldResponse() {}

// FieldByte returns the field name as raw bytes.
func (h *CacheDictionaryGetFieldHit) FieldByte() []byte { return h.field }

// FieldString returns the field name decoded as UTF-8.
func (h *CacheDictionaryGetFieldHit) FieldString() (string, error) {
	return byteValue(h.field).ValueString()
}

// CacheDictionaryGetFieldMiss records one requested field that was not
// present in the dictionary.
type CacheDictionaryGetFieldMiss struct {
	field []byte
}

func (*CacheDictionaryGetFieldMiss) isCacheDictionaryGetFieldResponse() {}

// FieldByte returns the missed field name as raw bytes.
func (m *CacheDictionaryGetFieldMiss) FieldByte() []byte { return m.field }

// CacheDictionaryGetFieldsResponse is the outcome of
// DictionaryGetFields: *CacheDictionaryGetFieldsHit (dictionary exists;
// inspect the per-field responses), *CacheDictionaryGetFieldsMiss
// (dictionary absent) or *CacheDictionaryGetFieldsError.
type CacheDictionaryGetFieldsResponse interface{ isCacheDictionaryGetFieldsResponse() }

type CacheDictionaryGetFieldsHit struct {
	responses []CacheDictionaryGetFieldResponse
}

func (*CacheDictionaryGetFieldsHit) isCacheDictionaryGetFieldsResponse() {}

// Responses returns the per-field hit/miss results, in request order.
func (h *CacheDictionaryGetFieldsHit) Responses() []CacheDictionaryGetFieldResponse {
	return h.responses
}

// ValueMap returns the found fields as a string map, skipping misses
// and non-UTF-8 names.
func (h *CacheDictionaryGetFieldsHit) ValueMap() map[string][]byte {
	out := make(map[string][]byte)
	for _, r := range h.responses {
		if hit, ok := r.(*CacheDictionaryGetFieldHit); ok {
			out[string(hit.field)] = hit.ValueByte()
		}
	}
	return out
}

type CacheDictionaryGetFieldsMiss struct{}

func (*CacheDictionaryGetFieldsMiss) isCacheDictionaryGetFieldsResponse() {}

type CacheDictionaryGetFieldsError struct{ errorResponse }

func (*CacheDictionaryGetFieldsError) isCacheDictionaryGetFieldsResponse() {}

// CacheDictionaryFetchResponse is the outcome of DictionaryFetch:
// *CacheDictionaryFetchHit, *CacheDictionaryFetchMiss or
// *CacheDictionaryFetchError.
type CacheDictionaryFetchResponse interface{ isCacheDictionaryFetchResponse() }

// CacheDictionaryFetchHit carries the full dictionary contents.
type CacheDictionaryFetchHit struct {
	items map[string][]byte
}

func (*CacheDictionaryFetchHit) isCacheDictionaryFetchResponse() {}

// ValueMap returns every field and value in the dictionary.
func (h *CacheDictionaryFetchHit) ValueMap() map[string][]byte { return h.items }

type CacheDictionaryFetchMiss struct{}

func (*CacheDictionaryFetchMiss) isCacheDictionaryFetchResponse() {}

type CacheDictionaryFetchError struct{ errorResponse }

func (*CacheDictionaryFetchError) isCacheDictionaryFetchResponse() {}

// CacheDictionaryIncrementResponse is the outcome of
// DictionaryIncrement: *CacheDictionaryIncrementSuccess or
// *CacheDictionaryIncrementError.
type CacheDictionaryIncrementResponse interface{ isCacheDictionaryIncrementResponse() }

type CacheDictionaryIncrementSuccess struct {
	value int64
}

func (*CacheDictionaryIncrementSuccess) isCacheDictionaryIncrementResponse() {}

// Value returns the field's value after the increment.
func (s *CacheDictionaryIncrementSuccess) Value() int64 { return s.value }

type CacheDictionaryIncrementError struct{ errorResponse }

func (*CacheDictionaryIncrementError) isCacheDictionaryIncrementResponse() {}

// CacheDictionaryRemoveFieldsResponse is the outcome of
// DictionaryRemoveFields: *CacheDictionaryRemoveFieldsSuccess or
// *CacheDictionaryRemoveFieldsError.
type CacheDictionaryRemoveFieldsResponse interface{ isCacheDictionaryRemoveFieldsResponse() }

type CacheDictionaryRemoveFieldsSuccess struct{}

func (*CacheDictionaryRemoveFieldsSuccess) isCacheDictionaryRemoveFieldsResponse() {}

type CacheDictionaryRemoveFieldsError struct{ errorResponse }

func (*CacheDictionaryRemoveFieldsError) isCacheDictionaryRemoveFieldsResponse() {}
