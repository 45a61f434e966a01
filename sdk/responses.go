package sdk

import (
	"errors"
	"unicode/utf8"
)

// Every remote operation returns a response interface implemented by a
// closed set of variants: the operation's success shapes (Success, Hit,
// Miss, Stored, ...) plus an Error variant wrapping a classified
// *Error. Exactly one variant is ever returned per call; callers
// discriminate with a type switch:
//
//	switch r := client.Get(ctx, cache, key).(type) {
//	case *CacheGetHit:
//	    use(r.ValueByte())
//	case *CacheGetMiss:
//	    // absent key
//	case *CacheGetError:
//	    log.Printf("get failed: %s", r.Message())
//	}
//
// The interfaces are sealed with an unexported method so the families
// stay closed.

// byteValue gives hit variants their payload accessors. The payload is
// an opaque byte sequence; ValueString decodes it as UTF-8 and fails
// explicitly when the bytes are not valid text.
type byteValue []byte

// errNotUTF8 is returned by ValueString accessors for non-text payloads.
var errNotUTF8 = errors.New("value is not valid UTF-8")

// ValueByte returns the raw payload.
func (v byteValue) ValueByte() []byte { return v }

// ValueString returns the payload decoded as UTF-8.
func (v byteValue) ValueString() (string, error) {
	if !utf8.Valid(v) {
		return "", errNotUTF8
	}
	return string(v), nil
}

// errorResponse gives every Error variant the same classified-error
// accessors.
type errorResponse struct {
	err *Error
}

// InnerError returns the classified error this variant wraps.
func (e errorResponse) InnerError() *Error { return e.err }

// ErrorCode returns the taxonomy code of the wrapped error.
func (e errorResponse) ErrorCode() ErrorCode { return e.err.ErrorCode() }

// Message returns the wrapped error's full message.
func (e errorResponse) Message() string { return e.err.Message() }
