package sdk

// Value is a key, value, field or element supplied to a cache
// operation. The service stores opaque byte sequences; String and Bytes
// are the two supported representations. A nil Value fails validation
// before any network call.
//
// Example:
//
//	client.Set(ctx, "my-cache", sdk.String("key"), sdk.Bytes(raw))
type Value interface {
	asBytes() []byte
}

// String is a UTF-8 string Value.
type String string

func (s String) asBytes() []byte { return []byte(s) }

// Bytes is a raw byte-sequence Value.
type Bytes []byte

func (b Bytes) asBytes() []byte { return b }

// valuesAsBytes converts a slice of Values, rejecting nils.
func valuesAsBytes(values []Value, what string) ([][]byte, *Error) {
	out := make([][]byte, 0, len(values))
	for _, v := range values {
		if v == nil {
			return nil, invalidArgument(what + " must not contain nil values")
		}
		out = append(out, v.asBytes())
	}
	return out, nil
}
