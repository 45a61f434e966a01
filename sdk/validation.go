package sdk

import (
	"strings"
	"time"
)

// Local validation. Anything failing here becomes an invalid-argument
// Outcome without touching the transport.

func validateCacheName(name string) *Error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument("cache name must not be empty")
	}
	return nil
}

func validateIndexName(name string) *Error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument("index name must not be empty")
	}
	return nil
}

func validateCollectionName(name, kind string) *Error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument(kind + " name must not be empty")
	}
	return nil
}

func validateValue(v Value, what string) *Error {
	if v == nil {
		return invalidArgument(what + " must not be nil")
	}
	return nil
}

func validateTTL(ttl time.Duration) *Error {
	if ttl <= 0 {
		return invalidArgument("TTL must be a positive duration")
	}
	return nil
}

func validateTopK(topK uint32) *Error {
	if topK == 0 {
		return invalidArgument("top_k must be a positive integer")
	}
	return nil
}

func validateNumDimensions(n uint32) *Error {
	if n == 0 {
		return invalidArgument("num_dimensions must be a positive integer")
	}
	return nil
}

// validateItems checks vector items for empty ids, dimension
// consistency against the index and supported metadata value types.
func validateItems(items []VectorItem, dimensions uint32) *Error {
	for _, item := range items {
		if item.ID == "" {
			return invalidArgument("item id must not be empty")
		}
		if len(item.Vector) == 0 {
			return invalidArgument("item vector must not be empty")
		}
		if dimensions > 0 && uint32(len(item.Vector)) != dimensions {
			return invalidArgument("vector dimension has to match the index's dimension")
		}
		if err := validateMetadata(item.Metadata); err != nil {
			return err
		}
	}
	return nil
}

func validateMetadata(metadata map[string]any) *Error {
	for key, value := range metadata {
		switch value.(type) {
		case string, bool, int, int64, float64, []string:
		default:
			return invalidArgument("unsupported metadata value type for field " + key)
		}
	}
	return nil
}
