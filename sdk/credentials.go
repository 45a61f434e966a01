package sdk

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// CredentialProvider carries the API key and the endpoints it is bound
// to. Parsing a malformed credential is the one failure in this SDK
// that is returned as a plain error rather than an Outcome: it is a
// programmer error at construction time, before any operation exists to
// carry it.
type CredentialProvider struct {
	apiKey         string
	cacheEndpoint  string
	vectorEndpoint string
}

// tokenClaims is the payload of a v1 API token: a base64-encoded JSON
// document binding the key to its endpoint.
type tokenClaims struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
}

// NewCredentialProviderFromString parses an API token. v1 tokens are
// base64 JSON carrying the endpoint; legacy keys must be paired with
// explicit endpoints via WithEndpoints.
func NewCredentialProviderFromString(token string) (CredentialProvider, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return CredentialProvider{}, fmt.Errorf("credential token must not be empty")
	}
	if decoded, err := base64.StdEncoding.DecodeString(token); err == nil {
		var claims tokenClaims
		if err := json.Unmarshal(decoded, &claims); err == nil && claims.APIKey != "" {
			if claims.Endpoint == "" {
				return CredentialProvider{}, fmt.Errorf("credential token carries no endpoint")
			}
			return CredentialProvider{
				apiKey:         claims.APIKey,
				cacheEndpoint:  "cache." + claims.Endpoint,
				vectorEndpoint: "vector." + claims.Endpoint,
			}, nil
		}
	}
	// Legacy key: opaque, endpoints supplied separately.
	return CredentialProvider{apiKey: token}, nil
}

// NewCredentialProviderFromEnvVar reads the token from the named
// environment variable.
func NewCredentialProviderFromEnvVar(name string) (CredentialProvider, error) {
	token, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(token) == "" {
		return CredentialProvider{}, fmt.Errorf("environment variable %s is not set", name)
	}
	return NewCredentialProviderFromString(token)
}

// WithEndpoints returns a copy bound to explicit endpoints, overriding
// any carried by the token. Used for legacy keys and local development.
func (c CredentialProvider) WithEndpoints(cacheEndpoint, vectorEndpoint string) CredentialProvider {
	c.cacheEndpoint = cacheEndpoint
	c.vectorEndpoint = vectorEndpoint
	return c
}

// CacheEndpoint returns the endpoint for cache operations.
func (c CredentialProvider) CacheEndpoint() string { return c.cacheEndpoint }

// VectorEndpoint returns the endpoint for vector-index operations.
func (c CredentialProvider) VectorEndpoint() string { return c.vectorEndpoint }

func (c CredentialProvider) authToken() string { return c.apiKey }
