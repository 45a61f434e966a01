package sdk

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v1Token(t *testing.T, endpoint, apiKey string) string {
	t.Helper()
	payload := `{"endpoint":"` + endpoint + `","api_key":"` + apiKey + `"}`
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestCredentialProviderParsesV1Token(t *testing.T) {
	token := v1Token(t, "prod.example.com", "secret-key")
	provider, err := NewCredentialProviderFromString(token)
	require.NoError(t, err)
	assert.Equal(t, "cache.prod.example.com", provider.CacheEndpoint())
	assert.Equal(t, "vector.prod.example.com", provider.VectorEndpoint())
	assert.Equal(t, "secret-key", provider.authToken())
}

func TestCredentialProviderRejectsEmptyToken(t *testing.T) {
	_, err := NewCredentialProviderFromString("   ")
	assert.Error(t, err)
}

func TestCredentialProviderRejectsTokenWithoutEndpoint(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte(`{"api_key":"k"}`))
	_, err := NewCredentialProviderFromString(payload)
	assert.Error(t, err)
}

func TestCredentialProviderLegacyKeyNeedsExplicitEndpoints(t *testing.T) {
	provider, err := NewCredentialProviderFromString("legacy-opaque-key")
	require.NoError(t, err)
	assert.Empty(t, provider.CacheEndpoint())

	bound := provider.WithEndpoints("localhost:5000", "localhost:5001")
	assert.Equal(t, "localhost:5000", bound.CacheEndpoint())
	assert.Equal(t, "localhost:5001", bound.VectorEndpoint())
	assert.Equal(t, "legacy-opaque-key", bound.authToken())
}

func TestCredentialProviderWithEndpointsOverridesToken(t *testing.T) {
	provider, err := NewCredentialProviderFromString(v1Token(t, "prod.example.com", "k"))
	require.NoError(t, err)
	local := provider.WithEndpoints("localhost:5000", "localhost:5001")
	assert.Equal(t, "localhost:5000", local.CacheEndpoint())
	// The original provider is unchanged.
	assert.Equal(t, "cache.prod.example.com", provider.CacheEndpoint())
}

func TestCredentialProviderFromEnvVar(t *testing.T) {
	t.Setenv("ROOST_TEST_TOKEN", v1Token(t, "env.example.com", "env-key"))
	provider, err := NewCredentialProviderFromEnvVar("ROOST_TEST_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "cache.env.example.com", provider.CacheEndpoint())

	_, err = NewCredentialProviderFromEnvVar("ROOST_TEST_TOKEN_MISSING")
	assert.Error(t, err)
}
