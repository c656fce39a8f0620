package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMissingCredential(t *testing.T) {
	resolver := NewResolver(NewJWTTokens("test-secret", time.Hour))

	principal := resolver.Resolve("")
	assert.False(t, principal.Authenticated)
	assert.Empty(t, principal.UserID)
}

func TestResolveMalformedCredential(t *testing.T) {
	resolver := NewResolver(NewJWTTokens("test-secret", time.Hour))

	// Degrades to anonymous, never errors.
	principal := resolver.Resolve("garbage.token.here")
	assert.False(t, principal.Authenticated)
}

func TestResolveValidCredential(t *testing.T) {
	tokens := NewJWTTokens("test-secret", time.Hour)
	resolver := NewResolver(tokens)

	signed, err := tokens.Sign("user-123")
	require.NoError(t, err)

	principal := resolver.Resolve(signed)
	assert.True(t, principal.Authenticated)
	assert.Equal(t, "user-123", principal.UserID)
}

func TestResolveDoesNotCheckUserExists(t *testing.T) {
	// The resolver only verifies the token; the policy engine re-validates
	// the user against the store at call time.
	tokens := NewJWTTokens("test-secret", time.Hour)
	resolver := NewResolver(tokens)

	signed, err := tokens.Sign("deleted-user")
	require.NoError(t, err)

	principal := resolver.Resolve(signed)
	assert.True(t, principal.Authenticated)
	assert.Equal(t, "deleted-user", principal.UserID)
}
