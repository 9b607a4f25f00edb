package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTKey("test-secret")

	access, refresh := GenerateTokens("ada@example.com", "user-123")
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetJWTKey("test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	SetJWTKey("first-secret")
	access, _ := GenerateTokens("ada@example.com", "user-123")

	SetJWTKey("second-secret")
	_, err := ValidateToken(access)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	password := "correct horse"
	hashed := HashPassword(&password)
	require.NotNil(t, hashed)
	assert.NotEqual(t, password, *hashed)

	ok, _ := VerifyPassword(*hashed, password)
	assert.True(t, ok)

	ok, _ = VerifyPassword(*hashed, "wrong password")
	assert.False(t, ok)
}
