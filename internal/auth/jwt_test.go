package auth

import (
	"testing"
	"time"

	"internhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init("unit-test-secret", time.Hour)

	token, err := GenerateToken("user-1", "a@b.com", models.UserRoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.UserRoleStudent, claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	Init("unit-test-secret", -time.Minute)

	token, err := GenerateToken("user-1", "a@b.com", models.UserRoleStudent)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Init("secret-one", time.Hour)
	token, err := GenerateToken("user-1", "a@b.com", models.UserRoleCompany)
	require.NoError(t, err)

	Init("secret-two", time.Hour)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	Init("unit-test-secret", time.Hour)

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ParseToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}

func TestParseToken_TamperedPayload(t *testing.T) {
	Init("unit-test-secret", time.Hour)

	token, err := GenerateToken("user-1", "a@b.com", models.UserRoleStudent)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
