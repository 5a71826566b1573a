package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	token, err := auth.GenerateAccessToken(42, RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, RoleStudent, claims.Role)
}

func TestRefreshTokenCarriesRole(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	token, err := auth.GenerateRefreshToken(7, RoleAdmin)
	require.NoError(t, err)

	claims, err := auth.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestAccessTokenRejectedByRefreshSecret(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	token, err := auth.GenerateAccessToken(1, RoleTutor)
	require.NoError(t, err)

	_, err = auth.VerifyRefreshToken(token)
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, AsAppError(err).Kind)
}

func TestVerifyBearerPrefix(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	token, err := auth.GenerateAccessToken(3, RoleStudent)
	require.NoError(t, err)

	claims, err := auth.VerifyAccessToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(5),
		"role": RoleStudent,
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	})
	tokenStr, err := expired.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	auth := SetupAuth("access-secret", "refresh-secret")
	_, err = auth.VerifyAccessToken(tokenStr)
	require.Error(t, err)
	assert.Equal(t, "token expired", AsAppError(err).Message)
}

func TestVerifyMissingAndMalformedTokens(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	_, err := auth.VerifyAccessToken("")
	require.Error(t, err)

	_, err = auth.VerifyAccessToken("not-a-jwt")
	require.Error(t, err)
	assert.Equal(t, KindUnauthenticated, AsAppError(err).Kind)
}

func TestGenerateRequiresInputs(t *testing.T) {
	auth := SetupAuth("access-secret", "refresh-secret")

	_, err := auth.GenerateAccessToken(0, RoleStudent)
	assert.Error(t, err)

	_, err = auth.GenerateAccessToken(1, "")
	assert.Error(t, err)

	empty := SetupAuth("", "")
	_, err = empty.GenerateAccessToken(1, RoleStudent)
	assert.Error(t, err)
}
