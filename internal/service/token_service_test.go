package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamodt-botcalm/Expense-Tracker/internal/service"
)

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 10080)

	access, refresh, expiry, err := ts.Generate(7, "test@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
	assert.False(t, expiry.IsZero())

	claims, err := ts.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestTokenService_VerifyAccessToken_WrongSecret(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 10080)
	other := service.NewTokenService("different-secret", "refresh-secret", 15, 10080)

	access, _, _, err := ts.Generate(7, "test@example.com")
	require.NoError(t, err)

	claims, err := other.VerifyAccessToken(access)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyAccessToken_RejectsRefreshToken(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 10080)

	_, refresh, _, err := ts.Generate(7, "test@example.com")
	require.NoError(t, err)

	claims, err := ts.VerifyAccessToken(refresh)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyAccessToken_Garbage(t *testing.T) {
	ts := service.NewTokenService("access-secret", "refresh-secret", 15, 10080)

	claims, err := ts.VerifyAccessToken("not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
