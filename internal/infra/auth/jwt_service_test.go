package auth

import (
	"testing"
	"time"

	"knect/config"
	"knect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtSvc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtSvc.ValidateToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtSvc.ValidateToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, time.Hour, jwtSvc.GetRefreshTokenDuration())
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtSvc.ValidateToken(refreshToken, service.TokenTypeAccess)
	assert.Error(t, err)

	_, err = jwtSvc.ValidateToken(accessToken, service.TokenTypeRefresh)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Now().Add(-2 * time.Minute)
	impl.now = func() time.Time { return issued }
	accessToken, _, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(accessToken, service.TokenTypeAccess)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	h1 := svc.HashToken("abc")
	assert.Len(t, h1, 64)
	assert.Equal(t, h1, svc.HashToken("abc"))
	assert.NotEqual(t, h1, svc.HashToken("abd"))
}
