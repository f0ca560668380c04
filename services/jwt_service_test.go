package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyAdminJWT(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	token, expiresAt, err := svc.GenerateAdminJWT("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(AdminTokenTTL), expiresAt, 5*time.Second)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "torrtop-admin", claims.Issuer)
}

func TestVerifyAdminJWTWrongSecret(t *testing.T) {
	token, _, err := (&JWTService{secretKey: "secret-a"}).GenerateAdminJWT("admin")
	require.NoError(t, err)

	_, err = (&JWTService{secretKey: "secret-b"}).VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyAdminJWTGarbage(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, err := svc.VerifyAdminJWT("not.a.token")
	assert.Error(t, err)
}

func TestGenerateAdminJWTEmptyUsername(t *testing.T) {
	svc := &JWTService{secretKey: "test-secret"}

	_, _, err := svc.GenerateAdminJWT("")
	assert.Error(t, err)
}
