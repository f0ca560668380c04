package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyCredentialsPlainPassword(t *testing.T) {
	svc := &AdminAuthService{username: "admin", plainPassword: "hunter2"}

	assert.True(t, svc.VerifyCredentials("admin", "hunter2"))
	assert.False(t, svc.VerifyCredentials("admin", "wrong"))
	assert.False(t, svc.VerifyCredentials("root", "hunter2"))
	assert.False(t, svc.VerifyCredentials("", ""))
}

func TestVerifyCredentialsBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := &AdminAuthService{username: "admin", passwordHash: string(hash)}

	assert.True(t, svc.VerifyCredentials("admin", "hunter2"))
	assert.False(t, svc.VerifyCredentials("admin", "wrong"))
}

func TestVerifyCredentialsHashWinsOverPlain(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("from-hash"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := &AdminAuthService{
		username:      "admin",
		passwordHash:  string(hash),
		plainPassword: "from-plain",
	}

	assert.True(t, svc.VerifyCredentials("admin", "from-hash"))
	assert.False(t, svc.VerifyCredentials("admin", "from-plain"))
}

func TestInitAdminAuthServiceRequiresPassword(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "")

	assert.Error(t, InitAdminAuthService())

	t.Setenv("ADMIN_PASSWORD", "hunter2")
	assert.NoError(t, InitAdminAuthService())
}
