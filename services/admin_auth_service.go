package services

import (
	"crypto/subtle"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService checks back-office credentials. The admin account is
// configured through the environment: ADMIN_USERNAME plus either
// ADMIN_PASSWORD_HASH (bcrypt) or, for local development, ADMIN_PASSWORD.
type AdminAuthService struct {
	username      string
	passwordHash  string
	plainPassword string
}

var adminAuthService *AdminAuthService

// InitAdminAuthService loads the admin credentials from the environment.
func InitAdminAuthService() error {
	svc := &AdminAuthService{
		username:      os.Getenv("ADMIN_USERNAME"),
		passwordHash:  os.Getenv("ADMIN_PASSWORD_HASH"),
		plainPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if svc.username == "" {
		svc.username = "admin"
		log.Println("⚠️ ADMIN_USERNAME not set, using default 'admin'")
	}
	if svc.passwordHash == "" && svc.plainPassword == "" {
		return errors.New("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD must be set")
	}

	adminAuthService = svc
	return nil
}

// GetAdminAuthService returns the initialized admin auth service
func GetAdminAuthService() *AdminAuthService {
	return adminAuthService
}

// VerifyCredentials checks a username/password pair against the configured
// admin account. The bcrypt hash takes precedence over the plain password.
func (s *AdminAuthService) VerifyCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return false
	}
	if s.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.plainPassword)) == 1
}

// HashPassword hashes a password using bcrypt (used by the seed tool to
// produce an ADMIN_PASSWORD_HASH value)
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
