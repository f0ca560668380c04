package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// TelegramAuthService verifies Telegram Login Widget payloads. The widget
// signs its fields with HMAC-SHA256 keyed by SHA256(bot token); anyone can
// post the payload, so the signature check is what proves it came from
// Telegram.
type TelegramAuthService struct {
	secret []byte
}

var telegramAuthService *TelegramAuthService

// InitTelegramAuthService derives the HMAC key from the bot token.
func InitTelegramAuthService(botToken string) error {
	if botToken == "" {
		return errors.New("telegram bot token cannot be empty")
	}
	key := sha256.Sum256([]byte(botToken))
	telegramAuthService = &TelegramAuthService{secret: key[:]}
	return nil
}

// GetTelegramAuthService returns the initialized service, nil when
// Telegram login is not configured.
func GetTelegramAuthService() *TelegramAuthService {
	return telegramAuthService
}

// MaxAuthAge rejects widget payloads older than a day, the value Telegram
// itself recommends checking auth_date against.
const MaxAuthAge = 24 * time.Hour

// Verify checks the payload signature and freshness.
func (s *TelegramAuthService) Verify(req *models.TelegramAuthRequest) error {
	if time.Since(time.Unix(req.AuthDate, 0)) > MaxAuthAge {
		return errors.New("auth data is outdated")
	}

	// data-check-string: sorted key=value lines of every field except hash
	fields := map[string]string{
		"auth_date":  fmt.Sprint(req.AuthDate),
		"first_name": req.FirstName,
		"id":         fmt.Sprint(req.ID),
	}
	if req.LastName != "" {
		fields["last_name"] = req.LastName
	}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.PhotoURL != "" {
		fields["photo_url"] = req.PhotoURL
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strings.Join(lines, "\n")))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(req.Hash)) {
		return errors.New("invalid telegram signature")
	}
	return nil
}
