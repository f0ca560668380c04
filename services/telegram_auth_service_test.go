package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

const testBotToken = "1234567890:AAFakeBotTokenForTests"

// signTelegram produces the hash the widget would attach to the payload.
func signTelegram(botToken string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	key := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, key[:])
	mac.Write([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func telegramService(t *testing.T) *TelegramAuthService {
	t.Helper()
	key := sha256.Sum256([]byte(testBotToken))
	return &TelegramAuthService{secret: key[:]}
}

func TestTelegramVerifyValidSignature(t *testing.T) {
	svc := telegramService(t)
	authDate := time.Now().Unix()

	req := &models.TelegramAuthRequest{
		ID:        123456789,
		FirstName: "Ivan",
		Username:  "ivan_gamer",
		AuthDate:  authDate,
	}
	req.Hash = signTelegram(testBotToken, map[string]string{
		"auth_date":  fmt.Sprint(authDate),
		"first_name": "Ivan",
		"id":         "123456789",
		"username":   "ivan_gamer",
	})

	require.NoError(t, svc.Verify(req))
}

func TestTelegramVerifyOptionalFieldsExcludedWhenEmpty(t *testing.T) {
	svc := telegramService(t)
	authDate := time.Now().Unix()

	// Only the mandatory fields signed; empty optional fields must not
	// enter the data-check-string.
	req := &models.TelegramAuthRequest{
		ID:        42,
		FirstName: "Anna",
		AuthDate:  authDate,
	}
	req.Hash = signTelegram(testBotToken, map[string]string{
		"auth_date":  fmt.Sprint(authDate),
		"first_name": "Anna",
		"id":         "42",
	})

	require.NoError(t, svc.Verify(req))
}

func TestTelegramVerifyTamperedPayload(t *testing.T) {
	svc := telegramService(t)
	authDate := time.Now().Unix()

	req := &models.TelegramAuthRequest{
		ID:        123456789,
		FirstName: "Ivan",
		AuthDate:  authDate,
	}
	req.Hash = signTelegram(testBotToken, map[string]string{
		"auth_date":  fmt.Sprint(authDate),
		"first_name": "Ivan",
		"id":         "123456789",
	})

	// Flip a field after signing
	req.FirstName = "Mallory"
	assert.Error(t, svc.Verify(req))
}

func TestTelegramVerifyWrongBotToken(t *testing.T) {
	svc := telegramService(t)
	authDate := time.Now().Unix()

	req := &models.TelegramAuthRequest{
		ID:        1,
		FirstName: "Ivan",
		AuthDate:  authDate,
	}
	req.Hash = signTelegram("other-bot-token", map[string]string{
		"auth_date":  fmt.Sprint(authDate),
		"first_name": "Ivan",
		"id":         "1",
	})

	assert.Error(t, svc.Verify(req))
}

func TestTelegramVerifyOutdated(t *testing.T) {
	svc := telegramService(t)
	authDate := time.Now().Add(-25 * time.Hour).Unix()

	req := &models.TelegramAuthRequest{
		ID:        1,
		FirstName: "Ivan",
		AuthDate:  authDate,
	}
	req.Hash = signTelegram(testBotToken, map[string]string{
		"auth_date":  fmt.Sprint(authDate),
		"first_name": "Ivan",
		"id":         "1",
	})

	assert.ErrorContains(t, svc.Verify(req), "outdated")
}
