package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

func TestSessionLifecycle(t *testing.T) {
	svc := NewSessionService()
	user := &models.User{ID: 7, Username: "gamer"}

	id := svc.CreateSession(user, "remote-token")
	require.NotEmpty(t, id)

	session := svc.GetSession(id)
	require.NotNil(t, session)
	assert.Equal(t, user, session.User)
	assert.Equal(t, "remote-token", session.Token)

	// Logout drops user and token together
	svc.Logout(id)
	assert.Nil(t, svc.GetSession(id))
}

func TestSessionUnknownID(t *testing.T) {
	svc := NewSessionService()

	assert.Nil(t, svc.GetSession("no-such-session"))
	// Logging out an unknown ID must not panic
	svc.Logout("no-such-session")
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc := NewSessionService()
	user := &models.User{ID: 1}

	a := svc.CreateSession(user, "t1")
	b := svc.CreateSession(user, "t2")
	assert.NotEqual(t, a, b)

	// Both sessions live independently
	svc.Logout(a)
	assert.Nil(t, svc.GetSession(a))
	assert.NotNil(t, svc.GetSession(b))
}

func TestWarningBanner(t *testing.T) {
	svc := NewSessionService()
	assert.Empty(t, svc.Warning())

	svc.SetWarning("Сайт на техобслуживании")
	assert.Equal(t, "Сайт на техобслуживании", svc.Warning())

	// Empty text hides the banner
	svc.SetWarning("")
	assert.Empty(t, svc.Warning())
}
