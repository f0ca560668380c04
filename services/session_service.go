package services

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/pr-poehali-dev/torrent-game-platform/models"
)

// SessionService is the server-side replacement for the browser-local
// session state: the logged-in user record, the auth token issued by the
// remote catalog service, and the site-wide warning banner. Sessions are
// keyed by an opaque ID handed to the client in a cookie; fields follow
// last-writer-wins semantics, and logout clears user and token atomically.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	warning  string
}

// Session holds one signed-in user's state.
type Session struct {
	ID    string       `json:"id"`
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

var sessionService *SessionService

// InitSessionService creates the shared session store, empty and
// unauthenticated.
func InitSessionService() {
	sessionService = NewSessionService()
}

// GetSessionService returns the shared session store.
func GetSessionService() *SessionService {
	return sessionService
}

// NewSessionService creates an empty session store.
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*Session)}
}

// CreateSession stores a freshly authenticated user and the token the
// remote service issued, returning the new session ID.
func (s *SessionService) CreateSession(user *models.User, token string) string {
	id := uuid.Must(uuid.NewV7()).String()

	s.mu.Lock()
	s.sessions[id] = &Session{ID: id, User: user, Token: token}
	s.mu.Unlock()

	log.Printf("[session] created session %s for user %d", id, user.ID)
	return id
}

// GetSession returns the session for an ID, or nil when the ID is unknown
// or already logged out.
func (s *SessionService) GetSession(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Logout removes the session, dropping user and token together. Removing
// an unknown ID is a no-op.
func (s *SessionService) Logout(id string) {
	s.mu.Lock()
	if _, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		log.Printf("[session] session %s logged out", id)
	}
	s.mu.Unlock()
}

// Warning returns the cached site-wide warning banner text.
func (s *SessionService) Warning() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warning
}

// SetWarning caches the site-wide warning banner. The stats fetch calls
// this whenever the remote service sends a warning override; an empty
// string hides the banner.
func (s *SessionService) SetWarning(text string) {
	s.mu.Lock()
	s.warning = text
	s.mu.Unlock()
}
