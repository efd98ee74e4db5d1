package fleet

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultSessionTTL = 24 * time.Hour

type session struct {
	userID    uint
	expiresAt time.Time
}

// SessionStore keeps authenticated sessions in memory: opaque token -> user.
// Single instance only; a multi-process deployment would need an external
// store.
type SessionStore struct {
	sessions map[string]session
	mu       sync.Mutex
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
	}
}

// Create registers a new session and returns its opaque token.
func (s *SessionStore) Create(userID uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.sessions[token] = session{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token
}

// Get resolves a token to a user id. Expired sessions are evicted lazily.
func (s *SessionStore) Get(token string) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[token]
	if !exists {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false
	}
	return sess.userID, true
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Sweep removes every expired session; callers decide how often.
func (s *SessionStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
