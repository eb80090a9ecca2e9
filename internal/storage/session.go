package storage

import (
	"sync"

	"github.com/aliskhannn/flag-quiz-bot/internal/service"
)

// SessionStorage provides in-memory storage for quiz sessions by chat ID.
// Sessions are never persisted and are lost on restart.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.QuizSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.QuizSession),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *service.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat.
func (s *SessionStorage) Get(chatID int64) (*service.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// GetOrCreate returns the chat's session, storing the one built by create if there is none.
func (s *SessionStorage) GetOrCreate(chatID int64, create func() *service.QuizSession) *service.QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[chatID]; ok {
		return session
	}
	session := create()
	s.sessions[chatID] = session
	return session
}
