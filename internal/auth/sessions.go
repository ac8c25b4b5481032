// Package auth implements the demo admin login. Any password is accepted
// for a username containing "admin"; tokens live in memory only.
package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

func (s *Sessions) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if !strings.Contains(strings.ToLower(username), "admin") {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()

	return token, nil
}

// User returns the username bound to token.
func (s *Sessions) User(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.tokens[token]
	return user, ok
}

func (s *Sessions) Valid(token string) bool {
	_, ok := s.User(token)
	return ok
}

func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
