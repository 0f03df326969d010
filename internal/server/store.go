package server

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wareguard/hazardhunt/internal/safety"
)

var ErrNotFound = errors.New("not found")

// Store holds the mutable per-deployment state: issued tokens, admin
// sessions and recorded attempts. The immutable catalog lives separately.
type Store interface {
	IssueToken(ctx context.Context, userID string) (string, error)
	UserFromToken(ctx context.Context, token string) (safety.User, error)
	RevokeToken(ctx context.Context, token string) error
	TouchLogin(ctx context.Context, userID string, at time.Time) error

	CreateAdminSession(ctx context.Context, userID string) (string, error)
	AdminFromSession(ctx context.Context, sessionID string) (safety.User, error)
	DeleteAdminSession(ctx context.Context, sessionID string) error

	RecordQuizAttempt(ctx context.Context, a safety.QuizAttempt) error
	RecordHazardAttempt(ctx context.Context, a safety.HazardAttempt) error
	QuizAttempts(ctx context.Context) ([]safety.QuizAttempt, error)
	HazardAttempts(ctx context.Context) ([]safety.HazardAttempt, error)
	AttemptsByUser(ctx context.Context, userID string) ([]safety.QuizAttempt, []safety.HazardAttempt, error)
}

// MemStore is the in-memory Store. All training state lives for the
// lifetime of the process and is seeded from fixtures at start-up.
type MemStore struct {
	users userLookup

	mu             sync.RWMutex
	tokens         map[string]string // token -> user ID
	adminSessions  map[string]string // session ID -> user ID
	lastLogins     map[string]time.Time
	quizAttempts   []safety.QuizAttempt
	hazardAttempts []safety.HazardAttempt
}

// userLookup is the slice of the catalog the store needs; satisfied by
// *catalog.Catalog.
type userLookup interface {
	User(id string) (safety.User, error)
}

func NewMemStore(users userLookup) *MemStore {
	return &MemStore{
		users:         users,
		tokens:        make(map[string]string),
		adminSessions: make(map[string]string),
		lastLogins:    make(map[string]time.Time),
	}
}

func (s *MemStore) IssueToken(_ context.Context, userID string) (string, error) {
	if _, err := s.users.User(userID); err != nil {
		return "", ErrNotFound
	}
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token, nil
}

func (s *MemStore) UserFromToken(_ context.Context, token string) (safety.User, error) {
	s.mu.RLock()
	userID, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return safety.User{}, ErrNotFound
	}
	u, err := s.users.User(userID)
	if err != nil {
		return safety.User{}, ErrNotFound
	}
	return s.withLastLogin(u), nil
}

func (s *MemStore) RevokeToken(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) TouchLogin(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	s.lastLogins[userID] = at
	s.mu.Unlock()
	return nil
}

func (s *MemStore) withLastLogin(u safety.User) safety.User {
	s.mu.RLock()
	at, ok := s.lastLogins[u.ID]
	s.mu.RUnlock()
	if ok {
		u.LastLogin = &at
	}
	return u
}

func (s *MemStore) CreateAdminSession(_ context.Context, userID string) (string, error) {
	u, err := s.users.User(userID)
	if err != nil || u.Role != safety.RoleAdmin {
		return "", ErrNotFound
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.adminSessions[id] = userID
	s.mu.Unlock()
	return id, nil
}

func (s *MemStore) AdminFromSession(_ context.Context, sessionID string) (safety.User, error) {
	s.mu.RLock()
	userID, ok := s.adminSessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return safety.User{}, ErrNotFound
	}
	u, err := s.users.User(userID)
	if err != nil || u.Role != safety.RoleAdmin {
		return safety.User{}, ErrNotFound
	}
	return s.withLastLogin(u), nil
}

func (s *MemStore) DeleteAdminSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.adminSessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) RecordQuizAttempt(_ context.Context, a safety.QuizAttempt) error {
	s.mu.Lock()
	s.quizAttempts = append(s.quizAttempts, a)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) RecordHazardAttempt(_ context.Context, a safety.HazardAttempt) error {
	s.mu.Lock()
	s.hazardAttempts = append(s.hazardAttempts, a)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) QuizAttempts(_ context.Context) ([]safety.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]safety.QuizAttempt, len(s.quizAttempts))
	copy(out, s.quizAttempts)
	return out, nil
}

func (s *MemStore) HazardAttempts(_ context.Context) ([]safety.HazardAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]safety.HazardAttempt, len(s.hazardAttempts))
	copy(out, s.hazardAttempts)
	return out, nil
}

func (s *MemStore) AttemptsByUser(_ context.Context, userID string) ([]safety.QuizAttempt, []safety.HazardAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var quiz []safety.QuizAttempt
	for _, a := range s.quizAttempts {
		if a.UserID == userID {
			quiz = append(quiz, a)
		}
	}
	var hazard []safety.HazardAttempt
	for _, a := range s.hazardAttempts {
		if a.UserID == userID {
			hazard = append(hazard, a)
		}
	}
	sort.Slice(quiz, func(i, j int) bool { return quiz[i].Timestamp.Before(quiz[j].Timestamp) })
	sort.Slice(hazard, func(i, j int) bool { return hazard[i].Timestamp.Before(hazard[j].Timestamp) })
	return quiz, hazard, nil
}
