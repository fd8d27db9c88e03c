package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tokenBytes is the raw entropy of a session token. Rendered as hex the
// token is a fixed 64 characters.
const tokenBytes = 32

var (
	// ErrSessionNotFound is returned when no live session matches a
	// token. Unknown, expired, and stale tokens are indistinguishable
	// to the caller.
	ErrSessionNotFound = errors.New("session not found")
)

// Service interface for session operations
type Service interface {
	Create(userID uuid.UUID) (*Session, error)
	Validate(token string) (*Session, error)
	RefreshActivity(token string) error
	Deactivate(token string) error
	List(userID uuid.UUID) ([]Info, error)
}

// service struct for session operations
type service struct {
	repo   Repository
	ttl    time.Duration
	window time.Duration
}

// NewService creates a session Service with the given token TTL and
// activity window.
func NewService(repo Repository, ttl, window time.Duration) Service {
	return &service{repo: repo, ttl: ttl, window: window}
}

// generateToken generates the random bearer token for a session
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Create issues a new session for the user. Every login gets its own
// row; concurrent logins from several devices stay independent.
func (s *service) Create(userID uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &Session{
		UserID:         userID,
		Token:          token,
		ExpiresAt:      now.Add(s.ttl),
		LastActivityAt: now,
		IsOnline:       true,
	}
	sess.ID = uuid.New()

	if err := s.repo.Create(sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Validate resolves a token to its session and owning user. Callers
// that want to keep the session alive follow up with RefreshActivity;
// the two statements are deliberately not atomic, and a session
// deactivated in the gap makes the refresh a silent no-op.
func (s *service) Validate(token string) (*Session, error) {
	sess, err := s.repo.FindActiveByToken(token, time.Now().UTC(), s.window)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

// RefreshActivity bumps last_activity_at for the session. Succeeds
// silently when no online row matches the token.
func (s *service) RefreshActivity(token string) error {
	return s.repo.TouchActivity(token, time.Now().UTC())
}

// Deactivate is the logout operation: it clears is_online and keeps
// the row. Deactivating an unknown or already-offline token is a no-op.
func (s *service) Deactivate(token string) error {
	return s.repo.Deactivate(token)
}

// List returns every session for a user, newest-created first, with
// the online status recomputed at read time.
func (s *service) List(userID uuid.UUID) ([]Info, error) {
	sessions, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	infos := make([]Info, 0, len(sessions))
	for _, sess := range sessions {
		infos = append(infos, Info{
			ID:              sess.ID,
			CreatedAt:       sess.CreatedAt,
			ExpiresAt:       sess.ExpiresAt,
			IsOnline:        sess.IsOnline,
			LastActivity:    sess.LastActivityAt,
			CurrentlyOnline: sess.CurrentlyOnline(now, s.window),
		})
	}
	return infos, nil
}
