package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/domain/user"
)

// LoginResult carries everything a successful login hands back to the
// client: the bearer token, its expiry, and the user record.
type LoginResult struct {
	SessionToken string     `json:"sessionToken"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	User         *user.User `json:"user"`
}

// ValidateResult is the outcome of a successful session validation.
type ValidateResult struct {
	User      *user.User `json:"user"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// AuthService is the surface the handlers and middleware work against.
type AuthService interface {
	Register(req user.RegisterRequest) (*user.User, error)
	Login(email, password string) (*LoginResult, error)
	Logout(token string) error
	Validate(token string) (*ValidateResult, error)
	Heartbeat(token string) error
}

// Service wires the credential store and the session manager together.
type Service struct {
	Users    user.Repository
	UserSvc  user.Service
	Sessions session.Service
}

// NewService creates a new auth service
func NewService(users user.Repository, userSvc user.Service, sessions session.Service) *Service {
	return &Service{
		Users:    users,
		UserSvc:  userSvc,
		Sessions: sessions,
	}
}

// Register delegates to the user service.
func (s *Service) Register(req user.RegisterRequest) (*user.User, error) {
	return s.UserSvc.Register(req)
}

// Login checks the credentials and issues a fresh session. A second
// login for the same user creates a second independent session; that is
// multi-device support, not a bug.
func (s *Service) Login(email, password string) (*LoginResult, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	if !user.VerifyPassword(password, u.Password) {
		return nil, user.ErrWrongPassword
	}

	sess, err := s.Sessions.Create(u.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		SessionToken: sess.Token,
		ExpiresAt:    sess.ExpiresAt,
		User:         u,
	}, nil
}

// Logout deactivates the session. Unknown tokens are a silent no-op,
// so logout is idempotent.
func (s *Service) Logout(token string) error {
	return s.Sessions.Deactivate(token)
}

// Validate resolves a live session and immediately refreshes its
// activity timestamp. The refresh is a separate statement; if the
// session dies in between, the refresh silently does nothing.
func (s *Service) Validate(token string) (*ValidateResult, error) {
	sess, err := s.Sessions.Validate(token)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.RefreshActivity(token); err != nil {
		return nil, err
	}

	return &ValidateResult{
		User:      sess.User,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Heartbeat keeps a session alive. Same semantics as Validate, the
// caller only cares whether the session is still good.
func (s *Service) Heartbeat(token string) error {
	_, err := s.Validate(token)
	return err
}
