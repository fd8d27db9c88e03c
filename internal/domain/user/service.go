package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmailExists is returned when trying to register with an email that already exists
	ErrEmailExists = errors.New("account already exists with this email")
	// ErrNicknameExists is returned when trying to register with a nickname that already exists
	ErrNicknameExists = errors.New("nickname is already taken")
	// ErrUserNotFound is returned when a user lookup misses
	ErrUserNotFound = errors.New("no account found with this email")
	// ErrWrongPassword is returned when the current password does not match
	ErrWrongPassword = errors.New("invalid password")
)

// RegisterRequest represents the input for user registration
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Nickname   string `json:"nickname" validate:"required"`
	Country    string `json:"country"`
	FavGenreID *int   `json:"fav_genre_id"`
}

// Service interface for user operations
type Service interface {
	Register(req RegisterRequest) (*User, error)
	VerifyPassword(u *User, password string) bool
	ChangePassword(id uuid.UUID, currentPassword, newPassword string) error
}

// service struct for user operations
type service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &service{repo}
}

// Register registers a new user. The user row and the profile row are
// two independent inserts with no surrounding transaction; a failed
// profile insert leaves the user row in place and surfaces as a storage
// error. Making this transactional is a pending product decision.
func (s *service) Register(req RegisterRequest) (*User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailExists
	}

	if _, err := s.repo.GetByNickname(req.Nickname); err == nil {
		return nil, ErrNicknameExists
	}

	u := &User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Nickname:  req.Nickname,
		IsActive:  true,
	}

	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:     u.ID,
		Country:    req.Country,
		FavGenreID: req.FavGenreID,
	}

	if err := s.repo.CreateProfile(profile); err != nil {
		return nil, err
	}

	return u, nil
}

// VerifyPassword verifies if the provided password matches the user's hashed password
func (s *service) VerifyPassword(u *User, password string) bool {
	return VerifyPassword(password, u.Password)
}

// ChangePassword verifies the current password and stores a new hash
func (s *service) ChangePassword(id uuid.UUID, currentPassword, newPassword string) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !VerifyPassword(currentPassword, u.Password) {
		return ErrWrongPassword
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(id, hashed)
}
