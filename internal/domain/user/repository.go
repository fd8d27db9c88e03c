package user

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for user operations
type Repository interface {
	Create(user *User) error
	CreateProfile(profile *Profile) error
	GetByID(id uuid.UUID) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByNickname(nickname string) (*User, error)
	GetProfile(userID uuid.UUID) (*Profile, error)
	UpdatePassword(id uuid.UUID, hashed string) error
}

// repository struct for user operations
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create creates a new user
func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

// CreateProfile creates the profile row for a user
func (r *repository) CreateProfile(profile *Profile) error {
	return r.db.Create(profile).Error
}

// GetByID gets a user by ID
func (r *repository) GetByID(id uuid.UUID) (*User, error) {
	var user User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail gets a user by email
func (r *repository) GetByEmail(email string) (*User, error) {
	var user User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByNickname gets a user by nickname
func (r *repository) GetByNickname(nickname string) (*User, error) {
	var user User
	if err := r.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile gets the profile row for a user
func (r *repository) GetProfile(userID uuid.UUID) (*Profile, error) {
	var profile Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdatePassword replaces the stored password hash for a user
func (r *repository) UpdatePassword(id uuid.UUID, hashed string) error {
	return r.db.Model(&User{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}
