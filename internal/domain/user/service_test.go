package user

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/setlive/setlive/internal/utils"
)

// failingRepository errors on user lookups; everything else panics via
// the embedded nil interface.
type failingRepository struct {
	Repository
	err error
}

func (f *failingRepository) GetByID(id uuid.UUID) (*User, error) {
	return nil, f.err
}

// setupTestDB creates a PostgreSQL database connection for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db := utils.SetupTestDB(t, &User{}, &Profile{})
	db.Exec("DELETE FROM user_profiles")
	db.Exec("DELETE FROM users")
	return db
}

func TestService_Register(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	service := NewService(repo)

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{
			name: "successful registration",
			req: RegisterRequest{
				Email:     "fan@example.com",
				Password:  "securepassword123",
				FirstName: "Test",
				LastName:  "User",
				Nickname:  "concertfan",
				Country:   "Poland",
			},
			wantErr: nil,
		},
		{
			name: "duplicate email",
			req: RegisterRequest{
				Email:     "fan@example.com",
				Password:  "securepassword123",
				FirstName: "Test",
				LastName:  "User",
				Nickname:  "otherfan",
			},
			wantErr: ErrEmailExists,
		},
		{
			name: "duplicate nickname",
			req: RegisterRequest{
				Email:     "different@example.com",
				Password:  "securepassword123",
				FirstName: "Test",
				LastName:  "User",
				Nickname:  "concertfan",
			},
			wantErr: ErrNicknameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db.Exec("DELETE FROM user_profiles")
			db.Exec("DELETE FROM users")

			if tt.wantErr != nil {
				existing := RegisterRequest{
					Email:     "existing@example.com",
					Password:  "password123",
					FirstName: "Existing",
					LastName:  "User",
					Nickname:  "existingfan",
				}
				switch tt.wantErr {
				case ErrEmailExists:
					existing.Email = tt.req.Email
				case ErrNicknameExists:
					existing.Nickname = tt.req.Nickname
				}
				if _, err := service.Register(existing); err != nil {
					t.Fatalf("Failed to create existing user for duplicate test: %v", err)
				}
			}

			u, err := service.Register(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				if u != nil {
					t.Errorf("Register() expected nil user on error, got %v", u)
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() unexpected error: %v", err)
			}
			if u == nil {
				t.Fatalf("Register() expected user but got nil")
			}

			if u.Email != tt.req.Email {
				t.Errorf("Register() email = %v, want %v", u.Email, tt.req.Email)
			}
			if u.Nickname != tt.req.Nickname {
				t.Errorf("Register() nickname = %v, want %v", u.Nickname, tt.req.Nickname)
			}
			if u.Password == "" || u.Password == tt.req.Password {
				t.Errorf("Register() password should be stored hashed")
			}
			if !u.IsActive {
				t.Errorf("Register() isActive = false, want true")
			}

			if !service.VerifyPassword(u, tt.req.Password) {
				t.Errorf("VerifyPassword() failed for registered user")
			}
			if service.VerifyPassword(u, "wrongpassword") {
				t.Errorf("VerifyPassword() should fail for wrong password")
			}

			// Registration also writes the profile row
			profile, err := repo.GetProfile(u.ID)
			if err != nil {
				t.Fatalf("GetProfile() after registration: %v", err)
			}
			if profile.Country != tt.req.Country {
				t.Errorf("Register() profile country = %v, want %v", profile.Country, tt.req.Country)
			}
		})
	}
}

func TestService_VerifyPassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	service := NewService(repo)

	u, err := service.Register(RegisterRequest{
		Email:     "verify@example.com",
		Password:  "correctpassword",
		FirstName: "Test",
		LastName:  "User",
		Nickname:  "verifyfan",
	})
	if err != nil {
		t.Fatalf("Failed to register user for password verification test: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "correct password",
			password: "correctpassword",
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			want:     false,
		},
		{
			name:     "empty password",
			password: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.VerifyPassword(u, tt.password)
			if got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	service := NewService(repo)

	u, err := service.Register(RegisterRequest{
		Email:     "change@example.com",
		Password:  "oldpassword1",
		FirstName: "Test",
		LastName:  "User",
		Nickname:  "changefan",
	})
	if err != nil {
		t.Fatalf("Failed to register user for password change test: %v", err)
	}

	if err := service.ChangePassword(u.ID, "notthepassword", "newpassword1"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("ChangePassword() with wrong current password error = %v, want %v", err, ErrWrongPassword)
	}

	if err := service.ChangePassword(u.ID, "oldpassword1", "newpassword1"); err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}

	updated, err := repo.GetByID(u.ID)
	if err != nil {
		t.Fatalf("GetByID() after password change: %v", err)
	}
	if !service.VerifyPassword(updated, "newpassword1") {
		t.Errorf("VerifyPassword() should accept the new password")
	}
	if service.VerifyPassword(updated, "oldpassword1") {
		t.Errorf("VerifyPassword() should reject the old password")
	}
}

func TestService_ChangePassword_MissingUser(t *testing.T) {
	service := NewService(&failingRepository{err: gorm.ErrRecordNotFound})

	err := service.ChangePassword(uuid.New(), "oldpassword1", "newpassword1")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ChangePassword() error = %v, want %v", err, ErrUserNotFound)
	}
}

// A datastore failure looking up the user must propagate as a storage
// error, not be reported as a missing account.
func TestService_ChangePassword_StorageFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	service := NewService(&failingRepository{err: dbErr})

	err := service.ChangePassword(uuid.New(), "oldpassword1", "newpassword1")
	if !errors.Is(err, dbErr) {
		t.Errorf("ChangePassword() error = %v, want %v", err, dbErr)
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Errorf("ChangePassword() storage failure should not look like a missing user")
	}
}
