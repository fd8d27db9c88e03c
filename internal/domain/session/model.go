package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/setlive/setlive/internal/database"
	"github.com/setlive/setlive/internal/domain/user"
)

// Session represents one authenticated login instance. Rows are never
// deleted; logout and the presence janitor only clear is_online, so the
// table doubles as a login audit trail. Once is_online is false it is
// never set true again for the same row.
type Session struct {
	database.BaseModel

	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Token          string    `gorm:"column:token;uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt      time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	LastActivityAt time.Time `gorm:"column:last_activity_at;not null" json:"last_activity"`
	IsOnline       bool      `gorm:"column:is_online;default:true" json:"is_online"`

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// CurrentlyOnline reports whether the session counts as online right
// now: the flag is set, the last activity falls inside the window, and
// the session has not expired.
func (s *Session) CurrentlyOnline(now time.Time, window time.Duration) bool {
	return s.IsOnline && now.Sub(s.LastActivityAt) < window && now.Before(s.ExpiresAt)
}

// Info is the read model for listing a user's sessions. The online flag
// is recomputed at read time, not stored.
type Info struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	IsOnline        bool      `json:"is_online"`
	LastActivity    time.Time `json:"last_activity"`
	CurrentlyOnline bool      `json:"currently_online"`
}
