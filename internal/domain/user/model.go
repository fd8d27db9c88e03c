package user

import (
	"github.com/google/uuid"

	"github.com/setlive/setlive/internal/database"
)

type User struct {
	database.BaseModel
	Email     string `gorm:"column:email;unique;not null" json:"email"`
	Password  string `gorm:"column:password;not null" json:"-"`
	FirstName string `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;not null" json:"last_name"`
	Nickname  string `gorm:"column:nickname;unique;not null" json:"nickname"`
	IsActive  bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (User) TableName() string {
	return "users"
}

// Profile holds the optional profile attributes kept apart from the
// credential row. It is inserted as a second statement during
// registration.
type Profile struct {
	database.BaseModel
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	FavGenreID *int      `gorm:"column:fav_genre_id" json:"fav_genre_id"`
	Country    string    `gorm:"column:country" json:"country"`
	Bio        string    `gorm:"column:bio;type:text" json:"bio"`
}

func (Profile) TableName() string {
	return "user_profiles"
}
