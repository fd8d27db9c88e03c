package artist

import (
	"time"

	"github.com/google/uuid"
)

// Genre is part of the externally supplied catalog; ids come with the
// data set, not from this application.
type Genre struct {
	ID   int    `gorm:"column:genre_id;primaryKey" json:"genre_id"`
	Name string `gorm:"column:genre_name;unique;not null" json:"genre_name"`
}

func (Genre) TableName() string {
	return "genres"
}

// Artist is a catalog row. The string id is assigned by the catalog
// source and kept as-is.
type Artist struct {
	ID      string `gorm:"column:artist_id;primaryKey;size:64" json:"artist_id"`
	Name    string `gorm:"column:artist_name;not null" json:"artist_name"`
	Image   string `gorm:"column:artist_img;size:512" json:"artist_img"`
	Country string `gorm:"column:country;size:128" json:"country"`
	GenreID *int   `gorm:"column:genre_id" json:"genre_id"`
}

func (Artist) TableName() string {
	return "artists"
}

// Fan is another user who recorded the same artist, annotated with
// whether any of their sessions is online right now.
type Fan struct {
	UserID   uuid.UUID `json:"user_id"`
	Nickname string    `json:"nickname"`
	SeenDate time.Time `json:"seen_date"`
	Rating   *int      `json:"rating"`
	IsOnline bool      `json:"is_online"`
}
