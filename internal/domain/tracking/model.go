package tracking

import (
	"time"

	"github.com/google/uuid"

	"github.com/setlive/setlive/internal/database"
	"github.com/setlive/setlive/internal/domain/artist"
)

// Record is one "I saw this artist live on this date" entry. A user
// can record the same artist again for a different date.
type Record struct {
	database.BaseModel

	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_artist_seen" json:"user_id"`
	ArtistID string    `gorm:"column:artist_id;size:64;not null;uniqueIndex:idx_user_artist_seen" json:"artist_id"`
	SeenDate time.Time `gorm:"column:seen_date;not null;uniqueIndex:idx_user_artist_seen" json:"seen_date"`
	Rating   *int      `gorm:"column:rating" json:"rating"`

	Artist *artist.Artist `gorm:"foreignKey:ArtistID" json:"-"`
}

func (Record) TableName() string {
	return "user_artist"
}

// TrackedArtist is the read model for a user's artist list, joined
// with the catalog row.
type TrackedArtist struct {
	TrackingID uuid.UUID `json:"tracking_id"`
	ArtistID   string    `json:"artist_id"`
	ArtistName string    `json:"artist_name"`
	ArtistImg  string    `json:"artist_img"`
	Country    string    `json:"country"`
	SeenDate   time.Time `json:"seen_date"`
	Rating     *int      `json:"rating"`
}
