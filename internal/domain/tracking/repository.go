package tracking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(rec *Record) error
	Exists(userID uuid.UUID, artistID string, seenDate time.Time) (bool, error)
	ListByUser(userID uuid.UUID) ([]TrackedArtist, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(rec *Record) error {
	return r.db.Create(rec).Error
}

func (r *repository) Exists(userID uuid.UUID, artistID string, seenDate time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&Record{}).
		Where("user_id = ? AND artist_id = ? AND seen_date = ?", userID, artistID, seenDate).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the user's records joined with the catalog,
// newest sighting first.
func (r *repository) ListByUser(userID uuid.UUID) ([]TrackedArtist, error) {
	var tracked []TrackedArtist
	err := r.db.Table("user_artist").
		Select(`user_artist.id AS tracking_id, artists.artist_id, artists.artist_name,
			artists.artist_img, artists.country, user_artist.seen_date, user_artist.rating`).
		Joins("JOIN artists ON artists.artist_id = user_artist.artist_id").
		Where("user_artist.user_id = ?", userID).
		Order("user_artist.seen_date DESC").
		Scan(&tracked).Error
	if err != nil {
		return nil, err
	}
	return tracked, nil
}
