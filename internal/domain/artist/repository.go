package artist

import (
	"time"

	"gorm.io/gorm"
)

// searchLimit caps substring search results; the catalog is large and
// the UI only shows a dropdown.
const searchLimit = 50

type Repository interface {
	FindByID(id string) (*Artist, error)
	SearchByName(query string) ([]Artist, error)
	ListGenres() ([]Genre, error)
	ListCountries() ([]string, error)
	ListFans(artistID string, now time.Time, window time.Duration) ([]Fan, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) FindByID(id string) (*Artist, error) {
	var a Artist
	if err := r.db.Where("artist_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// SearchByName matches artists whose name contains the query,
// case-insensitively.
func (r *repository) SearchByName(query string) ([]Artist, error) {
	var artists []Artist
	err := r.db.Where("artist_name ILIKE ?", "%"+query+"%").
		Order("artist_name ASC").
		Limit(searchLimit).
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *repository) ListGenres() ([]Genre, error) {
	var genres []Genre
	if err := r.db.Order("genre_name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *repository) ListCountries() ([]string, error) {
	var countries []string
	err := r.db.Model(&Artist{}).
		Distinct("country").
		Where("country <> ''").
		Order("country ASC").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// ListFans returns every user who recorded the artist, newest sighting
// first. The online flag applies the same three-part presence rule as
// the session manager, evaluated inside the query.
func (r *repository) ListFans(artistID string, now time.Time, window time.Duration) ([]Fan, error) {
	var fans []Fan
	err := r.db.Table("user_artist").
		Select(`users.id AS user_id, users.nickname, user_artist.seen_date, user_artist.rating,
			EXISTS (
				SELECT 1 FROM sessions
				WHERE sessions.user_id = users.id
				  AND sessions.is_online = true
				  AND sessions.expires_at > ?
				  AND sessions.last_activity_at > ?
			) AS is_online`, now, now.Add(-window)).
		Joins("JOIN users ON users.id = user_artist.user_id").
		Where("user_artist.artist_id = ?", artistID).
		Order("user_artist.seen_date DESC").
		Scan(&fans).Error
	if err != nil {
		return nil, err
	}
	return fans, nil
}
