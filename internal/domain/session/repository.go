package session

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(sess *Session) error
	FindActiveByToken(token string, now time.Time, window time.Duration) (*Session, error)
	TouchActivity(token string, t time.Time) error
	Deactivate(token string) error
	FindByUserID(userID uuid.UUID) ([]Session, error)
	DeactivateStale(now time.Time, window time.Duration) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(sess *Session) error {
	return r.db.Create(sess).Error
}

// FindActiveByToken looks up a session joined with its owning user,
// restricted to rows that are online, unexpired, and active within the
// window. Unknown, expired, and stale tokens all miss the same way.
func (r *repository) FindActiveByToken(token string, now time.Time, window time.Duration) (*Session, error) {
	var sess Session
	err := r.db.Joins("User").
		Where("sessions.token = ? AND sessions.is_online = true AND sessions.expires_at > ? AND sessions.last_activity_at > ?",
			token, now, now.Add(-window)).
		First(&sess).Error
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// TouchActivity bumps last_activity_at for an online session. Zero rows
// affected is not an error; a session deactivated in the meantime is
// simply left alone.
func (r *repository) TouchActivity(token string, t time.Time) error {
	return r.db.Model(&Session{}).
		Where("token = ? AND is_online = true", token).
		Update("last_activity_at", t).Error
}

// Deactivate clears is_online regardless of current state. The row is
// retained; missing tokens are a no-op.
func (r *repository) Deactivate(token string) error {
	return r.db.Model(&Session{}).
		Where("token = ?", token).
		Update("is_online", false).Error
}

func (r *repository) FindByUserID(userID uuid.UUID) ([]Session, error) {
	var sessions []Session
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeactivateStale flips every online session whose expiry has passed or
// whose last activity fell out of the window. One bulk statement, safe
// to run concurrently with validation traffic.
func (r *repository) DeactivateStale(now time.Time, window time.Duration) (int64, error) {
	res := r.db.Model(&Session{}).
		Where("is_online = true AND (expires_at <= ? OR last_activity_at <= ?)", now, now.Add(-window)).
		Update("is_online", false)
	return res.RowsAffected, res.Error
}
