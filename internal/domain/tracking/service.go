package tracking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/setlive/setlive/internal/domain/artist"
)

var (
	// ErrAlreadyTracked is returned when the user already recorded this
	// artist for the same date
	ErrAlreadyTracked = errors.New("artist already tracked for this date")
	// ErrArtistNotFound is returned when the artist id is not in the catalog
	ErrArtistNotFound = errors.New("artist not found")
)

// FanInvalidator drops the cached fan list for an artist after the
// list changes. A nil invalidator disables invalidation.
type FanInvalidator interface {
	InvalidateFans(ctx context.Context, artistID string) error
}

// AddRequest represents the input for recording a seen artist
type AddRequest struct {
	ArtistID string `json:"artist_id" validate:"required"`
	SeenDate string `json:"seen_date" validate:"required,datetime=2006-01-02"`
	Rating   *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Service interface for tracking operations
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, req AddRequest) (*Record, error)
	ListByUser(userID uuid.UUID) ([]TrackedArtist, error)
}

type service struct {
	repo        Repository
	artists     artist.Repository
	invalidator FanInvalidator
}

// NewService creates a tracking service. invalidator may be nil when
// no fan cache is configured.
func NewService(repo Repository, artists artist.Repository, invalidator FanInvalidator) Service {
	return &service{repo: repo, artists: artists, invalidator: invalidator}
}

// Add records that the user saw the artist on the given date.
func (s *service) Add(ctx context.Context, userID uuid.UUID, req AddRequest) (*Record, error) {
	seenDate, err := time.Parse("2006-01-02", req.SeenDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.artists.FindByID(req.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	exists, err := s.repo.Exists(userID, req.ArtistID, seenDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyTracked
	}

	rec := &Record{
		UserID:   userID,
		ArtistID: req.ArtistID,
		SeenDate: seenDate,
		Rating:   req.Rating,
	}

	if err := s.repo.Create(rec); err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateFans(ctx, req.ArtistID); err != nil {
			slog.Warn("Failed to invalidate fan cache", "artist_id", req.ArtistID, "error", err)
		}
	}

	return rec, nil
}

func (s *service) ListByUser(userID uuid.UUID) ([]TrackedArtist, error) {
	return s.repo.ListByUser(userID)
}
