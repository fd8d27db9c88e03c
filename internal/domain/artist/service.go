package artist

import (
	"context"
	"time"
)

// FanSource yields the fan list for an artist. Implemented by the
// plain service and by the Redis read-through cache in front of it.
type FanSource interface {
	Fans(ctx context.Context, artistID string) ([]Fan, error)
}

// Service interface for catalog reads
type Service interface {
	FanSource
	Search(query string) ([]Artist, error)
	Genres() ([]Genre, error)
	Countries() ([]string, error)
}

type service struct {
	repo   Repository
	window time.Duration
}

// NewService creates an artist service. The window is the presence
// activity window used when computing fan online status.
func NewService(repo Repository, window time.Duration) Service {
	return &service{repo: repo, window: window}
}

func (s *service) Search(query string) ([]Artist, error) {
	return s.repo.SearchByName(query)
}

func (s *service) Genres() ([]Genre, error) {
	return s.repo.ListGenres()
}

func (s *service) Countries() ([]string, error) {
	return s.repo.ListCountries()
}

func (s *service) Fans(ctx context.Context, artistID string) ([]Fan, error) {
	return s.repo.ListFans(artistID, time.Now().UTC(), s.window)
}
