package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/setlive/setlive/internal/domain/artist"
	"github.com/setlive/setlive/internal/domain/session"
	"github.com/setlive/setlive/internal/domain/tracking"
	"github.com/setlive/setlive/internal/domain/user"
)

// RunMigrations runs all database migrations. Catalog tables are
// created empty here; their content is loaded externally.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&artist.Genre{},
		&artist.Artist{},
		&user.User{},
		&user.Profile{},
		&session.Session{},
		&tracking.Record{},
	); err != nil {
		return fmt.Errorf("failed to make migrations: %w", err)
	}
	return nil
}
