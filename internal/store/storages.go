package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
)

// Storages groups all server-side repositories so they can be handed to the
// service layer as one value.
type Storages struct {
	UserRepository    UserRepository
	CompanyRepository CompanyRepository
	Pinger            Pinger

	db *DB
}

// NewStorages connects to the configured database, applies pending
// migrations and builds the repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CompanyRepository: NewCompanyRepository(db, log),
		Pinger:            db,
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
