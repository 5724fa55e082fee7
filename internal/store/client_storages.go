package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/migrations"
)

// ClientStorages groups the terminal client's local repositories.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed store of the saved login.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN (creating it when
// missing), applies the client schema and builds the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("dsn", cfg.DB.DSN).Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: cfg.DB.DSN}, logger)
	if err != nil {
		return nil, fmt.Errorf("session database connection error: %w", err)
	}

	if err = migrations.MigrateClient(db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session database migration error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the session database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
