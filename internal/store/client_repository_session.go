package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := l.DB.ExecContext(ctx, saveSession,
		session.Token,
		session.User.ID,
		session.User.Username,
		session.User.Role,
		session.SavedAt.UTC(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.User.ID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := l.DB.QueryRowContext(ctx, loadSession).Scan(
		&session.Token,
		&session.User.ID,
		&session.User.Username,
		&session.User.Role,
		&session.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := l.DB.ExecContext(ctx, clearSession); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
