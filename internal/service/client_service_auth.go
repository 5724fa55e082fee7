package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-company-directory/internal/adapter"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	if err := a.validateRequest(ctx, req); err != nil {
		return models.Session{}, err
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if err := a.validateRequest(ctx, req); err != nil {
		return models.Session{}, err
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return a.saveSession(ctx, resp)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	a.logger.Info().Msg("logged out")
	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrClientNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	claims, err := utils.ParseClaimsUnverified(session.Token)
	if err != nil || (claims.ExpiresAt != nil && !claims.ExpiresAt.After(a.now())) {
		a.logger.Debug().Err(err).Msg("saved session is no longer valid, clearing")
		if clearErr := a.sessions.ClearSession(ctx); clearErr != nil {
			return models.Session{}, fmt.Errorf("clear session: %w", clearErr)
		}
		return models.Session{}, ErrClientNotLoggedIn
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) validateRequest(ctx context.Context, req any) error {
	err := a.validator.Validate(ctx, req)
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrInvalidRole) {
		return fmt.Errorf("%w: %w", ErrInvalidRole, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

func (a *clientAuthService) saveSession(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	session := models.Session{
		Token:   resp.Token,
		User:    resp.User,
		SavedAt: a.now().UTC(),
	}

	a.adapter.SetToken(session.Token)

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info().Str("username", session.User.Username).Str("role", string(session.User.Role)).Msg("session saved")
	return session, nil
}
