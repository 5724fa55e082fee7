package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
)

type healthService struct {
	pinger store.Pinger
}

func NewHealthService(pinger store.Pinger) HealthService {
	return &healthService{pinger: pinger}
}

func (h *healthService) Check(ctx context.Context) error {
	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
