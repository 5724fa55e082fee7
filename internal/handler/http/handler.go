package http

import (
	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/utils"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	// exposeDetails adds the underlying error text to error responses.
	exposeDetails bool
	traceIDs      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.Server.AllowedOrigins,
		exposeDetails:  !cfg.App.IsProduction(),
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
