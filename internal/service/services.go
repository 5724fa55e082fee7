package service

import (
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
)

type Services struct {
	AuthService    AuthService
	CompanyService CompanyService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	companyService := NewCompanyValidationService().
		Wrap(NewCompanyService(storages.CompanyRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CompanyService: companyService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.Pinger),
	}, nil
}
