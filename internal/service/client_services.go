package service

import (
	"github.com/MKhiriev/go-company-directory/internal/adapter"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	CompanyService ClientCompanyService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore.SessionRepository, serverAdapter, logger),
		CompanyService: NewClientCompanyService(localStore.SessionRepository, serverAdapter, logger),
	}
}
