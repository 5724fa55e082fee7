package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

// UserRepository stores user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// CompanyRepository stores companies together with their per-country
// presence and contacts. Every write runs in its own transaction.
type CompanyRepository interface {
	GetCompany(ctx context.Context, id int64) (models.Company, error)
	GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetFilterOptions(ctx context.Context) (models.FilterOptions, error)
	AddCompany(ctx context.Context, company models.Company) (int64, error)
	UpdateCompany(ctx context.Context, id int64, company models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
	BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
