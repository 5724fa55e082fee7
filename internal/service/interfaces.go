package service

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

type AuthService interface {
	// Register validates the request, hashes the password and stores the user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login returns the user whose password matches. Unknown users and wrong
	// passwords fail with the same ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Identify re-reads the user a token was issued to.
	Identify(ctx context.Context, userID int64) (models.User, error)
}

type CompanyService interface {
	GetCompany(ctx context.Context, id int64) (models.Company, error)
	GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	GetFilterOptions(ctx context.Context) (models.FilterOptions, error)
	AddCompany(ctx context.Context, company models.Company) (int64, error)
	UpdateCompany(ctx context.Context, id int64, company models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
	BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error)
}

// CompanyServiceWrapper defines middleware composition for CompanyService.
// Implementations wrap an existing CompanyService to add behavior such as
// validation.
type CompanyServiceWrapper interface {
	Wrap(CompanyService) CompanyService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	// Check pings the database.
	Check(ctx context.Context) error
}
