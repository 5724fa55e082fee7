package service

import (
	"context"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/models"
)

type companyService struct {
	companyRepository store.CompanyRepository

	logger *logger.Logger
}

// NewCompanyService returns a CompanyService that delegates to the
// repository. Payloads are expected to be validated by a wrapper.
func NewCompanyService(companyRepository store.CompanyRepository, logger *logger.Logger) CompanyService {
	return &companyService{
		companyRepository: companyRepository,
		logger:            logger,
	}
}

func (c *companyService) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	return c.companyRepository.GetCompany(ctx, id)
}

func (c *companyService) GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	return c.companyRepository.GetAllCompanies(ctx, filter)
}

func (c *companyService) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	return c.companyRepository.GetFilterOptions(ctx)
}

func (c *companyService) AddCompany(ctx context.Context, company models.Company) (int64, error) {
	id, err := c.companyRepository.AddCompany(ctx, company)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().
		Int64("company_id", id).
		Str("company_name", company.CompanyName).
		Msg("company added")
	return id, nil
}

func (c *companyService) UpdateCompany(ctx context.Context, id int64, company models.Company) error {
	if err := c.companyRepository.UpdateCompany(ctx, id, company); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("company_id", id).Msg("company updated")
	return nil
}

func (c *companyService) DeleteCompany(ctx context.Context, id int64) error {
	if err := c.companyRepository.DeleteCompany(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("company_id", id).Msg("company deleted")
	return nil
}

func (c *companyService) BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error) {
	return c.companyRepository.BulkImportCompanies(ctx, companies)
}
