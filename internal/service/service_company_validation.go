package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

// CompanyValidationService checks ids and payloads before they reach the
// wrapped CompanyService.
type CompanyValidationService struct {
	inner     CompanyService
	validator validators.Validator
}

func NewCompanyValidationService() CompanyServiceWrapper {
	return &CompanyValidationService{
		validator: validators.NewCompanyValidator(),
	}
}

func (v *CompanyValidationService) Wrap(inner CompanyService) CompanyService {
	v.inner = inner
	return v
}

func (v *CompanyValidationService) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Company{}, err
	}

	return v.inner.GetCompany(ctx, id)
}

func (v *CompanyValidationService) GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	if filter.Country != "" && !filter.Country.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, validators.ErrUnknownCountry, filter.Country)
	}

	return v.inner.GetAllCompanies(ctx, filter)
}

func (v *CompanyValidationService) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	return v.inner.GetFilterOptions(ctx)
}

func (v *CompanyValidationService) AddCompany(ctx context.Context, company models.Company) (int64, error) {
	if err := v.validator.Validate(ctx, company); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddCompany(ctx, company)
}

func (v *CompanyValidationService) UpdateCompany(ctx context.Context, id int64, company models.Company) error {
	company.ID = id
	if err := v.validator.Validate(ctx, company, validators.FieldCompanyID, validators.FieldCompanyPayload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateCompany(ctx, id, company)
}

func (v *CompanyValidationService) DeleteCompany(ctx context.Context, id int64) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteCompany(ctx, id)
}

// BulkImportCompanies rejects an empty batch. Entries failing validation are
// reported without reaching the database; the rest are imported and every
// error entry keeps the index the entry had in companies.
func (v *CompanyValidationService) BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error) {
	if len(companies) == 0 {
		return models.BulkImportReport{}, ErrEmptyBulkImport
	}

	valid := make([]models.Company, 0, len(companies))
	positions := make([]int, 0, len(companies))
	rejected := make([]models.BulkImportError, 0)

	for idx, company := range companies {
		if err := v.validator.Validate(ctx, company); err != nil {
			rejected = append(rejected, models.BulkImportError{
				Index:   idx,
				Name:    company.CompanyName,
				Message: err.Error(),
			})
			continue
		}
		valid = append(valid, company)
		positions = append(positions, idx)
	}

	if len(rejected) > 0 {
		logger.FromContext(ctx).Warn().
			Int("rejected", len(rejected)).
			Int("total", len(companies)).
			Msg("bulk import entries failed validation")
	}

	report := models.BulkImportReport{Errors: make([]models.BulkImportError, 0, len(rejected))}

	if len(valid) > 0 {
		stored, err := v.inner.BulkImportCompanies(ctx, valid)
		if err != nil {
			return models.BulkImportReport{}, err
		}

		report.SuccessCount = stored.SuccessCount
		for _, e := range stored.Errors {
			e.Index = positions[e.Index]
			rejected = append(rejected, e)
		}
	}

	slices.SortStableFunc(rejected, func(a, b models.BulkImportError) int {
		return cmp.Compare(a.Index, b.Index)
	})
	for _, e := range rejected {
		report.AddError(e)
	}

	return report, nil
}

func (v *CompanyValidationService) validateID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Company{ID: id}, validators.FieldCompanyID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
