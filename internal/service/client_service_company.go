package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-company-directory/internal/adapter"
	"github.com/MKhiriev/go-company-directory/internal/csvio"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/models"
)

type clientCompanyService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientCompanyService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCompanyService {
	return &clientCompanyService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (c *clientCompanyService) List(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	companies, err := c.adapter.ListCompanies(ctx, filter)
	if err != nil {
		return nil, c.fail(ctx, err)
	}
	return companies, nil
}

func (c *clientCompanyService) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	options, err := c.adapter.FilterOptions(ctx)
	if err != nil {
		return models.FilterOptions{}, c.fail(ctx, err)
	}
	return options, nil
}

func (c *clientCompanyService) Get(ctx context.Context, id int64) (models.Company, error) {
	company, err := c.adapter.GetCompany(ctx, id)
	if err != nil {
		return models.Company{}, c.fail(ctx, err)
	}
	return company, nil
}

func (c *clientCompanyService) Delete(ctx context.Context, id int64) error {
	if err := c.adapter.DeleteCompany(ctx, id); err != nil {
		return c.fail(ctx, err)
	}
	c.logger.Info().Int64("id", id).Msg("company deleted")
	return nil
}

func (c *clientCompanyService) Export(ctx context.Context, w io.Writer, filter models.CompanyFilter) (int, error) {
	companies, err := c.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	if err = csvio.Write(w, companies); err != nil {
		return 0, fmt.Errorf("export companies: %w", err)
	}

	return len(companies), nil
}

func (c *clientCompanyService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	records, skipped, err := csvio.ReadRecords(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result := ImportResult{Skipped: skipped, Rows: make([]int, 0, len(records))}
	companies := make([]models.Company, 0, len(records))
	for _, rec := range records {
		companies = append(companies, rec.Company)
		result.Rows = append(result.Rows, rec.Row)
	}
	if len(companies) == 0 {
		return result, ErrEmptyBulkImport
	}

	report, err := c.adapter.BulkImport(ctx, companies)
	if err != nil {
		return result, c.fail(ctx, err)
	}
	result.Report = report

	c.logger.Info().
		Int("sent", len(companies)).
		Int("skipped", len(skipped)).
		Int("imported", report.SuccessCount).
		Int("failed", report.ErrorCount).
		Msg("bulk import finished")

	return result, nil
}

// fail maps an adapter error. A rejected token means the saved session is
// no longer usable, so it is dropped.
func (c *clientCompanyService) fail(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)

	if errors.Is(mapped, ErrClientUnauthorized) {
		c.adapter.SetToken("")
		if clearErr := c.sessions.ClearSession(ctx); clearErr != nil {
			c.logger.Err(clearErr).Msg("failed to clear rejected session")
		}
	}

	return mapped
}
