package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

const (
	savepointEntry    = "bulk_entry"
	savepointContacts = "bulk_contacts"
)

// BulkImportCompanies stores companies in input order inside one
// transaction that is committed once at the end.
//
// Every entry runs behind a savepoint so that a rejected statement only
// undoes that entry. When the company row is rejected the entry is skipped
// and reported. When only its contacts are rejected the company is kept,
// counted as a success and reported as a partial failure. Contacts without
// a responsible person, phone or email are not imported.
func (r *companyRepository) BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error) {
	log := logger.FromContext(ctx)

	report := models.BulkImportReport{Errors: make([]models.BulkImportError, 0)}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.BulkImportCompanies").
			Msg("failed to begin transaction")
		return models.BulkImportReport{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, company := range companies {
		if err = ctx.Err(); err != nil {
			return models.BulkImportReport{}, err
		}

		if err = savepoint(ctx, tx, savepointEntry); err != nil {
			return models.BulkImportReport{}, err
		}

		id, insertErr := r.insertCompany(ctx, tx, company)
		if insertErr != nil {
			log.Warn().
				Err(insertErr).
				Str("func", "companyRepository.BulkImportCompanies").
				Int("index", idx).
				Str("company_name", company.CompanyName).
				Msg("company rejected")

			if err = rollbackTo(ctx, tx, savepointEntry); err != nil {
				return models.BulkImportReport{}, err
			}
			if err = release(ctx, tx, savepointEntry); err != nil {
				return models.BulkImportReport{}, err
			}
			report.AddError(models.BulkImportError{
				Index:   idx,
				Name:    company.CompanyName,
				Message: insertErr.Error(),
			})
			continue
		}

		report.SuccessCount++

		if err = savepoint(ctx, tx, savepointContacts); err != nil {
			return models.BulkImportReport{}, err
		}

		if contactsErr := r.insertCountryRows(ctx, tx, id, bulkCountryRows(company)); contactsErr != nil {
			log.Warn().
				Err(contactsErr).
				Str("func", "companyRepository.BulkImportCompanies").
				Int("index", idx).
				Int64("company_id", id).
				Msg("contacts rejected, company kept")

			if err = rollbackTo(ctx, tx, savepointContacts); err != nil {
				return models.BulkImportReport{}, err
			}
			report.AddError(models.BulkImportError{
				Index:   idx,
				Name:    company.CompanyName,
				Message: contactsErr.Error() + " (contacts)",
				Partial: true,
			})
		}

		if err = release(ctx, tx, savepointEntry); err != nil {
			return models.BulkImportReport{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "companyRepository.BulkImportCompanies").
			Msg("failed to commit transaction")
		return models.BulkImportReport{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "companyRepository.BulkImportCompanies").
		Int("success_count", report.SuccessCount).
		Int("error_count", report.ErrorCount).
		Msg("bulk import finished")

	return report, nil
}

// bulkCountryRows returns the country rows of an imported company. Contacts
// missing all primary fields are dropped but their presence is kept.
func bulkCountryRows(company models.Company) []models.CountryRow {
	filtered := company
	filtered.CountryContacts = make(models.CountryContacts, len(company.CountryContacts))
	for country, contact := range company.CountryContacts {
		if contact.HasPrimaryContact() {
			filtered.CountryContacts[country] = contact
		}
	}

	return filtered.CountryRows()
}

// savepoint names are constants, never user input.
func savepoint(ctx context.Context, q queryer, name string) error {
	if _, err := q.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrSavepoint, name, err)
	}
	return nil
}

func rollbackTo(ctx context.Context, q queryer, name string) error {
	if _, err := q.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); err != nil {
		return fmt.Errorf("%w: rollback to %s: %w", ErrSavepoint, name, err)
	}
	return nil
}

func release(ctx context.Context, q queryer, name string) error {
	if _, err := q.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("%w: release %s: %w", ErrSavepoint, name, err)
	}
	return nil
}
