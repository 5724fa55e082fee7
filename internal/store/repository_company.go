package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

// companyRepository is the database/sql implementation of
// [CompanyRepository]. Companies live in the "companies" table, their
// per-country presence and contacts in "country_contacts" (one row per
// company and country).
type companyRepository struct {
	*DB
	logger *logger.Logger
}

// NewCompanyRepository constructs a [CompanyRepository] on top of db.
func NewCompanyRepository(db *DB, logger *logger.Logger) CompanyRepository {
	logger.Debug().Msg("creating company repository")
	return &companyRepository{
		DB:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// GetCompany returns the company with the given id together with its
// country rows, or [ErrCompanyNotFound].
func (r *companyRepository) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCompanyQuery(r.builder, id)
	if err != nil {
		return models.Company{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var company models.Company
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&company.ID,
		&company.CompanyName,
		&company.BusinessType,
		&company.Industry,
		&company.Website,
	)
	if isNoRows(err) {
		log.Debug().
			Str("func", "companyRepository.GetCompany").
			Int64("company_id", id).
			Msg("company not found")
		return models.Company{}, ErrCompanyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetCompany").
			Int64("company_id", id).
			Msg("failed to select company")
		return models.Company{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	byCompany, err := r.selectCountryRows(ctx, r.DB, []int64{id})
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetCompany").
			Int64("company_id", id).
			Msg("failed to select country contacts")
		return models.Company{}, err
	}

	company.CountryContacts = make(models.CountryContacts)
	for _, row := range byCompany[id] {
		company.ApplyCountryRow(row)
	}

	return company, nil
}

// GetAllCompanies returns the companies matching filter ordered by id. The
// companies and their country rows are read with two queries and grouped in
// memory.
func (r *companyRepository) GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCompaniesQuery(r.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetAllCompanies").
			Msg("failed to execute query for getting companies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0, 50)
	for rows.Next() {
		var company models.Company
		if err = rows.Scan(
			&company.ID,
			&company.CompanyName,
			&company.BusinessType,
			&company.Industry,
			&company.Website,
		); err != nil {
			log.Err(err).
				Str("func", "companyRepository.GetAllCompanies").
				Msg("failed to scan company row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		company.CountryContacts = make(models.CountryContacts)
		companies = append(companies, company)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetAllCompanies").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(companies) == 0 {
		return companies, nil
	}

	// without a filter every company is listed, so all contacts are needed
	var ids []int64
	if filter != (models.CompanyFilter{}) {
		ids = make([]int64, 0, len(companies))
		for _, c := range companies {
			ids = append(ids, c.ID)
		}
	}

	byCompany, err := r.selectCountryRows(ctx, r.DB, ids)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetAllCompanies").
			Msg("failed to select country contacts")
		return nil, err
	}

	for i := range companies {
		for _, row := range byCompany[companies[i].ID] {
			companies[i].ApplyCountryRow(row)
		}
	}

	return companies, nil
}

func (r *companyRepository) selectCountryRows(ctx context.Context, q queryer, ids []int64) (map[int64][]models.CountryRow, error) {
	query, args, err := buildSelectContactsQuery(r.builder, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byCompany := make(map[int64][]models.CountryRow)
	for rows.Next() {
		var (
			companyID int64
			row       models.CountryRow
		)
		if err = rows.Scan(
			&companyID,
			&row.Country,
			&row.Present,
			&row.Contact.ResponsiblePerson,
			&row.Contact.ResponsiblePhone,
			&row.Contact.ResponsibleEmail,
			&row.Contact.CompanyPhone,
			&row.Contact.CompanyEmail,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		byCompany[companyID] = append(byCompany[companyID], row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return byCompany, nil
}

// GetFilterOptions returns the distinct non-empty business types and
// industries plus every supported country.
func (r *companyRepository) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	log := logger.FromContext(ctx)

	businessTypes, err := r.selectDistinct(ctx, "business_type")
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetFilterOptions").
			Msg("failed to select business types")
		return models.FilterOptions{}, err
	}

	industries, err := r.selectDistinct(ctx, "industry")
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.GetFilterOptions").
			Msg("failed to select industries")
		return models.FilterOptions{}, err
	}

	return models.FilterOptions{
		BusinessTypes: businessTypes,
		Industries:    industries,
		Countries:     append([]models.Country(nil), models.Countries...),
	}, nil
}

func (r *companyRepository) selectDistinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := buildSelectDistinctQuery(r.builder, column)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 16)
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

// AddCompany inserts the company and its country rows in one transaction
// and returns the new id. Nothing is stored if any statement fails.
func (r *companyRepository) AddCompany(ctx context.Context, company models.Company) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.AddCompany").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	id, err := r.insertCompany(ctx, tx, company)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.AddCompany").
			Str("company_name", company.CompanyName).
			Msg("failed to insert company")
		return 0, err
	}

	if err = r.insertCountryRows(ctx, tx, id, company.CountryRows()); err != nil {
		log.Err(err).
			Str("func", "companyRepository.AddCompany").
			Int64("company_id", id).
			Msg("failed to insert country contacts")
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "companyRepository.AddCompany").
			Int64("company_id", id).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "companyRepository.AddCompany").
		Int64("company_id", id).
		Msg("company added")

	return id, nil
}

func (r *companyRepository) insertCompany(ctx context.Context, q queryer, company models.Company) (int64, error) {
	query, args, err := buildInsertCompanyQuery(r.builder, company)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, r.classify(ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *companyRepository) insertCountryRows(ctx context.Context, q queryer, companyID int64, rows []models.CountryRow) error {
	if len(rows) == 0 {
		return nil
	}

	query, args, err := buildInsertContactsQuery(r.builder, companyID, rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return r.classify(ErrExecutingStatement, err)
	}

	return nil
}

// UpdateCompany overwrites the company's scalar fields and, per country,
// upserts the contact details it carries or the presence flag it sets.
// Country rows are never deleted: a cleared flag only clears the marker and
// stored contacts of countries missing from the input are kept.
func (r *companyRepository) UpdateCompany(ctx context.Context, id int64, company models.Company) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.UpdateCompany").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildUpdateCompanyQuery(r.builder, id, company)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.UpdateCompany").
			Int64("company_id", id).
			Msg("failed to update company")
		return r.classify(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "companyRepository.UpdateCompany").
			Int64("company_id", id).
			Msg("company not found")
		return ErrCompanyNotFound
	}

	for _, country := range models.Countries {
		if err = r.updateCountry(ctx, tx, id, country, company); err != nil {
			log.Err(err).
				Str("func", "companyRepository.UpdateCompany").
				Int64("company_id", id).
				Str("country", string(country)).
				Msg("failed to update country contact")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "companyRepository.UpdateCompany").
			Int64("company_id", id).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "companyRepository.UpdateCompany").
		Int64("company_id", id).
		Msg("company updated")

	return nil
}

func (r *companyRepository) updateCountry(ctx context.Context, q queryer, id int64, country models.Country, company models.Company) error {
	var (
		query string
		args  []any
		err   error
	)

	contact := company.CountryContacts[country]
	switch {
	case !contact.IsEmpty():
		query, args, err = buildUpsertContactQuery(r.builder, id, models.CountryRow{
			Country: country,
			Present: true,
			Contact: contact,
		})
	case company.Presence.Has(country):
		query, args, err = buildUpsertPresenceQuery(r.builder, id, country)
	default:
		query, args, err = buildClearPresenceQuery(r.builder, id, country)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return r.classify(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteCompany removes the company. Its country rows go with it through
// the ON DELETE CASCADE foreign key.
func (r *companyRepository) DeleteCompany(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.DeleteCompany").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteCompanyQuery(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "companyRepository.DeleteCompany").
			Int64("company_id", id).
			Msg("failed to delete company")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "companyRepository.DeleteCompany").
			Int64("company_id", id).
			Msg("company not found")
		return ErrCompanyNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "companyRepository.DeleteCompany").
			Int64("company_id", id).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "companyRepository.DeleteCompany").
		Int64("company_id", id).
		Msg("company deleted")

	return nil
}
