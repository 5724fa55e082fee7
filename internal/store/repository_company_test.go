package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/models"
)

func newTestCompanyRepo(t *testing.T) (*companyRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &companyRepository{DB: db, logger: logger.Nop()}, mock
}

func exact(query string) string {
	return "^" + regexp.QuoteMeta(query) + "$"
}

var contactRowColumns = []string{
	"company_id", "country", "present",
	"responsible_person", "responsible_phone", "responsible_email",
	"company_phone", "company_email",
}

func TestGetCompany_NotFound(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("SELECT id, company_name, business_type, industry, website FROM companies WHERE id = ").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCompany(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompany_Success(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("FROM companies WHERE id = ").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "business_type", "industry", "website"}).
			AddRow(1, "Acme", "Retail", "Tech", ""))
	mock.ExpectQuery("FROM country_contacts WHERE company_id IN").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(contactRowColumns).
			AddRow(1, "kenya", true, "Jane", "", "", "", "jane@acme.com").
			AddRow(1, "uganda", true, "", "", "", "", "").
			AddRow(1, "rwanda", false, "Old", "", "", "", ""))

	company, err := repo.GetCompany(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Acme", company.CompanyName)
	assert.True(t, company.InKenya)
	assert.True(t, company.InUganda)
	assert.False(t, company.InTanzania)
	assert.False(t, company.InRwanda)
	assert.Equal(t, "jane@acme.com", company.CountryContacts[models.CountryKenya].CompanyEmail)
	assert.NotContains(t, company.CountryContacts, models.CountryUganda)
	// contacts are kept even after presence was cleared
	assert.Equal(t, "Old", company.CountryContacts[models.CountryRwanda].ResponsiblePerson)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCompanies_Empty(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("FROM companies ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "business_type", "industry", "website"}))

	companies, err := repo.GetAllCompanies(context.Background(), models.CompanyFilter{})
	require.NoError(t, err)
	assert.Empty(t, companies)
	assert.NotNil(t, companies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCompanies_FilteredGroupsContacts(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("FROM companies WHERE industry = ").
		WithArgs("Tech").
		WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "business_type", "industry", "website"}).
			AddRow(1, "Acme", "", "Tech", "").
			AddRow(3, "Bolt", "", "Tech", ""))
	mock.ExpectQuery("FROM country_contacts WHERE company_id IN").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(sqlmock.NewRows(contactRowColumns).
			AddRow(1, "kenya", true, "Jane", "", "", "", "").
			AddRow(3, "tanzania", true, "", "", "", "+255", ""))

	companies, err := repo.GetAllCompanies(context.Background(), models.CompanyFilter{Industry: "Tech"})
	require.NoError(t, err)
	require.Len(t, companies, 2)

	assert.True(t, companies[0].InKenya)
	assert.False(t, companies[0].InTanzania)
	assert.True(t, companies[1].InTanzania)
	assert.Equal(t, "+255", companies[1].CountryContacts[models.CountryTanzania].CompanyPhone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCompanies_QueryError(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery("FROM companies").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAllCompanies(context.Background(), models.CompanyFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetFilterOptions(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectQuery(exact("SELECT DISTINCT business_type FROM companies WHERE business_type <> $1 ORDER BY business_type")).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"business_type"}).AddRow("Retail").AddRow("Wholesale"))
	mock.ExpectQuery(exact("SELECT DISTINCT industry FROM companies WHERE industry <> $1 ORDER BY industry")).
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{"industry"}).AddRow("Tech"))

	options, err := repo.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Retail", "Wholesale"}, options.BusinessTypes)
	assert.Equal(t, []string{"Tech"}, options.Industries)
	assert.Equal(t, models.Countries, options.Countries)
}

func TestAddCompany_Success(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	company := models.Company{
		CompanyName: "Acme",
		Presence:    models.Presence{InKenya: true},
		CountryContacts: models.CountryContacts{
			models.CountryKenya: {ResponsiblePerson: "Jane"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO country_contacts").
		WithArgs(int64(5), "kenya", true, "Jane", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.AddCompany(context.Background(), company)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCompany_WithoutCountriesSkipsContactInsert(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO companies").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	mock.ExpectCommit()

	id, err := repo.AddCompany(context.Background(), models.Company{CompanyName: "Solo"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCompany_ContactRejectedRollsBack(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	company := models.Company{
		CompanyName: "Acme",
		CountryContacts: models.CountryContacts{
			"atlantis": {ResponsiblePerson: "Nemo"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO companies").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectExec("INSERT INTO country_contacts").
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.AddCompany(context.Background(), company)
	assert.ErrorIs(t, err, ErrDataRejected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCompany_BeginError(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.AddCompany(context.Background(), models.Company{CompanyName: "Acme"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestUpdateCompany_NotFound(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE companies SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateCompany(context.Background(), 42, models.Company{CompanyName: "Ghost"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompany_PerCountryStatements(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	company := models.Company{
		CompanyName: "Acme",
		Presence:    models.Presence{InUganda: true},
		CountryContacts: models.CountryContacts{
			models.CountryKenya: {CompanyEmail: "k@acme.com"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE companies SET").
		WithArgs("Acme", "", "", "", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO country_contacts .* DO UPDATE SET present = excluded.present, responsible_person").
		WithArgs(int64(7), "kenya", true, "", "", "", "", "k@acme.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(exact("INSERT INTO country_contacts (company_id,country,present) VALUES ($1,$2,$3) " + upsertPresenceSuffix)).
		WithArgs(int64(7), "uganda", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE country_contacts SET present = ").
		WithArgs(false, int64(7), "tanzania").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE country_contacts SET present = ").
		WithArgs(false, int64(7), "rwanda").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateCompany(context.Background(), 7, company)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompany_UpsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE companies SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO country_contacts").
		WillReturnError(errors.New("broken pipe"))
	mock.ExpectRollback()

	err := repo.UpdateCompany(context.Background(), 7, models.Company{
		CompanyName: "Acme",
		Presence:    models.Presence{InKenya: true},
	})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompany(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: ErrCompanyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCompanyRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(exact("DELETE FROM companies WHERE id = $1")).
				WithArgs(int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.wantErr == nil {
				mock.ExpectCommit()
			} else {
				mock.ExpectRollback()
			}

			err := repo.DeleteCompany(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBulkImportCompanies_CompanyRejected(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	companies := []models.Company{
		{CompanyName: "Acme"},
		{CompanyName: " "},
	}

	mock.ExpectBegin()
	mock.ExpectExec(exact("SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO companies").
		WithArgs("Acme", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(exact("SAVEPOINT bulk_contacts")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(exact("RELEASE SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(exact("SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO companies").
		WithArgs(" ", "", "", "").
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectExec(exact("ROLLBACK TO SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(exact("RELEASE SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	report, err := repo.BulkImportCompanies(context.Background(), companies)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.ErrorCount)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, 1, report.Errors[0].Index)
	assert.Equal(t, " ", report.Errors[0].Name)
	assert.False(t, report.Errors[0].Partial)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImportCompanies_ContactsRejectedKeepsCompany(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	companies := []models.Company{{
		CompanyName: "Acme",
		CountryContacts: models.CountryContacts{
			models.CountryKenya: {ResponsiblePerson: "Jane"},
			// dropped: no responsible person, phone or email
			models.CountryUganda: {CompanyPhone: "+256"},
		},
	}}

	mock.ExpectBegin()
	mock.ExpectExec(exact("SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO companies").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec(exact("SAVEPOINT bulk_contacts")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO country_contacts").
		WithArgs(int64(10), "kenya", true, "Jane", "", "", "", "").
		WillReturnError(pgError(pgerrcode.StringDataRightTruncationDataException))
	mock.ExpectExec(exact("ROLLBACK TO SAVEPOINT bulk_contacts")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(exact("RELEASE SAVEPOINT bulk_entry")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	report, err := repo.BulkImportCompanies(context.Background(), companies)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.ErrorCount)
	require.Len(t, report.Errors, 1)
	assert.True(t, report.Errors[0].Partial)
	assert.Contains(t, report.Errors[0].Message, "(contacts)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImportCompanies_SavepointFailureAborts(t *testing.T) {
	repo, mock := newTestCompanyRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(exact("SAVEPOINT bulk_entry")).WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	_, err := repo.BulkImportCompanies(context.Background(), []models.Company{{CompanyName: "Acme"}})
	assert.ErrorIs(t, err, ErrSavepoint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImportCompanies_CanceledContext(t *testing.T) {
	repo, _ := newTestCompanyRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.BulkImportCompanies(ctx, []models.Company{{CompanyName: "Acme"}})
	assert.ErrorIs(t, err, context.Canceled)
}
