package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-company-directory/models"
)

const (
	tableUsers           = "users"
	tableCompanies       = "companies"
	tableCountryContacts = "country_contacts"
)

var (
	userColumns    = []string{"id", "username", "password", "role"}
	companyColumns = []string{"id", "company_name", "business_type", "industry", "website"}
	contactColumns = []string{
		"company_id",
		"country",
		"present",
		"responsible_person",
		"responsible_phone",
		"responsible_email",
		"company_phone",
		"company_email",
	}
)

// countryPresentExpr restricts companies to those present in one country.
const countryPresentExpr = "EXISTS (SELECT 1 FROM country_contacts cc " +
	"WHERE cc.company_id = companies.id AND cc.country = ? AND cc.present)"

// upsertContactSuffix turns a contact insert into an upsert keyed by the
// (company_id, country) unique constraint.
const upsertContactSuffix = "ON CONFLICT (company_id, country) DO UPDATE SET " +
	"present = excluded.present, " +
	"responsible_person = excluded.responsible_person, " +
	"responsible_phone = excluded.responsible_phone, " +
	"responsible_email = excluded.responsible_email, " +
	"company_phone = excluded.company_phone, " +
	"company_email = excluded.company_email"

// upsertPresenceSuffix marks presence without touching stored contact fields.
const upsertPresenceSuffix = "ON CONFLICT (company_id, country) DO UPDATE SET present = excluded.present"

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(tableUsers).
		Columns("username", "password", "role").
		Values(user.Username, user.Password, user.Role).
		Suffix("RETURNING id, username, password, role").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(where).
		ToSql()
}

func buildSelectCompanyQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(companyColumns...).
		From(tableCompanies).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectCompaniesQuery(b sq.StatementBuilderType, filter models.CompanyFilter) (string, []any, error) {
	query := b.Select(companyColumns...).
		From(tableCompanies).
		OrderBy("id")

	if filter.BusinessType != "" {
		query = query.Where(sq.Eq{"business_type": filter.BusinessType})
	}
	if filter.Industry != "" {
		query = query.Where(sq.Eq{"industry": filter.Industry})
	}
	if filter.Country != "" {
		query = query.Where(sq.Expr(countryPresentExpr, filter.Country))
	}

	return query.ToSql()
}

// buildSelectContactsQuery selects the country rows of the given companies.
// An empty ids slice selects the rows of every company.
func buildSelectContactsQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	query := b.Select(contactColumns...).
		From(tableCountryContacts).
		OrderBy("company_id", "id")

	if len(ids) > 0 {
		query = query.Where(sq.Eq{"company_id": ids})
	}

	return query.ToSql()
}

func buildSelectDistinctQuery(b sq.StatementBuilderType, column string) (string, []any, error) {
	return b.Select(column).
		Distinct().
		From(tableCompanies).
		Where(sq.NotEq{column: ""}).
		OrderBy(column).
		ToSql()
}

func buildInsertCompanyQuery(b sq.StatementBuilderType, company models.Company) (string, []any, error) {
	return b.Insert(tableCompanies).
		Columns("company_name", "business_type", "industry", "website").
		Values(company.CompanyName, company.BusinessType, company.Industry, company.Website).
		Suffix("RETURNING id").
		ToSql()
}

// buildInsertContactsQuery inserts all country rows of one company in a
// single statement.
func buildInsertContactsQuery(b sq.StatementBuilderType, companyID int64, rows []models.CountryRow) (string, []any, error) {
	query := b.Insert(tableCountryContacts).Columns(contactColumns...)
	for _, row := range rows {
		query = query.Values(contactValues(companyID, row)...)
	}

	return query.ToSql()
}

func buildUpsertContactQuery(b sq.StatementBuilderType, companyID int64, row models.CountryRow) (string, []any, error) {
	return b.Insert(tableCountryContacts).
		Columns(contactColumns...).
		Values(contactValues(companyID, row)...).
		Suffix(upsertContactSuffix).
		ToSql()
}

func buildUpsertPresenceQuery(b sq.StatementBuilderType, companyID int64, country models.Country) (string, []any, error) {
	return b.Insert(tableCountryContacts).
		Columns("company_id", "country", "present").
		Values(companyID, country, true).
		Suffix(upsertPresenceSuffix).
		ToSql()
}

func buildClearPresenceQuery(b sq.StatementBuilderType, companyID int64, country models.Country) (string, []any, error) {
	return b.Update(tableCountryContacts).
		Set("present", false).
		Where(sq.Eq{"company_id": companyID, "country": country}).
		ToSql()
}

func buildUpdateCompanyQuery(b sq.StatementBuilderType, id int64, company models.Company) (string, []any, error) {
	return b.Update(tableCompanies).
		Set("company_name", company.CompanyName).
		Set("business_type", company.BusinessType).
		Set("industry", company.Industry).
		Set("website", company.Website).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCompanyQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(tableCompanies).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func contactValues(companyID int64, row models.CountryRow) []any {
	return []any{
		companyID,
		row.Country,
		row.Present,
		row.Contact.ResponsiblePerson,
		row.Contact.ResponsiblePhone,
		row.Contact.ResponsibleEmail,
		row.Contact.CompanyPhone,
		row.Contact.CompanyEmail,
	}
}
