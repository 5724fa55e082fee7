// Package csvio converts companies to and from the CSV layout used by the
// terminal client's export and import commands.
//
// A file starts with a header row. The scalar company columns come first,
// then one presence column per country, then five contact columns per
// country, all in [models.Countries] order:
//
//	company_name,business_type,industry,website,
//	presence_in_kenya,...,presence_in_rwanda,
//	kenya_responsible_person,kenya_responsible_phone,...,rwanda_company_email
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-company-directory/models"
)

var (
	ErrMissingNameColumn = errors.New("csv header has no company_name column")
	ErrEmptyFile         = errors.New("csv file is empty")
	ErrInvalidBool       = errors.New("invalid boolean value")
	ErrEmptyCompanyName  = errors.New("company name is empty")
)

const (
	colCompanyName  = "company_name"
	colBusinessType = "business_type"
	colIndustry     = "industry"
	colWebsite      = "website"
)

var contactFields = []string{
	"responsible_person",
	"responsible_phone",
	"responsible_email",
	"company_phone",
	"company_email",
}

// Header returns the columns written by [Write].
func Header() []string {
	header := []string{colCompanyName, colBusinessType, colIndustry, colWebsite}
	for _, country := range models.Countries {
		header = append(header, presenceColumn(country))
	}
	for _, country := range models.Countries {
		for _, field := range contactFields {
			header = append(header, contactColumn(country, field))
		}
	}
	return header
}

func presenceColumn(c models.Country) string {
	return "presence_in_" + string(c)
}

func contactColumn(c models.Country, field string) string {
	return string(c) + "_" + field
}

// Write encodes companies with a header row.
func Write(w io.Writer, companies []models.Company) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, company := range companies {
		if err := writer.Write(record(company)); err != nil {
			return fmt.Errorf("write csv row for %q: %w", company.CompanyName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func record(company models.Company) []string {
	row := []string{company.CompanyName, company.BusinessType, company.Industry, company.Website}
	for _, country := range models.Countries {
		row = append(row, strconv.FormatBool(company.Presence.Has(country)))
	}
	for _, country := range models.Countries {
		contact := company.CountryContacts[country]
		row = append(row,
			contact.ResponsiblePerson,
			contact.ResponsiblePhone,
			contact.ResponsibleEmail,
			contact.CompanyPhone,
			contact.CompanyEmail,
		)
	}
	return row
}

// RowError reports a data row that could not be turned into a company.
// Row is the 1-based line the record starts on, so the first data row after
// the header is row 2.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Record is a decoded company and the line its row starts on.
type Record struct {
	Row     int
	Company models.Company
}

// Read decodes companies from r. See [ReadRecords].
func Read(r io.Reader) ([]models.Company, []RowError, error) {
	records, rowErrors, err := ReadRecords(r)
	if err != nil {
		return nil, nil, err
	}

	companies := make([]models.Company, 0, len(records))
	for _, rec := range records {
		companies = append(companies, rec.Company)
	}
	return companies, rowErrors, nil
}

// ReadRecords decodes companies from r together with their line numbers.
// Columns are matched by header name, case-insensitively; unknown columns
// are ignored. Rows that cannot be decoded are skipped and returned as
// [RowError]s. A missing company_name column or an unreadable file fails
// the whole read.
func ReadRecords(r io.Reader) ([]Record, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	if _, ok := index[colCompanyName]; !ok {
		return nil, nil, ErrMissingNameColumn
	}

	records := make([]Record, 0)
	rowErrors := make([]RowError, 0)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		row, _ := reader.FieldPos(0)
		if blank(fields) {
			continue
		}

		company, err := decode(index, fields)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Row: row, Err: err})
			continue
		}
		records = append(records, Record{Row: row, Company: company})
	}

	return records, rowErrors, nil
}

func decode(index map[string]int, fields []string) (models.Company, error) {
	get := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	company := models.Company{
		CompanyName:     get(colCompanyName),
		BusinessType:    get(colBusinessType),
		Industry:        get(colIndustry),
		Website:         get(colWebsite),
		CountryContacts: make(models.CountryContacts),
	}
	if company.CompanyName == "" {
		return models.Company{}, ErrEmptyCompanyName
	}

	for _, country := range models.Countries {
		present, err := parseBool(get(presenceColumn(country)))
		if err != nil {
			return models.Company{}, fmt.Errorf("%s: %w", presenceColumn(country), err)
		}
		company.Presence.Set(country, present)

		contact := models.CountryContact{
			ResponsiblePerson: get(contactColumn(country, "responsible_person")),
			ResponsiblePhone:  get(contactColumn(country, "responsible_phone")),
			ResponsibleEmail:  get(contactColumn(country, "responsible_email")),
			CompanyPhone:      get(contactColumn(country, "company_phone")),
			CompanyEmail:      get(contactColumn(country, "company_email")),
		}
		if !contact.IsEmpty() {
			company.CountryContacts[country] = contact
		}
	}

	return company, nil
}

// parseBool accepts true/false, yes/no and 1/0 in any case. An empty cell is
// false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "false", "no", "0":
		return false, nil
	case "true", "yes", "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
