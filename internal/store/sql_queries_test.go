// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-company-directory/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectCompaniesQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.CompanyFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filter",
			filter: models.CompanyFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Equal(t, "SELECT id, company_name, business_type, industry, website FROM companies ORDER BY id", query)
				assert.Empty(t, args)
			},
		},
		{
			name:   "business type and industry",
			filter: models.CompanyFilter{BusinessType: "Retail", Industry: "Tech"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "business_type = $1")
				assert.Contains(t, query, "industry = $2")
				assert.Equal(t, []any{"Retail", "Tech"}, args)
			},
		},
		{
			name:   "country only",
			filter: models.CompanyFilter{Country: models.CountryKenya},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "exists (select 1 from country_contacts cc")
				assert.Contains(t, q, "cc.country = $1")
				assert.Contains(t, q, "cc.present")
				assert.Equal(t, []any{models.CountryKenya}, args)
			},
		},
		{
			name:   "all filters keep placeholder order",
			filter: models.CompanyFilter{BusinessType: "Retail", Industry: "Tech", Country: models.CountryRwanda},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "$3")
				assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
				require.Len(t, args, 3)
				assert.Equal(t, models.CountryRwanda, args[2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectCompaniesQuery(dollar, tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildSelectContactsQuery(t *testing.T) {
	query, args, err := buildSelectContactsQuery(dollar, nil)
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	// squirrel generates IN ($1,$2,$3) for a slice.
	query, args, err = buildSelectContactsQuery(dollar, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Contains(t, query, "company_id IN ($1,$2,$3)")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, args)
}

func Test_buildInsertContactsQuery_MultiRow(t *testing.T) {
	rows := []models.CountryRow{
		{Country: models.CountryKenya, Present: true, Contact: models.CountryContact{ResponsiblePerson: "Jane"}},
		{Country: models.CountryUganda, Present: true},
	}

	query, args, err := buildInsertContactsQuery(question, 9, rows)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO country_contacts (company_id,country,present,"))
	assert.Equal(t, 2, strings.Count(query, "(?,?,?,?,?,?,?,?)"))
	require.Len(t, args, 16)
	assert.Equal(t, int64(9), args[0])
	assert.Equal(t, models.CountryKenya, args[1])
	assert.Equal(t, "Jane", args[3])
	assert.Equal(t, models.CountryUganda, args[9])
}

func Test_buildUpsertContactQuery(t *testing.T) {
	query, args, err := buildUpsertContactQuery(dollar, 3, models.CountryRow{
		Country: models.CountryKenya,
		Present: true,
		Contact: models.CountryContact{CompanyEmail: "k@acme.com"},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (company_id, country) DO UPDATE SET")
	assert.Contains(t, query, "company_email = excluded.company_email")
	assert.Contains(t, query, "$8")
	assert.Len(t, args, 8)
}

func Test_buildUpsertPresenceQuery(t *testing.T) {
	query, args, err := buildUpsertPresenceQuery(dollar, 3, models.CountryUganda)
	require.NoError(t, err)

	assert.Contains(t, query, "(company_id,country,present) VALUES ($1,$2,$3)")
	assert.Contains(t, query, "DO UPDATE SET present = excluded.present")
	assert.NotContains(t, query, "responsible_person")
	assert.Equal(t, []any{int64(3), models.CountryUganda, true}, args)
}

func Test_buildClearPresenceQuery(t *testing.T) {
	query, args, err := buildClearPresenceQuery(question, 3, models.CountryTanzania)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE country_contacts SET present = ?"))
	assert.Contains(t, query, "company_id = ?")
	assert.Contains(t, query, "country = ?")
	assert.Contains(t, args, false)
}

func Test_buildUpdateCompanyQuery(t *testing.T) {
	query, args, err := buildUpdateCompanyQuery(dollar, 5, models.Company{
		CompanyName:  "Acme",
		BusinessType: "Retail",
		Industry:     "Tech",
		Website:      "acme.com",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "updated_at = CURRENT_TIMESTAMP")
	assert.Contains(t, query, "WHERE id = $5")
	assert.Equal(t, []any{"Acme", "Retail", "Tech", "acme.com", int64(5)}, args)
}

func Test_buildInsertCompanyQuery(t *testing.T) {
	query, args, err := buildInsertCompanyQuery(question, models.Company{CompanyName: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO companies (company_name,business_type,industry,website) VALUES (?,?,?,?) RETURNING id", query)
	assert.Equal(t, []any{"Acme", "", "", ""}, args)
}

func Test_buildSelectDistinctQuery(t *testing.T) {
	query, args, err := buildSelectDistinctQuery(dollar, "industry")
	require.NoError(t, err)

	assert.Equal(t, "SELECT DISTINCT industry FROM companies WHERE industry <> $1 ORDER BY industry", query)
	assert.Equal(t, []any{""}, args)
}
