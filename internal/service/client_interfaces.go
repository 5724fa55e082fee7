package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-company-directory/internal/csvio"
	"github.com/MKhiriev/go-company-directory/models"
)

// ClientAuthService manages the terminal client's login. Sessions are kept
// in the local session store so that a restart does not require a new login.
type ClientAuthService interface {
	// Register creates an account on the server and saves the session.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and saves the session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout forgets the token and clears the saved session.
	Logout(ctx context.Context) error

	// Restore loads the saved session and hands its token to the adapter.
	// Returns ErrClientNotLoggedIn when there is no session or its token has
	// expired; an expired session is cleared.
	Restore(ctx context.Context) (models.Session, error)
}

// ClientCompanyService reads and manages companies through the API. A 401
// from the server clears the saved session.
type ClientCompanyService interface {
	List(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	FilterOptions(ctx context.Context) (models.FilterOptions, error)
	Get(ctx context.Context, id int64) (models.Company, error)
	Delete(ctx context.Context, id int64) error

	// Export writes the companies matching filter to w as CSV and returns
	// how many were written.
	Export(ctx context.Context, w io.Writer, filter models.CompanyFilter) (int, error)

	// Import reads companies from CSV and sends them to the bulk endpoint.
	Import(ctx context.Context, r io.Reader) (ImportResult, error)
}

// ImportResult is the outcome of a CSV import: the server's report plus the
// rows that were skipped before sending.
type ImportResult struct {
	Report  models.BulkImportReport
	Skipped []csvio.RowError
	// Rows holds the CSV line of each uploaded entry, indexed like the
	// report's error indexes.
	Rows []int
}

// Row returns the CSV line of the uploaded entry at index, or false when
// the index is out of range.
func (r ImportResult) Row(index int) (int, bool) {
	if index < 0 || index >= len(r.Rows) {
		return 0, false
	}
	return r.Rows[index], true
}
