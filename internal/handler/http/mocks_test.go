package http

import (
	"context"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/models"
)

// Func-field mocks of the service interfaces. A nil field panics when
// called, which flags an unexpected call in a test.

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	identifyFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Identify(ctx context.Context, userID int64) (models.User, error) {
	return m.identifyFn(ctx, userID)
}

type mockCompanyService struct {
	getFn        func(ctx context.Context, id int64) (models.Company, error)
	listFn       func(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	filtersFn    func(ctx context.Context) (models.FilterOptions, error)
	addFn        func(ctx context.Context, company models.Company) (int64, error)
	updateFn     func(ctx context.Context, id int64, company models.Company) error
	deleteFn     func(ctx context.Context, id int64) error
	bulkImportFn func(ctx context.Context, companies []models.Company) (models.BulkImportReport, error)
}

func (m *mockCompanyService) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	return m.getFn(ctx, id)
}

func (m *mockCompanyService) GetAllCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	return m.listFn(ctx, filter)
}

func (m *mockCompanyService) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	return m.filtersFn(ctx)
}

func (m *mockCompanyService) AddCompany(ctx context.Context, company models.Company) (int64, error) {
	return m.addFn(ctx, company)
}

func (m *mockCompanyService) UpdateCompany(ctx context.Context, id int64, company models.Company) error {
	return m.updateFn(ctx, id, company)
}

func (m *mockCompanyService) DeleteCompany(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCompanyService) BulkImportCompanies(ctx context.Context, companies []models.Company) (models.BulkImportReport, error) {
	return m.bulkImportFn(ctx, companies)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

// Users the token mock below resolves to.
var (
	testViewer = models.User{ID: 1, Username: "viewer", Role: models.RoleViewer}
	testEditor = models.User{ID: 2, Username: "editor", Role: models.RoleEditor}
)

const (
	viewerToken = "viewer-token"
	editorToken = "editor-token"
)

// tokenAuthService accepts viewerToken and editorToken and rejects anything
// else as invalid.
func tokenAuthService() *mockAuthService {
	users := map[int64]models.User{testViewer.ID: testViewer, testEditor.ID: testEditor}

	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case viewerToken:
				return models.Token{UserID: testViewer.ID}, nil
			case editorToken:
				return models.Token{UserID: testEditor.ID}, nil
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
		identifyFn: func(_ context.Context, userID int64) (models.User, error) {
			return users[userID], nil
		},
	}
}

// newTestHandler builds a development-mode handler around the given services.
func newTestHandler(services *service.Services) *Handler {
	cfg := config.StructuredConfig{
		App:    config.App{Environment: config.EnvironmentDevelopment},
		Server: config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	return NewHandler(services, cfg, logger.Nop())
}
