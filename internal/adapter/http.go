package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-company-directory/internal/config"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; "http://" is assumed when
// no scheme is given.
//
// Returns [ErrInvalidAddress] if the address is empty or not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api response")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs to /api/users/register. The token is taken from the
// Authorization header and falls back to the body.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/register", req)
}

// Login POSTs to /api/users/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/users/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, mapTransportError("auth request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		token = result.Token
	}
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: no token in response", ErrDecodeResponse)
	}

	result.Token = token
	h.SetToken(token)
	return result, nil
}

// Profile GETs /api/users/profile.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/api/users/profile")
	if err != nil {
		return models.User{}, mapTransportError("profile request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// ListCompanies GETs /api/companies with the non-empty filter fields as
// query parameters.
func (h *httpServerAdapter) ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	companies := make([]models.Company, 0)

	req := h.authedRequest(ctx).SetResult(&companies)
	if filter.BusinessType != "" {
		req.SetQueryParam("business_type", filter.BusinessType)
	}
	if filter.Industry != "" {
		req.SetQueryParam("industry", filter.Industry)
	}
	if filter.Country != "" {
		req.SetQueryParam("country", string(filter.Country))
	}

	resp, err := req.Get("/api/companies")
	if err != nil {
		return nil, mapTransportError("list companies request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return companies, nil
}

// FilterOptions GETs /api/companies/filters.
func (h *httpServerAdapter) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var options models.FilterOptions

	resp, err := h.authedRequest(ctx).SetResult(&options).Get("/api/companies/filters")
	if err != nil {
		return models.FilterOptions{}, mapTransportError("filter options request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FilterOptions{}, err
	}

	return options, nil
}

// GetCompany GETs /api/companies/{id}.
func (h *httpServerAdapter) GetCompany(ctx context.Context, id int64) (models.Company, error) {
	var company models.Company

	resp, err := h.authedRequest(ctx).
		SetResult(&company).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/companies/{id}")
	if err != nil {
		return models.Company{}, mapTransportError("get company request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Company{}, err
	}

	return company, nil
}

// DeleteCompany sends DELETE /api/companies/{id}.
func (h *httpServerAdapter) DeleteCompany(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/companies/{id}")
	if err != nil {
		return mapTransportError("delete company request", err)
	}

	return mapHTTPError(resp)
}

// BulkImport POSTs companies to /api/companies/bulk.
func (h *httpServerAdapter) BulkImport(ctx context.Context, companies []models.Company) (models.BulkImportReport, error) {
	var result models.BulkImportResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(companies).
		SetResult(&result).
		Post("/api/companies/bulk")
	if err != nil {
		return models.BulkImportReport{}, mapTransportError("bulk import request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BulkImportReport{}, err
	}

	return result.Details, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
