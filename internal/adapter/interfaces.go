// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the company directory API.
//
// [ServerAdapter] decouples the client services from HTTP. Non-2xx responses
// are mapped by mapHTTPError to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrUnauthorized]
// for 401); requests that never got an answer fail with [ErrNoResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the company directory API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. On success the token from the response
	// is stored via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with username and password. On success the token
	// from the response is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Profile returns the user the stored token belongs to.
	Profile(ctx context.Context) (models.User, error)

	ListCompanies(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	FilterOptions(ctx context.Context) (models.FilterOptions, error)
	GetCompany(ctx context.Context, id int64) (models.Company, error)
	DeleteCompany(ctx context.Context, id int64) error

	// BulkImport posts companies to the bulk endpoint and returns the
	// server's per-entry report.
	BulkImport(ctx context.Context, companies []models.Company) (models.BulkImportReport, error)
}
