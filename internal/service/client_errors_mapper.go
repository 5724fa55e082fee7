// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-company-directory/internal/adapter"
	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain for logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidRole:
			return fmt.Errorf("%w: %w", ErrInvalidRole, err)
		case app.MsgEmptyBulkImport:
			return fmt.Errorf("%w: %w", ErrEmptyBulkImport, err)
		}
		return fmt.Errorf("%w: %w", ErrClientBadRequest, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrClientUnauthorized, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrClientForbidden, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrClientNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUsernameExists {
			return fmt.Errorf("%w: %w", store.ErrUsernameAlreadyExists, err)
		}
		return fmt.Errorf("%w: %w", ErrClientBadRequest, err)

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrClientServer, err)

	case errors.Is(err, adapter.ErrNoResponse):
		return fmt.Errorf("%w: %w", ErrClientNoResponse, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

var userMessages = []struct {
	err error
	msg string
}{
	{validators.ErrRoleRequired, app.MsgMissingRegisterFields},
	{validators.ErrMissingCredentials, app.MsgMissingLoginFields},
	{ErrInvalidRole, app.MsgInvalidRole},
	{ErrInvalidCredentials, app.MsgInvalidCredentials},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameExists},
	{ErrEmptyBulkImport, app.MsgEmptyBulkImport},
	{ErrClientBadRequest, "Invalid request data"},
	{ErrInvalidDataProvided, "Invalid request data"},
	{ErrClientUnauthorized, "Please login again"},
	{ErrClientNotLoggedIn, "Please login again"},
	{ErrClientForbidden, "Editor role required"},
	{ErrClientNotFound, "Resource not found"},
	{ErrClientServer, "Server error - please try again later"},
	{ErrClientNoResponse, "No response from server - check your connection"},
}

// UserMessage returns the text the terminal client shows for err. Errors
// that no rule matches are shown as is.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return err.Error()
}
