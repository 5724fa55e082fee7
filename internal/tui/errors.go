// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-company-directory/internal/service"
)

// errorMessage is the text shown in the error overlay.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return service.UserMessage(err)
}

// sessionLost reports whether err means the saved session is gone and the
// user has to sign in again.
func sessionLost(err error) bool {
	return errors.Is(err, service.ErrClientUnauthorized) || errors.Is(err, service.ErrClientNotLoggedIn)
}
