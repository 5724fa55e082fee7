// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-company-directory/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the requested command and blocks until it finishes.
	Run() error
}

// UI is the interactive front end started by the "ui" command.
type UI interface {
	// Run blocks until the user quits. A zero session means nobody is
	// signed in yet.
	Run(ctx context.Context, session models.Session) error
}
