// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidIDParam is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidIDParam = errors.New("invalid id path parameter")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrRoleNotAllowed is returned when the authenticated user lacks the
	// role a route requires.
	ErrRoleNotAllowed = errors.New("role not allowed")

	// errNoUserInContext means verifyToken did not run before a handler that
	// needs the caller.
	errNoUserInContext = errors.New("no authenticated user in request context")
)
