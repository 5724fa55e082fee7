package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRole         = errors.New(`invalid role, must be either "viewer" or "editor"`)
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyBulkImport     = errors.New("no companies provided for import")
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)

// Errors returned by client services. [UserMessage] turns them into the text
// shown in the terminal.
var (
	ErrClientBadRequest   = errors.New("request rejected by server")
	ErrClientUnauthorized = errors.New("session expired or invalid")
	ErrClientForbidden    = errors.New("editor role required")
	ErrClientNotFound     = errors.New("resource not found")
	ErrClientServer       = errors.New("server error")
	ErrClientNoResponse   = errors.New("no response from server")
	ErrClientNotLoggedIn  = errors.New("not logged in")
)
