package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCompanyID    = errors.New("invalid company id")
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrFieldTooLong        = errors.New("field is too long")
	ErrUnknownCountry      = errors.New("unknown country")
	ErrInvalidField        = errors.New("invalid field")

	ErrMissingCredentials = errors.New("username and password are required")
	ErrRoleRequired       = errors.New("role is required")
	ErrInvalidRole        = errors.New("role must be either viewer or editor")
)
