package validators

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-company-directory/models"
)

// UserValidator validates registration and login payloads.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{validate: newStructValidator()}
}

// Validate checks a [models.RegisterRequest] or [models.LoginRequest].
// Field scoping is not supported.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest:
		if err := v.validate.StructCtx(ctx, value); err != nil {
			return translate(err)
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}
