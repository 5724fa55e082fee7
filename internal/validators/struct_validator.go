package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-company-directory/models"
)

const (
	tagCountry = "country"
	tagRole    = "role"
)

// newStructValidator returns a validator that reports fields by their JSON
// names and knows the directory's enumerations.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(tagCountry, func(fl validator.FieldLevel) bool {
		return models.Country(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation(tagRole, func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	return v
}

// translate turns the first failed constraint into a package sentinel.
func translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "company_name":
			return ErrCompanyNameRequired
		case "role":
			return ErrRoleRequired
		default:
			return ErrMissingCredentials
		}
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", ErrFieldTooLong, fe.Field(), fe.Param())
	case tagCountry:
		return fmt.Errorf("%w: %v", ErrUnknownCountry, fe.Value())
	case tagRole:
		return fmt.Errorf("%w: got %q", ErrInvalidRole, fe.Value())
	default:
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidField, fe.Field(), fe.Tag())
	}
}
