package validators

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-company-directory/models"
)

// Field names accepted by [CompanyValidator].
const (
	// FieldCompanyID requires a positive company id.
	FieldCompanyID = "id"

	// FieldCompanyPayload checks the company name, text lengths and the
	// country keys of the contact map.
	FieldCompanyPayload = "payload"
)

// CompanyValidator validates [models.Company] payloads.
type CompanyValidator struct {
	validate *validator.Validate
}

// NewCompanyValidator constructs a [CompanyValidator].
func NewCompanyValidator() Validator {
	return &CompanyValidator{validate: newStructValidator()}
}

// Validate checks a company. Without fields only the payload is checked;
// ids come from the URL and are checked with [FieldCompanyID].
func (v *CompanyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Company:
		return v.validateCompany(ctx, value, fields...)
	case *models.Company:
		return v.validateCompany(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CompanyValidator) validateCompany(ctx context.Context, company models.Company, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyID:
			if company.ID <= 0 {
				return ErrInvalidCompanyID
			}
		case FieldCompanyPayload:
			if strings.TrimSpace(company.CompanyName) == "" {
				return ErrCompanyNameRequired
			}
			if err := v.validate.StructCtx(ctx, company); err != nil {
				return translate(err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
