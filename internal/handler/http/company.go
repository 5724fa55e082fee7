package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.CompanyFilter{
		BusinessType: strings.TrimSpace(query.Get("business_type")),
		Industry:     strings.TrimSpace(query.Get("industry")),
		Country:      models.Country(strings.ToLower(strings.TrimSpace(query.Get("country")))),
	}

	companies, err := h.services.CompanyService.GetAllCompanies(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompany)
		return
	}

	utils.WriteJSON(w, companies, http.StatusOK)
}

func (h *Handler) filterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.services.CompanyService.GetFilterOptions(r.Context())
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}

func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompanyID)
		return
	}

	company, err := h.services.CompanyService.GetCompany(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompanyID)
		return
	}

	utils.WriteJSON(w, company, http.StatusOK)
}

func (h *Handler) addCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := decodeBody(r, &company); err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompany)
		return
	}

	id, err := h.services.CompanyService.AddCompany(r.Context(), company)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompany)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Str("company_name", company.CompanyName).Msg("company added")

	utils.WriteJSON(w, models.CompanyCreatedResponse{Message: app.MsgCompanyAdded, ID: id}, http.StatusOK)
}

func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompanyID)
		return
	}

	var company models.Company
	if err = decodeBody(r, &company); err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompany)
		return
	}

	if err = h.services.CompanyService.UpdateCompany(r.Context(), id, company); err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompany)
		return
	}

	utils.WriteJSON(w, models.CompanyUpdatedResponse{
		Success:   true,
		Message:   app.MsgCompanyUpdated,
		UpdatedID: id,
	}, http.StatusOK)
}

func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompanyID)
		return
	}

	if err = h.services.CompanyService.DeleteCompany(r.Context(), id); err != nil {
		h.writeError(w, r, err, app.MsgInvalidCompanyID)
		return
	}

	utils.WriteJSON(w, models.CompanyDeletedResponse{
		Success:   true,
		Message:   app.MsgCompanyDeleted,
		DeletedID: id,
	}, http.StatusOK)
}

func (h *Handler) bulkImport(w http.ResponseWriter, r *http.Request) {
	var companies []models.Company
	if err := decodeBody(r, &companies); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			// the body is valid JSON but not an array
			err = fmt.Errorf("%w: %w", service.ErrEmptyBulkImport, err)
		}
		h.writeError(w, r, err, app.MsgEmptyBulkImport)
		return
	}

	report, err := h.services.CompanyService.BulkImportCompanies(r.Context(), companies)
	if err != nil {
		h.writeError(w, r, err, app.MsgEmptyBulkImport)
		return
	}

	logger.FromRequest(r).Info().
		Int("success_count", report.SuccessCount).
		Int("error_count", report.ErrorCount).
		Msg("bulk import completed")

	if report.Errors == nil {
		report.Errors = []models.BulkImportError{}
	}

	utils.WriteJSON(w, models.BulkImportResponse{
		Success: true,
		Message: app.MsgBulkImportDone,
		Details: report,
	}, http.StatusOK)
}

// idParam reads the {id} path segment. Only positive integers are accepted.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIDParam, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIDParam, id)
	}

	return id, nil
}

// decodeBody decodes a JSON request body. A missing body keeps
// [utils.ErrEmptyBody] so that it is reported like missing fields.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
