package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/service"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/internal/validators"
	"github.com/MKhiriev/go-company-directory/models"
)

type errorRule struct {
	target  error
	status  int
	message string
}

// errorRules is matched top to bottom, so specific errors go before the
// sentinels that wrap them. An empty message means the caller decides.
var errorRules = []errorRule{
	{service.ErrEmptyBulkImport, http.StatusBadRequest, app.MsgEmptyBulkImport},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrInvalidIDParam, http.StatusBadRequest, app.MsgInvalidCompanyID},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgNoToken},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNoToken},
	{ErrRoleNotAllowed, http.StatusForbidden, app.MsgEditorRequired},

	{service.ErrInvalidRole, http.StatusBadRequest, app.MsgInvalidRole},
	{validators.ErrInvalidCompanyID, http.StatusBadRequest, app.MsgInvalidCompanyID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{utils.ErrEmptyBody, http.StatusBadRequest, ""},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgInvalidToken},
	{store.ErrUserNotFound, http.StatusUnauthorized, app.MsgUserNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameExists},
	{store.ErrCompanyNotFound, http.StatusNotFound, app.MsgCompanyNotFound},
	{store.ErrDataRejected, http.StatusBadRequest, app.MsgDataRejected},

	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable, app.MsgDatabaseUnhealthy},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgDatabaseFailed},
	{store.ErrSavepoint, http.StatusInternalServerError, app.MsgDatabaseFailed},
}

// statusFromError returns the response status and message for err. badRequest
// is used for validation failures that have no message of their own.
func statusFromError(err error, badRequest string) (int, string) {
	for _, rule := range errorRules {
		if !errors.Is(err, rule.target) {
			continue
		}
		if rule.message == "" {
			return rule.status, badRequest
		}
		return rule.status, rule.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, badRequest string) {
	status, message := statusFromError(err, badRequest)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(message)

	resp := models.ErrorResponse{Success: false, Error: message}
	if h.exposeDetails {
		resp.Details = err.Error()
	}

	utils.WriteJSON(w, resp, status)
}
