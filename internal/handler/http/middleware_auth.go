package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/store"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// verifyToken authenticates the request by its bearer token.
//
// The token is validated with [service.AuthService.ParseToken] and the user
// it names is loaded again, so deleted users lose access immediately. On
// success the user is stored in the request context (see
// [utils.GetUserFromContext]).
//
// Requests are rejected with 401 when the header is missing or malformed,
// the token is invalid or expired, or the user no longer exists.
func (h *Handler) verifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader, app.MsgNoToken)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err == nil && tokenString == "" {
			err = ErrEmptyAuthorizationHeader
		}
		if err != nil {
			h.writeError(w, r, err, app.MsgNoToken)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, app.MsgInvalidToken)
			return
		}

		user, err := h.services.AuthService.Identify(ctx, token.UserID)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				logger.FromRequest(r).Err(err).Int64("user_id", token.UserID).Msg("user lookup failed")
			}
			h.writeError(w, r, err, app.MsgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// requireRole lets the request through only when the authenticated user may
// act as role. It must run after verifyToken.
func (h *Handler) requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				h.writeError(w, r, errNoUserInContext, app.MsgInternalServerError)
				return
			}

			if !hasRole(user, role) {
				h.writeError(w, r, ErrRoleNotAllowed, app.MsgEditorRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasRole(user models.User, required models.Role) bool {
	switch required {
	case models.RoleEditor:
		return user.Role.CanEdit()
	case models.RoleViewer:
		return user.Role.Valid()
	default:
		return false
	}
}
