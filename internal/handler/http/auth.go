package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/logger"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, app.MsgMissingRegisterFields)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err, app.MsgMissingRegisterFields)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
		User:    user,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, app.MsgMissingLoginFields)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, app.MsgMissingLoginFields)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgLoginSuccessful,
		Token:   token.SignedString,
		User:    user,
	}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, errNoUserInContext, "")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: user}, http.StatusOK)
}
