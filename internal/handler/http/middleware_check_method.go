// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-company-directory/internal/app"
	"github.com/MKhiriev/go-company-directory/internal/utils"
	"github.com/MKhiriev/go-company-directory/models"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// A request whose path exists but whose method is not registered is answered
// with 404 instead of chi's default 405, so unsupported methods do not reveal
// which paths exist. Matching goes through [chi.Mux.Match] and therefore sees
// routes of mounted sub-routers and parameterised patterns such as
// /api/companies/{id}. If the method does match, the request is served
// normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeNotFound(w)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: app.MsgNotFound}, http.StatusNotFound)
}
