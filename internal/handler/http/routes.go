package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-company-directory/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(withGZip)

	// set before mounting so that sub-routers inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(api chi.Router) {
		api.Get("/version", h.getServerVersion)
		api.Get("/health", h.health)

		api.Route("/users", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.verifyToken).Get("/profile", h.profile)
		})

		api.Route("/companies", func(r chi.Router) {
			r.Use(h.verifyToken)

			r.Get("/", h.listCompanies)
			r.Get("/filters", h.filterOptions)
			r.Get("/{id}", h.getCompany)

			r.Group(func(r chi.Router) {
				r.Use(h.requireRole(models.RoleEditor))

				r.Post("/", h.addCompany)
				r.Post("/bulk", h.bulkImport)
				r.Put("/{id}", h.updateCompany)
				r.Delete("/{id}", h.deleteCompany)
			})
		})
	})

	return router
}
