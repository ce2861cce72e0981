// Package router sets up all HTTP routes and middleware chains for the
// BrandBiography server. It organizes routes into the JSON API group and
// the server-rendered public pages.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"brandbio/internal/handlers"
	"brandbio/internal/middleware"
	"brandbio/internal/render"
	"brandbio/internal/uploads"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. uploadsRoot is the on-disk directory served
// under /assets/uploads.
func New(api *handlers.API, public *handlers.Public, corsOrigin, uploadsRoot string) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(corsOrigin))

	// Health check.
	r.Get("/health", healthHandler)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Route("/resources", func(r chi.Router) {
			r.Get("/", api.ResourcesList)
			r.Post("/", api.ResourcesCreate)
			r.Get("/{id}", api.ResourcesGet)
			r.Put("/{id}", api.ResourcesUpdate)
			r.Delete("/{id}", api.ResourcesDelete)
		})

		r.Route("/demos", func(r chi.Router) {
			r.Get("/", api.DemosList)
			r.Post("/", api.DemosCreate) // public form submission
			r.Put("/{id}", api.DemosUpdate)
			r.Delete("/{id}", api.DemosDelete)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", api.TestimonialsList)
			r.Post("/", api.TestimonialsCreate)
			r.Put("/{id}", api.TestimonialsUpdate)
			r.Delete("/{id}", api.TestimonialsDelete)
		})

		r.Get("/stats", api.Stats)
		r.Get("/activity", api.Activity)

		r.Post("/admin/login", api.AdminLogin)
		r.Post("/upload", api.Upload)
	})

	// Server-rendered public pages.
	r.Get("/", public.Homepage)
	r.Get("/resources", public.ResourcesPage)
	r.Get("/resources.html", public.LegacyResourcesRedirect)
	r.Get("/resources/{slug}", public.ResourcePage)

	// Embedded stylesheets and uploaded images.
	r.Get("/assets/css/*", http.StripPrefix("/assets", render.Static()).ServeHTTP)
	if uploadsRoot != "" {
		fileServer := http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(uploadsRoot)))
		r.Get(uploads.URLPrefix+"*", fileServer.ServeHTTP)
	}

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
