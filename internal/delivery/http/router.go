package http

import (
	"context"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"teenevents/internal/delivery/http/controllers"
	"teenevents/internal/delivery/http/middleware"
	"teenevents/internal/domain"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter initializes the HTTP router with all application routes.
// Public routes need no token; /auth/session needs any valid token;
// /admin routes need an admin token.
func NewRouter(
	db Pinger,
	verifier domain.TokenVerifier,
	catalogController *controllers.CatalogController,
	registrationController *controllers.RegistrationController,
	authController *controllers.AuthController,
	adminEventsController *controllers.AdminEventsController,
	adminRegistrationsController *controllers.AdminRegistrationsController,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(verifier)
	requireAdmin := middleware.RequireAdmin(verifier)

	// Public catalog
	mux.HandleFunc("GET /catalog/highlight", catalogController.Highlight)
	mux.HandleFunc("GET /events", catalogController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", catalogController.GetEvent)
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Register)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/session", requireAuth(authController.Session))

	// Back office
	mux.HandleFunc("GET /admin/events", requireAdmin(adminEventsController.ListEvents))
	mux.HandleFunc("POST /admin/events", requireAdmin(adminEventsController.CreateEvent))
	mux.HandleFunc("PUT /admin/events/{eventID}", requireAdmin(adminEventsController.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{eventID}", requireAdmin(adminEventsController.DeleteEvent))
	mux.HandleFunc("GET /admin/registrations", requireAdmin(adminRegistrationsController.ListRegistrations))
	mux.HandleFunc("POST /admin/registrations", requireAdmin(adminRegistrationsController.CreateRegistration))
	mux.HandleFunc("DELETE /admin/registrations/{registrationID}", requireAdmin(adminRegistrationsController.DeleteRegistration))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
