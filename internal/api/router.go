package api

import (
	"net/http"

	// This blank import is required by swaggo to find the API definitions.
	_ "sehat-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"sehat-ai/backend/internal/auth"
)

// NewRouter creates and configures the chi router with all routes.
func NewRouter(respondHandler *RespondHandler, verifier auth.TokenVerifier, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global middleware, applied to every request. ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// --- Public routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Health check for container orchestration probes. No auth, no body.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	// --- Protected routes ---
	// The respond endpoint streams, so it must NOT sit behind a timeout
	// middleware: the connection is held open for the duration of the
	// upstream completion.
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(verifier))
		r.Post("/respond", respondHandler.HandleRespond)
	})

	return r
}
