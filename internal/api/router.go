package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkwell/inkwell-be/internal/api/handlers"
	"github.com/inkwell/inkwell-be/internal/auth"
	"github.com/inkwell/inkwell-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	sessionService services.SessionServiceProvider,
	policy auth.CookiePolicy,
	clientURL string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The frontend sends the session cookie cross-origin, so credentials
	// must be allowed and the origin pinned to the configured client URL.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{clientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Resolve the session cookie for every request
	r.Use(auth.Middleware(sessionService, policy))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService, policy)
	postHandler := handlers.NewPostHandler(postService)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/signup-and-login", authHandler.SignupAndLogin)
		r.Get("/status", authHandler.Status)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.GetAll)
		r.With(auth.RequireSession).Post("/", postHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", postHandler.Get)
			r.With(auth.RequireSession).Put("/", postHandler.Update)
			r.With(auth.RequireSession).Delete("/", postHandler.Delete)
		})
	})

	return r
}
