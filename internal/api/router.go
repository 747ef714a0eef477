package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/workhive/backend/internal/api/handler"
	custommiddleware "github.com/workhive/backend/internal/api/middleware"
	"github.com/workhive/backend/internal/config"
	"github.com/workhive/backend/internal/repository/postgres"
	"github.com/workhive/backend/internal/repository/redis"
	"github.com/workhive/backend/internal/security"
	"github.com/workhive/backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, logger zerolog.Logger, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories and stores
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	tokenStore := redis.NewTokenStore(redisClient)

	debug := !cfg.Production()

	// Services
	authService := service.NewAuthService(
		userRepo,
		profileRepo,
		jwtManager,
		tokenStore,
		cfg.Auth.RequireEmailConfirmation,
		debug,
		logger,
	)
	clientService := service.NewClientService(clientRepo, projectRepo, debug)
	projectService := service.NewProjectService(projectRepo, debug)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)

	authMiddleware := custommiddleware.NewAuthMiddleware(jwtManager, tokenStore)

	r.Get("/health", handler.HealthCheck)
	r.Get("/ready", handler.ReadyCheck(db))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/logout", authHandler.Logout)
				r.Get("/user", authHandler.User)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.List)
				r.Post("/", clientHandler.Create)
				r.Put("/{clientID}", clientHandler.Update)
				r.Delete("/{clientID}", clientHandler.Delete)
			})

			r.Get("/projects", projectHandler.List)
		})
	})

	return r
}
