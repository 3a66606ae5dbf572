// Package httpserver provides the HTTP REST API server for the social data service.
package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/opensocial/social-data-service/internal/observability"
	"github.com/opensocial/social-data-service/internal/service"
	"github.com/opensocial/social-data-service/internal/storage"
)

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	users      *service.UserService
	posts      *service.PostService
	comments   *service.CommentService
	tags       *service.TagService
	locations  *service.LocationService
	resolver   *service.ReferenceResolver
	backend    storage.Backend
	metrics    *observability.Metrics
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// Config holds HTTP server configuration.
type Config struct {
	Address          string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	ShutdownTimeout  time.Duration
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Services bundles the entity resolvers the server exposes.
type Services struct {
	Users     *service.UserService
	Posts     *service.PostService
	Comments  *service.CommentService
	Tags      *service.TagService
	Locations *service.LocationService
	Resolver  *service.ReferenceResolver
}

// NewServer creates a new HTTP server with all dependencies. metrics may be
// nil when metrics exposure is disabled.
func NewServer(
	cfg Config,
	svcs Services,
	backend storage.Backend,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		users:     svcs.Users,
		posts:     svcs.Posts,
		comments:  svcs.Comments,
		tags:      svcs.Tags,
		locations: svcs.Locations,
		resolver:  svcs.Resolver,
		backend:   backend,
		metrics:   metrics,
		logger:    logger.With().Str("component", "http-server").Logger(),
	}

	if cfg.RateLimitEnabled {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Router returns the configured router, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware)
	r.Use(s.requestLogMiddleware)
	if s.limiter != nil {
		r.Use(s.rateLimitMiddleware)
	}
	r.Use(jsonContentTypeMiddleware)

	// Health endpoints
	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsers)
			r.Post("/", s.createUser)
			r.Get("/{userID}", s.getUser)
			r.Put("/{userID}", s.updateUser)
			r.Delete("/{userID}", s.deleteUser)
			r.Get("/{userID}/posts", s.listUserPosts)
			r.Get("/{userID}/comments", s.listUserComments)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", s.listPosts)
			r.Post("/", s.createPost)
			r.Get("/{postID}", s.getPost)
			r.Put("/{postID}", s.updatePost)
			r.Delete("/{postID}", s.deletePost)
			r.Get("/{postID}/comments", s.listPostComments)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", s.listComments)
			r.Post("/", s.createComment)
			r.Get("/{commentID}", s.getComment)
			r.Put("/{commentID}", s.updateComment)
			r.Delete("/{commentID}", s.deleteComment)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", s.listTags)
			r.Post("/", s.createTag)
			r.Get("/{tagID}", s.getTag)
			r.Put("/{tagID}", s.updateTag)
			r.Delete("/{tagID}", s.deleteTag)
			r.Get("/{tagID}/posts", s.listTagPosts)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", s.listLocations)
			r.Post("/", s.createLocation)
			r.Get("/{locationID}", s.getLocation)
			r.Put("/{locationID}", s.updateLocation)
			r.Delete("/{locationID}", s.deleteLocation)
		})
	})

	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"storage": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "storage": "healthy"})
}

// readinessHandler reports whether the service can serve traffic.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"storage": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "storage": "healthy"})
}
