package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mveiros/ironwood-companion/internal/calculator"
	"github.com/mveiros/ironwood-companion/internal/database"
	"github.com/mveiros/ironwood-companion/internal/handler"
	"github.com/mveiros/ironwood-companion/internal/history"
	"github.com/mveiros/ironwood-companion/internal/leaderboard"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/market"
	"github.com/mveiros/ironwood-companion/internal/metrics"
	"github.com/mveiros/ironwood-companion/internal/profile"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer wires the middleware stack and routes.
func NewServer(port int, version string, dbPool database.Pool, calcService calculator.Service, profileService profile.Service, marketService market.Service, leaderboardService leaderboard.Service, historyService history.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		calcHandler := handler.NewCalculatorHandler(calcService)

		r.Get("/skills", calcHandler.HandleGetSkills)
		r.Get("/items", calcHandler.HandleGetItems)

		// Calculator routes
		r.Route("/calculator", func(r chi.Router) {
			r.Post("/project", calcHandler.HandleProject)

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", calcHandler.HandleCreateSession)

				r.Route("/{sessionID}", func(r chi.Router) {
					r.Put("/skill", calcHandler.HandleSelectSkill)
					r.Put("/item", calcHandler.HandleSelectItem)
					r.Put("/scrolls", calcHandler.HandleSetScrolls)
					r.Put("/gear", calcHandler.HandleSetGear)
					r.Put("/toggles", calcHandler.HandleSetToggles)
					r.Put("/buffs", calcHandler.HandleSetBuffs)
					r.Put("/target", calcHandler.HandleSetTarget)
					r.Post("/profile", calcHandler.HandleApplyProfile(profileService))
					r.Get("/projection", calcHandler.HandleGetProjection)
				})
			})
		})

		// Lookup routes
		r.Get("/profile", handler.HandleGetProfile(profileService, historyService))
		r.Get("/clan", handler.HandleGetClan(profileService, historyService))
		r.Get("/market/prices", handler.HandleGetPrices(marketService))
		r.Get("/leaderboard", handler.HandleGetLeaderboard(leaderboardService))
		r.Get("/history", handler.HandleGetHistory(historyService))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
