// Package server assembles the HTTP surface: routing, middleware and
// lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/editorbox/EditorBox_Go/internal/database"
	"github.com/editorbox/EditorBox_Go/internal/entitlement"
	"github.com/editorbox/EditorBox_Go/internal/handler"
	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/metrics"
	"github.com/editorbox/EditorBox_Go/internal/monetization"
	"github.com/editorbox/EditorBox_Go/internal/note"
	"github.com/editorbox/EditorBox_Go/internal/progression"
	"github.com/editorbox/EditorBox_Go/internal/subscription"
)

// Services groups the service dependencies of the HTTP surface.
type Services struct {
	Note         note.Service
	Progression  progression.Service
	Entitlement  entitlement.Service
	Subscription subscription.Service
	Policy       *monetization.Policy
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first.
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/notes", func(r chi.Router) {
			r.Post("/", handler.HandleCreateNote(services.Note))
			r.Get("/", handler.HandleListNotes(services.Note))
			r.Post("/import", handler.HandleImportText(services.Note))
			r.Get("/{noteID}", handler.HandleGetNote(services.Note))
			r.Put("/{noteID}", handler.HandleUpdateNote(services.Note))
			r.Delete("/{noteID}", handler.HandleDeleteNote(services.Note))
		})

		r.Route("/progress", func(r chi.Router) {
			r.Get("/", handler.HandleGetProgress(services.Progression))
			r.Get("/daily-reward", handler.HandleCheckDailyReward(services.Progression))
			r.Post("/daily-reward/claim", handler.HandleClaimDailyReward(services.Progression))
		})

		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", handler.HandleGetPrompts(services.Policy))
			r.Post("/paywall/dismiss", handler.HandleDismissPaywall(services.Policy))
			r.Post("/daily-reward/dismiss", handler.HandleDismissDailyReward(services.Policy))
		})

		r.Route("/themes", func(r chi.Router) {
			r.Get("/", handler.HandleListThemes(services.Entitlement))
			r.Get("/current", handler.HandleCurrentTheme(services.Entitlement))
			r.Post("/{themeID}/purchase", handler.HandlePurchaseTheme(services.Entitlement))
			r.Post("/{themeID}/equip", handler.HandleEquipTheme(services.Entitlement))
		})

		r.Post("/subscription/event", handler.HandleSubscriptionEvent(services.Subscription))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
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
		statusCode:     http.StatusOK,
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

		// Health and metrics probes are too chatty to log.
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
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
