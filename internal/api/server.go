package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "condreq/docs" // Swagger docs

	api "condreq/internal/api/application"
	"condreq/internal/api/handlers"
	apimiddleware "condreq/internal/api/middleware"
	configapp "condreq/internal/config/application"
	entitydomain "condreq/internal/entity/domain"
	sharedlogger "condreq/internal/shared/logger"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	logger     sharedlogger.Logger
}

// NewServer creates a new API server
func NewServer(
	logger sharedlogger.Logger,
	runtimeCfg *configapp.RuntimeConfig,
	entityRepo entitydomain.Repository,
) (*Server, error) {
	if err := runtimeCfg.Validate(); err != nil {
		return nil, err
	}

	entityService := api.NewEntityService(entityRepo, runtimeCfg.AllowAdditionalProperties)
	entityHandler := handlers.NewEntityHandler(entityService, logger)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// httplog needs the concrete slog.Logger behind our logger
	var slogLogger *slog.Logger
	if infraLogger, ok := logger.(interface{ SLog() *slog.Logger }); ok {
		slogLogger = infraLogger.SLog()
	} else {
		slogLogger = slog.Default()
	}

	r.Use(httplog.RequestLogger(slogLogger, &httplog.Options{
		Level:              slog.LevelDebug,
		Schema:             httplog.SchemaECS.Concise(true),
		LogRequestHeaders:  []string{"If-Match", "If-None-Match"},
		LogResponseHeaders: []string{"ETag"},
	}))

	// Swagger UI (only in dev mode)
	if runtimeCfg.DevMode {
		swaggerHandler := httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)
		r.Handle("/swagger/*", swaggerHandler)
		r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
		})
	}

	r.Get("/healthz", handlers.Health)
	r.Get("/", entityHandler.GetEntity)
	r.With(apimiddleware.RequireSupportedBody).Post("/", entityHandler.UpdateEntity)

	httpServer := &http.Server{
		Addr:         runtimeCfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Debug("Server configured",
		"port", runtimeCfg.Port,
		"dev_mode", runtimeCfg.DevMode,
		"allow_additional_properties", runtimeCfg.AllowAdditionalProperties,
		"middleware", []string{"RequestID", "RealIP", "Recoverer", "httplog"},
	)

	return &Server{
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr is the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Error("Server error", "err", err)
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server shutdown error", "err", err)
	} else {
		s.logger.Info("Server shutdown complete")
	}
	return err
}
