// Package http provides the HTTP API for meetingd.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/QamerHassan/Smart-Meeting/internal/extract"
)

// Server provides HTTP endpoints for meetingd.
type Server struct {
	echo      *echo.Echo
	extractor *extract.Extractor
	logger    *zap.Logger
	config    *Config
}

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
	// CORSOrigins lists the allowed CORS origins; empty means "*".
	CORSOrigins []string
	// MinNotesLength is the minimum accepted notes length; shorter
	// inputs are rejected with 400 before reaching the engine.
	MinNotesLength int
}

// NewServer creates a new HTTP server.
func NewServer(extractor *extract.Extractor, logger *zap.Logger, cfg *Config) (*Server, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "0.0.0.0",
			Port: 8000,
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.MinNotesLength == 0 {
		cfg.MinNotesLength = 8
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(NewHTTPMetrics(logger).Middleware())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:      e,
		extractor: extractor,
		logger:    logger,
		config:    cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/health", s.handleHealth)

	// Legacy path kept for clients of the original deployment.
	s.echo.POST("/extract-tasks", s.handleExtractTasks)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/extract-tasks", s.handleExtractTasks)
}

// Echo returns the underlying echo instance so callers can attach
// additional handlers (the metrics endpoint, middleware).
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// ExtractRequest is the request body for POST /api/v1/extract-tasks.
type ExtractRequest struct {
	Notes        string `json:"notes"`
	MeetingTitle string `json:"meeting_title,omitempty"`
	MeetingDate  string `json:"meeting_date,omitempty"`
}

// ExtractResponse is the response body for POST /api/v1/extract-tasks.
type ExtractResponse struct {
	Tasks        []extract.Task `json:"tasks"`
	Summary      string         `json:"summary"`
	Participants []string       `json:"participants"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// StatusResponse is the response body for GET /.
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// handleRoot reports the service identity.
func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "running", Service: "meetingd"})
}

// handleHealth returns a simple health check response.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleExtractTasks runs the extraction engine over the posted notes.
func (s *Server) handleExtractTasks(c echo.Context) error {
	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid extract request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if len(req.Notes) < s.config.MinNotesLength {
		return echo.NewHTTPError(http.StatusBadRequest, "notes are too short")
	}

	result, err := s.extractor.Extract(c.Request().Context(), req.Notes)
	if err != nil {
		s.logger.Error("extraction failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "extraction failed")
	}

	s.logger.Debug("extracted tasks",
		zap.Int("tasks", len(result.Tasks)),
		zap.Int("participants", len(result.Participants)),
		zap.String("meeting_title", req.MeetingTitle),
	)

	return c.JSON(http.StatusOK, ExtractResponse{
		Tasks:        result.Tasks,
		Summary:      result.Summary,
		Participants: result.Participants,
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
