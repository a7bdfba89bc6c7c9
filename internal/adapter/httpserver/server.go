// Package httpserver exposes the feedback API over HTTP using Echo.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/app"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/config"
)

type appService interface {
	SubmitFeedback(ctx context.Context, req app.SubmitFeedbackRequest) (*domain.Feedback, error)
	GetFeedback(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	ListFeedback(ctx context.Context) ([]domain.Feedback, error)
	ListFeedbackByProduct(ctx context.Context, productID string) ([]domain.Feedback, error)
	AggregatedSentiment(ctx context.Context) (analysis.SentimentCounts, error)
	AggregatedThemes(ctx context.Context, productID string) (map[string]int, error)
	ThemesByProduct(ctx context.Context) (analysis.ThemeMatrix, error)
	AnalyzeText(text string) app.TextAnalysis
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	service        appService
	metricsHandler http.Handler
	healthChecks   []HealthCheck
	startTime      time.Time
}

func NewServer(cfg *config.Config, service appService, metricsHandler http.Handler, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:           e,
		config:         cfg,
		service:        service,
		metricsHandler: metricsHandler,
		healthChecks:   healthChecks,
		startTime:      time.Now(),
	}

	srv.registerRoutes()

	return srv
}

// Use installs additional middleware (e.g. HTTP metrics) ahead of route handlers.
func (s *Server) Use(middleware ...echo.MiddlewareFunc) {
	s.echo.Use(middleware...)
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
