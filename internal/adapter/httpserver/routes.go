package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(correlationMiddleware)
	s.echo.Use(ErrorHandlingMiddleware())
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         63072000, // 2 years; only sent over HTTPS
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	s.registerHealthRoutes()

	if s.metricsHandler != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}

	submitLimiter := newRateLimiter(s.config.SubmitRatePerSecond, s.config.SubmitBurst)
	s.echo.POST("/api/feedback", s.handleCreateFeedback, submitLimiter)

	admin := s.echo.Group("/api", s.requireAdminToken)
	admin.GET("/feedback", s.handleListFeedback)
	admin.GET("/feedback/:id", s.handleGetFeedback)
	admin.GET("/feedback/product/:productID", s.handleListFeedbackByProduct)
	admin.GET("/feedback/aggregated/sentiment", s.handleAggregatedSentiment)
	admin.GET("/feedback/aggregated/themes", s.handleAggregatedThemes)
	admin.GET("/feedback/aggregated/themes/:productID", s.handleAggregatedThemesByProduct)
	admin.GET("/feedback/aggregated/themes-by-product", s.handleThemeMatrix)
	admin.POST("/analyze", s.handleAnalyzeText)
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("Request", attrs...)
			return nil
		},
	})
}
