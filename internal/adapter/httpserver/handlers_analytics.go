package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/errors"
)

func (s *Server) handleAggregatedSentiment(c echo.Context) error {
	counts, err := s.service.AggregatedSentiment(c.Request().Context())
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, counts); err != nil {
		return fmt.Errorf("failed to write sentiment aggregate response: %w", err)
	}
	return nil
}

func (s *Server) handleAggregatedThemes(c echo.Context) error {
	counts, err := s.service.AggregatedThemes(c.Request().Context(), "")
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, counts); err != nil {
		return fmt.Errorf("failed to write theme aggregate response: %w", err)
	}
	return nil
}

func (s *Server) handleAggregatedThemesByProduct(c echo.Context) error {
	counts, err := s.service.AggregatedThemes(c.Request().Context(), c.Param("productID"))
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, counts); err != nil {
		return fmt.Errorf("failed to write theme aggregate response: %w", err)
	}
	return nil
}

func (s *Server) handleThemeMatrix(c echo.Context) error {
	matrix, err := s.service.ThemesByProduct(c.Request().Context())
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, matrix); err != nil {
		return fmt.Errorf("failed to write theme matrix response: %w", err)
	}
	return nil
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleAnalyzeText(c echo.Context) error {
	var req analyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return apperrors.ValidationError("text cannot be empty")
	}

	result := s.service.AnalyzeText(req.Text)
	if err := c.JSON(http.StatusOK, result); err != nil {
		return fmt.Errorf("failed to write analysis response: %w", err)
	}
	return nil
}
