package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/app"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
	apperrors "github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/errors"
)

type createFeedbackRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	ReviewText  string `json:"review_text"`
	Language    string `json:"language"`
}

type sentimentResponse struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

type feedbackResponse struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name,omitempty"`
	Rating      int               `json:"rating"`
	ReviewText  string            `json:"review_text"`
	CreatedAt   time.Time         `json:"created_at"`
	Sentiment   sentimentResponse `json:"sentiment"`
	Themes      []string          `json:"themes"`
	Tokens      []string          `json:"tokens"`
	Language    string            `json:"language"`
	Meta        map[string]string `json:"meta"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:          f.ID.String(),
		ProductID:   f.ProductID,
		ProductName: f.ProductName,
		Rating:      f.Rating,
		ReviewText:  f.ReviewText,
		CreatedAt:   f.CreatedAt,
		Sentiment: sentimentResponse{
			Label:      f.SentimentLabel,
			Score:      f.SentimentScore,
			Confidence: f.SentimentConfidence,
		},
		Themes:   f.Themes,
		Tokens:   f.Tokens,
		Language: f.Language,
		Meta:     f.Meta,
	}
}

func toFeedbackResponses(feedbacks []domain.Feedback) []feedbackResponse {
	responses := make([]feedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		responses = append(responses, toFeedbackResponse(&feedbacks[i]))
	}
	return responses
}

func (s *Server) handleCreateFeedback(c echo.Context) error {
	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	feedback, err := s.service.SubmitFeedback(c.Request().Context(), app.SubmitFeedbackRequest{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Rating:      req.Rating,
		ReviewText:  req.ReviewText,
		Language:    req.Language,
		Meta: map[string]string{
			"source":     "web",
			"user_agent": c.Request().UserAgent(),
		},
	})
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusCreated, toFeedbackResponse(feedback)); err != nil {
		return fmt.Errorf("failed to write feedback response: %w", err)
	}
	return nil
}

func (s *Server) handleListFeedback(c echo.Context) error {
	feedbacks, err := s.service.ListFeedback(c.Request().Context())
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, toFeedbackResponses(feedbacks)); err != nil {
		return fmt.Errorf("failed to write feedback list response: %w", err)
	}
	return nil
}

func (s *Server) handleGetFeedback(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid feedback ID")
	}

	feedback, err := s.service.GetFeedback(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedbackNotFound) {
			return apperrors.NotFoundError("feedback not found")
		}
		return err
	}

	if err := c.JSON(http.StatusOK, toFeedbackResponse(feedback)); err != nil {
		return fmt.Errorf("failed to write feedback response: %w", err)
	}
	return nil
}

func (s *Server) handleListFeedbackByProduct(c echo.Context) error {
	feedbacks, err := s.service.ListFeedbackByProduct(c.Request().Context(), c.Param("productID"))
	if err != nil {
		return err
	}

	if err := c.JSON(http.StatusOK, toFeedbackResponses(feedbacks)); err != nil {
		return fmt.Errorf("failed to write feedback list response: %w", err)
	}
	return nil
}
