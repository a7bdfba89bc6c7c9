// Package app implements the application service: validation, analysis at
// the ingestion boundary, persistence, and cached aggregate queries.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
	apperrors "github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/errors"
)

const (
	maxReviewTextLength = 5000
	defaultLanguage     = "en"
)

// AnalysisMetrics receives analysis outcome observations. Implementations
// must be safe for concurrent use; a nil value disables instrumentation.
type AnalysisMetrics interface {
	RecordSubmission(label string, themes []string)
	RecordCacheLookup(aggregate string, hit bool)
}

type Service struct {
	repo    domain.FeedbackRepository
	cache   domain.AggregateCache
	clock   clockwork.Clock
	metrics AnalysisMetrics
}

func NewService(repo domain.FeedbackRepository, cache domain.AggregateCache, clock clockwork.Clock, metrics AnalysisMetrics) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		clock:   clock,
		metrics: metrics,
	}
}

// SubmitFeedbackRequest carries the raw values of a new review. Everything
// else on domain.Feedback is derived.
type SubmitFeedbackRequest struct {
	ProductID   string
	ProductName string
	Rating      int
	ReviewText  string
	Language    string
	Meta        map[string]string
}

// SubmitFeedback validates the request, analyzes the review text exactly
// once, and persists the result. Aggregate caches are invalidated so the
// next aggregate read sees the new record.
func (s *Service) SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (*domain.Feedback, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	feedback := s.analyze(req)
	if err := s.repo.Insert(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		// Stale aggregates expire with the TTL; the write itself succeeded.
		slog.WarnContext(ctx, "Failed to invalidate aggregate cache", "error", err)
	}

	if s.metrics != nil {
		s.metrics.RecordSubmission(feedback.SentimentLabel, feedback.Themes)
	}

	slog.InfoContext(ctx, "Feedback submitted",
		"feedback_id", feedback.ID.String(),
		"product_id", feedback.ProductID,
		"sentiment", feedback.SentimentLabel,
		"themes", feedback.Themes,
	)
	return feedback, nil
}

func (s *Service) analyze(req SubmitFeedbackRequest) *domain.Feedback {
	sentiment := analysis.AnalyzeSentiment(req.ReviewText, false)

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}
	meta := req.Meta
	if meta == nil {
		meta = map[string]string{}
	}

	return &domain.Feedback{
		ID:                  uuid.New(),
		ProductID:           req.ProductID,
		ProductName:         req.ProductName,
		Rating:              req.Rating,
		ReviewText:          req.ReviewText,
		CreatedAt:           s.clock.Now().UTC(),
		SentimentLabel:      sentiment.Label,
		SentimentScore:      sentiment.Score,
		SentimentConfidence: sentiment.Confidence,
		Themes:              analysis.DetectThemes(req.ReviewText),
		Tokens:              analysis.Tokenize(req.ReviewText),
		Language:            language,
		Meta:                meta,
	}
}

func validateSubmission(req SubmitFeedbackRequest) error {
	if !domain.IsValidProduct(req.ProductID) {
		return apperrors.ValidationError(
			fmt.Sprintf("product_id must be one of: %s", strings.Join(domain.ValidProducts, ", ")),
		).WithField("product_id", req.ProductID)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.ValidationError("rating must be between 1 and 5").WithField("rating", req.Rating)
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		return apperrors.ValidationError("review_text cannot be empty")
	}
	if utf8.RuneCountInString(req.ReviewText) > maxReviewTextLength {
		return apperrors.ValidationError(fmt.Sprintf("review_text cannot exceed %d characters", maxReviewTextLength))
	}
	return nil
}

func (s *Service) GetFeedback(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}

func (s *Service) ListFeedbackByProduct(ctx context.Context, productID string) ([]domain.Feedback, error) {
	feedbacks, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for product: %w", err)
	}
	return feedbacks, nil
}

// AggregatedSentiment returns sentiment tallies over all stored feedback,
// cache-aside with recompute on miss.
func (s *Service) AggregatedSentiment(ctx context.Context) (analysis.SentimentCounts, error) {
	if counts, ok := s.cache.GetSentiment(ctx); ok {
		s.recordCacheLookup("sentiment", true)
		return counts, nil
	}
	s.recordCacheLookup("sentiment", false)

	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		return analysis.SentimentCounts{}, fmt.Errorf("failed to list feedback: %w", err)
	}

	counts := analysis.AggregateSentiment(domain.AnalysisRecords(feedbacks))
	s.cache.SetSentiment(ctx, counts)
	return counts, nil
}

// AggregatedThemes returns theme occurrence counts, optionally restricted to
// one product when productID is non-empty.
func (s *Service) AggregatedThemes(ctx context.Context, productID string) (map[string]int, error) {
	if counts, ok := s.cache.GetThemes(ctx, productID); ok {
		s.recordCacheLookup("themes", true)
		return counts, nil
	}
	s.recordCacheLookup("themes", false)

	var (
		feedbacks []domain.Feedback
		err       error
	)
	if productID == "" {
		feedbacks, err = s.repo.List(ctx)
	} else {
		feedbacks, err = s.repo.ListByProduct(ctx, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	counts := analysis.AggregateThemes(domain.AnalysisRecords(feedbacks))
	s.cache.SetThemes(ctx, productID, counts)
	return counts, nil
}

// ThemesByProduct returns the theme distribution matrix over all stored
// feedback.
func (s *Service) ThemesByProduct(ctx context.Context) (analysis.ThemeMatrix, error) {
	if matrix, ok := s.cache.GetThemeMatrix(ctx); ok {
		s.recordCacheLookup("theme_matrix", true)
		return matrix, nil
	}
	s.recordCacheLookup("theme_matrix", false)

	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		return analysis.ThemeMatrix{}, fmt.Errorf("failed to list feedback: %w", err)
	}

	matrix := analysis.ThemesByProduct(domain.AnalysisRecords(feedbacks))
	s.cache.SetThemeMatrix(ctx, matrix)
	return matrix, nil
}

// TextAnalysis bundles a full debug sentiment trace with detected themes.
type TextAnalysis struct {
	Sentiment analysis.SentimentResult `json:"sentiment"`
	Themes    []string                 `json:"themes"`
}

// AnalyzeText runs the engine in debug mode without persisting anything.
func (s *Service) AnalyzeText(text string) TextAnalysis {
	return TextAnalysis{
		Sentiment: analysis.AnalyzeSentiment(text, true),
		Themes:    analysis.DetectThemes(text),
	}
}

func (s *Service) recordCacheLookup(aggregate string, hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(aggregate, hit)
	}
}
