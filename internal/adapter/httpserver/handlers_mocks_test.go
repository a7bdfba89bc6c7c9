package httpserver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/app"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/config"
)

const testAdminToken = "test-admin-token-0123456789"

type mockAppService struct {
	submitFeedbackFn        func(ctx context.Context, req app.SubmitFeedbackRequest) (*domain.Feedback, error)
	getFeedbackFn           func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	listFeedbackFn          func(ctx context.Context) ([]domain.Feedback, error)
	listFeedbackByProductFn func(ctx context.Context, productID string) ([]domain.Feedback, error)
	aggregatedSentimentFn   func(ctx context.Context) (analysis.SentimentCounts, error)
	aggregatedThemesFn      func(ctx context.Context, productID string) (map[string]int, error)
	themesByProductFn       func(ctx context.Context) (analysis.ThemeMatrix, error)
	analyzeTextFn           func(text string) app.TextAnalysis
}

func (m *mockAppService) SubmitFeedback(ctx context.Context, req app.SubmitFeedbackRequest) (*domain.Feedback, error) {
	if m.submitFeedbackFn != nil {
		return m.submitFeedbackFn(ctx, req)
	}
	return sampleFeedback(), nil
}

func (m *mockAppService) GetFeedback(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if m.getFeedbackFn != nil {
		return m.getFeedbackFn(ctx, id)
	}
	return nil, domain.ErrFeedbackNotFound
}

func (m *mockAppService) ListFeedback(ctx context.Context) ([]domain.Feedback, error) {
	if m.listFeedbackFn != nil {
		return m.listFeedbackFn(ctx)
	}
	return nil, nil
}

func (m *mockAppService) ListFeedbackByProduct(ctx context.Context, productID string) ([]domain.Feedback, error) {
	if m.listFeedbackByProductFn != nil {
		return m.listFeedbackByProductFn(ctx, productID)
	}
	return nil, nil
}

func (m *mockAppService) AggregatedSentiment(ctx context.Context) (analysis.SentimentCounts, error) {
	if m.aggregatedSentimentFn != nil {
		return m.aggregatedSentimentFn(ctx)
	}
	return analysis.SentimentCounts{}, nil
}

func (m *mockAppService) AggregatedThemes(ctx context.Context, productID string) (map[string]int, error) {
	if m.aggregatedThemesFn != nil {
		return m.aggregatedThemesFn(ctx, productID)
	}
	return map[string]int{}, nil
}

func (m *mockAppService) ThemesByProduct(ctx context.Context) (analysis.ThemeMatrix, error) {
	if m.themesByProductFn != nil {
		return m.themesByProductFn(ctx)
	}
	return analysis.ThemeMatrix{}, nil
}

func (m *mockAppService) AnalyzeText(text string) app.TextAnalysis {
	if m.analyzeTextFn != nil {
		return m.analyzeTextFn(text)
	}
	return app.TextAnalysis{Themes: []string{"Other"}}
}

func sampleFeedback() *domain.Feedback {
	return &domain.Feedback{
		ID:                  uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		ProductID:           "Rings",
		Rating:              5,
		ReviewText:          "Love this ring!",
		CreatedAt:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SentimentLabel:      analysis.LabelPositive,
		SentimentScore:      0.3,
		SentimentConfidence: 0.5,
		Themes:              []string{"Appearance"},
		Tokens:              []string{"love", "this", "ring"},
		Language:            "en",
		Meta:                map[string]string{"source": "web"},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:              "test",
		Port:                "8080",
		AdminToken:          testAdminToken,
		AggregateCacheTTL:   30 * time.Second,
		SubmitRatePerSecond: 1000,
		SubmitBurst:         1000,
	}
}

func newTestServer(service appService) *Server {
	return NewServer(testConfig(), service, nil, nil)
}
