package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
)

type mockRepository struct {
	insertFn        func(ctx context.Context, feedback *domain.Feedback) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	listFn          func(ctx context.Context) ([]domain.Feedback, error)
	listByProductFn func(ctx context.Context, productID string) ([]domain.Feedback, error)
	existsFn        func(ctx context.Context, productID string, rating int, reviewText string) (bool, error)

	inserted []*domain.Feedback
}

func (m *mockRepository) Insert(ctx context.Context, feedback *domain.Feedback) error {
	m.inserted = append(m.inserted, feedback)
	if m.insertFn != nil {
		return m.insertFn(ctx, feedback)
	}
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrFeedbackNotFound
}

func (m *mockRepository) List(ctx context.Context) ([]domain.Feedback, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Feedback, error) {
	if m.listByProductFn != nil {
		return m.listByProductFn(ctx, productID)
	}
	return nil, nil
}

func (m *mockRepository) Exists(ctx context.Context, productID string, rating int, reviewText string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, productID, rating, reviewText)
	}
	return false, nil
}

type mockCache struct {
	sentiment   *analysis.SentimentCounts
	themes      map[string]map[string]int
	themeMatrix *analysis.ThemeMatrix

	invalidations int
}

func newMockCache() *mockCache {
	return &mockCache{themes: map[string]map[string]int{}}
}

func (m *mockCache) GetSentiment(_ context.Context) (analysis.SentimentCounts, bool) {
	if m.sentiment == nil {
		return analysis.SentimentCounts{}, false
	}
	return *m.sentiment, true
}

func (m *mockCache) SetSentiment(_ context.Context, counts analysis.SentimentCounts) {
	m.sentiment = &counts
}

func (m *mockCache) GetThemes(_ context.Context, productID string) (map[string]int, bool) {
	counts, ok := m.themes[productID]
	return counts, ok
}

func (m *mockCache) SetThemes(_ context.Context, productID string, counts map[string]int) {
	m.themes[productID] = counts
}

func (m *mockCache) GetThemeMatrix(_ context.Context) (analysis.ThemeMatrix, bool) {
	if m.themeMatrix == nil {
		return analysis.ThemeMatrix{}, false
	}
	return *m.themeMatrix, true
}

func (m *mockCache) SetThemeMatrix(_ context.Context, matrix analysis.ThemeMatrix) {
	m.themeMatrix = &matrix
}

func (m *mockCache) InvalidateAll(_ context.Context) error {
	m.invalidations++
	m.sentiment = nil
	m.themes = map[string]map[string]int{}
	m.themeMatrix = nil
	return nil
}
