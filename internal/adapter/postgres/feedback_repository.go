package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/domain"
)

type FeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

const feedbackColumns = `id, product_id, product_name, rating, review_text, created_at,
	sentiment_label, sentiment_score, sentiment_confidence, themes, tokens, language, meta`

func (r *FeedbackRepo) Insert(ctx context.Context, f *domain.Feedback) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO feedback (`+feedbackColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		f.ID, f.ProductID, f.ProductName, f.Rating, f.ReviewText, f.CreatedAt,
		f.SentimentLabel, f.SentimentScore, f.SentimentConfidence,
		f.Themes, f.Tokens, f.Language, f.Meta,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE id = $1`, id)

	feedback, err := scanFeedback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback by ID: %w", err)
	}
	return feedback, nil
}

func (r *FeedbackRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func (r *FeedbackRepo) ListByProduct(ctx context.Context, productID string) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE product_id = $1
		ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback by product: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func (r *FeedbackRepo) Exists(ctx context.Context, productID string, rating int, reviewText string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM feedback
			WHERE product_id = $1 AND rating = $2 AND review_text = $3
		)`, productID, rating, reviewText).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check feedback existence: %w", err)
	}
	return exists, nil
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(
		&f.ID, &f.ProductID, &f.ProductName, &f.Rating, &f.ReviewText, &f.CreatedAt,
		&f.SentimentLabel, &f.SentimentScore, &f.SentimentConfidence,
		&f.Themes, &f.Tokens, &f.Language, &f.Meta,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func collectFeedback(rows pgx.Rows) ([]domain.Feedback, error) {
	feedbacks := make([]domain.Feedback, 0)
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, *feedback)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback rows: %w", err)
	}
	return feedbacks, nil
}
