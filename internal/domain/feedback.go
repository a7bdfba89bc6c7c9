package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SukumarThillairajan/customer-feedback-analyzer/internal/analysis"
)

// ValidProducts is the closed set of product ids feedback can be filed
// against.
var ValidProducts = []string{"Rings", "Earrings", "Necklaces", "Bracelets", "Pendants"}

// IsValidProduct reports whether productID is one of ValidProducts.
func IsValidProduct(productID string) bool {
	for _, p := range ValidProducts {
		if p == productID {
			return true
		}
	}
	return false
}

// Feedback is one analyzed customer review. Sentiment, themes, and tokens
// are derived from ReviewText exactly once, at ingestion.
type Feedback struct {
	ID          uuid.UUID
	ProductID   string
	ProductName string
	Rating      int
	ReviewText  string
	CreatedAt   time.Time

	SentimentLabel      string
	SentimentScore      float64
	SentimentConfidence float64

	Themes []string
	Tokens []string

	Language string
	Meta     map[string]string
}

// AnalysisRecord projects the feedback into the aggregation view.
func (f *Feedback) AnalysisRecord() analysis.Record {
	return analysis.Record{
		ProductID:      f.ProductID,
		Themes:         f.Themes,
		SentimentLabel: f.SentimentLabel,
		Confidence:     f.SentimentConfidence,
	}
}

// AnalysisRecords projects a feedback collection for the aggregators.
func AnalysisRecords(feedbacks []Feedback) []analysis.Record {
	records := make([]analysis.Record, len(feedbacks))
	for i := range feedbacks {
		records[i] = feedbacks[i].AnalysisRecord()
	}
	return records
}

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	ListByProduct(ctx context.Context, productID string) ([]Feedback, error)
	// Exists reports whether a submission with the same product, rating, and
	// review text is already stored. Used by the seeder for idempotency.
	Exists(ctx context.Context, productID string, rating int, reviewText string) (bool, error)
}

// AggregateCache fronts the aggregate queries. Implementations must treat
// backend failures as misses; callers always recompute on a miss.
type AggregateCache interface {
	GetSentiment(ctx context.Context) (analysis.SentimentCounts, bool)
	SetSentiment(ctx context.Context, counts analysis.SentimentCounts)
	GetThemes(ctx context.Context, productID string) (map[string]int, bool)
	SetThemes(ctx context.Context, productID string, counts map[string]int)
	GetThemeMatrix(ctx context.Context) (analysis.ThemeMatrix, bool)
	SetThemeMatrix(ctx context.Context, matrix analysis.ThemeMatrix)
	InvalidateAll(ctx context.Context) error
}
