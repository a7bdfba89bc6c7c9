package app

import (
	"context"
	"fmt"
	"log/slog"
)

// sampleFeedback is a small demo corpus covering every product and all
// three sentiment labels.
var sampleFeedback = []SubmitFeedbackRequest{
	{ProductID: "Rings", Rating: 5, ReviewText: "Love this ring! It's so elegant and shiny. Perfect for special occasions."},
	{ProductID: "Rings", Rating: 4, ReviewText: "Beautiful design but it feels a bit heavy when worn for long periods."},
	{ProductID: "Rings", Rating: 2, ReviewText: "The ring broke after just a few weeks. Poor quality and fragile."},
	{ProductID: "Earrings", Rating: 5, ReviewText: "Stunning earrings! They look gorgeous and are very comfortable to wear."},
	{ProductID: "Earrings", Rating: 3, ReviewText: "The design is nice but they feel heavy and uncomfortable after a while."},
	{ProductID: "Necklaces", Rating: 5, ReviewText: "Excellent quality! The necklace is elegant and the finish is perfect."},
	{ProductID: "Necklaces", Rating: 1, ReviewText: "Terrible! The chain broke on the first day. Very disappointed with the durability."},
	{ProductID: "Bracelets", Rating: 4, ReviewText: "Good bracelet, fits well and looks beautiful. The polish is nice."},
	{ProductID: "Bracelets", Rating: 3, ReviewText: "It's okay but not as shiny as I expected. The design is average."},
	{ProductID: "Pendants", Rating: 5, ReviewText: "Amazing pendant! Love the design and it's very well made. Highly recommend!"},
	{ProductID: "Pendants", Rating: 2, ReviewText: "The pendant looks dull and the quality is poor. Not worth the price."},
	{ProductID: "Rings", Rating: 4, ReviewText: "Great ring! It's comfortable and the appearance is elegant. No complaints."},
	{ProductID: "Earrings", Rating: 5, ReviewText: "Perfect earrings! They are light, comfortable, and absolutely beautiful."},
	{ProductID: "Necklaces", Rating: 3, ReviewText: "The necklace is fine but feels heavy. The design could be better."},
	{ProductID: "Bracelets", Rating: 5, ReviewText: "Outstanding bracelet! Excellent quality, durable, and looks fantastic."},
}

// Seed inserts the demo corpus, skipping entries that already exist so
// repeated runs stay idempotent. Returns the number of entries created.
func (s *Service) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, req := range sampleFeedback {
		exists, err := s.repo.Exists(ctx, req.ProductID, req.Rating, req.ReviewText)
		if err != nil {
			return created, fmt.Errorf("failed to check for existing feedback: %w", err)
		}
		if exists {
			continue
		}

		req.Meta = map[string]string{"source": "seed", "user_agent": "seed-script"}
		feedback := s.analyze(req)
		if err := s.repo.Insert(ctx, feedback); err != nil {
			return created, fmt.Errorf("failed to insert seed feedback: %w", err)
		}
		created++

		slog.InfoContext(ctx, "Created seed feedback",
			"product_id", feedback.ProductID,
			"rating", feedback.Rating,
			"sentiment", feedback.SentimentLabel,
		)
	}

	if created > 0 {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			slog.WarnContext(ctx, "Failed to invalidate aggregate cache", "error", err)
		}
	}

	return created, nil
}
