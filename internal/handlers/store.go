package handlers

import (
	"context"

	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// AnalyticsStore persists and lists analytics events.
type AnalyticsStore interface {
	InsertAnalytics(ctx context.Context, ev *models.AnalyticsEvent) error
	ListAnalytics(ctx context.Context) ([]models.AnalyticsEvent, error)
}

// FeedbackStore persists and lists feedback events.
type FeedbackStore interface {
	InsertFeedback(ctx context.Context, ev *models.FeedbackEvent) error
	ListFeedback(ctx context.Context) ([]models.FeedbackEvent, error)
}
