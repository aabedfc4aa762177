package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/adfriend-backend/internal/metrics"
	"github.com/PratikDhanave/adfriend-backend/internal/middleware"
	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// RegisterFeedbackRoutes registers POST and GET /feedback.
// Same contract as the analytics routes.
func RegisterFeedbackRoutes(r gin.IRoutes, st FeedbackStore) {
	r.POST("/feedback", func(c *gin.Context) {
		log := middleware.GetLogger(c)

		var req models.FeedbackRequest
		if !bindEventJSON(c, &req) {
			return
		}

		text, err := castText(req.Feedback)
		if err != nil {
			log.Error().Err(err).Str("kind", metrics.KindFeedback).Msg("Error saving feedback")
			metrics.EventsFailed.WithLabelValues(metrics.KindFeedback, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving feedback"})
			return
		}

		ts, err := resolveTimestamp(req.Timestamp)
		if err != nil {
			log.Error().Err(err).Str("kind", metrics.KindFeedback).Msg("Error saving feedback")
			metrics.EventsFailed.WithLabelValues(metrics.KindFeedback, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving feedback"})
			return
		}

		ev := models.FeedbackEvent{Feedback: text, Timestamp: ts}
		if err := st.InsertFeedback(c.Request.Context(), &ev); err != nil {
			log.Error().Err(err).Str("kind", metrics.KindFeedback).Msg("Error saving feedback")
			metrics.EventsFailed.WithLabelValues(metrics.KindFeedback, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving feedback"})
			return
		}

		metrics.EventsSaved.WithLabelValues(metrics.KindFeedback).Inc()
		log.Debug().Str("id", ev.ID.Hex()).Msg("feedback saved")
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Feedback saved successfully"})
	})

	r.GET("/feedback", func(c *gin.Context) {
		events, err := st.ListFeedback(c.Request.Context())
		if err != nil {
			log := middleware.GetLogger(c)
			log.Error().Err(err).Str("kind", metrics.KindFeedback).Msg("Error fetching feedback")
			metrics.EventsFailed.WithLabelValues(metrics.KindFeedback, "list").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error fetching feedback"})
			return
		}
		if events == nil {
			events = []models.FeedbackEvent{}
		}
		c.JSON(http.StatusOK, events)
	})
}
