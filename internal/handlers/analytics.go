package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/adfriend-backend/internal/metrics"
	"github.com/PratikDhanave/adfriend-backend/internal/middleware"
	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// RegisterAnalyticsRoutes registers the analytics endpoints.
//
// POST /analytics {action, timestamp?}
// - action must be non-empty; the store rejects the write otherwise
// - any failure is a 500 with a generic message
//
// GET /analytics
// - every event, newest first
func RegisterAnalyticsRoutes(r gin.IRoutes, st AnalyticsStore) {
	r.POST("/analytics", func(c *gin.Context) {
		log := middleware.GetLogger(c)

		var req models.AnalyticsRequest
		if !bindEventJSON(c, &req) {
			return
		}

		text, err := castText(req.Action)
		if err != nil {
			log.Error().Err(err).Str("kind", metrics.KindAnalytics).Msg("Error saving analytics")
			metrics.EventsFailed.WithLabelValues(metrics.KindAnalytics, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving analytics"})
			return
		}

		ts, err := resolveTimestamp(req.Timestamp)
		if err != nil {
			log.Error().Err(err).Str("kind", metrics.KindAnalytics).Msg("Error saving analytics")
			metrics.EventsFailed.WithLabelValues(metrics.KindAnalytics, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving analytics"})
			return
		}

		ev := models.AnalyticsEvent{Action: text, Timestamp: ts}
		if err := st.InsertAnalytics(c.Request.Context(), &ev); err != nil {
			log.Error().Err(err).Str("kind", metrics.KindAnalytics).Msg("Error saving analytics")
			metrics.EventsFailed.WithLabelValues(metrics.KindAnalytics, "insert").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error saving analytics"})
			return
		}

		metrics.EventsSaved.WithLabelValues(metrics.KindAnalytics).Inc()
		log.Debug().Str("id", ev.ID.Hex()).Str("action", ev.Action).Msg("analytics saved")
		c.JSON(http.StatusOK, models.MessageResponse{Message: "Analytics saved successfully"})
	})

	r.GET("/analytics", func(c *gin.Context) {
		events, err := st.ListAnalytics(c.Request.Context())
		if err != nil {
			log := middleware.GetLogger(c)
			log.Error().Err(err).Str("kind", metrics.KindAnalytics).Msg("Error fetching analytics")
			metrics.EventsFailed.WithLabelValues(metrics.KindAnalytics, "list").Inc()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Error fetching analytics"})
			return
		}
		if events == nil {
			events = []models.AnalyticsEvent{}
		}
		c.JSON(http.StatusOK, events)
	})
}
