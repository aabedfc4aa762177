package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AnalyticsEvent is one client action stored in the analytics collection.
type AnalyticsEvent struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Action    string        `bson:"action" json:"action" validate:"required"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp" validate:"required"`
	Version   int           `bson:"__v" json:"__v"`
}

// FeedbackEvent is one piece of free-text feedback stored in the feedbacks collection.
type FeedbackEvent struct {
	ID        bson.ObjectID `bson:"_id" json:"_id"`
	Feedback  string        `bson:"feedback" json:"feedback" validate:"required"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp" validate:"required"`
	Version   int           `bson:"__v" json:"__v"`
}

// AnalyticsRequest is the POST /analytics payload.
// Fields are kept raw so the handler can cast scalars to text and accept
// both strings and epoch millis for timestamp.
type AnalyticsRequest struct {
	Action    json.RawMessage `json:"action,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// FeedbackRequest is the POST /feedback payload.
type FeedbackRequest struct {
	Feedback  json.RawMessage `json:"feedback,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// MessageResponse is returned on a successful write.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
