package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// Collection names are fixed so existing adfriend data stays readable.
const (
	AnalyticsCollection = "analytics"
	FeedbackCollection  = "feedbacks"
)

// ErrValidation is returned when a document is missing a required field.
var ErrValidation = errors.New("validation failed")

// sortByRecency orders newest first; _id breaks timestamp ties.
var sortByRecency = bson.D{
	{Key: "timestamp", Value: -1},
	{Key: "_id", Value: -1},
}

// MongoStore is the persistence layer for analytics and feedback events.
type MongoStore struct {
	client    *mongo.Client
	analytics *mongo.Collection
	feedback  *mongo.Collection
	validate  *validator.Validate
}

// Options configures NewMongoStore.
type Options struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
}

// NewMongoStore builds a client for opts.URI. No network I/O happens here;
// the driver connects on first use, so an unreachable server surfaces
// through Ping and through each operation instead.
func NewMongoStore(opts Options) (*MongoStore, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(opts.ServerSelectionTimeout)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	db := client.Database(opts.Database)
	return &MongoStore{
		client:    client,
		analytics: db.Collection(AnalyticsCollection),
		feedback:  db.Collection(FeedbackCollection),
		validate:  validator.New(),
	}, nil
}

// Ping is used by the readiness endpoint and at startup.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client and its pool.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the descending timestamp index used by the list
// queries. Safe to run multiple times.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}
	for _, coll := range []*mongo.Collection{s.analytics, s.feedback} {
		if _, err := coll.Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("create index on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// InsertAnalytics validates and persists ev, assigning its ID.
func (s *MongoStore) InsertAnalytics(ctx context.Context, ev *models.AnalyticsEvent) error {
	if err := s.check(ev); err != nil {
		return err
	}
	ev.ID = bson.NewObjectID()
	return insert(ctx, s.analytics, ev)
}

// InsertFeedback validates and persists ev, assigning its ID.
func (s *MongoStore) InsertFeedback(ctx context.Context, ev *models.FeedbackEvent) error {
	if err := s.check(ev); err != nil {
		return err
	}
	ev.ID = bson.NewObjectID()
	return insert(ctx, s.feedback, ev)
}

// ListAnalytics returns every analytics event, newest first.
func (s *MongoStore) ListAnalytics(ctx context.Context) ([]models.AnalyticsEvent, error) {
	return list[models.AnalyticsEvent](ctx, s.analytics)
}

// ListFeedback returns every feedback event, newest first.
func (s *MongoStore) ListFeedback(ctx context.Context) ([]models.FeedbackEvent, error) {
	return list[models.FeedbackEvent](ctx, s.feedback)
}

func (s *MongoStore) check(doc any) error {
	if err := s.validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return nil
}

func list[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(sortByRecency))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}
