package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/PratikDhanave/adfriend-backend/internal/models"
)

// unreachableStore points at a closed local port with a short selection
// timeout, so every operation fails fast without a running server.
func unreachableStore(t *testing.T) *MongoStore {
	t.Helper()
	st, err := NewMongoStore(Options{
		URI:                    "mongodb://127.0.0.1:1/adfriend?directConnection=true",
		Database:               "adfriend",
		ServerSelectionTimeout: 200 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

// liveStore connects to MONGODB_TEST_URI with a throwaway database.
func liveStore(t *testing.T) *MongoStore {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	st, err := NewMongoStore(Options{
		URI:                    uri,
		Database:               fmt.Sprintf("adfriend_test_%d", time.Now().UnixNano()),
		ServerSelectionTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, st.Ping(ctx))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = st.analytics.Database().Drop(ctx)
		_ = st.Close(ctx)
	})
	return st
}

func TestSortByRecency(t *testing.T) {
	want := bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}
	assert.Equal(t, want, sortByRecency)
}

func TestInsert_MissingRequiredFieldIsValidationError(t *testing.T) {
	st := unreachableStore(t)
	ctx := context.Background()

	err := st.InsertAnalytics(ctx, &models.AnalyticsEvent{Timestamp: time.Now()})
	assert.ErrorIs(t, err, ErrValidation)

	err = st.InsertFeedback(ctx, &models.FeedbackEvent{Timestamp: time.Now()})
	assert.ErrorIs(t, err, ErrValidation)

	err = st.InsertAnalytics(ctx, &models.AnalyticsEvent{Action: "click"})
	assert.ErrorIs(t, err, ErrValidation, "zero timestamp is rejected")
}

func TestUnreachableStore_OperationsFail(t *testing.T) {
	st := unreachableStore(t)
	ctx := context.Background()

	assert.Error(t, st.Ping(ctx))

	err := st.InsertAnalytics(ctx, &models.AnalyticsEvent{Action: "click", Timestamp: time.Now()})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	_, err = st.ListFeedback(ctx)
	assert.Error(t, err)
}

func TestLive_ListIsNewestFirst(t *testing.T) {
	st := liveStore(t)
	ctx := context.Background()
	require.NoError(t, st.EnsureIndexes(ctx))
	require.NoError(t, st.EnsureIndexes(ctx), "index creation is idempotent")

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 0, 5, 1, 1, 4} {
		ev := &models.AnalyticsEvent{Action: "click", Timestamp: base.Add(time.Duration(offset) * time.Minute)}
		require.NoError(t, st.InsertAnalytics(ctx, ev))
		assert.False(t, ev.ID.IsZero())
	}

	got, err := st.ListAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, got, 6)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Timestamp.After(got[i-1].Timestamp), "index %d out of order", i)
	}
}

func TestLive_TimestampRoundTrips(t *testing.T) {
	st := liveStore(t)
	ctx := context.Background()

	ts := time.Date(2024, 6, 30, 23, 59, 58, 123_000_000, time.UTC)
	require.NoError(t, st.InsertFeedback(ctx, &models.FeedbackEvent{Feedback: "great app", Timestamp: ts}))

	got, err := st.ListFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "great app", got[0].Feedback)
	assert.True(t, ts.Equal(got[0].Timestamp))
	assert.Zero(t, got[0].Version)
}

func TestLive_EmptyCollectionIsEmptySlice(t *testing.T) {
	st := liveStore(t)

	got, err := st.ListAnalytics(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
