package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutri-app/nutri/backend/internal/normalizer"
	"github.com/nutri-app/nutri/backend/internal/types"
)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestProgressOrdering(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewProgressService(db)
	ctx := context.Background()

	for _, date := range []string{"2024-03-01", "2024-03-15", "2024-03-08"} {
		_, err := svc.AddProgress(ctx, userID, &types.CreateProgressRequest{WeightKg: 80, BMI: 26.1, Date: date})
		require.NoError(t, err)
	}

	entries, err := svc.ListProgress(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-03-15", entries[0].Date)
	assert.Equal(t, "2024-03-01", entries[2].Date)

	latest, err := svc.LatestProgress(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", latest.Date)
}

func TestAddProgressDefaultsToToday(t *testing.T) {
	freezeTime(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC))
	db := setupDB(t)
	userID := createUser(t, db)

	entry, err := NewProgressService(db).AddProgress(context.Background(), userID, &types.CreateProgressRequest{WeightKg: 72.5})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", entry.Date)
}

func TestAddProgressValidation(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewProgressService(db)

	_, err := svc.AddProgress(context.Background(), userID, &types.CreateProgressRequest{WeightKg: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddProgress(context.Background(), userID, &types.CreateProgressRequest{WeightKg: 70, Date: "02/05/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestLatestProgressEmpty(t *testing.T) {
	db := setupDB(t)
	entry, err := NewProgressService(db).LatestProgress(context.Background(), createUser(t, db))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestRecommendationHistory(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewRecommendationService(db)
	ctx := context.Background()

	none, err := svc.LatestRecommendation(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, none)

	payload, err := normalizer.NormalizeStrict(validTipsJSON)
	require.NoError(t, err)

	rec, err := svc.SaveRecommendation(ctx, userID, "27.5", "Overweight_Level_I", payload)
	require.NoError(t, err)
	assert.Equal(t, "27.5", rec.BMI)

	list, err := svc.ListRecommendations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, string(list[0].Payload), "Ulam Rice Bowl")

	latest, err := svc.LatestRecommendation(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, latest.ID)
}
