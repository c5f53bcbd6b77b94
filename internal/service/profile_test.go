package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutri-app/nutri/backend/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateProfileRecomputesBMI(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewProfileService(db)

	profile, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		HeightCm:    ptr(175.0),
		WeightKg:    ptr(70.0),
		ObesityRisk: ptr("Normal_Weight"),
	})
	require.NoError(t, err)
	assert.Equal(t, 22.9, profile.BMI)
	assert.Equal(t, "Normal_Weight", profile.ObesityRisk)
	assert.Equal(t, "Aisyah", profile.FullName)

	stored, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 22.9, stored.BMI)
}

func TestUpdateProfileExplicitBMIWins(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewProfileService(db)

	profile, err := svc.UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{
		HeightCm: ptr(175.0),
		WeightKg: ptr(70.0),
		BMI:      ptr(30.1),
	})
	require.NoError(t, err)
	assert.Equal(t, 30.1, profile.BMI)
}

func TestUpdateProfileRejectsNegativeAge(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)

	_, err := NewProfileService(db).UpdateProfile(context.Background(), userID, &types.UpdateProfileRequest{Age: ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetProfileNotFound(t *testing.T) {
	db := setupDB(t)
	_, err := NewProfileService(db).GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetProfileImage(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewProfileService(db)

	profile, err := svc.SetProfileImage(context.Background(), userID, "https://bucket.s3.amazonaws.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/p.jpg", profile.ProfileImageURL)
}
