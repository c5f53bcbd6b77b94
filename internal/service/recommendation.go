package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/normalizer"
)

// RecommendationService keeps the history of generated tips per user.
type RecommendationService struct {
	db *gorm.DB
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{db: db}
}

func (s *RecommendationService) SaveRecommendation(ctx context.Context, userID uuid.UUID, bmi, obesityRisk string, payload *normalizer.RecommendationPayload) (*models.Recommendation, error) {
	data, err := models.MarshalJSONValue(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation: %w", err)
	}
	rec := &models.Recommendation{
		UserID:      userID,
		BMI:         bmi,
		ObesityRisk: obesityRisk,
		Payload:     data,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}
	return rec, nil
}

func (s *RecommendationService) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*models.Recommendation, error) {
	var recs []*models.Recommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// LatestRecommendation returns nil when the user has no history yet.
func (s *RecommendationService) LatestRecommendation(ctx context.Context, userID uuid.UUID) (*models.Recommendation, error) {
	var recs []*models.Recommendation
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0], nil
}
