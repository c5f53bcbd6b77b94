package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/types"
)

// ProgressService records weight and BMI check-ins.
type ProgressService struct {
	db *gorm.DB
}

var _ IProgressService = (*ProgressService)(nil)

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ListProgress returns the user's entries, newest date first.
func (s *ProgressService) ListProgress(ctx context.Context, userID uuid.UUID) ([]*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ProgressService) AddProgress(ctx context.Context, userID uuid.UUID, req *types.CreateProgressRequest) (*models.ProgressEntry, error) {
	if req.WeightKg <= 0 {
		return nil, fmt.Errorf("weight: %w", ErrInvalidInput)
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.ProgressEntry{
		UserID:   userID,
		Date:     date,
		WeightKg: req.WeightKg,
		BMI:      req.BMI,
		Notes:    req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}
	return entry, nil
}

// LatestProgress returns the most recent entry, or nil when there is none.
func (s *ProgressService) LatestProgress(ctx context.Context, userID uuid.UUID) (*models.ProgressEntry, error) {
	var entries []*models.ProgressEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}
