package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nutri-app/nutri/backend/internal/types"
)

// DashboardService assembles the home screen from the other services.
type DashboardService struct {
	profiles        IProfileService
	progress        IProgressService
	meals           IMealService
	bookmarks       IBookmarkService
	recommendations IRecommendationService
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(
	profiles IProfileService,
	progress IProgressService,
	meals IMealService,
	bookmarks IBookmarkService,
	recommendations IRecommendationService,
) *DashboardService {
	return &DashboardService{
		profiles:        profiles,
		progress:        progress,
		meals:           meals,
		bookmarks:       bookmarks,
		recommendations: recommendations,
	}
}

// GetDashboard runs the lookups concurrently; the first failure cancels the rest.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*types.Dashboard, error) {
	var d types.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.profiles.GetProfile(gctx, userID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		d.Profile = profile
		return err
	})
	g.Go(func() error {
		entry, err := s.progress.LatestProgress(gctx, userID)
		d.LatestProgress = entry
		return err
	})
	g.Go(func() error {
		day, err := s.meals.MealsForDay(gctx, userID, "")
		if err != nil {
			return err
		}
		d.TodayCalories = day.TotalCalories
		return nil
	})
	g.Go(func() error {
		count, err := s.bookmarks.CountBookmarks(gctx, userID)
		d.BookmarkCount = count
		return err
	})
	g.Go(func() error {
		rec, err := s.recommendations.LatestRecommendation(gctx, userID)
		d.LatestRecommendation = rec
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
