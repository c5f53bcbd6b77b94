package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/types"
)

const defaultSearchLimit = 20

// BookmarkService saves recipes and exercises the user wants to keep.
type BookmarkService struct {
	db *gorm.DB
}

var _ IBookmarkService = (*BookmarkService)(nil)

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// bookmarkText pulls the title and the searchable text out of a generated
// recipe or exercise.
func bookmarkText(itemType string, data map[string]interface{}) (string, string) {
	str := func(key string) string {
		if v, ok := data[key].(string); ok {
			return v
		}
		return ""
	}

	var title string
	var parts []string
	switch itemType {
	case models.BookmarkRecipe:
		title = str("recipeName")
		parts = []string{title, str("recipeDescription"), str("recipeBenefits")}
		if items, ok := data["recipeItems"].([]interface{}); ok {
			for _, it := range items {
				if s, ok := it.(string); ok {
					parts = append(parts, s)
				}
			}
		}
	case models.BookmarkExercise:
		title = str("exerciseName")
		parts = []string{title, str("exerciseDescription"), str("exerciseBenefits"), str("location")}
	}
	return title, strings.Join(parts, " ")
}

func (s *BookmarkService) AddBookmark(ctx context.Context, userID uuid.UUID, req *types.CreateBookmarkRequest) (*models.Bookmark, error) {
	if !models.ValidBookmarkType(req.Type) || strings.TrimSpace(req.ItemID) == "" {
		return nil, fmt.Errorf("bookmark: %w", ErrInvalidInput)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(req.ItemData, &data); err != nil {
		return nil, fmt.Errorf("itemData must be a JSON object: %w", ErrInvalidInput)
	}
	title, text := bookmarkText(req.Type, data)
	if title == "" {
		title = req.ItemID
	}

	bookmark := &models.Bookmark{
		UserID:    userID,
		ItemID:    req.ItemID,
		Type:      req.Type,
		Title:     title,
		ItemData:  models.JSON(req.ItemData),
		Embedding: GenerateEmbedding(text),
	}

	// The unique index on (user_id, item_id, type) decides races between
	// concurrent adds.
	if err := s.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("bookmark %s/%s: %w", req.Type, req.ItemID, ErrAlreadyExists)
		}
		return nil, err
	}
	return bookmark, nil
}

func (s *BookmarkService) RemoveBookmark(ctx context.Context, userID uuid.UUID, itemID, itemType string) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ? AND type = ?", userID, itemID, itemType).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID uuid.UUID, itemID, itemType string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Bookmark{}).
		Where("user_id = ? AND item_id = ? AND type = ?", userID, itemID, itemType).
		Count(&count).Error
	return count > 0, err
}

// ListBookmarks returns the newest bookmarks first. An empty itemType lists both kinds.
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uuid.UUID, itemType string) ([]*models.Bookmark, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if itemType != "" {
		query = query.Where("type = ?", itemType)
	}
	var bookmarks []*models.Bookmark
	if err := query.Order("created_at DESC").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// SearchBookmarks ranks bookmarks by embedding distance on postgres and
// falls back to a title match elsewhere.
func (s *BookmarkService) SearchBookmarks(ctx context.Context, userID uuid.UUID, query string, limit int) ([]*models.Bookmark, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if s.db.Dialector.Name() == "postgres" {
		vec := GenerateEmbedding(query)
		q = q.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		})
	} else {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ?", like).Order("created_at DESC")
	}

	var bookmarks []*models.Bookmark
	if err := q.Limit(limit).Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (s *BookmarkService) CountBookmarks(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
