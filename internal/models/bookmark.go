package models

import (
	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

const (
	BookmarkRecipe   = "recipe"
	BookmarkExercise = "exercise"
)

// EmbeddingDims is the width of the bookmark embedding column.
const EmbeddingDims = 64

// Bookmark is a saved recipe or exercise. ItemData is the entry exactly as it
// was generated; Title and Embedding are derived from it for listing and search.
type Bookmark struct {
	Base
	UserID    uuid.UUID       `gorm:"type:varchar(36);not null;uniqueIndex:idx_bookmarks_user_item" json:"user_id"`
	ItemID    string          `gorm:"size:255;not null;uniqueIndex:idx_bookmarks_user_item" json:"item_id"`
	Type      string          `gorm:"size:20;not null;uniqueIndex:idx_bookmarks_user_item" json:"type"`
	Title     string          `gorm:"size:255" json:"title"`
	ItemData  JSON            `gorm:"type:jsonb;not null" json:"item_data"`
	Embedding pgvector.Vector `gorm:"type:vector(64)" json:"-"`
}

// ValidBookmarkType reports whether t is recipe or exercise.
func ValidBookmarkType(t string) bool {
	return t == BookmarkRecipe || t == BookmarkExercise
}
