package domain

import (
	"context"
	"time"
)

// Favorite records that a user favorited a character or a planet. The target
// is referenced by a type tag plus a numeric id, not a per-type foreign key,
// so a favorite can outlive its target (dangling reference).
type Favorite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_unique_favorite"`
	FavoriteType string    `json:"favorite_type" gorm:"size:10;not null;uniqueIndex:idx_unique_favorite"`
	FavoriteID   uint      `json:"favorite_id" gorm:"not null;uniqueIndex:idx_unique_favorite"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// Target returns the favorite's target reference
func (f *Favorite) Target() TargetRef {
	return TargetRef{kind: f.FavoriteType, id: f.FavoriteID}
}

// FavoriteView is the display projection of a favorite. FavoriteName is nil
// when the target row no longer exists.
type FavoriteView struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	FavoriteType string    `json:"favorite_type"`
	FavoriteID   uint      `json:"favorite_id"`
	FavoriteName *string   `json:"favorite_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteRepository defines the contract for favorite data access
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *Favorite) error
	FindByTarget(ctx context.Context, userID uint, target TargetRef) (*Favorite, error)
	FindByUser(ctx context.Context, userID uint) ([]Favorite, error)
	Delete(ctx context.Context, id uint) error
	CountByTarget(ctx context.Context, favoriteType string, favoriteID uint) (int64, error)
}
