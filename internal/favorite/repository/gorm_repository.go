package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/favorite/domain"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Create inserts a new favorite. The composite unique index backs the
// one-favorite-per-target invariant under concurrent inserts.
func (r *GormFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyFavorited
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// FindByTarget retrieves the favorite matching the (user, type, target) triple
func (r *GormFavoriteRepository) FindByTarget(ctx context.Context, userID uint, target domain.TargetRef) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ? AND favorite_id = ?", userID, target.Kind(), target.ID()).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &favorite, nil
}

// FindByUser retrieves all favorites of a user
func (r *GormFavoriteRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	var favorites []domain.Favorite
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}
	return favorites, nil
}

// Delete removes a favorite by id
func (r *GormFavoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Favorite{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByTarget counts favorites referencing a target row. Used as the
// delete guard for people and planets.
func (r *GormFavoriteRepository) CountByTarget(ctx context.Context, favoriteType string, favoriteID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("favorite_type = ? AND favorite_id = ?", favoriteType, favoriteID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// AutoMigrate runs database migrations
func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}
