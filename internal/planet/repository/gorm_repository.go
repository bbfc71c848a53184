package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// GormPlanetRepository implements PlanetRepository using GORM
type GormPlanetRepository struct {
	db *gorm.DB
}

// NewGormPlanetRepository creates a new GORM planet repository
func NewGormPlanetRepository(db *gorm.DB) *GormPlanetRepository {
	return &GormPlanetRepository{db: db}
}

// Create inserts a new planet into the database
func (r *GormPlanetRepository) Create(ctx context.Context, planet *domain.Planet) error {
	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}

// FindByID retrieves a planet by ID
func (r *GormPlanetRepository) FindByID(ctx context.Context, id uint) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.WithContext(ctx).First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}
	return &planet, nil
}

// FindByName retrieves a planet by its unique name
func (r *GormPlanetRepository) FindByName(ctx context.Context, name string) (*domain.Planet, error) {
	var planet domain.Planet
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&planet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}
	return &planet, nil
}

// FindAll retrieves all planets
func (r *GormPlanetRepository) FindAll(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to find planets: %w", err)
	}
	return planets, nil
}

// Update persists a planet's current field values
func (r *GormPlanetRepository) Update(ctx context.Context, planet *domain.Planet) error {
	if err := r.db.WithContext(ctx).Save(planet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("failed to update planet: %w", err)
	}
	return nil
}

// Delete removes a planet from the database
func (r *GormPlanetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Planet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete planet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormPlanetRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Planet{})
}
