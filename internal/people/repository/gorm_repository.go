package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/starwars-api/internal/people/domain"
)

// GormPeopleRepository implements PeopleRepository using GORM
type GormPeopleRepository struct {
	db *gorm.DB
}

// NewGormPeopleRepository creates a new GORM people repository
func NewGormPeopleRepository(db *gorm.DB) *GormPeopleRepository {
	return &GormPeopleRepository{db: db}
}

// Create inserts a new character into the database
func (r *GormPeopleRepository) Create(ctx context.Context, person *domain.People) error {
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

// FindByID retrieves a character by ID
func (r *GormPeopleRepository) FindByID(ctx context.Context, id uint) (*domain.People, error) {
	var person domain.People
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}

// FindByName retrieves a character by its unique name
func (r *GormPeopleRepository) FindByName(ctx context.Context, name string) (*domain.People, error) {
	var person domain.People
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}

// FindAll retrieves all characters
func (r *GormPeopleRepository) FindAll(ctx context.Context) ([]domain.People, error) {
	var people []domain.People
	if err := r.db.WithContext(ctx).Order("id").Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to find people: %w", err)
	}
	return people, nil
}

// Update persists a character's current field values
func (r *GormPeopleRepository) Update(ctx context.Context, person *domain.People) error {
	if err := r.db.WithContext(ctx).Save(person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("failed to update person: %w", err)
	}
	return nil
}

// Delete removes a character from the database
func (r *GormPeopleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.People{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormPeopleRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.People{})
}
