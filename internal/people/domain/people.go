package domain

import (
	"context"
	"time"
)

// People represents a character entity (domain model)
type People struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Height    *string   `json:"height" gorm:"size:20"`
	Mass      *string   `json:"mass" gorm:"size:20"`
	HairColor *string   `json:"hair_color" gorm:"size:50"`
	EyeColor  *string   `json:"eye_color" gorm:"size:50"`
	BirthYear *string   `json:"birth_year" gorm:"size:20"`
	Gender    *string   `json:"gender" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (People) TableName() string {
	return "people"
}

// PeopleRepository defines the contract for character data access
type PeopleRepository interface {
	Create(ctx context.Context, person *People) error
	FindByID(ctx context.Context, id uint) (*People, error)
	FindByName(ctx context.Context, name string) (*People, error)
	FindAll(ctx context.Context) ([]People, error)
	Update(ctx context.Context, person *People) error
	Delete(ctx context.Context, id uint) error
}

// FavoriteType is the tag favorites use to reference the people table
const FavoriteType = "people"

// FavoriteCounter reports how many favorites reference a given target row.
// Satisfied by the favorite repository; declared here so the delete guard
// does not depend on the favorite package.
type FavoriteCounter interface {
	CountByTarget(ctx context.Context, favoriteType string, favoriteID uint) (int64, error)
}
