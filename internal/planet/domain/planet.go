package domain

import (
	"context"
	"time"
)

// Planet represents a planet entity (domain model)
type Planet struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Diameter   *string   `json:"diameter" gorm:"size:50"`
	Climate    *string   `json:"climate" gorm:"size:100"`
	Terrain    *string   `json:"terrain" gorm:"size:100"`
	Population *string   `json:"population" gorm:"size:50"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Planet) TableName() string {
	return "planets"
}

// PlanetRepository defines the contract for planet data access
type PlanetRepository interface {
	Create(ctx context.Context, planet *Planet) error
	FindByID(ctx context.Context, id uint) (*Planet, error)
	FindByName(ctx context.Context, name string) (*Planet, error)
	FindAll(ctx context.Context) ([]Planet, error)
	Update(ctx context.Context, planet *Planet) error
	Delete(ctx context.Context, id uint) error
}

// FavoriteType is the tag favorites use to reference the planets table
const FavoriteType = "planet"

// FavoriteCounter reports how many favorites reference a given target row
type FavoriteCounter interface {
	CountByTarget(ctx context.Context, favoriteType string, favoriteID uint) (int64, error)
}
