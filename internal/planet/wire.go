//go:build wireinject
// +build wireinject

package planet

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/starwars-api/internal/planet/delivery/http"
	"github.com/tair/starwars-api/internal/planet/domain"
	"github.com/tair/starwars-api/internal/planet/repository"
	"github.com/tair/starwars-api/kafka"
)

// ProvidePlanetRepository provides the planet repository with tracing
func ProvidePlanetRepository(db *gorm.DB) domain.PlanetRepository {
	return repository.NewTracingPlanetRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvidePlanetRepository,
)

// InitializeHTTPHandler initializes the planet HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, favorites domain.FavoriteCounter, events *kafka.Publisher) (*httpDelivery.PlanetHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewPlanetHandler,
	)
	return nil, nil
}
