//go:build wireinject
// +build wireinject

package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/starwars-api/internal/favorite/delivery/http"
	"github.com/tair/starwars-api/internal/favorite/domain"
	"github.com/tair/starwars-api/internal/favorite/repository"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/kafka"
)

// ProvideFavoriteRepository provides the favorite repository with tracing
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
)

// InitializeHTTPHandler initializes the favorite HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	users userdomain.UserRepository,
	people peopledomain.PeopleRepository,
	planets planetdomain.PlanetRepository,
	events *kafka.Publisher,
) (*httpDelivery.FavoriteHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewFavoriteHandler,
	)
	return nil, nil
}
