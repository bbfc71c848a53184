//go:build wireinject
// +build wireinject

package people

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/starwars-api/internal/people/delivery/http"
	"github.com/tair/starwars-api/internal/people/domain"
	"github.com/tair/starwars-api/internal/people/repository"
	"github.com/tair/starwars-api/kafka"
)

// ProvidePeopleRepository provides the people repository with tracing
func ProvidePeopleRepository(db *gorm.DB) domain.PeopleRepository {
	return repository.NewTracingPeopleRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvidePeopleRepository,
)

// InitializeHTTPHandler initializes the people HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, favorites domain.FavoriteCounter, events *kafka.Publisher) (*httpDelivery.PeopleHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewPeopleHandler,
	)
	return nil, nil
}
