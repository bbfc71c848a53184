//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/tair/starwars-api/internal/user/delivery/http"
	"github.com/tair/starwars-api/internal/user/domain"
	"github.com/tair/starwars-api/internal/user/repository"
	"github.com/tair/starwars-api/kafka"
)

// ProvideUserRepository provides the user repository with tracing
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, events *kafka.Publisher) (*httpDelivery.UserHandler, error) {
	wire.Build(
		RepositorySet,
		httpDelivery.NewUserHandler,
	)
	return nil, nil
}
