package query

import (
	"context"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// ListPlanetsQuery represents the query to list all planets
type ListPlanetsQuery struct{}

// ListPlanetsHandler handles list planets query
type ListPlanetsHandler struct {
	repo domain.PlanetRepository
}

// NewListPlanetsHandler creates a new list planets handler
func NewListPlanetsHandler(repo domain.PlanetRepository) *ListPlanetsHandler {
	return &ListPlanetsHandler{repo: repo}
}

// Handle executes the list planets query
func (h *ListPlanetsHandler) Handle(ctx context.Context, _ ListPlanetsQuery) ([]domain.Planet, error) {
	return h.repo.FindAll(ctx)
}
