package query

import (
	"context"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// GetPlanetQuery represents the query to get a planet by ID
type GetPlanetQuery struct {
	ID uint
}

// GetPlanetHandler handles get planet query
type GetPlanetHandler struct {
	repo domain.PlanetRepository
}

// NewGetPlanetHandler creates a new get planet handler
func NewGetPlanetHandler(repo domain.PlanetRepository) *GetPlanetHandler {
	return &GetPlanetHandler{repo: repo}
}

// Handle executes the get planet query
func (h *GetPlanetHandler) Handle(ctx context.Context, q GetPlanetQuery) (*domain.Planet, error) {
	return h.repo.FindByID(ctx, q.ID)
}
