package command

import (
	"context"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// UpdatePlanetCommand represents a partial update: nil fields keep their
// previous value. Name uniqueness is deliberately not pre-checked on update;
// the unique index still rejects a collision at the storage layer.
type UpdatePlanetCommand struct {
	ID         uint
	Name       *string
	Diameter   *string
	Climate    *string
	Terrain    *string
	Population *string
}

// UpdatePlanetHandler handles partial planet updates
type UpdatePlanetHandler struct {
	repo domain.PlanetRepository
}

// NewUpdatePlanetHandler creates a new update planet handler
func NewUpdatePlanetHandler(repo domain.PlanetRepository) *UpdatePlanetHandler {
	return &UpdatePlanetHandler{repo: repo}
}

// Handle executes the update planet command
func (h *UpdatePlanetHandler) Handle(ctx context.Context, cmd UpdatePlanetCommand) (*domain.Planet, error) {
	planet, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		planet.Name = *cmd.Name
	}
	if cmd.Diameter != nil {
		planet.Diameter = cmd.Diameter
	}
	if cmd.Climate != nil {
		planet.Climate = cmd.Climate
	}
	if cmd.Terrain != nil {
		planet.Terrain = cmd.Terrain
	}
	if cmd.Population != nil {
		planet.Population = cmd.Population
	}

	if err := h.repo.Update(ctx, planet); err != nil {
		return nil, err
	}

	return planet, nil
}
