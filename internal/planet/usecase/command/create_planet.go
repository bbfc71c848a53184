package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// CreatePlanetCommand represents the command to create a planet
type CreatePlanetCommand struct {
	Name       string
	Diameter   *string
	Climate    *string
	Terrain    *string
	Population *string
}

// CreatePlanetHandler handles planet creation
type CreatePlanetHandler struct {
	repo domain.PlanetRepository
}

// NewCreatePlanetHandler creates a new create planet handler
func NewCreatePlanetHandler(repo domain.PlanetRepository) *CreatePlanetHandler {
	return &CreatePlanetHandler{repo: repo}
}

// Handle executes the create planet command. The existence pre-check keeps
// the source behavior; the unique index on name remains authoritative under
// concurrent inserts.
func (h *CreatePlanetHandler) Handle(ctx context.Context, cmd CreatePlanetCommand) (*domain.Planet, error) {
	if cmd.Name == "" {
		return nil, domain.ErrNameRequired
	}

	if _, err := h.repo.FindByName(ctx, cmd.Name); err == nil {
		return nil, domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check name: %w", err)
	}

	planet := &domain.Planet{
		Name:       cmd.Name,
		Diameter:   cmd.Diameter,
		Climate:    cmd.Climate,
		Terrain:    cmd.Terrain,
		Population: cmd.Population,
	}

	if err := h.repo.Create(ctx, planet); err != nil {
		return nil, err
	}

	return planet, nil
}
