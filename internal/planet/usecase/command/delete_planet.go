package command

import (
	"context"
	"fmt"

	"github.com/tair/starwars-api/internal/planet/domain"
)

// DeletePlanetCommand represents the command to delete a planet
type DeletePlanetCommand struct {
	ID uint
}

// DeletePlanetHandler handles planet deletion, guarded against deleting rows
// that favorites still reference
type DeletePlanetHandler struct {
	repo      domain.PlanetRepository
	favorites domain.FavoriteCounter
}

// NewDeletePlanetHandler creates a new delete planet handler
func NewDeletePlanetHandler(repo domain.PlanetRepository, favorites domain.FavoriteCounter) *DeletePlanetHandler {
	return &DeletePlanetHandler{repo: repo, favorites: favorites}
}

// Handle executes the delete planet command
func (h *DeletePlanetHandler) Handle(ctx context.Context, cmd DeletePlanetCommand) error {
	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		return err
	}

	count, err := h.favorites.CountByTarget(ctx, domain.FavoriteType, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to count referencing favorites: %w", err)
	}
	if count > 0 {
		return &domain.InUseError{Count: count}
	}

	return h.repo.Delete(ctx, cmd.ID)
}
