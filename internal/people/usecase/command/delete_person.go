package command

import (
	"context"
	"fmt"

	"github.com/tair/starwars-api/internal/people/domain"
)

// DeletePersonCommand represents the command to delete a character
type DeletePersonCommand struct {
	ID uint
}

// DeletePersonHandler handles character deletion, guarded against deleting
// rows that favorites still reference
type DeletePersonHandler struct {
	repo      domain.PeopleRepository
	favorites domain.FavoriteCounter
}

// NewDeletePersonHandler creates a new delete person handler
func NewDeletePersonHandler(repo domain.PeopleRepository, favorites domain.FavoriteCounter) *DeletePersonHandler {
	return &DeletePersonHandler{repo: repo, favorites: favorites}
}

// Handle executes the delete person command
func (h *DeletePersonHandler) Handle(ctx context.Context, cmd DeletePersonCommand) error {
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
