package command

import (
	"context"

	"github.com/tair/starwars-api/internal/favorite/domain"
)

// RemoveFavoriteCommand represents the command to remove a favorite
type RemoveFavoriteCommand struct {
	UserID uint
	Target domain.TargetRef
}

// RemoveFavoriteHandler handles favorite removal
type RemoveFavoriteHandler struct {
	favorites domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(favorites domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{favorites: favorites}
}

// Handle executes the remove favorite command
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	favorite, err := h.favorites.FindByTarget(ctx, cmd.UserID, cmd.Target)
	if err != nil {
		return err
	}

	return h.favorites.Delete(ctx, favorite.ID)
}
