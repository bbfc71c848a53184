package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/favorite/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// ListFavoritesQuery represents the query to list a user's favorites
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles the list favorites query and resolves each
// favorite into its display view
type ListFavoritesHandler struct {
	favorites domain.FavoriteRepository
	users     userdomain.UserRepository
	resolver  *Resolver
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(favorites domain.FavoriteRepository, users userdomain.UserRepository, resolver *Resolver) *ListFavoritesHandler {
	return &ListFavoritesHandler{favorites: favorites, users: users, resolver: resolver}
}

// Handle executes the list favorites query
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.FavoriteView, error) {
	if _, err := h.users.FindByID(ctx, q.UserID); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	favorites, err := h.favorites.FindByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}

	return h.resolver.ResolveAll(ctx, favorites)
}
