package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/favorite/domain"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
)

// AddFavoriteCommand represents the command to add a favorite
type AddFavoriteCommand struct {
	UserID uint
	Target domain.TargetRef
}

// AddFavoriteHandler handles favorite creation. It validates the user and
// the target exist before inserting; the composite unique index remains
// authoritative for the uniqueness invariant.
type AddFavoriteHandler struct {
	favorites domain.FavoriteRepository
	users     userdomain.UserRepository
	people    peopledomain.PeopleRepository
	planets   planetdomain.PlanetRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(
	favorites domain.FavoriteRepository,
	users userdomain.UserRepository,
	people peopledomain.PeopleRepository,
	planets planetdomain.PlanetRepository,
) *AddFavoriteHandler {
	return &AddFavoriteHandler{
		favorites: favorites,
		users:     users,
		people:    people,
		planets:   planets,
	}
}

// Handle executes the add favorite command
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if _, err := h.users.FindByID(ctx, cmd.UserID); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if err := h.targetExists(ctx, cmd.Target); err != nil {
		return nil, err
	}

	if _, err := h.favorites.FindByTarget(ctx, cmd.UserID, cmd.Target); err == nil {
		return nil, domain.ErrAlreadyFavorited
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}

	favorite := &domain.Favorite{
		UserID:       cmd.UserID,
		FavoriteType: cmd.Target.Kind(),
		FavoriteID:   cmd.Target.ID(),
	}

	if err := h.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

func (h *AddFavoriteHandler) targetExists(ctx context.Context, target domain.TargetRef) error {
	switch target.Kind() {
	case domain.TypePeople:
		if _, err := h.people.FindByID(ctx, target.ID()); err != nil {
			if errors.Is(err, peopledomain.ErrNotFound) {
				return domain.ErrTargetNotFound
			}
			return fmt.Errorf("failed to check person: %w", err)
		}
	case domain.TypePlanet:
		if _, err := h.planets.FindByID(ctx, target.ID()); err != nil {
			if errors.Is(err, planetdomain.ErrNotFound) {
				return domain.ErrTargetNotFound
			}
			return fmt.Errorf("failed to check planet: %w", err)
		}
	default:
		return domain.ErrInvalidTargetType
	}
	return nil
}
