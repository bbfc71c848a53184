package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/favorite/domain"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
)

// Resolver turns favorites into display projections by looking up the
// target's name. A dangling reference resolves with a nil name; it is not
// an error.
type Resolver struct {
	people  peopledomain.PeopleRepository
	planets planetdomain.PlanetRepository
}

// NewResolver creates a new favorite resolver
func NewResolver(people peopledomain.PeopleRepository, planets planetdomain.PlanetRepository) *Resolver {
	return &Resolver{people: people, planets: planets}
}

// Resolve builds the view of a single favorite
func (r *Resolver) Resolve(ctx context.Context, favorite domain.Favorite) (domain.FavoriteView, error) {
	view := domain.FavoriteView{
		ID:           favorite.ID,
		UserID:       favorite.UserID,
		FavoriteType: favorite.FavoriteType,
		FavoriteID:   favorite.FavoriteID,
		CreatedAt:    favorite.CreatedAt,
	}

	name, err := r.targetName(ctx, favorite.Target())
	if err != nil {
		return domain.FavoriteView{}, err
	}
	view.FavoriteName = name

	return view, nil
}

// ResolveAll builds views for a favorite list, preserving order
func (r *Resolver) ResolveAll(ctx context.Context, favorites []domain.Favorite) ([]domain.FavoriteView, error) {
	views := make([]domain.FavoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		view, err := r.Resolve(ctx, favorite)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *Resolver) targetName(ctx context.Context, target domain.TargetRef) (*string, error) {
	switch target.Kind() {
	case domain.TypePeople:
		person, err := r.people.FindByID(ctx, target.ID())
		if err != nil {
			if errors.Is(err, peopledomain.ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to resolve person: %w", err)
		}
		return &person.Name, nil
	case domain.TypePlanet:
		planet, err := r.planets.FindByID(ctx, target.ID())
		if err != nil {
			if errors.Is(err, planetdomain.ErrNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to resolve planet: %w", err)
		}
		return &planet.Name, nil
	default:
		return nil, domain.ErrInvalidTargetType
	}
}
