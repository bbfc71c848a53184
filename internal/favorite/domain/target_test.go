package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
)

func TestParseTargetRef(t *testing.T) {
	target, err := ParseTargetRef("people", 3)
	require.NoError(t, err)
	assert.Equal(t, TypePeople, target.Kind())
	assert.Equal(t, uint(3), target.ID())

	target, err = ParseTargetRef("planet", 7)
	require.NoError(t, err)
	assert.Equal(t, TypePlanet, target.Kind())

	_, err = ParseTargetRef("starship", 1)
	assert.ErrorIs(t, err, ErrInvalidTargetType)

	_, err = ParseTargetRef("", 1)
	assert.ErrorIs(t, err, ErrInvalidTargetType)
}

// The tags the delete guards count with must be the tags this package stores
func TestGuardTagsMatchTargetKinds(t *testing.T) {
	target, err := ParseTargetRef(peopledomain.FavoriteType, 1)
	require.NoError(t, err)
	assert.Equal(t, TypePeople, target.Kind())

	target, err = ParseTargetRef(planetdomain.FavoriteType, 1)
	require.NoError(t, err)
	assert.Equal(t, TypePlanet, target.Kind())
}

func TestFavoriteTarget(t *testing.T) {
	favorite := Favorite{UserID: 1, FavoriteType: TypePlanet, FavoriteID: 4}

	target := favorite.Target()
	assert.Equal(t, TypePlanet, target.Kind())
	assert.Equal(t, uint(4), target.ID())
	assert.Equal(t, target, PlanetRef(4))
}
