package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/starwars-api/internal/favorite/domain"
	favrepo "github.com/tair/starwars-api/internal/favorite/repository"
	peopledomain "github.com/tair/starwars-api/internal/people/domain"
	peoplerepo "github.com/tair/starwars-api/internal/people/repository"
	planetdomain "github.com/tair/starwars-api/internal/planet/domain"
	planetrepo "github.com/tair/starwars-api/internal/planet/repository"
	userdomain "github.com/tair/starwars-api/internal/user/domain"
	userrepo "github.com/tair/starwars-api/internal/user/repository"
)

type fixture struct {
	favorites domain.FavoriteRepository
	users     userdomain.UserRepository
	people    peopledomain.PeopleRepository
	planets   planetdomain.PlanetRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&peopledomain.People{},
		&planetdomain.Planet{},
		&domain.Favorite{},
	))

	return &fixture{
		favorites: favrepo.NewGormFavoriteRepository(db),
		users:     userrepo.NewGormUserRepository(db),
		people:    peoplerepo.NewGormPeopleRepository(db),
		planets:   planetrepo.NewGormPlanetRepository(db),
	}
}

func (f *fixture) listHandler() *ListFavoritesHandler {
	return NewListFavoritesHandler(f.favorites, f.users, NewResolver(f.people, f.planets))
}

func TestListFavoritesResolvesNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &userdomain.User{Username: "leia", Email: "leia@alderaan.sw", Password: "x"}
	require.NoError(t, f.users.Create(ctx, user))

	person := &peopledomain.People{Name: "Luke Skywalker"}
	require.NoError(t, f.people.Create(ctx, person))

	planet := &planetdomain.Planet{Name: "Hoth"}
	require.NoError(t, f.planets.Create(ctx, planet))

	require.NoError(t, f.favorites.Create(ctx, &domain.Favorite{
		UserID: user.ID, FavoriteType: domain.TypePeople, FavoriteID: person.ID,
	}))
	require.NoError(t, f.favorites.Create(ctx, &domain.Favorite{
		UserID: user.ID, FavoriteType: domain.TypePlanet, FavoriteID: planet.ID,
	}))

	views, err := f.listHandler().Handle(ctx, ListFavoritesQuery{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NotNil(t, views[0].FavoriteName)
	assert.Equal(t, "Luke Skywalker", *views[0].FavoriteName)
	require.NotNil(t, views[1].FavoriteName)
	assert.Equal(t, "Hoth", *views[1].FavoriteName)
}

func TestListFavoritesDanglingTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &userdomain.User{Username: "han", Email: "han@falcon.sw", Password: "x"}
	require.NoError(t, f.users.Create(ctx, user))

	person := &peopledomain.People{Name: "Greedo"}
	require.NoError(t, f.people.Create(ctx, person))

	require.NoError(t, f.favorites.Create(ctx, &domain.Favorite{
		UserID: user.ID, FavoriteType: domain.TypePeople, FavoriteID: person.ID,
	}))

	// Remove the target out from under the favorite
	require.NoError(t, f.people.Delete(ctx, person.ID))

	views, err := f.listHandler().Handle(ctx, ListFavoritesQuery{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].FavoriteName)
	assert.Equal(t, person.ID, views[0].FavoriteID)
}

func TestListFavoritesUserNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.listHandler().Handle(context.Background(), ListFavoritesQuery{UserID: 42})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListFavoritesEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &userdomain.User{Username: "rey", Email: "rey@jakku.sw", Password: "x"}
	require.NoError(t, f.users.Create(ctx, user))

	views, err := f.listHandler().Handle(ctx, ListFavoritesQuery{UserID: user.ID})
	require.NoError(t, err)
	assert.Empty(t, views)
}
