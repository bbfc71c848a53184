package command

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

	user   *userdomain.User
	person *peopledomain.People
	planet *planetdomain.Planet
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

	f := &fixture{
		favorites: favrepo.NewGormFavoriteRepository(db),
		users:     userrepo.NewGormUserRepository(db),
		people:    peoplerepo.NewGormPeopleRepository(db),
		planets:   planetrepo.NewGormPlanetRepository(db),
	}

	ctx := context.Background()
	f.user = &userdomain.User{Username: "luke", Email: "luke@rebellion.org", Password: "x"}
	require.NoError(t, f.users.Create(ctx, f.user))

	f.person = &peopledomain.People{Name: "Han Solo"}
	require.NoError(t, f.people.Create(ctx, f.person))

	f.planet = &planetdomain.Planet{Name: "Tatooine"}
	require.NoError(t, f.planets.Create(ctx, f.planet))

	return f
}

func (f *fixture) addHandler() *AddFavoriteHandler {
	return NewAddFavoriteHandler(f.favorites, f.users, f.people, f.planets)
}

func TestAddFavoritePerson(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	favorite, err := f.addHandler().Handle(ctx, AddFavoriteCommand{
		UserID: f.user.ID,
		Target: domain.PeopleRef(f.person.ID),
	})
	require.NoError(t, err)
	assert.NotZero(t, favorite.ID)
	assert.Equal(t, domain.TypePeople, favorite.FavoriteType)
	assert.Equal(t, f.person.ID, favorite.FavoriteID)
}

func TestAddFavoriteUserNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.addHandler().Handle(context.Background(), AddFavoriteCommand{
		UserID: 999,
		Target: domain.PeopleRef(f.person.ID),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAddFavoriteTargetNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.addHandler().Handle(context.Background(), AddFavoriteCommand{
		UserID: f.user.ID,
		Target: domain.PlanetRef(999),
	})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestAddFavoriteTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cmd := AddFavoriteCommand{UserID: f.user.ID, Target: domain.PlanetRef(f.planet.ID)}

	_, err := f.addHandler().Handle(ctx, cmd)
	require.NoError(t, err)

	_, err = f.addHandler().Handle(ctx, cmd)
	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
}

func TestSameTargetIDAcrossTypes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// person.ID and planet.ID are both 1 on a fresh database; favoriting both
	// must yield two distinct rows
	require.Equal(t, f.person.ID, f.planet.ID)

	_, err := f.addHandler().Handle(ctx, AddFavoriteCommand{UserID: f.user.ID, Target: domain.PeopleRef(f.person.ID)})
	require.NoError(t, err)

	_, err = f.addHandler().Handle(ctx, AddFavoriteCommand{UserID: f.user.ID, Target: domain.PlanetRef(f.planet.ID)})
	require.NoError(t, err)

	favorites, err := f.favorites.FindByUser(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
}

func TestRemoveFavorite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.addHandler().Handle(ctx, AddFavoriteCommand{UserID: f.user.ID, Target: domain.PeopleRef(f.person.ID)})
	require.NoError(t, err)

	remove := NewRemoveFavoriteHandler(f.favorites)
	require.NoError(t, remove.Handle(ctx, RemoveFavoriteCommand{
		UserID: f.user.ID,
		Target: domain.PeopleRef(f.person.ID),
	}))

	favorites, err := f.favorites.FindByUser(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	f := newFixture(t)

	err := NewRemoveFavoriteHandler(f.favorites).Handle(context.Background(), RemoveFavoriteCommand{
		UserID: f.user.ID,
		Target: domain.PeopleRef(f.person.ID),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
